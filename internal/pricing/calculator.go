package pricing

import (
	"fmt"
	"math"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

const (
	CodeBase         = "base"
	CodeVCT          = "vct"
	CodePressureWash = "pressure_washing"
	CodeWindows      = "windows"
	CodeUrgency      = "urgency"
	CodeDistance     = "distance"
	CodePerDiem      = "per_diem"
	CodeMinimum      = "minimum"
)

type Calculator struct {
	rates RateCard
}

func NewCalculator(rates RateCard) *Calculator {
	return &Calculator{rates: rates}
}

func (c *Calculator) Rates() RateCard {
	return c.rates
}

// Calculate is total: out-of-range input is normalised rather than rejected.
// Callers that need to reject bad input run Validate first.
func (c *Calculator) Calculate(p model.ProjectDescription) model.EstimateResult {
	p = c.normalize(p)

	typeRate := c.rates.Types[p.ProjectType]
	stage := c.rates.Stages[p.CleaningType]

	base := roundMoney(p.SquareFootage * typeRate.PricePerSqFt * stage.Factor)
	hours := 0.0
	if typeRate.SqFtPerHour > 0 {
		hours = p.SquareFootage / typeRate.SqFtPerHour * stage.Factor
	}

	adjustments := []model.Adjustment{{
		Code:   CodeBase,
		Label:  fmt.Sprintf("%s, %s (%s sq ft @ $%.2f)", stage.Label, typeRate.Label, formatArea(p.SquareFootage), typeRate.PricePerSqFt),
		Kind:   model.AdjustmentAmount,
		Factor: stage.Factor,
		Amount: base,
		Hours:  roundHours(hours),
	}}

	addOns := 0.0
	for _, line := range c.addOns(p) {
		addOns += line.Amount
		hours += line.Hours
		line.Hours = roundHours(line.Hours)
		adjustments = append(adjustments, line)
	}
	addOns = roundMoney(addOns)
	subtotal := roundMoney(base + addOns)

	running := subtotal
	urgency := bandFor(c.rates.Urgency, float64(p.UrgencyLevel))
	if urgency.Factor != 1 {
		amount := roundMoney(running * (urgency.Factor - 1))
		running = roundMoney(running + amount)
		adjustments = append(adjustments, model.Adjustment{
			Code:   CodeUrgency,
			Label:  fmt.Sprintf("%s scheduling (urgency %d)", urgency.Label, p.UrgencyLevel),
			Kind:   model.AdjustmentMultiplier,
			Factor: urgency.Factor,
			Amount: amount,
		})
	}

	distance := bandFor(c.rates.Distance, p.DistanceMiles)
	if distance.Factor != 1 {
		amount := roundMoney(running * (distance.Factor - 1))
		running = roundMoney(running + amount)
		adjustments = append(adjustments, model.Adjustment{
			Code:   CodeDistance,
			Label:  fmt.Sprintf("%s travel (%.0f mi)", distance.Label, p.DistanceMiles),
			Kind:   model.AdjustmentMultiplier,
			Factor: distance.Factor,
			Amount: amount,
		})
	}

	crew := c.crewSize(p.CrewSize, hours)
	days := c.days(hours, crew)

	if c.rates.PerDiemRate > 0 && p.DistanceMiles > c.rates.PerDiemThresholdMiles {
		amount := roundMoney(c.rates.PerDiemRate * float64(crew*days))
		running = roundMoney(running + amount)
		adjustments = append(adjustments, model.Adjustment{
			Code:   CodePerDiem,
			Label:  fmt.Sprintf("Per diem (%d crew x %d days @ $%.2f)", crew, days, c.rates.PerDiemRate),
			Kind:   model.AdjustmentAmount,
			Amount: amount,
		})
	}

	result := model.EstimateResult{
		BasePrice:      base,
		AddOnsTotal:    addOns,
		Subtotal:       subtotal,
		EstimatedHours: roundHours(hours),
		CrewSize:       crew,
		EstimatedDays:  days,
	}

	if running < c.rates.MinimumCharge {
		adjustments = append(adjustments, model.Adjustment{
			Code:   CodeMinimum,
			Label:  fmt.Sprintf("Minimum project charge ($%.2f)", c.rates.MinimumCharge),
			Kind:   model.AdjustmentAmount,
			Amount: roundMoney(c.rates.MinimumCharge - running),
		})
		running = c.rates.MinimumCharge
		result.MinimumApplied = true
	}

	result.TotalPrice = roundMoney(running)
	if p.SquareFootage > 0 {
		result.PricePerSqFt = math.Round(result.TotalPrice/p.SquareFootage*1000) / 1000
	}
	result.Adjustments = adjustments
	return result
}

func (c *Calculator) addOns(p model.ProjectDescription) []model.Adjustment {
	var lines []model.Adjustment

	if p.HasVCTFlooring {
		area := p.VCTSquareFootage
		if area == 0 {
			area = p.SquareFootage
		}
		lines = append(lines, model.Adjustment{
			Code:   CodeVCT,
			Label:  fmt.Sprintf("VCT strip and wax (%s sq ft @ $%.2f)", formatArea(area), c.rates.VCTPerSqFt),
			Kind:   model.AdjustmentAmount,
			Amount: roundMoney(area * c.rates.VCTPerSqFt),
			Hours:  safeDiv(area, c.rates.VCTSqFtPerHour),
		})
	}

	if p.NeedsPressureWashing {
		area := p.PressureWashingSqFt
		if area == 0 {
			area = p.SquareFootage * c.rates.PressureWashDefaultArea
		}
		lines = append(lines, model.Adjustment{
			Code:   CodePressureWash,
			Label:  fmt.Sprintf("Pressure washing (%s sq ft @ $%.2f)", formatArea(area), c.rates.PressureWashPerSqFt),
			Kind:   model.AdjustmentAmount,
			Amount: roundMoney(area * c.rates.PressureWashPerSqFt),
			Hours:  safeDiv(area, c.rates.PressureWashSqFtPerHour),
		})
	}

	if p.NeedsWindowCleaning && p.WindowCount > 0 {
		factor := 1.0
		if c.rates.WindowBulkThreshold > 0 && p.WindowCount > c.rates.WindowBulkThreshold {
			factor = c.rates.WindowBulkFactor
		}
		label := fmt.Sprintf("Window cleaning (%d windows @ $%.2f)", p.WindowCount, c.rates.WindowRate)
		if factor != 1 {
			label += fmt.Sprintf(", volume rate x%.2f", factor)
		}
		lines = append(lines, model.Adjustment{
			Code:   CodeWindows,
			Label:  label,
			Kind:   model.AdjustmentAmount,
			Factor: factor,
			Amount: roundMoney(float64(p.WindowCount) * c.rates.WindowRate * factor),
			Hours:  float64(p.WindowCount) * c.rates.WindowHours,
		})
	}

	return lines
}

func (c *Calculator) crewSize(requested int, hours float64) int {
	if requested > 0 {
		return requested
	}
	crew := int(math.Ceil(safeDiv(hours, c.rates.HoursPerCrewMember)))
	if crew < c.rates.MinCrew {
		crew = c.rates.MinCrew
	}
	if c.rates.MaxCrew > 0 && crew > c.rates.MaxCrew {
		crew = c.rates.MaxCrew
	}
	if crew < 1 {
		crew = 1
	}
	return crew
}

func (c *Calculator) days(hours float64, crew int) int {
	days := int(math.Ceil(safeDiv(roundHours(hours), float64(crew)*c.rates.HoursPerDay)))
	if days < 1 {
		days = 1
	}
	return days
}

func (c *Calculator) normalize(p model.ProjectDescription) model.ProjectDescription {
	if _, ok := c.rates.Types[p.ProjectType]; !ok {
		p.ProjectType = model.ProjectTypeOffice
	}
	if _, ok := c.rates.Stages[p.CleaningType]; !ok {
		p.CleaningType = model.CleaningTypeFinal
	}
	p.SquareFootage = math.Max(p.SquareFootage, 0)
	p.VCTSquareFootage = math.Min(math.Max(p.VCTSquareFootage, 0), p.SquareFootage)
	p.PressureWashingSqFt = math.Max(p.PressureWashingSqFt, 0)
	p.DistanceMiles = math.Max(p.DistanceMiles, 0)
	if p.WindowCount < 0 {
		p.WindowCount = 0
	}
	if p.CrewSize < 0 {
		p.CrewSize = 0
	}
	if p.CrewSize > MaxCrewSize {
		p.CrewSize = MaxCrewSize
	}
	if p.UrgencyLevel < 1 {
		p.UrgencyLevel = 1
	}
	if p.UrgencyLevel > MaxUrgency {
		p.UrgencyLevel = MaxUrgency
	}
	return p
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundHours(v float64) float64 {
	return math.Round(v*10) / 10
}

func formatArea(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
