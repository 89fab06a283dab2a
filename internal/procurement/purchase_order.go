// Package procurement derives the supply order for a cleaning project.
package procurement

import (
	"math"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

// Supply is a catalog item consumed at a fixed coverage per unit.
type Supply struct {
	SKU         string
	Description string
	Unit        string
	UnitPrice   float64
	Coverage    float64 // square feet (or windows) per unit
}

var (
	SupplyAllPurpose = Supply{SKU: "CHM-APC-1G", Description: "All-purpose cleaner concentrate", Unit: "gal", UnitPrice: 18.00, Coverage: 5000}
	SupplyMicrofiber = Supply{SKU: "MF-CLOTH-24", Description: "Microfiber cloths, 24 pack", Unit: "pack", UnitPrice: 12.00, Coverage: 2500}
	SupplyLiners     = Supply{SKU: "LNR-4045-250", Description: "Trash liners 40x45, case of 250", Unit: "case", UnitPrice: 35.00, Coverage: 10000}
	SupplyStripper   = Supply{SKU: "VCT-STRIP-1G", Description: "VCT floor stripper", Unit: "gal", UnitPrice: 22.00, Coverage: 1000}
	SupplyFinish     = Supply{SKU: "VCT-FIN-1G", Description: "VCT floor finish", Unit: "gal", UnitPrice: 28.00, Coverage: 1500}
	SupplyDetergent  = Supply{SKU: "PW-DET-1G", Description: "Pressure washing detergent", Unit: "gal", UnitPrice: 15.00, Coverage: 2000}
	SupplyGlass      = Supply{SKU: "GLS-SOL-1G", Description: "Window cleaning solution", Unit: "gal", UnitPrice: 14.00, Coverage: 40}
)

type Order struct {
	Lines  []model.SupplyLine
	Totals model.SupplyTotals
}

// BuildPurchaseOrder sizes the supply order from the project areas. The
// estimate is used only for its crew size, which drives consumables per person.
func BuildPurchaseOrder(p model.ProjectDescription, est model.EstimateResult, taxPercent float64) Order {
	area := math.Max(p.SquareFootage, 0)

	var lines []model.SupplyLine
	add := func(s Supply, units float64) {
		qty := math.Ceil(units / s.Coverage)
		if qty <= 0 {
			return
		}
		lines = append(lines, model.SupplyLine{
			LineNo:      len(lines) + 1,
			SKU:         s.SKU,
			Description: s.Description,
			Unit:        s.Unit,
			Qty:         qty,
			UnitPrice:   s.UnitPrice,
			Amount:      roundMoney(qty * s.UnitPrice),
		})
	}

	add(SupplyAllPurpose, area)
	// at least one pack per crew member
	add(SupplyMicrofiber, math.Max(area, float64(est.CrewSize)*SupplyMicrofiber.Coverage))
	add(SupplyLiners, area)

	if p.HasVCTFlooring {
		vct := p.VCTSquareFootage
		if vct <= 0 {
			vct = area
		}
		add(SupplyStripper, vct)
		// two finish coats
		add(SupplyFinish, vct*2)
	}
	if p.NeedsPressureWashing {
		pw := p.PressureWashingSqFt
		if pw <= 0 {
			pw = area * 0.10
		}
		add(SupplyDetergent, pw)
	}
	if p.NeedsWindowCleaning && p.WindowCount > 0 {
		add(SupplyGlass, float64(p.WindowCount))
	}

	return Order{Lines: lines, Totals: CalcTotals(lines, taxPercent)}
}

// CalcTotals sums the lines, applies tax and rounds the grand total to the
// nearest whole dollar, recording the difference as round-off.
func CalcTotals(lines []model.SupplyLine, taxPercent float64) model.SupplyTotals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Amount
	}
	subtotal = roundMoney(subtotal)
	tax := roundMoney(subtotal * taxPercent / 100)
	beforeRound := subtotal + tax
	grand := math.Round(beforeRound)
	return model.SupplyTotals{
		Subtotal:   subtotal,
		TaxPercent: taxPercent,
		TaxAmount:  tax,
		RoundOff:   roundMoney(grand - beforeRound),
		GrandTotal: grand,
	}
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
