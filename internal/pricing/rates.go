// Package pricing turns a project description into a price and labor breakdown.
package pricing

import "github.com/nurpe/cleaning-estimator/internal/model"

type TypeRate struct {
	Label        string  `json:"label"`
	PricePerSqFt float64 `json:"price_per_sqft"`
	SqFtPerHour  float64 `json:"sqft_per_hour"`
}

type StageRate struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

// Band maps an upper bound to a multiplier. Max of 0 means no upper bound.
type Band struct {
	Label  string  `json:"label"`
	Max    float64 `json:"max"`
	Factor float64 `json:"factor"`
}

type RateCard struct {
	Types  map[model.ProjectType]TypeRate   `json:"types"`
	Stages map[model.CleaningType]StageRate `json:"stages"`

	VCTPerSqFt     float64 `json:"vct_per_sqft"`
	VCTSqFtPerHour float64 `json:"vct_sqft_per_hour"`

	PressureWashPerSqFt     float64 `json:"pressure_wash_per_sqft"`
	PressureWashSqFtPerHour float64 `json:"pressure_wash_sqft_per_hour"`
	PressureWashDefaultArea float64 `json:"pressure_wash_default_area"`

	WindowRate          float64 `json:"window_rate"`
	WindowHours         float64 `json:"window_hours"`
	WindowBulkThreshold int     `json:"window_bulk_threshold"`
	WindowBulkFactor    float64 `json:"window_bulk_factor"`

	Urgency  []Band `json:"urgency"`
	Distance []Band `json:"distance"`

	PerDiemThresholdMiles float64 `json:"per_diem_threshold_miles"`
	PerDiemRate           float64 `json:"per_diem_rate"`

	HoursPerCrewMember float64 `json:"hours_per_crew_member"`
	MinCrew            int     `json:"min_crew"`
	MaxCrew            int     `json:"max_crew"`
	HoursPerDay        float64 `json:"hours_per_day"`

	MinimumCharge float64 `json:"minimum_charge"`
}

func DefaultRateCard() RateCard {
	return RateCard{
		Types: map[model.ProjectType]TypeRate{
			model.ProjectTypeOffice:      {Label: "Office", PricePerSqFt: 0.22, SqFtPerHour: 500},
			model.ProjectTypeRetail:      {Label: "Retail", PricePerSqFt: 0.24, SqFtPerHour: 450},
			model.ProjectTypeRestaurant:  {Label: "Restaurant", PricePerSqFt: 0.32, SqFtPerHour: 350},
			model.ProjectTypeMedical:     {Label: "Medical", PricePerSqFt: 0.35, SqFtPerHour: 300},
			model.ProjectTypeEducational: {Label: "Educational", PricePerSqFt: 0.25, SqFtPerHour: 450},
			model.ProjectTypeIndustrial:  {Label: "Industrial", PricePerSqFt: 0.18, SqFtPerHour: 600},
			model.ProjectTypeWarehouse:   {Label: "Warehouse", PricePerSqFt: 0.15, SqFtPerHour: 700},
			model.ProjectTypeHotel:       {Label: "Hotel", PricePerSqFt: 0.30, SqFtPerHour: 350},
			model.ProjectTypeMultifamily: {Label: "Multifamily", PricePerSqFt: 0.28, SqFtPerHour: 400},
			model.ProjectTypeGovernment:  {Label: "Government", PricePerSqFt: 0.26, SqFtPerHour: 400},
		},
		Stages: map[model.CleaningType]StageRate{
			model.CleaningTypeRough:    {Label: "Rough clean", Factor: 0.80},
			model.CleaningTypeFinal:    {Label: "Final clean", Factor: 1.00},
			model.CleaningTypeTouchUp:  {Label: "Touch-up clean", Factor: 0.45},
			model.CleaningTypeComplete: {Label: "Complete (rough, final, touch-up)", Factor: 2.10},
		},

		VCTPerSqFt:     0.45,
		VCTSqFtPerHour: 250,

		PressureWashPerSqFt:     0.20,
		PressureWashSqFtPerHour: 800,
		PressureWashDefaultArea: 0.10,

		WindowRate:          12.00,
		WindowHours:         0.25,
		WindowBulkThreshold: 100,
		WindowBulkFactor:    0.90,

		Urgency: []Band{
			{Label: "Standard", Max: 3, Factor: 1.00},
			{Label: "Priority", Max: 6, Factor: 1.10},
			{Label: "Rush", Max: 8, Factor: 1.25},
			{Label: "Emergency", Max: 10, Factor: 1.50},
		},
		Distance: []Band{
			{Label: "Local", Max: 25, Factor: 1.00},
			{Label: "Regional", Max: 50, Factor: 1.05},
			{Label: "Extended", Max: 100, Factor: 1.10},
			{Label: "Long distance", Max: 0, Factor: 1.20},
		},

		PerDiemThresholdMiles: 100,
		PerDiemRate:           75,

		HoursPerCrewMember: 40,
		MinCrew:            2,
		MaxCrew:            20,
		HoursPerDay:        8,

		MinimumCharge: 500,
	}
}

func bandFor(bands []Band, value float64) Band {
	for _, band := range bands {
		if band.Max == 0 || value <= band.Max {
			return band
		}
	}
	if len(bands) == 0 {
		return Band{Factor: 1}
	}
	return bands[len(bands)-1]
}
