package model

type AdjustmentKind string

const (
	AdjustmentAmount     AdjustmentKind = "amount"
	AdjustmentMultiplier AdjustmentKind = "multiplier"
)

// Adjustment is one itemized line of an estimate. Amount is the dollar effect
// of the line; Factor is only meaningful for multipliers.
type Adjustment struct {
	Code   string         `json:"code"`
	Label  string         `json:"label"`
	Kind   AdjustmentKind `json:"kind"`
	Factor float64        `json:"factor,omitempty"`
	Amount float64        `json:"amount"`
	Hours  float64        `json:"hours,omitempty"`
}

type EstimateResult struct {
	TotalPrice     float64      `json:"total_price"`
	BasePrice      float64      `json:"base_price"`
	AddOnsTotal    float64      `json:"add_ons_total"`
	Subtotal       float64      `json:"subtotal"`
	PricePerSqFt   float64      `json:"price_per_sqft"`
	EstimatedHours float64      `json:"estimated_hours"`
	CrewSize       int          `json:"crew_size"`
	EstimatedDays  int          `json:"estimated_days"`
	MinimumApplied bool         `json:"minimum_applied"`
	Adjustments    []Adjustment `json:"adjustments"`
}

// Adjustment returns the line with the given code.
func (e EstimateResult) Adjustment(code string) (Adjustment, bool) {
	for _, adj := range e.Adjustments {
		if adj.Code == code {
			return adj, true
		}
	}
	return Adjustment{}, false
}
