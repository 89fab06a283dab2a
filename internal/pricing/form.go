package pricing

import "github.com/nurpe/cleaning-estimator/internal/model"

// ApplyFormMode fills the fields the quick form does not collect. Detailed
// submissions only get a default cleaning stage and urgency.
func ApplyFormMode(mode model.FormMode, p model.ProjectDescription) model.ProjectDescription {
	if mode == model.FormModeQuick {
		p.HasVCTFlooring = false
		p.VCTSquareFootage = 0
		p.NeedsPressureWashing = false
		p.PressureWashingSqFt = 0
		p.NeedsWindowCleaning = false
		p.WindowCount = 0
		p.CrewSize = 0
		p.DistanceMiles = 0
	}
	if p.CleaningType == "" {
		p.CleaningType = model.CleaningTypeFinal
	}
	if p.UrgencyLevel == 0 {
		p.UrgencyLevel = 1
	}
	return p
}

func ParseFormMode(raw string) (model.FormMode, bool) {
	switch model.FormMode(raw) {
	case "", model.FormModeDetailed:
		return model.FormModeDetailed, true
	case model.FormModeQuick:
		return model.FormModeQuick, true
	}
	return "", false
}
