package pricing

import (
	"fmt"
	"strings"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

const (
	MaxSquareFootage = 5_000_000
	MaxCrewSize      = 50
	MaxUrgency       = 10
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Validate reports every out-of-range field, or nil.
func Validate(p model.ProjectDescription) error {
	var errs ValidationErrors
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if p.SquareFootage <= 0 {
		add("square_footage", "must be greater than 0")
	} else if p.SquareFootage > MaxSquareFootage {
		add("square_footage", "must not exceed %d", MaxSquareFootage)
	}
	if !p.ProjectType.Valid() {
		add("project_type", "unknown project type %q", p.ProjectType)
	}
	if !p.CleaningType.Valid() {
		add("cleaning_type", "unknown cleaning type %q", p.CleaningType)
	}
	if p.VCTSquareFootage < 0 {
		add("vct_square_footage", "must not be negative")
	} else if p.SquareFootage > 0 && p.VCTSquareFootage > p.SquareFootage {
		add("vct_square_footage", "must not exceed square_footage")
	}
	if p.PressureWashingSqFt < 0 {
		add("pressure_washing_sqft", "must not be negative")
	}
	if p.WindowCount < 0 {
		add("window_count", "must not be negative")
	}
	if p.CrewSize < 0 || p.CrewSize > MaxCrewSize {
		add("crew_size", "must be between 0 and %d", MaxCrewSize)
	}
	if p.UrgencyLevel < 0 || p.UrgencyLevel > MaxUrgency {
		add("urgency_level", "must be between 0 and %d", MaxUrgency)
	}
	if p.DistanceMiles < 0 {
		add("distance_miles", "must not be negative")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
