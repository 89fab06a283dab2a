package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

func validProject() model.ProjectDescription {
	return model.ProjectDescription{
		SquareFootage: 8000,
		ProjectType:   model.ProjectTypeOffice,
		CleaningType:  model.CleaningTypeFinal,
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validProject()))
}

func TestValidate_AcceptsOpenEndedInputs(t *testing.T) {
	windowsWithoutCount := validProject()
	windowsWithoutCount.NeedsWindowCleaning = true
	assert.NoError(t, Validate(windowsWithoutCount))

	farAway := validProject()
	farAway.DistanceMiles = 1200
	assert.NoError(t, Validate(farAway))
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.ProjectDescription)
		field  string
	}{
		{"zero area", func(p *model.ProjectDescription) { p.SquareFootage = 0 }, "square_footage"},
		{"huge area", func(p *model.ProjectDescription) { p.SquareFootage = MaxSquareFootage + 1 }, "square_footage"},
		{"unknown type", func(p *model.ProjectDescription) { p.ProjectType = "castle" }, "project_type"},
		{"unknown stage", func(p *model.ProjectDescription) { p.CleaningType = "deep" }, "cleaning_type"},
		{"vct larger than area", func(p *model.ProjectDescription) { p.VCTSquareFootage = 9000 }, "vct_square_footage"},
		{"negative pressure area", func(p *model.ProjectDescription) { p.PressureWashingSqFt = -1 }, "pressure_washing_sqft"},
		{"negative window count", func(p *model.ProjectDescription) { p.WindowCount = -1 }, "window_count"},
		{"crew too large", func(p *model.ProjectDescription) { p.CrewSize = 51 }, "crew_size"},
		{"urgency too high", func(p *model.ProjectDescription) { p.UrgencyLevel = 11 }, "urgency_level"},
		{"negative distance", func(p *model.ProjectDescription) { p.DistanceMiles = -5 }, "distance_miles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(&p)

			err := Validate(p)
			require.Error(t, err)

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	err := Validate(model.ProjectDescription{})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}
