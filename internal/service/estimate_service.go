package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nurpe/cleaning-estimator/internal/metrics"
	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/money"
	"github.com/nurpe/cleaning-estimator/internal/pricing"
	"github.com/nurpe/cleaning-estimator/internal/recommend"
)

type Recommender interface {
	Generate(p model.ProjectDescription, est model.EstimateResult) []string
}

type EstimateService struct {
	calc     *pricing.Calculator
	recs     Recommender
	narrator recommend.Narrator
	log      zerolog.Logger
}

type EstimateInput struct {
	Mode    model.FormMode
	Project model.ProjectDescription
}

type EstimateOutput struct {
	Project         model.ProjectDescription `json:"project"`
	Estimate        model.EstimateResult     `json:"estimate"`
	Recommendations []string                 `json:"recommendations"`
	Summary         string                   `json:"summary"`
}

type CatalogOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Catalog struct {
	ProjectTypes  []CatalogOption  `json:"project_types"`
	CleaningTypes []CatalogOption  `json:"cleaning_types"`
	FormModes     []string         `json:"form_modes"`
	Rates         pricing.RateCard `json:"rates"`
}

// NewEstimateService accepts a nil narrator; summaries then come from the
// built-in template.
func NewEstimateService(calc *pricing.Calculator, recs Recommender, narrator recommend.Narrator, log zerolog.Logger) *EstimateService {
	return &EstimateService{calc: calc, recs: recs, narrator: narrator, log: log}
}

func (s *EstimateService) Catalog() Catalog {
	rates := s.calc.Rates()

	types := make([]CatalogOption, 0, len(model.ProjectTypes))
	for _, t := range model.ProjectTypes {
		types = append(types, CatalogOption{Value: string(t), Label: rates.Types[t].Label})
	}
	stages := make([]CatalogOption, 0, len(model.CleaningTypes))
	for _, c := range model.CleaningTypes {
		stages = append(stages, CatalogOption{Value: string(c), Label: rates.Stages[c].Label})
	}

	return Catalog{
		ProjectTypes:  types,
		CleaningTypes: stages,
		FormModes:     []string{string(model.FormModeQuick), string(model.FormModeDetailed)},
		Rates:         rates,
	}
}

// Calculate applies the form mode, validates and prices the project. No
// recommendations or summary are produced.
func (s *EstimateService) Calculate(mode model.FormMode, project model.ProjectDescription) (model.ProjectDescription, model.EstimateResult, error) {
	if mode == "" {
		mode = model.FormModeDetailed
	}
	if mode != model.FormModeQuick && mode != model.FormModeDetailed {
		return project, model.EstimateResult{}, fmt.Errorf("%w: unknown form mode %q", ErrInvalidInput, mode)
	}

	project = pricing.ApplyFormMode(mode, project)
	if err := pricing.Validate(project); err != nil {
		return project, model.EstimateResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	est := s.calc.Calculate(project)
	metrics.EstimatesGenerated.WithLabelValues(string(project.ProjectType)).Inc()
	return project, est, nil
}

func (s *EstimateService) Estimate(ctx context.Context, input EstimateInput) (*EstimateOutput, error) {
	project, est, err := s.Calculate(input.Mode, input.Project)
	if err != nil {
		return nil, err
	}

	recs := s.recs.Generate(project, est)
	return &EstimateOutput{
		Project:         project,
		Estimate:        est,
		Recommendations: recs,
		Summary:         s.summarize(ctx, project, est, recs),
	}, nil
}

func (s *EstimateService) summarize(ctx context.Context, p model.ProjectDescription, est model.EstimateResult, recs []string) string {
	if s.narrator != nil {
		text, err := s.narrator.Summarize(ctx, p, est, recs)
		if err == nil {
			return text
		}
		s.log.Warn().Err(err).Str("project_type", string(p.ProjectType)).Msg("narrator failed, using template summary")
	}
	return TemplateSummary(p, est)
}

func TemplateSummary(p model.ProjectDescription, est model.EstimateResult) string {
	summary := fmt.Sprintf(
		"%s cleaning of %s sq ft (%s): about %.1f labor hours for a crew of %d over %d day(s), %s in total.",
		titleWord(string(p.ProjectType)),
		formatArea(p.SquareFootage),
		string(p.CleaningType),
		est.EstimatedHours,
		est.CrewSize,
		est.EstimatedDays,
		money.Format(est.TotalPrice),
	)
	if est.MinimumApplied {
		summary += " The minimum job charge applies."
	}
	return summary
}
