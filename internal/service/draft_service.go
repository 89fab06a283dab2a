package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nurpe/cleaning-estimator/internal/drafts"
	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/pricing"
)

const maxDraftStep = 10

type DraftStore interface {
	Save(ctx context.Context, draft model.Draft) (model.Draft, error)
	Get(ctx context.Context, id string) (model.Draft, error)
	Delete(ctx context.Context, id string) error
}

// DraftService holds partially filled forms. Drafts are not validated against
// pricing limits; that happens when they are submitted.
type DraftService struct {
	store DraftStore
}

func NewDraftService(store DraftStore) *DraftService {
	return &DraftService{store: store}
}

func (s *DraftService) Save(ctx context.Context, draft model.Draft) (model.Draft, error) {
	mode, ok := pricing.ParseFormMode(string(draft.Mode))
	if !ok {
		return model.Draft{}, fmt.Errorf("%w: unknown form mode %q", ErrInvalidInput, draft.Mode)
	}
	if draft.Step < 0 || draft.Step > maxDraftStep {
		return model.Draft{}, fmt.Errorf("%w: step must be between 0 and %d", ErrInvalidInput, maxDraftStep)
	}
	draft.Mode = mode
	draft.ID = strings.TrimSpace(draft.ID)
	return s.store.Save(ctx, draft)
}

func (s *DraftService) Get(ctx context.Context, id string) (model.Draft, error) {
	draft, err := s.store.Get(ctx, strings.TrimSpace(id))
	if errors.Is(err, drafts.ErrNotFound) {
		return model.Draft{}, ErrNotFound
	}
	return draft, err
}

func (s *DraftService) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, strings.TrimSpace(id))
	if errors.Is(err, drafts.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
