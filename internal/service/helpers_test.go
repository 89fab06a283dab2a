package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/nurpe/cleaning-estimator/internal/drafts"
	"github.com/nurpe/cleaning-estimator/internal/email"
	"github.com/nurpe/cleaning-estimator/internal/excel"
	"github.com/nurpe/cleaning-estimator/internal/ghl"
	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/pricing"
	"github.com/nurpe/cleaning-estimator/internal/recommend"
)

var (
	staff    = model.Principal{UserID: uuid.New(), Role: model.UserRoleEstimator}
	outsider = model.Principal{UserID: uuid.New(), Role: "GUEST"}
)

func officeProject() model.ProjectDescription {
	return model.ProjectDescription{
		ProjectName:   "Tower B",
		SiteAddress:   "400 Congress Ave",
		SquareFootage: 10000,
		ProjectType:   model.ProjectTypeOffice,
		CleaningType:  model.CleaningTypeFinal,
	}
}

type fixedRecommender struct{}

func (fixedRecommender) Generate(model.ProjectDescription, model.EstimateResult) []string {
	return []string{"Confirm site access."}
}

type stubNarrator struct {
	text string
	err  error
}

func (n stubNarrator) Summarize(context.Context, model.ProjectDescription, model.EstimateResult, []string) (string, error) {
	return n.text, n.err
}

func newEstimateService(narrator recommend.Narrator) *EstimateService {
	return NewEstimateService(pricing.NewCalculator(pricing.DefaultRateCard()), fixedRecommender{}, narrator, zerolog.Nop())
}

// recordingRenderer captures the documents it is asked to render.
type recordingRenderer struct {
	mu        sync.Mutex
	quotes    []model.QuoteDocument
	workOrder *model.WorkOrderDocument
	change    *model.ChangeOrderDocument
	purchase  *model.PurchaseOrderDocument
	err       error
}

func (r *recordingRenderer) GenerateQuote(doc model.QuoteDocument) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes = append(r.quotes, doc)
	return []byte("%PDF-quote"), r.err
}

func (r *recordingRenderer) GenerateWorkOrder(doc model.WorkOrderDocument) ([]byte, error) {
	r.workOrder = &doc
	return []byte("%PDF-wo"), r.err
}

func (r *recordingRenderer) GenerateChangeOrder(doc model.ChangeOrderDocument) ([]byte, error) {
	r.change = &doc
	return []byte("%PDF-co"), r.err
}

func (r *recordingRenderer) GeneratePurchaseOrder(doc model.PurchaseOrderDocument) ([]byte, error) {
	r.purchase = &doc
	return []byte("%PDF-po"), r.err
}

type recordingWorkbooks struct {
	estimate *excel.EstimateWorkbook
	register []model.Quote
}

func (w *recordingWorkbooks) GenerateEstimate(wb excel.EstimateWorkbook) ([]byte, error) {
	w.estimate = &wb
	return []byte("xlsx"), nil
}

func (w *recordingWorkbooks) GenerateQuoteRegister(quotes []model.Quote) ([]byte, error) {
	w.register = quotes
	return []byte("xlsx"), nil
}

type memoryQuoteRepo struct {
	mu        sync.Mutex
	quotes    map[uuid.UUID]model.Quote
	order     []uuid.UUID
	createErr error
	lastLimit int
}

func newMemoryQuoteRepo() *memoryQuoteRepo {
	return &memoryQuoteRepo{quotes: map[uuid.UUID]model.Quote{}}
}

func (r *memoryQuoteRepo) CreateQuote(_ context.Context, quote model.Quote) (*model.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.quotes[quote.ID] = quote
	r.order = append(r.order, quote.ID)
	return &quote, nil
}

func (r *memoryQuoteRepo) GetQuote(_ context.Context, id uuid.UUID) (*model.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *memoryQuoteRepo) ListQuotes(_ context.Context, limit, offset int) ([]model.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	out := []model.Quote{}
	for i := len(r.order) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.quotes[r.order[i]])
	}
	return out, nil
}

func (r *memoryQuoteRepo) UpdateQuoteDelivery(_ context.Context, id uuid.UUID, emailSent bool, status model.QuoteStatus, contactID, oppID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	q.EmailSent = emailSent
	q.Status = status
	q.CRMContactID = contactID
	q.CRMOpportunityID = oppID
	r.quotes[id] = q
	return nil
}

func (r *memoryQuoteRepo) UpdateQuoteStatus(_ context.Context, id uuid.UUID, status model.QuoteStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	q.Status = status
	r.quotes[id] = q
	return nil
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendQuote(ctx context.Context, msg email.QuoteEmail) model.IntegrationResult {
	return m.Called(ctx, msg).Get(0).(model.IntegrationResult)
}

type mockCRM struct {
	mock.Mock
}

func (m *mockCRM) SyncQuote(ctx context.Context, quote model.Quote) ghl.SyncResult {
	return m.Called(ctx, quote).Get(0).(ghl.SyncResult)
}

type memoryDraftStore struct {
	drafts map[string]model.Draft
}

func (s *memoryDraftStore) Save(_ context.Context, d model.Draft) (model.Draft, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	s.drafts[d.ID] = d
	return d, nil
}

func (s *memoryDraftStore) Get(_ context.Context, id string) (model.Draft, error) {
	d, ok := s.drafts[id]
	if !ok {
		return model.Draft{}, drafts.ErrNotFound
	}
	return d, nil
}

func (s *memoryDraftStore) Delete(_ context.Context, id string) error {
	if _, ok := s.drafts[id]; !ok {
		return drafts.ErrNotFound
	}
	delete(s.drafts, id)
	return nil
}
