package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/cleaning-estimator/internal/docnumber"
	"github.com/nurpe/cleaning-estimator/internal/email"
	"github.com/nurpe/cleaning-estimator/internal/ghl"
	"github.com/nurpe/cleaning-estimator/internal/metrics"
	"github.com/nurpe/cleaning-estimator/internal/model"
)

const (
	DefaultQuoteListLimit = 50
	MaxQuoteListLimit     = 500
	quoteExportLimit      = 5000
)

type QuoteRepository interface {
	CreateQuote(ctx context.Context, quote model.Quote) (*model.Quote, error)
	GetQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error)
	ListQuotes(ctx context.Context, limit, offset int) ([]model.Quote, error)
	UpdateQuoteDelivery(ctx context.Context, id uuid.UUID, emailSent bool, status model.QuoteStatus, crmContactID, crmOpportunityID *string) error
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status model.QuoteStatus) error
}

type QuoteMailer interface {
	SendQuote(ctx context.Context, msg email.QuoteEmail) model.IntegrationResult
}

type CRMSyncer interface {
	SyncQuote(ctx context.Context, quote model.Quote) ghl.SyncResult
}

type QuoteService struct {
	repo      QuoteRepository
	estimates *EstimateService
	docs      *DocumentService
	mailer    QuoteMailer
	crm       CRMSyncer
	company   model.Company
	log       zerolog.Logger
	now       func() time.Time
}

type SubmitQuoteInput struct {
	Mode     model.FormMode
	Customer model.Customer
	Project  model.ProjectDescription
}

type SubmitQuoteResult struct {
	Quote   model.Quote             `json:"quote"`
	Summary string                  `json:"summary"`
	Email   model.IntegrationResult `json:"email"`
	CRM     ghl.SyncResult          `json:"crm"`
}

type ListQuotesInput struct {
	Principal model.Principal
	Limit     int
	Offset    int
}

func NewQuoteService(
	repo QuoteRepository,
	estimates *EstimateService,
	docs *DocumentService,
	mailer QuoteMailer,
	crm CRMSyncer,
	company model.Company,
	log zerolog.Logger,
) *QuoteService {
	return &QuoteService{
		repo:      repo,
		estimates: estimates,
		docs:      docs,
		mailer:    mailer,
		crm:       crm,
		company:   company,
		log:       log,
		now:       time.Now,
	}
}

// Submit prices and stores the quote, then emails it and pushes it to the CRM.
// Each integration is attempted once; its outcome is returned and logged but
// never fails the submission.
func (s *QuoteService) Submit(ctx context.Context, input SubmitQuoteInput) (*SubmitQuoteResult, error) {
	customer, err := normalizeCustomer(input.Customer)
	if err != nil {
		return nil, err
	}

	out, err := s.estimates.Estimate(ctx, EstimateInput{Mode: input.Mode, Project: input.Project})
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	id := uuid.New()
	saved, err := s.repo.CreateQuote(ctx, model.Quote{
		ID:              id,
		QuoteNumber:     docnumber.Format(docnumber.Quote, now, id),
		Customer:        customer,
		Project:         out.Project,
		Estimate:        out.Estimate,
		Recommendations: out.Recommendations,
		Status:          model.QuoteStatusSubmitted,
		CreatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	quote := *saved

	result := &SubmitQuoteResult{Summary: out.Summary}
	result.Email = s.sendEmail(ctx, quote, out.Summary)
	result.CRM = s.syncCRM(ctx, quote)

	quote.EmailSent = result.Email.Success
	if quote.EmailSent {
		quote.Status = model.QuoteStatusSent
	}
	quote.CRMContactID = optional(result.CRM.ContactID)
	quote.CRMOpportunityID = optional(result.CRM.OpportunityID)

	if err := s.repo.UpdateQuoteDelivery(ctx, quote.ID, quote.EmailSent, quote.Status, quote.CRMContactID, quote.CRMOpportunityID); err != nil {
		s.log.Error().Err(err).Str("quote_number", quote.QuoteNumber).Msg("failed to record quote delivery")
	}

	result.Quote = quote
	return result, nil
}

func (s *QuoteService) sendEmail(ctx context.Context, quote model.Quote, summary string) model.IntegrationResult {
	file, err := s.docs.renderQuote(quote, summary)
	if err != nil {
		result := model.IntegrationResult{Success: false, Message: fmt.Sprintf("failed to render quote pdf: %v", err)}
		s.logIntegration("email", quote, result)
		return result
	}

	result := s.mailer.SendQuote(ctx, email.QuoteEmail{
		To:              quote.Customer.Email,
		ToName:          quote.Customer.Name,
		QuoteNumber:     quote.QuoteNumber,
		ProjectName:     quote.Project.ProjectName,
		Total:           quote.Estimate.TotalPrice,
		Recommendations: quote.Recommendations,
		CompanyName:     s.company.Name,
		PDF:             file.Content,
	})
	s.logIntegration("email", quote, result)
	return result
}

func (s *QuoteService) syncCRM(ctx context.Context, quote model.Quote) ghl.SyncResult {
	result := s.crm.SyncQuote(ctx, quote)
	s.logIntegration("crm", quote, result.IntegrationResult)
	return result
}

func (s *QuoteService) logIntegration(name string, quote model.Quote, result model.IntegrationResult) {
	metrics.ObserveIntegration(name, result.Success)
	if result.Success {
		s.log.Info().Str("integration", name).Str("quote_number", quote.QuoteNumber).Msg(result.Message)
		return
	}
	s.log.Warn().Str("integration", name).Str("quote_number", quote.QuoteNumber).Msg(result.Message)
}

func (s *QuoteService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Quote, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	quote, err := s.repo.GetQuote(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) List(ctx context.Context, input ListQuotesInput) ([]model.Quote, error) {
	if !input.Principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if input.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}
	limit := input.Limit
	switch {
	case limit <= 0:
		limit = DefaultQuoteListLimit
	case limit > MaxQuoteListLimit:
		limit = MaxQuoteListLimit
	}
	return s.repo.ListQuotes(ctx, limit, input.Offset)
}

// UpdateStatus moves a quote to SENT, ACCEPTED or DECLINED. SUBMITTED is only
// set on creation.
func (s *QuoteService) UpdateStatus(ctx context.Context, principal model.Principal, id uuid.UUID, status model.QuoteStatus) (*model.Quote, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	status = model.QuoteStatus(strings.ToUpper(strings.TrimSpace(string(status))))
	if !status.Valid() || status == model.QuoteStatusSubmitted {
		return nil, fmt.Errorf("%w: unsupported status %q", ErrInvalidInput, status)
	}

	if err := s.repo.UpdateQuoteStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, principal, id)
}

func (s *QuoteService) QuotePDF(ctx context.Context, principal model.Principal, id uuid.UUID) (*FileResult, error) {
	quote, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return s.docs.RenderQuote(*quote)
}

func (s *QuoteService) Export(ctx context.Context, principal model.Principal) (*FileResult, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	quotes, err := s.repo.ListQuotes(ctx, quoteExportLimit, 0)
	if err != nil {
		return nil, err
	}
	return s.docs.QuoteRegister(quotes)
}

func normalizeCustomer(c model.Customer) (model.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Company = strings.TrimSpace(c.Company)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)

	if c.Name == "" {
		return c, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if c.Email == "" {
		return c, fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(c.Email)
	if err != nil {
		return c, fmt.Errorf("%w: customer email is invalid", ErrInvalidInput)
	}
	c.Email = addr.Address
	return c, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
