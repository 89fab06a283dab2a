package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

const quoteColumns = `
	id,
	quote_number,
	customer,
	project,
	estimate,
	recommendations,
	status,
	email_sent,
	crm_contact_id,
	crm_opportunity_id,
	created_at`

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

type quoteRow struct {
	ID               uuid.UUID `gorm:"column:id"`
	QuoteNumber      string    `gorm:"column:quote_number"`
	Customer         []byte    `gorm:"column:customer"`
	Project          []byte    `gorm:"column:project"`
	Estimate         []byte    `gorm:"column:estimate"`
	Recommendations  []byte    `gorm:"column:recommendations"`
	Status           string    `gorm:"column:status"`
	EmailSent        bool      `gorm:"column:email_sent"`
	CRMContactID     *string   `gorm:"column:crm_contact_id"`
	CRMOpportunityID *string   `gorm:"column:crm_opportunity_id"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

// CreateQuote stores the quote. ID and CreatedAt are filled in when unset.
func (r *QuoteRepository) CreateQuote(ctx context.Context, quote model.Quote) (*model.Quote, error) {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now().UTC()
	}
	if quote.Status == "" {
		quote.Status = model.QuoteStatusSubmitted
	}
	if quote.Recommendations == nil {
		quote.Recommendations = []string{}
	}

	customer, err := json.Marshal(quote.Customer)
	if err != nil {
		return nil, fmt.Errorf("marshal customer: %w", err)
	}
	project, err := json.Marshal(quote.Project)
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}
	estimate, err := json.Marshal(quote.Estimate)
	if err != nil {
		return nil, fmt.Errorf("marshal estimate: %w", err)
	}
	recs, err := json.Marshal(quote.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("marshal recommendations: %w", err)
	}

	err = r.db.WithContext(ctx).Exec(`
		INSERT INTO quotes (
			id,
			quote_number,
			customer,
			project,
			estimate,
			recommendations,
			status,
			email_sent,
			crm_contact_id,
			crm_opportunity_id,
			project_type,
			customer_email,
			total_price,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		quote.ID,
		quote.QuoteNumber,
		string(customer),
		string(project),
		string(estimate),
		string(recs),
		string(quote.Status),
		quote.EmailSent,
		quote.CRMContactID,
		quote.CRMOpportunityID,
		string(quote.Project.ProjectType),
		quote.Customer.Email,
		quote.Estimate.TotalPrice,
		quote.CreatedAt,
	).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *QuoteRepository) GetQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	var row quoteRow
	err := r.db.WithContext(ctx).Raw(`SELECT`+quoteColumns+`
		FROM quotes
		WHERE id = ?
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toModel()
}

// ListQuotes returns quotes newest first.
func (r *QuoteRepository) ListQuotes(ctx context.Context, limit, offset int) ([]model.Quote, error) {
	var rows []quoteRow
	err := r.db.WithContext(ctx).Raw(`SELECT`+quoteColumns+`
		FROM quotes
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]model.Quote, 0, len(rows))
	for _, row := range rows {
		q, err := row.toModel()
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, nil
}

// UpdateQuoteDelivery records the outcome of the email and CRM calls.
func (r *QuoteRepository) UpdateQuoteDelivery(
	ctx context.Context,
	id uuid.UUID,
	emailSent bool,
	status model.QuoteStatus,
	crmContactID *string,
	crmOpportunityID *string,
) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE quotes
		SET email_sent = ?,
			status = ?,
			crm_contact_id = ?,
			crm_opportunity_id = ?
		WHERE id = ?
	`, emailSent, string(status), crmContactID, crmOpportunityID, id).Error
}

func (r *QuoteRepository) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status model.QuoteStatus) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE quotes
		SET status = ?
		WHERE id = ?
	`, string(status), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (row quoteRow) toModel() (*model.Quote, error) {
	q := &model.Quote{
		ID:               row.ID,
		QuoteNumber:      row.QuoteNumber,
		Status:           model.QuoteStatus(row.Status),
		EmailSent:        row.EmailSent,
		CRMContactID:     row.CRMContactID,
		CRMOpportunityID: row.CRMOpportunityID,
		CreatedAt:        row.CreatedAt,
	}
	if err := decodeJSON(row.Customer, &q.Customer); err != nil {
		return nil, fmt.Errorf("decode customer of quote %s: %w", row.ID, err)
	}
	if err := decodeJSON(row.Project, &q.Project); err != nil {
		return nil, fmt.Errorf("decode project of quote %s: %w", row.ID, err)
	}
	if err := decodeJSON(row.Estimate, &q.Estimate); err != nil {
		return nil, fmt.Errorf("decode estimate of quote %s: %w", row.ID, err)
	}
	if err := decodeJSON(row.Recommendations, &q.Recommendations); err != nil {
		return nil, fmt.Errorf("decode recommendations of quote %s: %w", row.ID, err)
	}
	return q, nil
}

func decodeJSON(data []byte, dest interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
