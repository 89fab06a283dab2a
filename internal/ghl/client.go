// Package ghl is a small GoHighLevel v2 API client covering contact upsert and
// opportunity creation.
package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/money"
)

const (
	DefaultBaseURL = "https://services.leadconnectorhq.com"
	apiVersion     = "2021-07-28"
	leadSource     = "Cleaning Estimator"

	maxErrorBody    = 4 << 10
	maxResponseBody = 1 << 20
)

type Config struct {
	APIKey          string
	LocationID      string
	PipelineID      string
	PipelineStageID string
	BaseURL         string
	Logger          zerolog.Logger
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

type Contact struct {
	LocationID  string   `json:"locationId"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	CompanyName string   `json:"companyName,omitempty"`
	Address1    string   `json:"address1,omitempty"`
	Source      string   `json:"source,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type Opportunity struct {
	LocationID      string  `json:"locationId"`
	PipelineID      string  `json:"pipelineId"`
	PipelineStageID string  `json:"pipelineStageId,omitempty"`
	ContactID       string  `json:"contactId"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	MonetaryValue   float64 `json:"monetaryValue"`
	Source          string  `json:"source,omitempty"`
}

type upsertContactResponse struct {
	New     bool `json:"new"`
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

type createOpportunityResponse struct {
	Opportunity struct {
		ID string `json:"id"`
	} `json:"opportunity"`
}

// SyncResult extends the integration result with the CRM record ids.
type SyncResult struct {
	model.IntegrationResult
	ContactID     string `json:"contact_id,omitempty"`
	OpportunityID string `json:"opportunity_id,omitempty"`
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Enabled() bool {
	return c.cfg.APIKey != "" && c.cfg.LocationID != ""
}

// UpsertContact matches on email or phone within the location and returns the
// contact id.
func (c *Client) UpsertContact(ctx context.Context, contact Contact) (string, error) {
	contact.LocationID = c.cfg.LocationID

	var resp upsertContactResponse
	if err := c.post(ctx, "/contacts/upsert", contact, &resp); err != nil {
		return "", fmt.Errorf("failed to upsert contact: %w", err)
	}
	if resp.Contact.ID == "" {
		return "", fmt.Errorf("failed to upsert contact: no contact id in response")
	}
	return resp.Contact.ID, nil
}

func (c *Client) CreateOpportunity(ctx context.Context, opp Opportunity) (string, error) {
	opp.LocationID = c.cfg.LocationID
	if opp.PipelineID == "" {
		opp.PipelineID = c.cfg.PipelineID
	}
	if opp.PipelineStageID == "" {
		opp.PipelineStageID = c.cfg.PipelineStageID
	}
	if opp.Status == "" {
		opp.Status = "open"
	}

	var resp createOpportunityResponse
	if err := c.post(ctx, "/opportunities/", opp, &resp); err != nil {
		return "", fmt.Errorf("failed to create opportunity: %w", err)
	}
	if resp.Opportunity.ID == "" {
		return "", fmt.Errorf("failed to create opportunity: no opportunity id in response")
	}
	return resp.Opportunity.ID, nil
}

// SyncQuote upserts the customer and, when a pipeline is configured, opens an
// opportunity worth the quote total. One attempt per call.
func (c *Client) SyncQuote(ctx context.Context, quote model.Quote) SyncResult {
	if !c.Enabled() {
		return SyncResult{IntegrationResult: model.IntegrationResult{Success: false, Message: "crm disabled"}}
	}

	first, last := splitName(quote.Customer.Name)
	contactID, err := c.UpsertContact(ctx, Contact{
		FirstName:   first,
		LastName:    last,
		Name:        quote.Customer.Name,
		Email:       quote.Customer.Email,
		Phone:       quote.Customer.Phone,
		CompanyName: quote.Customer.Company,
		Address1:    quote.Customer.Address,
		Source:      leadSource,
		Tags:        []string{"quote-request", string(quote.Project.ProjectType)},
	})
	if err != nil {
		return SyncResult{IntegrationResult: model.IntegrationResult{Success: false, Message: err.Error()}}
	}

	result := SyncResult{ContactID: contactID}
	if c.cfg.PipelineID == "" {
		result.IntegrationResult = model.IntegrationResult{Success: true, Message: "contact synced"}
		return result
	}

	oppID, err := c.CreateOpportunity(ctx, Opportunity{
		ContactID:     contactID,
		Name:          opportunityName(quote),
		MonetaryValue: quote.Estimate.TotalPrice,
		Source:        leadSource,
	})
	if err != nil {
		result.IntegrationResult = model.IntegrationResult{Success: false, Message: err.Error()}
		return result
	}

	result.OpportunityID = oppID
	result.IntegrationResult = model.IntegrationResult{Success: true, Message: "contact and opportunity synced"}
	return result
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.cfg.Logger.Warn().
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", strings.TrimSpace(string(data))).
			Msg("crm request rejected")
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func opportunityName(quote model.Quote) string {
	name := quote.Project.ProjectName
	if name == "" {
		name = quote.Customer.Company
	}
	if name == "" {
		name = quote.Customer.Name
	}
	return fmt.Sprintf("%s %s (%s)", quote.QuoteNumber, name, money.Format(quote.Estimate.TotalPrice))
}
