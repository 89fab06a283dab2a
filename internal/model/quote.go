package model

import (
	"time"

	"github.com/google/uuid"
)

type QuoteStatus string

const (
	QuoteStatusSubmitted QuoteStatus = "SUBMITTED"
	QuoteStatusSent      QuoteStatus = "SENT"
	QuoteStatusAccepted  QuoteStatus = "ACCEPTED"
	QuoteStatusDeclined  QuoteStatus = "DECLINED"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusSubmitted, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusDeclined:
		return true
	}
	return false
}

type Quote struct {
	ID               uuid.UUID          `json:"id"`
	QuoteNumber      string             `json:"quote_number"`
	Customer         Customer           `json:"customer"`
	Project          ProjectDescription `json:"project"`
	Estimate         EstimateResult     `json:"estimate"`
	Recommendations  []string           `json:"recommendations"`
	Status           QuoteStatus        `json:"status"`
	EmailSent        bool               `json:"email_sent"`
	CRMContactID     *string            `json:"crm_contact_id,omitempty"`
	CRMOpportunityID *string            `json:"crm_opportunity_id,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// IntegrationResult is what an outbound integration reports back to its caller.
type IntegrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
