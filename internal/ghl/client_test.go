package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

func sampleQuote() model.Quote {
	return model.Quote{
		QuoteNumber: "Q-20260309-3F2A9C",
		Customer:    model.Customer{Name: "Jordan Lee Reyes", Email: "jordan@reyes.test", Company: "Reyes Builders"},
		Project:     model.ProjectDescription{ProjectName: "Tower B", ProjectType: model.ProjectTypeOffice},
		Estimate:    model.EstimateResult{TotalPrice: 2750},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, pipeline string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		APIKey:          "key-1",
		LocationID:      "loc-1",
		PipelineID:      pipeline,
		PipelineStageID: "stage-1",
		BaseURL:         server.URL + "/",
	})
}

func TestSyncQuote_ContactAndOpportunity(t *testing.T) {
	var gotContact Contact
	var gotOpp Opportunity

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("Version"))

		switch r.URL.Path {
		case "/contacts/upsert":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotContact))
			_, _ = w.Write([]byte(`{"new":true,"contact":{"id":"ct_1"}}`))
		case "/opportunities/":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotOpp))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"opportunity":{"id":"op_1"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}, "pipe-1")

	result := client.SyncQuote(context.Background(), sampleQuote())

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "ct_1", result.ContactID)
	assert.Equal(t, "op_1", result.OpportunityID)

	assert.Equal(t, "loc-1", gotContact.LocationID)
	assert.Equal(t, "Jordan", gotContact.FirstName)
	assert.Equal(t, "Lee Reyes", gotContact.LastName)
	assert.Contains(t, gotContact.Tags, "office")

	assert.Equal(t, "pipe-1", gotOpp.PipelineID)
	assert.Equal(t, "stage-1", gotOpp.PipelineStageID)
	assert.Equal(t, "ct_1", gotOpp.ContactID)
	assert.Equal(t, "open", gotOpp.Status)
	assert.Equal(t, 2750.0, gotOpp.MonetaryValue)
	assert.Equal(t, "Q-20260309-3F2A9C Tower B ($2,750.00)", gotOpp.Name)
}

func TestSyncQuote_ContactOnlyWithoutPipeline(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"contact":{"id":"ct_2"}}`))
	}, "")

	result := client.SyncQuote(context.Background(), sampleQuote())

	assert.True(t, result.Success)
	assert.Equal(t, "ct_2", result.ContactID)
	assert.Empty(t, result.OpportunityID)
	assert.Equal(t, 1, calls)
}

func TestSyncQuote_ContactFailureIsReported(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid JWT"}`))
	}, "pipe-1")

	result := client.SyncQuote(context.Background(), sampleQuote())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "status 401")
	assert.NotContains(t, result.Message, "Invalid JWT")
	assert.Equal(t, 1, calls)
}

func TestSyncQuote_ErrorBodyIsLoggedNotReturned(t *testing.T) {
	var logs bytes.Buffer
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"locationId mismatch"}` + strings.Repeat("x", 2*maxErrorBody)))
	}))
	t.Cleanup(server.Close)
	client := NewClient(Config{
		APIKey:     "key-1",
		LocationID: "loc-1",
		BaseURL:    server.URL,
		Logger:     zerolog.New(&logs),
	})

	result := client.SyncQuote(context.Background(), sampleQuote())

	assert.False(t, result.Success)
	assert.Equal(t, "failed to upsert contact: status 400", result.Message)
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), "locationId mismatch")
	assert.Less(t, logs.Len(), 2*maxErrorBody)
}

func TestSyncQuote_OpportunityFailureKeepsContact(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/contacts/upsert" {
			_, _ = w.Write([]byte(`{"contact":{"id":"ct_3"}}`))
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"pipeline not found"}`))
	}, "pipe-x")

	result := client.SyncQuote(context.Background(), sampleQuote())

	assert.False(t, result.Success)
	assert.Equal(t, "ct_3", result.ContactID)
	assert.Contains(t, result.Message, "failed to create opportunity")
}

func TestSyncQuote_Disabled(t *testing.T) {
	result := NewClient(Config{}).SyncQuote(context.Background(), sampleQuote())
	assert.False(t, result.Success)
	assert.Equal(t, "crm disabled", result.Message)
}

func TestUpsertContact_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"contact":{}}`))
	}, "")

	_, err := client.UpsertContact(context.Background(), Contact{Email: "a@b.test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contact id")
}

func TestSplitName(t *testing.T) {
	first, last := splitName("  Ana  ")
	assert.Equal(t, "Ana", first)
	assert.Empty(t, last)

	first, last = splitName("")
	assert.Empty(t, first)
	assert.Empty(t, last)
}
