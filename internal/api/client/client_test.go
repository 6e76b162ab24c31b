package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sellermate/negotiator/pkg/types"
)

func TestClient_ListRules(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/rules", r.URL.Path)
		assert.Equal(t, "user-1", r.Header.Get("X-User-ID"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"rules": []map[string]any{
				{"id": "rule-1", "name": "accept strong", "priority": 10},
			},
			"total": 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	rules, err := c.ListRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "rule-1", rules[0].ID)
	assert.Equal(t, 10, rules[0].Priority)
}

func TestClient_CreateRule(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/rules", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "counter band", body["name"])
		assert.Equal(t, "counter", body["action"])
		assert.Equal(t, 85.0, body["counter_percentage"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "rule-new", "name": "counter band"})
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	rule := domain.NewCounterRule("counter band", domain.CondPercentageAbove, 70, 85, 5)
	created, err := c.CreateRule(context.Background(), &rule)
	require.NoError(t, err)
	assert.Equal(t, "rule-new", created.ID)
}

func TestClient_UpdateRule(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/rules/rule-1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, false, body["enabled"])

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "rule-1", "enabled": false})
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	updated, err := c.UpdateRule(context.Background(), "rule-1", map[string]any{"enabled": false})
	require.NoError(t, err)
	assert.False(t, updated.Enabled)
}

func TestClient_DeleteRule(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/rules/rule-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	require.NoError(t, c.DeleteRule(context.Background(), "rule-1"))
}

func TestClient_AnalyzeOffer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/offers/analyze", r.URL.Path)

		var body AnalyzeOfferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "offer-1", body.OfferID)
		assert.Equal(t, 75.0, body.OfferAmount)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"offer_id":           "offer-1",
			"recommended_action": "counter",
			"is_acceptable":      true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	analysis, err := c.AnalyzeOffer(context.Background(), AnalyzeOfferRequest{
		OfferID:     "offer-1",
		ListingID:   "listing-1",
		OfferAmount: 75,
		BuyerID:     "buyer-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionCounter, analysis.RecommendedAction)
	assert.True(t, analysis.IsAcceptable)
}

func TestClient_ExecuteOffer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/offers/offer-1/execute", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"offer_id": "offer-1",
			"action":   "accept",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	result, err := c.ExecuteOffer(context.Background(), "offer-1", &domain.OfferAnalysis{
		OfferID:           "offer-1",
		RecommendedAction: domain.ActionAccept,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionAccept, result.Action)
}

func TestClient_GetStats(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/negotiation/stats", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total_offers":    8,
			"accepted":        2,
			"acceptance_rate": 25.0,
			"window_days":     7,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	stats, err := c.GetStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 8, stats.TotalOffers)
	assert.InDelta(t, 25.0, stats.AcceptanceRate, 0.001)
}

func TestClient_ListHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/history", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"history": []map[string]any{
				{"id": "hist-1", "offer_id": "offer-1", "action": "reject"},
			},
			"total": 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	records, err := c.ListHistory(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.ActionReject, records[0].Action)
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"rule not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "user-1")
	_, err := c.UpdateRule(context.Background(), "rule-gone", map[string]any{"enabled": false})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "rule not found")
}
