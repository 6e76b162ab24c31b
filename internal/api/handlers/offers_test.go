package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellermate/negotiator/internal/api/handlers"
	"github.com/sellermate/negotiator/internal/api/handlers/mocks"
	"github.com/sellermate/negotiator/internal/engine"
	domain "github.com/sellermate/negotiator/pkg/types"
)

func TestOffersHandler_Analyze(t *testing.T) {
	t.Parallel()

	counterAt := 85.0

	tests := []struct {
		name       string
		body       map[string]any
		userHeader string
		setupMock  func(*mocks.MockNegotiator)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid request returns analysis",
			body: map[string]any{
				"offer_id":     "offer-1",
				"listing_id":   "listing-1",
				"offer_amount": 75.0,
				"buyer_id":     "buyer-1",
			},
			userHeader: "user-1",
			setupMock: func(m *mocks.MockNegotiator) {
				m.EXPECT().
					Analyze(mock.Anything, "offer-1", "listing-1", 75.0, "buyer-1", "user-1").
					Return(&domain.OfferAnalysis{
						OfferID:            "offer-1",
						ListingID:          "listing-1",
						OfferAmount:        75,
						ListPrice:          100,
						MinAcceptable:      70,
						IsAcceptable:       true,
						RecommendedAction:  domain.ActionCounter,
						CounterOfferAmount: &counterAt,
						Reasoning:          "Counter offers at 70% or more of list price; countering at 85.00",
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"recommended_action":"counter"`,
		},
		{
			name: "missing offer_amount returns 422",
			body: map[string]any{
				"offer_id":   "offer-1",
				"listing_id": "listing-1",
				"buyer_id":   "buyer-1",
			},
			userHeader: "user-1",
			setupMock:  func(_ *mocks.MockNegotiator) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown listing returns 404",
			body: map[string]any{
				"offer_id":     "offer-1",
				"listing_id":   "listing-gone",
				"offer_amount": 50.0,
				"buyer_id":     "buyer-1",
			},
			userHeader: "user-1",
			setupMock: func(m *mocks.MockNegotiator) {
				m.EXPECT().
					Analyze(mock.Anything, "offer-1", "listing-gone", 50.0, "buyer-1", "user-1").
					Return(nil, fmt.Errorf("%w: listing not found for this user", engine.ErrNotFound)).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `listing not found`,
		},
		{
			name: "engine validation error returns 422",
			body: map[string]any{
				"offer_id":     "offer-1",
				"listing_id":   "listing-1",
				"offer_amount": 10.0,
				"buyer_id":     "buyer-1",
			},
			userHeader: "user-1",
			setupMock: func(m *mocks.MockNegotiator) {
				m.EXPECT().
					Analyze(mock.Anything, "offer-1", "listing-1", 10.0, "buyer-1", "user-1").
					Return(nil, fmt.Errorf("%w: listing has no positive price", engine.ErrValidation)).
					Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockEngine := mocks.NewMockNegotiator(t)
			tt.setupMock(mockEngine)

			h := handlers.NewOffersHandler(mockEngine)

			_, api := humatest.New(t)
			handlers.RegisterOfferRoutes(api, h)

			resp := api.Post("/api/v1/offers/analyze",
				"X-User-ID: "+tt.userHeader,
				tt.body,
			)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOffersHandler_Analyze_MissingUserHeader(t *testing.T) {
	t.Parallel()

	h := handlers.NewOffersHandler(mocks.NewMockNegotiator(t))

	_, api := humatest.New(t)
	handlers.RegisterOfferRoutes(api, h)

	resp := api.Post("/api/v1/offers/analyze", map[string]any{
		"offer_id":     "offer-1",
		"listing_id":   "listing-1",
		"offer_amount": 75.0,
		"buyer_id":     "buyer-1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestOffersHandler_Execute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockNegotiator)
		wantStatus int
		wantBody   string
	}{
		{
			name: "records the decision",
			setupMock: func(m *mocks.MockNegotiator) {
				m.EXPECT().
					Execute(mock.Anything, "offer-1", mock.MatchedBy(func(a *domain.OfferAnalysis) bool {
						return a.RecommendedAction == domain.ActionAccept
					}), "user-1").
					Return(&domain.ExecutionResult{
						OfferID:   "offer-1",
						Action:    domain.ActionAccept,
						Reasoning: "Accept offers at 90% or more of list price",
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"action":"accept"`,
		},
		{
			name: "engine failure returns 500",
			setupMock: func(m *mocks.MockNegotiator) {
				m.EXPECT().
					Execute(mock.Anything, "offer-1", mock.Anything, "user-1").
					Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockEngine := mocks.NewMockNegotiator(t)
			tt.setupMock(mockEngine)

			h := handlers.NewOffersHandler(mockEngine)

			_, api := humatest.New(t)
			handlers.RegisterOfferRoutes(api, h)

			resp := api.Post("/api/v1/offers/offer-1/execute",
				"X-User-ID: user-1",
				map[string]any{
					"offer_id":            "offer-1",
					"listing_id":          "listing-1",
					"offer_amount":        95.0,
					"list_price":          100.0,
					"min_acceptable":      70.0,
					"discount_percentage": 5.0,
					"is_acceptable":       true,
					"recommended_action":  "accept",
					"reasoning":           "Accept offers at 90% or more of list price",
					"buyer_score":         1.0,
					"urgency_score":       0.22,
				},
			)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
