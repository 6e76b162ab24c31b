package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellermate/negotiator/internal/api/handlers"
	"github.com/sellermate/negotiator/internal/api/handlers/mocks"
	domain "github.com/sellermate/negotiator/pkg/types"
)

func TestHistoryHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*mocks.MockNegotiator)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "returns records",
			query: "",
			setupMock: func(m *mocks.MockNegotiator) {
				m.EXPECT().
					History(mock.Anything, "user-1", 0, 0).
					Return([]domain.NegotiationHistory{
						{
							ID:          "hist-1",
							OfferID:     "offer-1",
							Action:      domain.ActionAccept,
							OfferAmount: 95,
							CreatedAt:   time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
						},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "passes window and limit through",
			query: "?days=7&limit=10",
			setupMock: func(m *mocks.MockNegotiator) {
				m.EXPECT().
					History(mock.Anything, "user-1", 7, 10).
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":0`,
		},
		{
			name:       "limit above cap rejected",
			query:      "?limit=10000",
			setupMock:  func(_ *mocks.MockNegotiator) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "engine failure returns 500",
			query: "",
			setupMock: func(m *mocks.MockNegotiator) {
				m.EXPECT().
					History(mock.Anything, "user-1", 0, 0).
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

			_, api := humatest.New(t)
			handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(mockEngine))

			resp := api.Get("/api/v1/history"+tt.query, "X-User-ID: user-1")
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
