package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// StatsHandler handles negotiation statistics endpoints.
type StatsHandler struct {
	engine Negotiator
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(n Negotiator) *StatsHandler {
	return &StatsHandler{engine: n}
}

// GetStatsInput is the input for fetching aggregated negotiation stats.
type GetStatsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Seller account" minLength:"1"`
	Days   int    `query:"days" doc:"Trailing window in days (default 30)" minimum:"1" maximum:"365"`
}

// GetStatsOutput is the response for negotiation stats.
type GetStatsOutput struct {
	Body domain.NegotiationStats
}

// Get returns decision counts, acceptance rate, average discount, and
// revenue saved over the trailing window.
func (h *StatsHandler) Get(
	ctx context.Context,
	input *GetStatsInput,
) (*GetStatsOutput, error) {
	stats, err := h.engine.Stats(ctx, input.UserID, input.Days)
	if err != nil {
		return nil, engineError(err)
	}

	return &GetStatsOutput{Body: *stats}, nil
}

// RegisterStatsRoutes registers stats endpoints with the Huma API.
func RegisterStatsRoutes(api huma.API, h *StatsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-negotiation-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/negotiation/stats",
		Summary:     "Get negotiation statistics",
		Description: "Returns aggregated decision counts and rates for the seller over a trailing window.",
		Tags:        []string{"stats"},
	}, h.Get)
}
