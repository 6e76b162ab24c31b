package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// HistoryHandler handles negotiation history endpoints.
type HistoryHandler struct {
	engine Negotiator
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(n Negotiator) *HistoryHandler {
	return &HistoryHandler{engine: n}
}

// ListHistoryInput is the input for listing decision history.
type ListHistoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Seller account" minLength:"1"`
	Days   int    `query:"days"  doc:"Trailing window in days (default 30)" minimum:"1" maximum:"365"`
	Limit  int    `query:"limit" doc:"Maximum records (default 100, capped at 500)" minimum:"1" maximum:"500"`
}

// ListHistoryOutput is the response for listing decision history.
type ListHistoryOutput struct {
	Body struct {
		History []domain.NegotiationHistory `json:"history"`
		Total   int                         `json:"total"`
	}
}

// List returns the seller's decision records, newest first.
func (h *HistoryHandler) List(
	ctx context.Context,
	input *ListHistoryInput,
) (*ListHistoryOutput, error) {
	records, err := h.engine.History(ctx, input.UserID, input.Days, input.Limit)
	if err != nil {
		return nil, engineError(err)
	}

	if records == nil {
		records = []domain.NegotiationHistory{}
	}

	resp := &ListHistoryOutput{}
	resp.Body.History = records
	resp.Body.Total = len(records)
	return resp, nil
}

// RegisterHistoryRoutes registers history endpoints with the Huma API.
func RegisterHistoryRoutes(api huma.API, h *HistoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/history",
		Summary:     "List negotiation history",
		Description: "Returns the seller's recorded offer decisions, newest first.",
		Tags:        []string{"history"},
	}, h.List)
}
