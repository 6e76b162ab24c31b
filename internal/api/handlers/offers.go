package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// OffersHandler handles offer analysis and execution endpoints.
type OffersHandler struct {
	engine Negotiator
}

// NewOffersHandler creates a new OffersHandler.
func NewOffersHandler(n Negotiator) *OffersHandler {
	return &OffersHandler{engine: n}
}

// --- Input/Output types ---

// AnalyzeOfferInput is the input for analyzing an incoming offer.
type AnalyzeOfferInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Seller account the listing belongs to" minLength:"1"`
	Body   struct {
		OfferID     string  `json:"offer_id"     doc:"Marketplace offer ID"   minLength:"1"`
		ListingID   string  `json:"listing_id"   doc:"Listing UUID"           minLength:"1"`
		OfferAmount float64 `json:"offer_amount" doc:"Offered amount"         exclusiveMinimum:"0"`
		BuyerID     string  `json:"buyer_id"     doc:"Marketplace buyer ID"   minLength:"1"`
	}
}

// AnalyzeOfferOutput is the response for analyzing an offer.
type AnalyzeOfferOutput struct {
	Body domain.OfferAnalysis
}

// ExecuteOfferInput is the input for executing a previously computed analysis.
type ExecuteOfferInput struct {
	OfferID string `path:"offer_id" doc:"Marketplace offer ID" minLength:"1"`
	UserID  string `header:"X-User-ID" required:"true" doc:"Seller account the offer belongs to" minLength:"1"`
	Body    domain.OfferAnalysis
}

// ExecuteOfferOutput is the response for executing an offer decision.
type ExecuteOfferOutput struct {
	Body domain.ExecutionResult
}

// --- Handlers ---

// Analyze scores an offer against the seller's rules and returns the verdict.
// Analysis has no side effects; nothing is recorded until the verdict is
// executed.
func (h *OffersHandler) Analyze(
	ctx context.Context,
	input *AnalyzeOfferInput,
) (*AnalyzeOfferOutput, error) {
	analysis, err := h.engine.Analyze(
		ctx,
		input.Body.OfferID,
		input.Body.ListingID,
		input.Body.OfferAmount,
		input.Body.BuyerID,
		input.UserID,
	)
	if err != nil {
		return nil, engineError(err)
	}

	return &AnalyzeOfferOutput{Body: *analysis}, nil
}

// Execute records an analysis verdict and pushes it to the marketplace or
// escalates it for manual review.
func (h *OffersHandler) Execute(
	ctx context.Context,
	input *ExecuteOfferInput,
) (*ExecuteOfferOutput, error) {
	analysis := input.Body
	result, err := h.engine.Execute(ctx, input.OfferID, &analysis, input.UserID)
	if err != nil {
		return nil, engineError(err)
	}

	return &ExecuteOfferOutput{Body: *result}, nil
}

// RegisterOfferRoutes registers offer endpoints with the Huma API.
func RegisterOfferRoutes(api huma.API, h *OffersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-offer",
		Method:      http.MethodPost,
		Path:        "/api/v1/offers/analyze",
		Summary:     "Analyze an offer",
		Description: "Scores an incoming offer against the seller's negotiation rules and returns the recommended action.",
		Tags:        []string{"offers"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.Analyze)

	huma.Register(api, huma.Operation{
		OperationID: "execute-offer",
		Method:      http.MethodPost,
		Path:        "/api/v1/offers/{offer_id}/execute",
		Summary:     "Execute an offer decision",
		Description: "Records an analysis verdict in the negotiation history and responds to the offer or escalates it for review.",
		Tags:        []string{"offers"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.Execute)
}
