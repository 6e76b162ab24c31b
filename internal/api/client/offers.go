package client

import (
	"context"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// AnalyzeOfferRequest is the payload for analyzing an offer.
type AnalyzeOfferRequest struct {
	OfferID     string  `json:"offer_id"`
	ListingID   string  `json:"listing_id"`
	OfferAmount float64 `json:"offer_amount"`
	BuyerID     string  `json:"buyer_id"`
}

// AnalyzeOffer scores an offer against the seller's rules.
func (c *Client) AnalyzeOffer(ctx context.Context, req AnalyzeOfferRequest) (*domain.OfferAnalysis, error) {
	var analysis domain.OfferAnalysis
	if err := c.post(ctx, "/api/v1/offers/analyze", req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// ExecuteOffer records an analysis verdict and pushes it to the marketplace.
func (c *Client) ExecuteOffer(ctx context.Context, offerID string, analysis *domain.OfferAnalysis) (*domain.ExecutionResult, error) {
	var result domain.ExecutionResult
	if err := c.post(ctx, "/api/v1/offers/"+offerID+"/execute", analysis, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
