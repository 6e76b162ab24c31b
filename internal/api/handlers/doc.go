// Package handlers implements HTTP handlers for the negotiator API.
package handlers

import (
	"context"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// Negotiator is the engine surface the API depends on.
type Negotiator interface {
	Analyze(
		ctx context.Context,
		offerID, listingID string,
		offerAmount float64,
		buyerID, userID string,
	) (*domain.OfferAnalysis, error)
	Execute(
		ctx context.Context,
		offerID string,
		analysis *domain.OfferAnalysis,
		userID string,
	) (*domain.ExecutionResult, error)
	ListRules(ctx context.Context, userID string) ([]domain.NegotiationRule, error)
	CreateRule(ctx context.Context, r *domain.NegotiationRule) error
	UpdateRule(ctx context.Context, id, userID string, fields map[string]any) (*domain.NegotiationRule, error)
	DeleteRule(ctx context.Context, id, userID string) error
	Stats(ctx context.Context, userID string, days int) (*domain.NegotiationStats, error)
	History(ctx context.Context, userID string, days, limit int) ([]domain.NegotiationHistory, error)
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
