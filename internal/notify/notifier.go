// Package notify defines the notification interface and implementations
// for manual-review escalations.
package notify

import (
	"context"
)

// ReviewPayload contains the data needed to escalate an offer for manual
// review. Escalations happen when no rule matched an offer; the seller has
// to decide themselves.
type ReviewPayload struct {
	OfferID      string
	ListingTitle string
	ListPrice    float64
	OfferAmount  float64
	Currency     string
	BuyerScore   float64
	UrgencyScore float64
	Reasoning    string
}

// Notifier defines the interface for delivering review escalations.
type Notifier interface {
	NotifyReview(ctx context.Context, review ReviewPayload) error
}
