package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded escalations. It is
// used when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards escalations with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyReview logs and discards a review escalation.
func (n *NoOpNotifier) NotifyReview(_ context.Context, review ReviewPayload) error {
	n.log.Debug("review escalation discarded (no backend configured)",
		"offer_id", review.OfferID,
		"listing", review.ListingTitle,
		"offer_amount", review.OfferAmount,
	)
	return nil
}
