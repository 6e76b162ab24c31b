package engine

import (
	"context"
	"fmt"

	"github.com/sellermate/negotiator/internal/marketplace"
	"github.com/sellermate/negotiator/internal/metrics"
	"github.com/sellermate/negotiator/internal/notify"
	domain "github.com/sellermate/negotiator/pkg/types"
)

// Execute records an analysis verdict as one append-only history record and
// returns the execution result. The history insert is the source of truth;
// pushing the decision to the marketplace and escalating ignores are
// best-effort side effects that never fail the call once the record exists.
func (eng *Engine) Execute(
	ctx context.Context,
	offerID string,
	analysis *domain.OfferAnalysis,
	userID string,
) (*domain.ExecutionResult, error) {
	if analysis == nil {
		return nil, fmt.Errorf("%w: analysis is required", ErrValidation)
	}

	h := &domain.NegotiationHistory{
		OfferID:       offerID,
		ListingID:     analysis.ListingID,
		UserID:        userID,
		OfferAmount:   analysis.OfferAmount,
		Action:        analysis.RecommendedAction,
		MatchedRuleID: analysis.MatchedRuleID,
		CounterAmount: analysis.CounterOfferAmount,
		Reasoning:     analysis.Reasoning,
		BuyerScore:    analysis.BuyerScore,
		UrgencyScore:  analysis.UrgencyScore,
	}

	if err := eng.store.InsertHistory(ctx, h); err != nil {
		return nil, fmt.Errorf("recording decision: %w", err)
	}

	metrics.DecisionsExecutedTotal.WithLabelValues(string(h.Action)).Inc()

	if h.Action == domain.ActionIgnore {
		eng.escalate(ctx, analysis, userID)
	} else {
		eng.pushDecision(ctx, offerID, h)
	}

	eng.log.Info("decision recorded",
		"offer_id", offerID,
		"user_id", userID,
		"action", h.Action,
	)

	return &domain.ExecutionResult{
		OfferID:       offerID,
		Action:        h.Action,
		Reasoning:     h.Reasoning,
		CounterAmount: h.CounterAmount,
		Timestamp:     h.CreatedAt,
	}, nil
}

// escalate notifies the seller that an offer needs manual review.
func (eng *Engine) escalate(ctx context.Context, analysis *domain.OfferAnalysis, userID string) {
	metrics.EscalationsTotal.Inc()

	if eng.notifier == nil {
		return
	}

	review := notify.ReviewPayload{
		OfferID:      analysis.OfferID,
		ListPrice:    analysis.ListPrice,
		OfferAmount:  analysis.OfferAmount,
		BuyerScore:   analysis.BuyerScore,
		UrgencyScore: analysis.UrgencyScore,
		Reasoning:    analysis.Reasoning,
	}

	// Title and currency are decoration on the notification; a missing
	// listing must not block the escalation.
	if listing, err := eng.store.GetListing(ctx, analysis.ListingID, userID); err == nil {
		review.ListingTitle = listing.Title
		review.Currency = listing.Currency
	}

	if err := eng.notifier.NotifyReview(ctx, review); err != nil {
		eng.log.Error("review escalation failed", "offer_id", analysis.OfferID, "error", err)
		metrics.NotificationFailuresTotal.Inc()
	}
}

// pushDecision forwards an accept, reject, or counter to the marketplace.
func (eng *Engine) pushDecision(ctx context.Context, offerID string, h *domain.NegotiationHistory) {
	if eng.market == nil {
		return
	}

	resp := marketplace.OfferResponse{
		Action:        h.Action,
		CounterAmount: h.CounterAmount,
		Message:       h.Reasoning,
	}
	if err := eng.market.RespondToOffer(ctx, offerID, resp); err != nil {
		eng.log.Warn("pushing decision to marketplace failed",
			"offer_id", offerID,
			"action", h.Action,
			"error", err,
		)
	}
}
