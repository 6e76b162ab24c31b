package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sellermate/negotiator/internal/metrics"
	score "github.com/sellermate/negotiator/pkg/scorer"
	domain "github.com/sellermate/negotiator/pkg/types"
)

const (
	// minAcceptableRatio fixes the acceptability floor at 70% of list
	// price. Not user-configurable.
	minAcceptableRatio = 0.70

	// urgencyOverrideThreshold is the urgency above which a reject verdict
	// is softened to a counter at the minimum acceptable amount.
	urgencyOverrideThreshold = 0.7
)

// Analyze evaluates a buyer's offer against the owning user's enabled rules
// and returns the engine's verdict. It is read-only: nothing is persisted
// until the caller runs Execute.
func (eng *Engine) Analyze(
	ctx context.Context,
	offerID, listingID string,
	offerAmount float64,
	buyerID, userID string,
) (*domain.OfferAnalysis, error) {
	start := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	if offerAmount <= 0 {
		return nil, fmt.Errorf("%w: offer amount must be positive", ErrValidation)
	}

	listing, err := eng.store.GetListing(ctx, listingID, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: listing not found for this user", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching listing: %w", err)
	}
	if listing.Price <= 0 {
		return nil, fmt.Errorf("%w: listing has no positive list price", ErrValidation)
	}

	minAcceptable := listing.Price * minAcceptableRatio
	offerPct := offerAmount / listing.Price * 100
	discountPct := (listing.Price - offerAmount) / listing.Price * 100

	purchases, err := eng.store.CountCompletedPurchases(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("counting buyer purchases: %w", err)
	}
	buyerScore := score.BuyerScore(purchases)

	urgency := score.Urgency(listing.AgeDays(eng.now()), listing.Views, listing.Likes, eng.weights)

	offerCount, err := eng.store.CountOffersForListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("counting listing offers: %w", err)
	}

	sig := domain.OfferSignals{
		OfferAmount:     offerAmount,
		OfferPercentage: offerPct,
		DaysOld:         listing.AgeDays(eng.now()),
		BuyerScore:      buyerScore,
		Views:           listing.Views,
		OfferCount:      offerCount,
	}

	rules, err := eng.enabledRules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	analysis := &domain.OfferAnalysis{
		OfferID:            offerID,
		ListingID:          listingID,
		OfferAmount:        offerAmount,
		ListPrice:          listing.Price,
		MinAcceptable:      minAcceptable,
		DiscountPercentage: discountPct,
		IsAcceptable:       offerAmount >= minAcceptable,
		RecommendedAction:  domain.ActionIgnore,
		Reasoning:          "No enabled rule matched; manual review recommended",
		BuyerScore:         buyerScore,
		UrgencyScore:       urgency.Total,
	}

	// First enabled rule to match wins. Rules arrive already ordered by
	// priority descending with stable ties.
	for i := range rules {
		r := &rules[i]
		if !r.Matches(sig) {
			continue
		}

		analysis.RecommendedAction = r.Action
		analysis.MatchedRuleID = r.ID
		analysis.Reasoning = matchReasoning(r, sig)

		if r.Action == domain.ActionCounter {
			counter := listing.Price * *r.CounterPercentage / 100
			analysis.CounterOfferAmount = &counter
			analysis.Reasoning += fmt.Sprintf("; countering at %.2f", counter)
		}

		if r.Action == domain.ActionReject && urgency.Total > urgencyOverrideThreshold {
			counter := minAcceptable
			analysis.RecommendedAction = domain.ActionCounter
			analysis.CounterOfferAmount = &counter
			analysis.Reasoning = fmt.Sprintf(
				"Urgency override: %s; urgency %.2f, countering at minimum acceptable %.2f",
				matchReasoning(r, sig), urgency.Total, counter,
			)
			metrics.UrgencyOverridesTotal.Inc()
		}

		break
	}

	metrics.OffersAnalyzedTotal.WithLabelValues(string(analysis.RecommendedAction)).Inc()
	metrics.OfferDiscountDistribution.Observe(discountPct)

	eng.log.Info("offer analyzed",
		"offer_id", offerID,
		"listing_id", listingID,
		"action", analysis.RecommendedAction,
		"offer_pct", fmt.Sprintf("%.1f", offerPct),
		"urgency", fmt.Sprintf("%.2f", urgency.Total),
	)

	return analysis, nil
}

// matchReasoning renders the matched rule plus the numeric context of its
// condition into the human-readable justification.
func matchReasoning(r *domain.NegotiationRule, sig domain.OfferSignals) string {
	desc := r.Description
	if desc == "" {
		desc = r.Name
	}

	var detail string
	switch r.Condition {
	case domain.CondPercentageAbove:
		detail = fmt.Sprintf("offer at %.1f%% of list price (threshold %.1f%%)", sig.OfferPercentage, r.Threshold)
	case domain.CondAbsoluteAbove:
		detail = fmt.Sprintf("offer amount %.2f (threshold %.2f)", sig.OfferAmount, r.Threshold)
	case domain.CondBuyerRating:
		detail = fmt.Sprintf("buyer score %.1f (threshold %.1f)", sig.BuyerScore, r.Threshold)
	case domain.CondItemAge:
		detail = fmt.Sprintf("listed %d days ago (threshold %.0f)", sig.DaysOld, r.Threshold)
	case domain.CondViewsCount:
		detail = fmt.Sprintf("%d views (threshold %.0f)", sig.Views, r.Threshold)
	case domain.CondOfferCount:
		detail = fmt.Sprintf("%d offers so far (threshold %.0f)", sig.OfferCount, r.Threshold)
	}

	return fmt.Sprintf("%s: %s", desc, detail)
}
