package engine

import (
	"context"
	"fmt"

	domain "github.com/sellermate/negotiator/pkg/types"
)

const (
	defaultStatsWindowDays = 30
	defaultHistoryLimit    = 100
	maxHistoryLimit        = 500
)

// Stats aggregates the user's decisions over a trailing window of days.
// A non-positive days value falls back to 30.
func (eng *Engine) Stats(ctx context.Context, userID string, days int) (*domain.NegotiationStats, error) {
	if days <= 0 {
		days = defaultStatsWindowDays
	}
	since := eng.now().AddDate(0, 0, -days)

	stats, err := eng.store.GetStats(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("aggregating stats: %w", err)
	}

	stats.WindowDays = days
	if stats.TotalOffers > 0 {
		stats.AcceptanceRate = float64(stats.Accepted) / float64(stats.TotalOffers) * 100
	}

	return stats, nil
}

// History returns the user's decision records over a trailing window,
// newest first.
func (eng *Engine) History(
	ctx context.Context,
	userID string,
	days, limit int,
) ([]domain.NegotiationHistory, error) {
	if days <= 0 {
		days = defaultStatsWindowDays
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	since := eng.now().AddDate(0, 0, -days)

	records, err := eng.store.ListHistory(ctx, userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return records, nil
}
