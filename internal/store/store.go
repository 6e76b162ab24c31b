// Package store defines the datastore abstraction for the negotiation
// engine. All business logic depends on the Store interface, never on
// concrete implementations, so the engine and handlers are testable without
// a running database.
package store

import (
	"context"
	"time"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// Store defines all data access operations for the negotiation engine.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, listingID, userID string) (*domain.Listing, error)
	ListListings(ctx context.Context, userID string, limit int) ([]domain.Listing, error)

	// Buyer signals
	CountCompletedPurchases(ctx context.Context, buyerID string) (int, error)
	CountOffersForListing(ctx context.Context, listingID string) (int, error)

	// Negotiation rules
	CreateRule(ctx context.Context, r *domain.NegotiationRule) error
	GetRule(ctx context.Context, id, userID string) (*domain.NegotiationRule, error)
	ListRules(ctx context.Context, userID string) ([]domain.NegotiationRule, error)
	ListEnabledRules(ctx context.Context, userID string) ([]domain.NegotiationRule, error)
	UpdateRuleFields(ctx context.Context, id, userID string, fields map[string]any) error
	DeleteRule(ctx context.Context, id, userID string) (bool, error)

	// Negotiation history. Append-only: there are no update or delete
	// operations for history records anywhere in this interface.
	InsertHistory(ctx context.Context, h *domain.NegotiationHistory) error
	ListHistory(ctx context.Context, userID string, since time.Time, limit int) ([]domain.NegotiationHistory, error)
	GetStats(ctx context.Context, userID string, since time.Time) (*domain.NegotiationStats, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
