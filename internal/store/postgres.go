package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/sellermate/negotiator/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts or updates a listing by vinted_item_id.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"user_id":        l.UserID,
		"vinted_item_id": l.VintedID,
		"title":          l.Title,
		"category":       l.Category,
		"price":          l.Price,
		"currency":       l.Currency,
		"views":          l.Views,
		"likes":          l.Likes,
		"status":         string(l.Status),
		"listed_at":      l.ListedAt,
	}

	return s.pool.QueryRow(ctx, queryUpsertListing, args).Scan(
		&l.ID, &l.ListedAt, &l.UpdatedAt,
	)
}

// GetListing retrieves a listing by its ID, scoped to the owning user.
func (s *PostgresStore) GetListing(
	ctx context.Context,
	listingID, userID string,
) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListing, listingID, userID), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings returns the user's listings, newest first.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, queryListListings, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// CountCompletedPurchases returns the buyer's completed transaction count.
func (s *PostgresStore) CountCompletedPurchases(ctx context.Context, buyerID string) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountCompletedPurchases, buyerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting completed purchases: %w", err)
	}
	return count, nil
}

// CountOffersForListing returns how many offers have been recorded against a listing.
func (s *PostgresStore) CountOffersForListing(ctx context.Context, listingID string) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountOffersForListing, listingID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting offers for listing: %w", err)
	}
	return count, nil
}

// CreateRule inserts a new negotiation rule.
func (s *PostgresStore) CreateRule(ctx context.Context, r *domain.NegotiationRule) error {
	args := pgx.NamedArgs{
		"user_id":            r.UserID,
		"name":               r.Name,
		"description":        r.Description,
		"condition":          string(r.Condition),
		"threshold":          r.Threshold,
		"action":             string(r.Action),
		"counter_percentage": r.CounterPercentage,
		"priority":           r.Priority,
		"enabled":            r.Enabled,
	}

	return s.pool.QueryRow(ctx, queryCreateRule, args).Scan(
		&r.ID, &r.CreatedAt, &r.UpdatedAt,
	)
}

// GetRule retrieves a rule by ID, scoped to the owning user.
func (s *PostgresStore) GetRule(
	ctx context.Context,
	id, userID string,
) (*domain.NegotiationRule, error) {
	r := &domain.NegotiationRule{}
	if err := scanRule(s.pool.QueryRow(ctx, queryGetRule, id, userID), r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListRules returns all of the user's rules ordered by priority descending,
// creation time ascending.
func (s *PostgresStore) ListRules(
	ctx context.Context,
	userID string,
) ([]domain.NegotiationRule, error) {
	return s.queryRules(ctx, queryListRules, userID)
}

// ListEnabledRules returns only enabled rules, in evaluation order.
func (s *PostgresStore) ListEnabledRules(
	ctx context.Context,
	userID string,
) ([]domain.NegotiationRule, error) {
	return s.queryRules(ctx, queryListEnabledRules, userID)
}

// UpdateRuleFields applies a partial update to a rule. Returns pgx.ErrNoRows
// when the rule does not exist or belongs to another user.
func (s *PostgresStore) UpdateRuleFields(
	ctx context.Context,
	id, userID string,
	fields map[string]any,
) error {
	sql, args, err := buildRuleUpdate(id, userID, fields)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("updating rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteRule removes a rule. The bool reports whether a row was deleted.
func (s *PostgresStore) DeleteRule(ctx context.Context, id, userID string) (bool, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteRule, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting rule: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// InsertHistory appends a decision record. History rows are never updated
// or deleted afterward.
func (s *PostgresStore) InsertHistory(ctx context.Context, h *domain.NegotiationHistory) error {
	args := pgx.NamedArgs{
		"offer_id":        h.OfferID,
		"listing_id":      h.ListingID,
		"user_id":         h.UserID,
		"offer_amount":    h.OfferAmount,
		"action":          string(h.Action),
		"matched_rule_id": nullableString(h.MatchedRuleID),
		"counter_amount":  h.CounterAmount,
		"reasoning":       h.Reasoning,
		"buyer_score":     h.BuyerScore,
		"urgency_score":   h.UrgencyScore,
	}

	return s.pool.QueryRow(ctx, queryInsertHistory, args).Scan(&h.ID, &h.CreatedAt)
}

// ListHistory returns the user's decision records since the cutoff, newest first.
func (s *PostgresStore) ListHistory(
	ctx context.Context,
	userID string,
	since time.Time,
	limit int,
) ([]domain.NegotiationHistory, error) {
	rows, err := s.pool.Query(ctx, queryListHistory, userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []domain.NegotiationHistory
	for rows.Next() {
		var h domain.NegotiationHistory
		var matchedRuleID *string
		if err := rows.Scan(
			&h.ID, &h.OfferID, &h.ListingID, &h.UserID, &h.OfferAmount, &h.Action,
			&matchedRuleID, &h.CounterAmount, &h.Reasoning,
			&h.BuyerScore, &h.UrgencyScore, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning history record: %w", err)
		}
		if matchedRuleID != nil {
			h.MatchedRuleID = *matchedRuleID
		}
		records = append(records, h)
	}

	return records, rows.Err()
}

// GetStats aggregates decision counts and money figures since the cutoff.
// The acceptance rate and window are computed by the caller.
func (s *PostgresStore) GetStats(
	ctx context.Context,
	userID string,
	since time.Time,
) (*domain.NegotiationStats, error) {
	stats := &domain.NegotiationStats{}
	err := s.pool.QueryRow(ctx, queryGetStats, userID, since).Scan(
		&stats.TotalOffers, &stats.Accepted, &stats.Rejected,
		&stats.Countered, &stats.Ignored,
		&stats.AvgDiscountPct, &stats.RevenueSaved,
	)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	return stats, nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// queryRules is a helper for rule queries sharing the same column set.
func (s *PostgresStore) queryRules(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.NegotiationRule, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.NegotiationRule
	for rows.Next() {
		var r domain.NegotiationRule
		if err := scanRule(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		rules = append(rules, r)
	}

	return rules, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.UserID, &l.VintedID, &l.Title, &l.Category,
		&l.Price, &l.Currency, &l.Views, &l.Likes, &l.Status,
		&l.ListedAt, &l.UpdatedAt,
	)
}

func scanRule(row scannable, r *domain.NegotiationRule) error {
	return row.Scan(
		&r.ID, &r.UserID, &r.Name, &r.Description, &r.Condition, &r.Threshold,
		&r.Action, &r.CounterPercentage, &r.Priority, &r.Enabled,
		&r.CreatedAt, &r.UpdatedAt,
	)
}

// nullableString maps an empty string to SQL NULL.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
