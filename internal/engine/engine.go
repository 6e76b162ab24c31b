// Package engine implements the auto-negotiation core: offer analysis
// against user rules, decision execution with an append-only audit trail,
// rule management, and decision statistics.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sellermate/negotiator/internal/marketplace"
	"github.com/sellermate/negotiator/internal/metrics"
	"github.com/sellermate/negotiator/internal/notify"
	"github.com/sellermate/negotiator/internal/store"
	score "github.com/sellermate/negotiator/pkg/scorer"
	domain "github.com/sellermate/negotiator/pkg/types"
)

const (
	pollJobName          = "offer-poll"
	defaultPollBatchSize = 200
	defaultLockTTL       = 5 * time.Minute
)

// Engine orchestrates offer analysis, rule management, decision execution,
// and the scheduled offer poll.
type Engine struct {
	store    store.Store
	market   marketplace.Client
	notifier notify.Notifier
	log      *slog.Logger

	now           func() time.Time
	weights       score.Weights
	pollUsers     []string
	pollBatchSize int
	lockTTL       time.Duration
	lockHolder    string
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	m marketplace.Client,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	hostname, _ := os.Hostname()
	eng := &Engine{
		store:         s,
		market:        m,
		notifier:      n,
		log:           slog.Default(),
		now:           time.Now,
		weights:       score.DefaultWeights(),
		pollBatchSize: defaultPollBatchSize,
		lockTTL:       defaultLockTTL,
		lockHolder:    hostname + "-" + uuid.NewString(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithUrgencyWeights overrides the urgency blend weights.
func WithUrgencyWeights(w score.Weights) EngineOption {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithPollUsers sets the user accounts the offer poll cycles over.
func WithPollUsers(userIDs []string) EngineOption {
	return func(e *Engine) {
		e.pollUsers = userIDs
	}
}

// WithPollBatchSize caps how many listings are loaded per user per poll cycle.
func WithPollBatchSize(n int) EngineOption {
	return func(e *Engine) {
		e.pollBatchSize = n
	}
}

// WithLockTTL sets the scheduler lock expiry for the poll job.
func WithLockTTL(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.lockTTL = d
	}
}

// WithLockHolder overrides the scheduler lock holder identity.
func WithLockHolder(holder string) EngineOption {
	return func(e *Engine) {
		e.lockHolder = holder
	}
}

// RunOfferPoll fetches pending offers for every configured user and runs
// each through Analyze and Execute. The cycle is guarded by a Postgres
// scheduler lock so only one instance polls at a time, and every run is
// recorded in job_runs. Per-offer failures are logged and counted; they
// never abort the cycle.
func (eng *Engine) RunOfferPoll(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.PollDuration.Observe(time.Since(start).Seconds())
	}()

	acquired, err := eng.store.AcquireSchedulerLock(ctx, pollJobName, eng.lockHolder, eng.lockTTL)
	if err != nil {
		return fmt.Errorf("acquiring poll lock: %w", err)
	}
	if !acquired {
		eng.log.Info("offer poll skipped, lock held by another instance")
		return nil
	}
	defer func() {
		if err := eng.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), pollJobName, eng.lockHolder); err != nil {
			eng.log.Error("releasing poll lock failed", "error", err)
		}
	}()

	runID, err := eng.store.InsertJobRun(ctx, pollJobName)
	if err != nil {
		return fmt.Errorf("recording job run: %w", err)
	}

	processed, pollErr := eng.pollAllUsers(ctx)

	status, errText := "success", ""
	if pollErr != nil {
		status, errText = "error", pollErr.Error()
	}
	if err := eng.store.CompleteJobRun(ctx, runID, status, errText, processed); err != nil {
		eng.log.Error("completing job run failed", "error", err)
	}

	return pollErr
}

func (eng *Engine) pollAllUsers(ctx context.Context) (int, error) {
	var processed int

	for _, userID := range eng.pollUsers {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}

		n, err := eng.pollUser(ctx, userID)
		processed += n

		if err != nil {
			if errors.Is(err, marketplace.ErrDailyLimitReached) {
				eng.log.Warn("daily API limit reached, stopping poll cycle",
					"user_id", userID,
					"processed", processed,
				)
				break
			}
			eng.log.Error("polling user failed", "user_id", userID, "error", err)
			metrics.PollErrorsTotal.Inc()
			continue
		}
	}

	return processed, nil
}

func (eng *Engine) pollUser(ctx context.Context, userID string) (int, error) {
	offers, err := eng.market.PendingOffers(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("fetching pending offers: %w", err)
	}
	if len(offers) == 0 {
		return 0, nil
	}

	listings, err := eng.store.ListListings(ctx, userID, eng.pollBatchSize)
	if err != nil {
		return 0, fmt.Errorf("listing user listings: %w", err)
	}

	byItemID := make(map[string]*domain.Listing, len(listings))
	for i := range listings {
		byItemID[listings[i].VintedID] = &listings[i]
	}

	var processed int
	for _, offer := range offers {
		listing, ok := byItemID[offer.VintedItemID]
		if !ok {
			eng.log.Warn("offer references unknown listing",
				"offer_id", offer.ID,
				"item_id", offer.VintedItemID,
			)
			continue
		}

		metrics.PollOffersTotal.Inc()

		analysis, err := eng.Analyze(ctx, offer.ID, listing.ID, offer.Amount, offer.BuyerID, userID)
		if err != nil {
			eng.log.Error("analyzing polled offer failed", "offer_id", offer.ID, "error", err)
			metrics.PollErrorsTotal.Inc()
			continue
		}

		if _, err := eng.Execute(ctx, offer.ID, analysis, userID); err != nil {
			eng.log.Error("executing polled offer failed", "offer_id", offer.ID, "error", err)
			metrics.PollErrorsTotal.Inc()
			continue
		}

		processed++
	}

	return processed, nil
}
