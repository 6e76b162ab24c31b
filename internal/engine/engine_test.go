package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellermate/negotiator/internal/marketplace"
	marketMocks "github.com/sellermate/negotiator/internal/marketplace/mocks"
	notifyMocks "github.com/sellermate/negotiator/internal/notify/mocks"
	storeMocks "github.com/sellermate/negotiator/internal/store/mocks"
	domain "github.com/sellermate/negotiator/pkg/types"
)

func newPollEngine(
	s *storeMocks.MockStore,
	m *marketMocks.MockClient,
	n *notifyMocks.MockNotifier,
	users ...string,
) *Engine {
	return NewEngine(s, m, n,
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return fixedNow }),
		WithPollUsers(users),
		WithLockHolder("test-holder"),
		WithLockTTL(time.Minute),
	)
}

func TestRunOfferPoll_SkipsWhenLockHeld(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := marketMocks.NewMockClient(t)
	eng := newPollEngine(ms, mc, notifyMocks.NewMockNotifier(t), "user-1")

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "offer-poll", "test-holder", time.Minute).
		Return(false, nil).Once()

	require.NoError(t, eng.RunOfferPoll(context.Background()))

	// Another instance holds the lock: no job run, no polling, no release.
	ms.AssertNotCalled(t, "InsertJobRun", mock.Anything, mock.Anything)
	mc.AssertNotCalled(t, "PendingOffers", mock.Anything, mock.Anything)
}

func TestRunOfferPoll_FullCycle(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := marketMocks.NewMockClient(t)
	eng := newPollEngine(ms, mc, notifyMocks.NewMockNotifier(t), "user-1")

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "offer-poll", "test-holder", time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "offer-poll").Return("run-1", nil).Once()

	// One offer on a known listing, one on a listing this user never synced.
	mc.EXPECT().PendingOffers(mock.Anything, "user-1").Return([]marketplace.Offer{
		{ID: "offer-A", VintedItemID: "v-100", BuyerID: "buyer-1", Amount: 95, Currency: "EUR"},
		{ID: "offer-B", VintedItemID: "v-999", BuyerID: "buyer-2", Amount: 50, Currency: "EUR"},
	}, nil).Once()
	ms.EXPECT().ListListings(mock.Anything, "user-1", defaultPollBatchSize).
		Return([]domain.Listing{*testListing(100, 5, 100, 10)}, nil).Once()

	// offer-A runs through Analyze (default rules accept a 95% offer) and
	// Execute; offer-B is skipped with a warning.
	expectSignals(ms, testListing(100, 5, 100, 10), 0, 0)
	expectDefaultRules(ms)
	ms.EXPECT().InsertHistory(mock.Anything, mock.MatchedBy(func(h *domain.NegotiationHistory) bool {
		return h.OfferID == "offer-A" && h.Action == domain.ActionAccept
	})).Return(nil).Once()
	mc.EXPECT().RespondToOffer(mock.Anything, "offer-A", mock.Anything).Return(nil).Once()

	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "success", "", 1).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "offer-poll", "test-holder").Return(nil).Once()

	require.NoError(t, eng.RunOfferPoll(context.Background()))
}

func TestRunOfferPoll_DailyLimitStopsCycle(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := marketMocks.NewMockClient(t)
	eng := newPollEngine(ms, mc, notifyMocks.NewMockNotifier(t), "user-1", "user-2")

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "offer-poll", "test-holder", time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "offer-poll").Return("run-1", nil).Once()

	// user-1 exhausts the daily quota; user-2 must not be polled at all.
	mc.EXPECT().PendingOffers(mock.Anything, "user-1").
		Return(nil, marketplace.ErrDailyLimitReached).Once()

	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "success", "", 0).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "offer-poll", "test-holder").Return(nil).Once()

	require.NoError(t, eng.RunOfferPoll(context.Background()))
	mc.AssertNotCalled(t, "PendingOffers", mock.Anything, "user-2")
}

func TestRunOfferPoll_PerUserFailureContinues(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := marketMocks.NewMockClient(t)
	eng := newPollEngine(ms, mc, notifyMocks.NewMockNotifier(t), "user-1", "user-2")

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "offer-poll", "test-holder", time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "offer-poll").Return("run-1", nil).Once()

	mc.EXPECT().PendingOffers(mock.Anything, "user-1").
		Return(nil, errors.New("vinted 502")).Once()
	mc.EXPECT().PendingOffers(mock.Anything, "user-2").
		Return([]marketplace.Offer{}, nil).Once()

	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "success", "", 0).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "offer-poll", "test-holder").Return(nil).Once()

	require.NoError(t, eng.RunOfferPoll(context.Background()))
}

func TestRunOfferPoll_LockErrorPropagates(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newPollEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t), "user-1")

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "offer-poll", "test-holder", time.Minute).
		Return(false, errors.New("connection refused")).Once()

	err := eng.RunOfferPoll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquiring poll lock")
}
