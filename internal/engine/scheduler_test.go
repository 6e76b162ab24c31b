package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	marketMocks "github.com/sellermate/negotiator/internal/marketplace/mocks"
	notifyMocks "github.com/sellermate/negotiator/internal/notify/mocks"
	storeMocks "github.com/sellermate/negotiator/internal/store/mocks"
)

func TestNewScheduler_RegistersOfferPoll(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(
		storeMocks.NewMockStore(t),
		marketMocks.NewMockClient(t),
		notifyMocks.NewMockNotifier(t),
	)

	s, err := NewScheduler(eng, 15*time.Minute, quietLogger())
	require.NoError(t, err)
	assert.Len(t, s.Entries(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(
		storeMocks.NewMockStore(t),
		marketMocks.NewMockClient(t),
		notifyMocks.NewMockNotifier(t),
	)

	s, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	s.Start()
	ctx := s.Stop()

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}
