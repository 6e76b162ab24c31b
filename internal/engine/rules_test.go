package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	marketMocks "github.com/sellermate/negotiator/internal/marketplace/mocks"
	notifyMocks "github.com/sellermate/negotiator/internal/notify/mocks"
	storeMocks "github.com/sellermate/negotiator/internal/store/mocks"
	domain "github.com/sellermate/negotiator/pkg/types"
)

func TestListRules_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListRules(mock.Anything, "user-1").Return(nil, nil).Once()

	rules, err := eng.ListRules(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, rules, 4)
	assert.Equal(t, "default-accept-high", rules[0].ID)
	assert.Equal(t, "default-counter-midrange", rules[3].ID)
}

func TestListRules_ReturnsUserRules(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

	own := domain.NewRule("mine", domain.CondPercentageAbove, 80, domain.ActionAccept, 1)
	own.ID = "rule-1"
	ms.EXPECT().ListRules(mock.Anything, "user-1").
		Return([]domain.NegotiationRule{own}, nil).Once()

	rules, err := eng.ListRules(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "rule-1", rules[0].ID)
}

func TestCreateRule(t *testing.T) {
	t.Parallel()

	t.Run("valid rule is stored", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		r := domain.NewCounterRule("counter band", domain.CondPercentageAbove, 70, 85, 5)
		r.UserID = "user-1"
		ms.EXPECT().CreateRule(mock.Anything, &r).Return(nil).Once()

		require.NoError(t, eng.CreateRule(context.Background(), &r))
	})

	t.Run("counter rule without percentage fails validation", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		r := domain.NewRule("broken counter", domain.CondPercentageAbove, 70, domain.ActionCounter, 5)
		r.UserID = "user-1"

		err := eng.CreateRule(context.Background(), &r)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown condition fails validation", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		r := domain.NewRule("bad condition", domain.RuleCondition("moon_phase"), 1, domain.ActionAccept, 1)
		r.UserID = "user-1"

		err := eng.CreateRule(context.Background(), &r)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUpdateRule(t *testing.T) {
	t.Parallel()

	counterRule := func() *domain.NegotiationRule {
		r := domain.NewCounterRule("counter band", domain.CondPercentageAbove, 70, 85, 5)
		r.ID = "rule-1"
		r.UserID = "user-1"
		return &r
	}

	t.Run("whitelisted fields update and reload", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		fields := map[string]any{"priority": 7, "enabled": false}
		updated := counterRule()
		updated.Priority = 7
		updated.Enabled = false

		ms.EXPECT().GetRule(mock.Anything, "rule-1", "user-1").Return(counterRule(), nil).Once()
		ms.EXPECT().UpdateRuleFields(mock.Anything, "rule-1", "user-1", fields).Return(nil).Once()
		ms.EXPECT().GetRule(mock.Anything, "rule-1", "user-1").Return(updated, nil).Once()

		got, err := eng.UpdateRule(context.Background(), "rule-1", "user-1", fields)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Priority)
		assert.False(t, got.Enabled)
	})

	t.Run("empty update is a validation error", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		_, err := eng.UpdateRule(context.Background(), "rule-1", "user-1", map[string]any{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("non-whitelisted field is rejected", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		_, err := eng.UpdateRule(context.Background(), "rule-1", "user-1",
			map[string]any{"action": "accept"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("counter_percentage rejected on non-counter rule", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		accept := domain.NewRule("plain accept", domain.CondPercentageAbove, 90, domain.ActionAccept, 10)
		accept.ID = "rule-2"
		ms.EXPECT().GetRule(mock.Anything, "rule-2", "user-1").Return(&accept, nil).Once()

		_, err := eng.UpdateRule(context.Background(), "rule-2", "user-1",
			map[string]any{"counter_percentage": 80.0})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("counter_percentage out of range", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		ms.EXPECT().GetRule(mock.Anything, "rule-1", "user-1").Return(counterRule(), nil).Once()

		_, err := eng.UpdateRule(context.Background(), "rule-1", "user-1",
			map[string]any{"counter_percentage": 120.0})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing rule maps to not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		ms.EXPECT().GetRule(mock.Anything, "rule-gone", "user-1").
			Return(nil, pgx.ErrNoRows).Once()

		_, err := eng.UpdateRule(context.Background(), "rule-gone", "user-1",
			map[string]any{"enabled": false})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("store failure is not remapped", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		ms.EXPECT().GetRule(mock.Anything, "rule-1", "user-1").
			Return(nil, errors.New("connection refused")).Once()

		_, err := eng.UpdateRule(context.Background(), "rule-1", "user-1",
			map[string]any{"enabled": false})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteRule(t *testing.T) {
	t.Parallel()

	t.Run("deletes owned rule", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		ms.EXPECT().DeleteRule(mock.Anything, "rule-1", "user-1").Return(true, nil).Once()

		require.NoError(t, eng.DeleteRule(context.Background(), "rule-1", "user-1"))
	})

	t.Run("missing rule is not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, marketMocks.NewMockClient(t), notifyMocks.NewMockNotifier(t))

		ms.EXPECT().DeleteRule(mock.Anything, "rule-gone", "user-1").Return(false, nil).Once()

		err := eng.DeleteRule(context.Background(), "rule-gone", "user-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
