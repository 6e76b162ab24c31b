package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_AgeDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		listedAt time.Time
		want     int
	}{
		{"today", now.Add(-2 * time.Hour), 0},
		{"ten days", now.AddDate(0, 0, -10), 10},
		{"partial day rounds down", now.Add(-36 * time.Hour), 1},
		{"future listed_at clamps to zero", now.Add(time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := &Listing{ListedAt: tt.listedAt}
			assert.Equal(t, tt.want, l.AgeDays(now))
		})
	}
}

func TestListing_LikeRate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, (&Listing{Views: 0, Likes: 5}).LikeRate())
	assert.InDelta(t, 0.1, (&Listing{Views: 50, Likes: 5}).LikeRate(), 0.0001)
}

func TestNegotiationRule_Matches_PercentageAbove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		action    RuleAction
		threshold float64
		offerPct  float64
		want      bool
	}{
		{"accept at threshold", ActionAccept, 90, 90, true},
		{"accept above threshold", ActionAccept, 90, 95, true},
		{"accept below threshold", ActionAccept, 90, 89.9, false},
		{"reject strictly below", ActionReject, 50, 40, true},
		{"reject at threshold does not match", ActionReject, 50, 50, false},
		{"reject above threshold", ActionReject, 50, 75, false},
		{"counter at threshold", ActionCounter, 70, 70, true},
		{"counter above threshold", ActionCounter, 70, 85, true},
		{"counter below threshold", ActionCounter, 70, 69, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NegotiationRule{
				Condition: CondPercentageAbove,
				Threshold: tt.threshold,
				Action:    tt.action,
			}
			assert.Equal(t, tt.want, r.Matches(OfferSignals{OfferPercentage: tt.offerPct}))
		})
	}
}

func TestNegotiationRule_Matches_OtherConditions(t *testing.T) {
	t.Parallel()

	sig := OfferSignals{
		OfferAmount: 42,
		DaysOld:     31,
		BuyerScore:  0.8,
		Views:       120,
		OfferCount:  3,
	}

	tests := []struct {
		name      string
		condition RuleCondition
		threshold float64
		want      bool
	}{
		{"absolute above matches", CondAbsoluteAbove, 40, true},
		{"absolute above misses", CondAbsoluteAbove, 45, false},
		{"item age matches", CondItemAge, 30, true},
		{"item age misses", CondItemAge, 60, false},
		{"buyer rating matches", CondBuyerRating, 0.6, true},
		{"buyer rating misses", CondBuyerRating, 0.9, false},
		{"views count matches", CondViewsCount, 100, true},
		{"views count misses", CondViewsCount, 200, false},
		{"offer count matches", CondOfferCount, 2, true},
		{"offer count misses", CondOfferCount, 5, false},
		{"unknown condition never matches", RuleCondition("bogus"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NegotiationRule{Condition: tt.condition, Threshold: tt.threshold, Action: ActionAccept}
			assert.Equal(t, tt.want, r.Matches(sig))
		})
	}
}

func TestNegotiationRule_Validate(t *testing.T) {
	t.Parallel()

	pct := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		rule    NegotiationRule
		wantErr string
	}{
		{
			name: "valid accept rule",
			rule: NewRule("Accept strong", CondPercentageAbove, 90, ActionAccept, 10),
		},
		{
			name: "valid counter rule",
			rule: NewCounterRule("Counter", CondPercentageAbove, 70, 85, 5),
		},
		{
			name:    "missing name",
			rule:    NegotiationRule{Condition: CondItemAge, Action: ActionAccept},
			wantErr: "name is required",
		},
		{
			name:    "unknown condition",
			rule:    NegotiationRule{Name: "x", Condition: "weather", Action: ActionAccept},
			wantErr: "unknown condition",
		},
		{
			name:    "unknown action",
			rule:    NegotiationRule{Name: "x", Condition: CondItemAge, Action: "escalate"},
			wantErr: "unknown action",
		},
		{
			name:    "counter without percentage",
			rule:    NegotiationRule{Name: "x", Condition: CondPercentageAbove, Action: ActionCounter},
			wantErr: "counter_percentage is required",
		},
		{
			name: "counter percentage out of range",
			rule: NegotiationRule{
				Name: "x", Condition: CondPercentageAbove,
				Action: ActionCounter, CounterPercentage: pct(140),
			},
			wantErr: "must be in (0, 100]",
		},
		{
			name: "counter percentage on non-counter action",
			rule: NegotiationRule{
				Name: "x", Condition: CondPercentageAbove,
				Action: ActionAccept, CounterPercentage: pct(85),
			},
			wantErr: "only valid when action is counter",
		},
		{
			name:    "negative threshold",
			rule:    NegotiationRule{Name: "x", Condition: CondItemAge, Threshold: -1, Action: ActionAccept},
			wantErr: "threshold must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.rule.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	require.Len(t, rules, 4)

	// Priority ordering as documented: 10, 9, 8, 5.
	assert.Equal(t, []int{10, 9, 8, 5}, []int{
		rules[0].Priority, rules[1].Priority, rules[2].Priority, rules[3].Priority,
	})

	assert.Equal(t, ActionAccept, rules[0].Action)
	assert.Equal(t, 90.0, rules[0].Threshold)

	assert.Equal(t, ActionReject, rules[1].Action)
	assert.Equal(t, 50.0, rules[1].Threshold)

	assert.Equal(t, ActionAccept, rules[2].Action)
	assert.Equal(t, CondItemAge, rules[2].Condition)
	assert.Equal(t, 30.0, rules[2].Threshold)

	assert.Equal(t, ActionCounter, rules[3].Action)
	require.NotNil(t, rules[3].CounterPercentage)
	assert.Equal(t, 85.0, *rules[3].CounterPercentage)

	for i := range rules {
		assert.True(t, rules[i].Enabled, "default rule %d should be enabled", i)
		assert.NoError(t, rules[i].Validate())
	}
}

func TestDefaultRules_FreshCopyEachCall(t *testing.T) {
	t.Parallel()

	a := DefaultRules()
	a[0].Threshold = 5
	b := DefaultRules()
	assert.Equal(t, 90.0, b[0].Threshold, "mutating one copy must not leak into the next")
}
