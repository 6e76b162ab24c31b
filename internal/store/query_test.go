package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRuleUpdate_SingleField(t *testing.T) {
	t.Parallel()

	sql, args, err := buildRuleUpdate("rule-1", "user-1", map[string]any{
		"enabled": false,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE negotiation_rules SET enabled = $1, updated_at = now() WHERE id = $2 AND user_id = $3",
		sql,
	)
	assert.Equal(t, []any{false, "rule-1", "user-1"}, args)
}

func TestBuildRuleUpdate_MultipleFieldsSortedOrder(t *testing.T) {
	t.Parallel()

	sql, args, err := buildRuleUpdate("rule-1", "user-1", map[string]any{
		"threshold": 75.0,
		"priority":  3,
		"name":      "midrange counter",
	})
	require.NoError(t, err)

	// Map iteration order must not leak into the SQL.
	assert.Equal(t,
		"UPDATE negotiation_rules SET name = $1, priority = $2, threshold = $3, updated_at = now() WHERE id = $4 AND user_id = $5",
		sql,
	)
	assert.Equal(t, []any{"midrange counter", 3, 75.0, "rule-1", "user-1"}, args)
}

func TestBuildRuleUpdate_RejectsUnknownField(t *testing.T) {
	t.Parallel()

	_, _, err := buildRuleUpdate("rule-1", "user-1", map[string]any{
		"condition": "percentage_above",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "condition")
}

func TestBuildRuleUpdate_RejectsActionField(t *testing.T) {
	t.Parallel()

	_, _, err := buildRuleUpdate("rule-1", "user-1", map[string]any{
		"action": "accept",
	})
	require.Error(t, err)
}

func TestBuildRuleUpdate_EmptyFields(t *testing.T) {
	t.Parallel()

	_, _, err := buildRuleUpdate("rule-1", "user-1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields")
}
