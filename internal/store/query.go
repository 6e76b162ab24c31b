package store

import (
	"fmt"
	"sort"
	"strings"
)

// ruleUpdateColumns maps updatable rule field names to their SQL columns.
// Condition and action are deliberately absent: changing them changes the
// rule's semantics, so callers must create a new rule instead.
var ruleUpdateColumns = map[string]string{
	"name":               "name",
	"description":        "description",
	"threshold":          "threshold",
	"counter_percentage": "counter_percentage",
	"priority":           "priority",
	"enabled":            "enabled",
}

// buildRuleUpdate builds an UPDATE statement for negotiation_rules from a
// field map. Unknown keys are an error rather than silently dropped so that
// callers cannot believe they updated something they did not. Keys are
// applied in sorted order to keep the generated SQL deterministic.
func buildRuleUpdate(id, userID string, fields map[string]any) (sql string, args []any, err error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("no fields to update")
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := ruleUpdateColumns[k]; !ok {
			return "", nil, fmt.Errorf("field %q is not updatable", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	assignments := make([]string, 0, len(keys)+1)
	paramIdx := 1
	for _, k := range keys {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", ruleUpdateColumns[k], paramIdx))
		args = append(args, fields[k])
		paramIdx++
	}
	assignments = append(assignments, "updated_at = now()")

	sql = fmt.Sprintf(
		"UPDATE negotiation_rules SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(assignments, ", "), paramIdx, paramIdx+1,
	)
	args = append(args, id, userID)

	return sql, args, nil
}
