package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// ruleUpdateWhitelist lists the only rule fields a partial update may touch.
// Condition and action are immutable after creation: changing them changes
// the rule's semantics, so users create a new rule instead.
var ruleUpdateWhitelist = map[string]bool{
	"name":               true,
	"description":        true,
	"threshold":          true,
	"counter_percentage": true,
	"priority":           true,
	"enabled":            true,
}

// ListRules returns the user's rules in evaluation order, or the four
// built-in defaults when the user has created none.
func (eng *Engine) ListRules(ctx context.Context, userID string) ([]domain.NegotiationRule, error) {
	rules, err := eng.store.ListRules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	if len(rules) == 0 {
		return domain.DefaultRules(), nil
	}
	return rules, nil
}

// enabledRules returns the rule set Analyze evaluates: the user's enabled
// rules, or the defaults only when the user has created zero rules. A user
// who disabled all of their rules gets an empty set, not the defaults.
func (eng *Engine) enabledRules(ctx context.Context, userID string) ([]domain.NegotiationRule, error) {
	enabled, err := eng.store.ListEnabledRules(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(enabled) > 0 {
		return enabled, nil
	}

	all, err := eng.store.ListRules(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(all) > 0 {
		return nil, nil
	}

	return domain.DefaultRules(), nil
}

// CreateRule validates and stores a new rule for the user.
func (eng *Engine) CreateRule(ctx context.Context, r *domain.NegotiationRule) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := eng.store.CreateRule(ctx, r); err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}
	eng.log.Info("rule created", "rule_id", r.ID, "user_id", r.UserID, "name", r.Name)
	return nil
}

// UpdateRule applies a whitelisted partial update and returns the updated
// rule. Unknown fields and empty updates are validation errors; a rule that
// does not exist or is not owned by the user is ErrNotFound.
func (eng *Engine) UpdateRule(
	ctx context.Context,
	id, userID string,
	fields map[string]any,
) (*domain.NegotiationRule, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no valid fields to update", ErrValidation)
	}
	for k := range fields {
		if !ruleUpdateWhitelist[k] {
			return nil, fmt.Errorf("%w: field %q is not updatable", ErrValidation, k)
		}
	}

	current, err := eng.store.GetRule(ctx, id, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: rule", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching rule: %w", err)
	}

	if err := validateRuleUpdate(current, fields); err != nil {
		return nil, err
	}

	if err := eng.store.UpdateRuleFields(ctx, id, userID, fields); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: rule", ErrNotFound)
		}
		return nil, fmt.Errorf("updating rule: %w", err)
	}

	updated, err := eng.store.GetRule(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("reloading rule: %w", err)
	}

	eng.log.Info("rule updated", "rule_id", id, "user_id", userID)
	return updated, nil
}

// validateRuleUpdate checks field values against the rule's immutable
// condition/action pairing.
func validateRuleUpdate(current *domain.NegotiationRule, fields map[string]any) error {
	if v, ok := fields["counter_percentage"]; ok {
		if current.Action != domain.ActionCounter {
			return fmt.Errorf("%w: counter_percentage is only valid on counter rules", ErrValidation)
		}
		pct, ok := toFloat(v)
		if !ok || pct <= 0 || pct > 100 {
			return fmt.Errorf("%w: counter_percentage must be in (0, 100]", ErrValidation)
		}
	}
	if v, ok := fields["threshold"]; ok {
		threshold, ok := toFloat(v)
		if !ok || threshold < 0 {
			return fmt.Errorf("%w: threshold must be >= 0", ErrValidation)
		}
	}
	if v, ok := fields["priority"]; ok {
		priority, ok := toInt(v)
		if !ok || priority < 0 {
			return fmt.Errorf("%w: priority must be >= 0", ErrValidation)
		}
	}
	if v, ok := fields["name"]; ok {
		name, ok := v.(string)
		if !ok || name == "" {
			return fmt.Errorf("%w: name must be a non-empty string", ErrValidation)
		}
	}
	return nil
}

// DeleteRule removes the user's rule. Deleting a rule that does not exist,
// or belongs to another user, is ErrNotFound.
func (eng *Engine) DeleteRule(ctx context.Context, id, userID string) error {
	deleted, err := eng.store.DeleteRule(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: rule", ErrNotFound)
	}
	eng.log.Info("rule deleted", "rule_id", id, "user_id", userID)
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
