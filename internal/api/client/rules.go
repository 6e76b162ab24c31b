package client

import (
	"context"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// ruleRequest contains only the fields the API accepts for rule creation.
type ruleRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Condition         string   `json:"condition"`
	Threshold         float64  `json:"threshold"`
	Action            string   `json:"action"`
	CounterPercentage *float64 `json:"counter_percentage,omitempty"`
	Priority          int      `json:"priority"`
	Enabled           *bool    `json:"enabled,omitempty"`
}

type ruleListResponse struct {
	Rules []domain.NegotiationRule `json:"rules"`
	Total int                      `json:"total"`
}

// ListRules returns the seller's rules in evaluation order.
func (c *Client) ListRules(ctx context.Context) ([]domain.NegotiationRule, error) {
	var resp ruleListResponse
	if err := c.get(ctx, "/api/v1/rules", &resp); err != nil {
		return nil, err
	}
	return resp.Rules, nil
}

// CreateRule creates a new rule.
func (c *Client) CreateRule(ctx context.Context, r *domain.NegotiationRule) (*domain.NegotiationRule, error) {
	req := ruleRequest{
		Name:              r.Name,
		Description:       r.Description,
		Condition:         string(r.Condition),
		Threshold:         r.Threshold,
		Action:            string(r.Action),
		CounterPercentage: r.CounterPercentage,
		Priority:          r.Priority,
		Enabled:           &r.Enabled,
	}

	var created domain.NegotiationRule
	if err := c.post(ctx, "/api/v1/rules", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRule applies a partial update to a rule.
func (c *Client) UpdateRule(ctx context.Context, id string, fields map[string]any) (*domain.NegotiationRule, error) {
	var updated domain.NegotiationRule
	if err := c.patch(ctx, "/api/v1/rules/"+id, fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRule deletes a rule by ID.
func (c *Client) DeleteRule(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/rules/"+id, nil)
}
