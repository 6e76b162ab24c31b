package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// RulesHandler handles negotiation rule CRUD endpoints.
type RulesHandler struct {
	engine Negotiator
}

// NewRulesHandler creates a new RulesHandler.
func NewRulesHandler(n Negotiator) *RulesHandler {
	return &RulesHandler{engine: n}
}

// --- Input/Output types ---

// ListRulesInput is the input for listing a seller's rules.
type ListRulesInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Seller account" minLength:"1"`
}

// ListRulesOutput is the response for listing rules.
type ListRulesOutput struct {
	Body struct {
		Rules []domain.NegotiationRule `json:"rules"`
		Total int                      `json:"total"`
	}
}

// CreateRuleInput is the input for creating a rule.
type CreateRuleInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Seller account" minLength:"1"`
	Body   struct {
		Name              string   `json:"name"                         doc:"Display name" minLength:"1"`
		Description       string   `json:"description,omitempty"        doc:"Optional description"`
		Condition         string   `json:"condition"                    doc:"Match condition" enum:"percentage_above,absolute_above,buyer_rating,item_age,views_count,offer_count"`
		Threshold         float64  `json:"threshold"                    doc:"Condition threshold" minimum:"0"`
		Action            string   `json:"action"                       doc:"Action when matched" enum:"accept,reject,counter,ignore"`
		CounterPercentage *float64 `json:"counter_percentage,omitempty" doc:"Counter amount as percent of list price, counter rules only" exclusiveMinimum:"0" maximum:"100"`
		Priority          int      `json:"priority"                     doc:"Evaluation priority, higher first" minimum:"0"`
		Enabled           *bool    `json:"enabled,omitempty"            doc:"Defaults to true"`
	}
}

// CreateRuleOutput is the response for creating a rule.
type CreateRuleOutput struct {
	Body domain.NegotiationRule
}

// UpdateRuleInput is the input for a partial rule update. Only name,
// description, threshold, counter_percentage, priority, and enabled are
// updatable.
type UpdateRuleInput struct {
	ID     string         `path:"id" doc:"Rule UUID"`
	UserID string         `header:"X-User-ID" required:"true" doc:"Seller account" minLength:"1"`
	Body   map[string]any `doc:"Fields to update"`
}

// UpdateRuleOutput is the response for updating a rule.
type UpdateRuleOutput struct {
	Body domain.NegotiationRule
}

// DeleteRuleInput is the input for deleting a rule.
type DeleteRuleInput struct {
	ID     string `path:"id" doc:"Rule UUID"`
	UserID string `header:"X-User-ID" required:"true" doc:"Seller account" minLength:"1"`
}

// DeleteRuleOutput is the (empty) response for deleting a rule.
type DeleteRuleOutput struct{}

// --- Handlers ---

// List returns the seller's rules in evaluation order. Sellers who never
// created a rule see the built-in defaults.
func (h *RulesHandler) List(
	ctx context.Context,
	input *ListRulesInput,
) (*ListRulesOutput, error) {
	rules, err := h.engine.ListRules(ctx, input.UserID)
	if err != nil {
		return nil, engineError(err)
	}

	if rules == nil {
		rules = []domain.NegotiationRule{}
	}

	resp := &ListRulesOutput{}
	resp.Body.Rules = rules
	resp.Body.Total = len(rules)
	return resp, nil
}

// Create stores a new rule for the seller.
func (h *RulesHandler) Create(
	ctx context.Context,
	input *CreateRuleInput,
) (*CreateRuleOutput, error) {
	r := domain.NegotiationRule{
		UserID:            input.UserID,
		Name:              input.Body.Name,
		Description:       input.Body.Description,
		Condition:         domain.RuleCondition(input.Body.Condition),
		Threshold:         input.Body.Threshold,
		Action:            domain.RuleAction(input.Body.Action),
		CounterPercentage: input.Body.CounterPercentage,
		Priority:          input.Body.Priority,
		Enabled:           true,
	}
	if input.Body.Enabled != nil {
		r.Enabled = *input.Body.Enabled
	}

	if err := h.engine.CreateRule(ctx, &r); err != nil {
		return nil, engineError(err)
	}

	return &CreateRuleOutput{Body: r}, nil
}

// Update applies a partial update to the seller's rule.
func (h *RulesHandler) Update(
	ctx context.Context,
	input *UpdateRuleInput,
) (*UpdateRuleOutput, error) {
	updated, err := h.engine.UpdateRule(ctx, input.ID, input.UserID, input.Body)
	if err != nil {
		return nil, engineError(err)
	}

	return &UpdateRuleOutput{Body: *updated}, nil
}

// Delete removes the seller's rule.
func (h *RulesHandler) Delete(
	ctx context.Context,
	input *DeleteRuleInput,
) (*DeleteRuleOutput, error) {
	if err := h.engine.DeleteRule(ctx, input.ID, input.UserID); err != nil {
		return nil, engineError(err)
	}
	return &DeleteRuleOutput{}, nil
}

// RegisterRuleRoutes registers rule endpoints with the Huma API.
func RegisterRuleRoutes(api huma.API, h *RulesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-rules",
		Method:      http.MethodGet,
		Path:        "/api/v1/rules",
		Summary:     "List negotiation rules",
		Description: "Returns the seller's rules in evaluation order, or the built-in defaults when none exist.",
		Tags:        []string{"rules"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-rule",
		Method:        http.MethodPost,
		Path:          "/api/v1/rules",
		Summary:       "Create a negotiation rule",
		Description:   "Creates a new rule for the seller.",
		Tags:          []string{"rules"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-rule",
		Method:      http.MethodPatch,
		Path:        "/api/v1/rules/{id}",
		Summary:     "Update a negotiation rule",
		Description: "Applies a partial update to a rule. Condition and action are immutable.",
		Tags:        []string{"rules"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-rule",
		Method:        http.MethodDelete,
		Path:          "/api/v1/rules/{id}",
		Summary:       "Delete a negotiation rule",
		Description:   "Deletes the seller's rule.",
		Tags:          []string{"rules"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Delete)
}
