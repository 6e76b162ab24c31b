// Package domain defines the core business types for the negotiation engine.
package domain

import (
	"fmt"
	"time"
)

// ListingStatus represents the marketplace state of a listing.
type ListingStatus string

// Listing status constants.
const (
	ListingActive   ListingStatus = "active"
	ListingReserved ListingStatus = "reserved"
	ListingSold     ListingStatus = "sold"
	ListingHidden   ListingStatus = "hidden"
)

// Listing represents an item for sale on the marketplace, owned by a user.
type Listing struct {
	ID        string        `json:"id"                 db:"id"`
	UserID    string        `json:"user_id"            db:"user_id"`
	VintedID  string        `json:"vinted_item_id"     db:"vinted_item_id"`
	Title     string        `json:"title"              db:"title"`
	Category  string        `json:"category,omitempty" db:"category"`
	Price     float64       `json:"price"              db:"price"`
	Currency  string        `json:"currency"           db:"currency"`
	Views     int           `json:"views"              db:"views"`
	Likes     int           `json:"likes"              db:"likes"`
	Status    ListingStatus `json:"status"             db:"status"`
	ListedAt  time.Time     `json:"listed_at"          db:"listed_at"`
	UpdatedAt time.Time     `json:"updated_at"         db:"updated_at"`
}

// AgeDays returns the whole number of days the listing has been live at now.
func (l *Listing) AgeDays(now time.Time) int {
	if now.Before(l.ListedAt) {
		return 0
	}
	return int(now.Sub(l.ListedAt).Hours() / 24)
}

// LikeRate returns likes per view. Zero views means zero rate.
func (l *Listing) LikeRate() float64 {
	if l.Views == 0 {
		return 0
	}
	return float64(l.Likes) / float64(l.Views)
}

// RuleCondition identifies the offer signal a negotiation rule tests.
type RuleCondition string

// Rule condition constants.
const (
	CondPercentageAbove RuleCondition = "percentage_above"
	CondAbsoluteAbove   RuleCondition = "absolute_above"
	CondBuyerRating     RuleCondition = "buyer_rating"
	CondItemAge         RuleCondition = "item_age"
	CondViewsCount      RuleCondition = "views_count"
	CondOfferCount      RuleCondition = "offer_count"
)

// IsValid reports whether c is a recognized condition.
func (c RuleCondition) IsValid() bool {
	switch c {
	case CondPercentageAbove, CondAbsoluteAbove, CondBuyerRating,
		CondItemAge, CondViewsCount, CondOfferCount:
		return true
	}
	return false
}

// RuleAction is the verdict a matched rule recommends.
type RuleAction string

// Rule action constants.
const (
	ActionAccept  RuleAction = "accept"
	ActionReject  RuleAction = "reject"
	ActionCounter RuleAction = "counter"
	ActionIgnore  RuleAction = "ignore"
)

// IsValid reports whether a is a recognized action.
func (a RuleAction) IsValid() bool {
	switch a {
	case ActionAccept, ActionReject, ActionCounter, ActionIgnore:
		return true
	}
	return false
}

// NegotiationRule is a user-configurable condition→action mapping evaluated
// against incoming offers. Condition and action are fixed at creation time;
// changing them changes rule semantics, so updates only touch the tuning
// fields (name, threshold, counter percentage, priority, enabled,
// description).
type NegotiationRule struct {
	ID                string        `json:"id"                           db:"id"`
	UserID            string        `json:"user_id"                      db:"user_id"`
	Name              string        `json:"name"                         db:"name"`
	Description       string        `json:"description,omitempty"        db:"description"`
	Condition         RuleCondition `json:"condition"                    db:"condition"`
	Threshold         float64       `json:"threshold"                    db:"threshold"`
	Action            RuleAction    `json:"action"                       db:"action"`
	CounterPercentage *float64      `json:"counter_percentage,omitempty" db:"counter_percentage"`
	Priority          int           `json:"priority"                     db:"priority"`
	Enabled           bool          `json:"enabled"                      db:"enabled"`
	CreatedAt         time.Time     `json:"created_at"                   db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"                   db:"updated_at"`
}

// NewRule builds a rule for a non-counter action.
func NewRule(
	name string,
	condition RuleCondition,
	threshold float64,
	action RuleAction,
	priority int,
) NegotiationRule {
	return NegotiationRule{
		Name:      name,
		Condition: condition,
		Threshold: threshold,
		Action:    action,
		Priority:  priority,
		Enabled:   true,
	}
}

// NewCounterRule builds a counter rule; counterPct is the percentage of list
// price to counter at. The counter percentage is only constructible through
// this path.
func NewCounterRule(
	name string,
	condition RuleCondition,
	threshold float64,
	counterPct float64,
	priority int,
) NegotiationRule {
	r := NewRule(name, condition, threshold, ActionCounter, priority)
	r.CounterPercentage = &counterPct
	return r
}

// Validate checks rule well-formedness. A counter rule without a counter
// percentage is malformed even if the row could be stored.
func (r *NegotiationRule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	if !r.Condition.IsValid() {
		return fmt.Errorf("unknown condition %q", r.Condition)
	}
	if !r.Action.IsValid() {
		return fmt.Errorf("unknown action %q", r.Action)
	}
	if r.Threshold < 0 {
		return fmt.Errorf("threshold must be >= 0")
	}
	if r.Priority < 0 {
		return fmt.Errorf("priority must be >= 0")
	}
	if r.Action == ActionCounter {
		if r.CounterPercentage == nil {
			return fmt.Errorf("counter_percentage is required when action is counter")
		}
		if *r.CounterPercentage <= 0 || *r.CounterPercentage > 100 {
			return fmt.Errorf("counter_percentage must be in (0, 100]")
		}
	} else if r.CounterPercentage != nil {
		return fmt.Errorf("counter_percentage is only valid when action is counter")
	}
	return nil
}

// OfferSignals holds the derived signals a rule condition is tested against.
type OfferSignals struct {
	OfferAmount     float64
	OfferPercentage float64 // offer as % of list price
	DaysOld         int
	BuyerScore      float64
	Views           int
	OfferCount      int
}

// Matches reports whether the rule's condition holds for the given signals.
//
// percentage_above is asymmetric on purpose: accept/counter match at or above
// the threshold while reject matches strictly below it. Overlapping bands are
// resolved by priority order alone, never by condition specificity.
func (r *NegotiationRule) Matches(sig OfferSignals) bool {
	switch r.Condition {
	case CondPercentageAbove:
		if r.Action == ActionReject {
			return sig.OfferPercentage < r.Threshold
		}
		return sig.OfferPercentage >= r.Threshold
	case CondAbsoluteAbove:
		return sig.OfferAmount >= r.Threshold
	case CondBuyerRating:
		return sig.BuyerScore >= r.Threshold
	case CondItemAge:
		return float64(sig.DaysOld) >= r.Threshold
	case CondViewsCount:
		return float64(sig.Views) >= r.Threshold
	case CondOfferCount:
		return float64(sig.OfferCount) >= r.Threshold
	default:
		return false
	}
}

// OfferAnalysis is the engine's verdict on a single buyer offer. It is not
// persisted as its own entity; Execute flattens it into a history record.
//
// RecommendedAction and IsAcceptable are computed independently: the rule
// verdict is advisory while IsAcceptable is the raw 70%-of-list-price fact.
type OfferAnalysis struct {
	OfferID            string     `json:"offer_id"`
	ListingID          string     `json:"listing_id"`
	OfferAmount        float64    `json:"offer_amount"`
	ListPrice          float64    `json:"list_price"`
	MinAcceptable      float64    `json:"min_acceptable"`
	DiscountPercentage float64    `json:"discount_percentage"`
	IsAcceptable       bool       `json:"is_acceptable"`
	RecommendedAction  RuleAction `json:"recommended_action"`
	CounterOfferAmount *float64   `json:"counter_offer_amount,omitempty"`
	Reasoning          string     `json:"reasoning"`
	BuyerScore         float64    `json:"buyer_score"`
	UrgencyScore       float64    `json:"urgency_score"`
	MatchedRuleID      string     `json:"matched_rule_id,omitempty"`
}

// NegotiationHistory is the append-only audit record of one analyzed offer.
// The engine never mutates or deletes rows of this type.
type NegotiationHistory struct {
	ID            string     `json:"id"                       db:"id"`
	OfferID       string     `json:"offer_id"                 db:"offer_id"`
	ListingID     string     `json:"listing_id"               db:"listing_id"`
	UserID        string     `json:"user_id"                  db:"user_id"`
	OfferAmount   float64    `json:"offer_amount"             db:"offer_amount"`
	Action        RuleAction `json:"action"                   db:"action"`
	MatchedRuleID string     `json:"matched_rule_id,omitempty" db:"matched_rule_id"`
	CounterAmount *float64   `json:"counter_amount,omitempty" db:"counter_amount"`
	Reasoning     string     `json:"reasoning"                db:"reasoning"`
	BuyerScore    float64    `json:"buyer_score"              db:"buyer_score"`
	UrgencyScore  float64    `json:"urgency_score"            db:"urgency_score"`
	CreatedAt     time.Time  `json:"created_at"               db:"created_at"`
}

// ExecutionResult is returned to the caller after a decision is recorded.
type ExecutionResult struct {
	OfferID       string     `json:"offer_id"`
	Action        RuleAction `json:"action"`
	Reasoning     string     `json:"reasoning"`
	CounterAmount *float64   `json:"counter_amount,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}

// NegotiationStats aggregates decision history over a trailing window.
type NegotiationStats struct {
	TotalOffers    int     `json:"total_offers"`
	Accepted       int     `json:"accepted"`
	Rejected       int     `json:"rejected"`
	Countered      int     `json:"countered"`
	Ignored        int     `json:"ignored"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	AvgDiscountPct float64 `json:"avg_discount_pct"`
	RevenueSaved   float64 `json:"revenue_saved"`
	WindowDays     int     `json:"window_days"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
