package domain

// DefaultRules returns the fixed rule set used when a user has created no
// rules of their own. The slice is built fresh on every call; callers may
// mutate their copy freely.
//
// The 70–89% band is captured by the counter rule before the 50% reject rule
// could structurally fire — by priority ordering, not condition exclusivity.
func DefaultRules() []NegotiationRule {
	counter := NewCounterRule(
		"Counter mid-range offers", CondPercentageAbove, 70, 85, 5,
	)
	counter.Description = "Counter offers at 70% or more of list price"

	rules := []NegotiationRule{
		NewRule("Accept strong offers", CondPercentageAbove, 90, ActionAccept, 10),
		NewRule("Reject lowball offers", CondPercentageAbove, 50, ActionReject, 9),
		NewRule("Accept on stale listings", CondItemAge, 30, ActionAccept, 8),
		counter,
	}
	rules[0].Description = "Accept offers at 90% or more of list price"
	rules[1].Description = "Reject offers below 50% of list price"
	rules[2].Description = "Accept any matched offer once the listing is 30+ days old"

	for i := range rules {
		rules[i].ID = defaultRuleIDs[i]
	}
	return rules
}

// Stable identifiers so history records can reference which default fired.
var defaultRuleIDs = []string{
	"default-accept-high",
	"default-reject-lowball",
	"default-accept-stale",
	"default-counter-midrange",
}
