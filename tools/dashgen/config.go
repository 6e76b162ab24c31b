package main

import "errors"

// KnownMetrics is the set of metric names exported by the negotiator
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"negotiator_http_request_duration_seconds": true,
	"negotiator_http_requests_total":           true,

	// Health metrics.
	"negotiator_healthz_up": true,
	"negotiator_readyz_up":  true,

	// Analysis metrics.
	"negotiator_offers_analyzed_total":     true,
	"negotiator_urgency_overrides_total":   true,
	"negotiator_analysis_duration_seconds": true,
	"negotiator_offer_discount_percentage": true,

	// Execution metrics.
	"negotiator_decisions_executed_total":    true,
	"negotiator_escalations_total":           true,
	"negotiator_notification_failures_total": true,

	// Offer poll metrics.
	"negotiator_poll_offers_total":     true,
	"negotiator_poll_errors_total":     true,
	"negotiator_poll_duration_seconds": true,

	// Marketplace API metrics.
	"negotiator_marketplace_api_calls_total":        true,
	"negotiator_marketplace_daily_usage":            true,
	"negotiator_marketplace_daily_limit_hits_total": true,

	// Recording rules.
	"negotiator:http_requests:rate5m":         true,
	"negotiator:http_errors:rate5m":           true,
	"negotiator:offers_analyzed:rate5m":       true,
	"negotiator:poll_errors:rate5m":           true,
	"negotiator:marketplace_api_calls:rate5m": true,
	"negotiator:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
