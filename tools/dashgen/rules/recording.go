package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "negotiator-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "negotiator-recording",
					Rules: []Rule{
						{
							Record: "negotiator:http_requests:rate5m",
							Expr:   `sum(rate(negotiator_http_requests_total[5m]))`,
						},
						{
							Record: "negotiator:http_errors:rate5m",
							Expr:   `sum(rate(negotiator_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "negotiator:offers_analyzed:rate5m",
							Expr:   `sum(rate(negotiator_offers_analyzed_total[5m]))`,
						},
						{
							Record: "negotiator:poll_errors:rate5m",
							Expr:   `rate(negotiator_poll_errors_total[5m])`,
						},
						{
							Record: "negotiator:marketplace_api_calls:rate5m",
							Expr:   `rate(negotiator_marketplace_api_calls_total[5m])`,
						},
						{
							Record: "negotiator:notification_failures:rate5m",
							Expr:   `rate(negotiator_notification_failures_total[5m])`,
						},
					},
				},
			},
		},
	}
}
