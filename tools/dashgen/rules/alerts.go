package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// negotiator operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "negotiator-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "negotiator-alerts",
					Rules: []Rule{
						{
							Alert: "NegotiatorDown",
							Expr:  `absent(up{job="negotiator"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Negotiator is down",
								"description": "The negotiator job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "NegotiatorReadinessDown",
							Expr:  `negotiator_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Negotiator readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "NegotiatorHighErrorRate",
							Expr:  `negotiator:http_errors:rate5m / negotiator:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on negotiator",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "NegotiatorPollErrors",
							Expr:  `negotiator:poll_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Offer poll errors detected",
								"description": "The offer poll loop has been producing per-offer errors for more than 5 minutes.",
							},
						},
						{
							Alert: "NegotiatorMarketplaceQuotaHigh",
							Expr:  `negotiator_marketplace_daily_usage > 1600`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Marketplace API daily usage is above 80% of the quota",
								"description": "Daily marketplace API usage has exceeded 1600 calls (limit is 2000).",
							},
						},
						{
							Alert: "NegotiatorMarketplaceLimitReached",
							Expr:  `increase(negotiator_marketplace_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Marketplace API daily limit has been reached",
								"description": "The marketplace API daily quota has been exhausted. Offer polling is paused until reset.",
							},
						},
						{
							Alert: "NegotiatorEscalationSpike",
							Expr:  `increase(negotiator_escalations_total[1h]) > 20`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Manual-review escalations are spiking",
								"description": "More than 20 offers were escalated for manual review in the last hour. Rules may be missing a common offer pattern.",
							},
						},
						{
							Alert: "NegotiatorNotificationFailures",
							Expr:  `increase(negotiator_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more review notifications (Discord webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
