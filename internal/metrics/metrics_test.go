package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, OffersAnalyzedTotal)
	assert.NotNil(t, UrgencyOverridesTotal)
	assert.NotNil(t, AnalysisDuration)
	assert.NotNil(t, OfferDiscountDistribution)
	assert.NotNil(t, DecisionsExecutedTotal)
	assert.NotNil(t, EscalationsTotal)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, PollOffersTotal)
	assert.NotNil(t, PollErrorsTotal)
	assert.NotNil(t, PollDuration)
	assert.NotNil(t, MarketplaceAPICallsTotal)
	assert.NotNil(t, MarketplaceDailyUsage)
	assert.NotNil(t, MarketplaceDailyLimitHits)
}
