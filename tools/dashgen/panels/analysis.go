package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AnalysesRate returns a timeseries panel showing offers analyzed per second,
// broken down by recommended action.
func AnalysesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Analyses by Action").
		Description("Offers analyzed per second, by recommended action").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(negotiator_offers_analyzed_total{job="negotiator"}[5m])) by (action)`,
			"{{action}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AnalysisLatency returns a timeseries panel showing the p95 offer analysis
// duration.
func AnalysisLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Analysis Duration (p95)").
		Description("95th percentile offer analysis duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(negotiator_analysis_duration_seconds_bucket{job="negotiator"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UrgencyOverrides returns a stat panel showing urgency overrides in the
// past 24 hours.
func UrgencyOverrides() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Urgency Overrides (24h)").
		Description("Reject verdicts softened to counter by listing urgency in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(negotiator_urgency_overrides_total{job="negotiator"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// DiscountDistribution returns a bar gauge panel showing the distribution of
// analyzed offer discounts across histogram buckets.
func DiscountDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Discount Distribution").
		Description("Distribution of offer discounts as percentage of list price").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(negotiator_offer_discount_percentage_bucket{job="negotiator"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
