package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PollOffersRate returns a timeseries panel showing offers picked up by the
// poll loop per minute.
func PollOffersRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Polled Offers / min").
		Description("Rate of offers picked up by the poll loop per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`rate(negotiator_poll_offers_total{job="negotiator"}[5m]) * 60`, "offers/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PollErrors returns a timeseries panel showing per-offer poll errors per minute.
func PollErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Poll Errors / min").
		Description("Rate of per-offer errors during poll cycles per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`negotiator:poll_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PollDuration returns a timeseries panel showing the p95 poll cycle duration.
func PollDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cycle Duration (p95)").
		Description("95th percentile offer poll cycle duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(negotiator_poll_duration_seconds_bucket{job="negotiator"}[5m])) by (le))`,
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
