// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/sellermate/negotiator/tools/dashgen/panels"
)

// BuildOverview constructs the Negotiator Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Negotiator Overview").
		Uid("negotiator-overview").
		Tags([]string{"negotiator", "sellermate"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Marketplace API.
	b.WithRow(dashboard.NewRowBuilder("Marketplace API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Analysis.
	b.WithRow(dashboard.NewRowBuilder("Analysis").
		WithPanel(panels.AnalysesRate()).
		WithPanel(panels.AnalysisLatency()).
		WithPanel(panels.UrgencyOverrides()).
		WithPanel(panels.DiscountDistribution()))

	// Row 5: Offer Poll.
	b.WithRow(dashboard.NewRowBuilder("Offer Poll").
		WithPanel(panels.PollOffersRate()).
		WithPanel(panels.PollErrors()).
		WithPanel(panels.PollDuration()))

	// Row 6: Decisions.
	b.WithRow(dashboard.NewRowBuilder("Decisions").
		WithPanel(panels.DecisionsRate()).
		WithPanel(panels.Escalations()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
