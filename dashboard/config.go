package dashboard

import "github.com/status-im/market-dashboard/config"

// NewSessionConfig maps validated configuration onto session settings
func NewSessionConfig(cfg config.DashboardConfig) SessionConfig {
	return SessionConfig{
		Options: Options{
			DefaultTimeFrame: TimeFrame(cfg.DefaultTimeFrame),
			DefaultChartType: ChartType(cfg.DefaultChartType),
			MoversLimit:      cfg.TopMoversLimit,
		},
		RefreshInterval: cfg.TrendingRefreshInterval,
		DetailTimeout:   cfg.DetailTimeout,
	}
}
