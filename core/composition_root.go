package core

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/api"
	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/coingecko_coins"
	"github.com/status-im/market-dashboard/coingecko_market_chart"
	"github.com/status-im/market-dashboard/coingecko_trending"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/sessions"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// All upstream clients share one pacer so the configured rate is global
	pacer := cg.NewRequestPacer(cfg.Coingecko.RateLimit)

	trendingClient := coingecko_trending.NewCoinGeckoClient(cfg.Coingecko, pacer)
	marketChartClient := coingecko_market_chart.NewCoinGeckoClient(cfg.Coingecko, pacer)
	coinsClient := coingecko_coins.NewCoinGeckoClient(cfg.Coingecko, pacer)

	loader := dashboard.NewDetailLoader(marketChartClient, coinsClient)
	sessionCfg := dashboard.NewSessionConfig(cfg.Dashboard)

	store := sessions.NewStore(cfg.Sessions, func(id string) *dashboard.Session {
		return dashboard.NewSession(id, sessionCfg, trendingClient, loader)
	})
	registry.Register(store)

	port := resolvePort(cfg.Server)
	server := api.New(port, store,
		api.NamedHealthChecker{Name: "coingecko_trending", Checker: trendingClient},
		api.NamedHealthChecker{Name: "coingecko_market_chart", Checker: marketChartClient},
		api.NamedHealthChecker{Name: "coingecko_coins", Checker: coinsClient},
	)
	registry.Register(server)

	log.Info().
		Str("port", port).
		Stringer("key_type", cg.APIKeyFromConfig(cfg.Coingecko).Type).
		Dur("trending_refresh_interval", sessionCfg.RefreshInterval).
		Msg("Services configured")

	return registry, nil
}

// resolvePort prefers the PORT environment variable over the config file
func resolvePort(cfg config.ServerConfig) string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return cfg.Port
}
