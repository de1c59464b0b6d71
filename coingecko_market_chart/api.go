package coingecko_market_chart

//go:generate mockgen -destination=mocks/api.go . IAPIClient

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/metrics"
)

type IAPIClient interface {
	FetchMarketChart(ctx context.Context, params MarketChartParams) (*MarketChartResponse, error)
	Healthy() bool
}

type CoinGeckoClient struct {
	client *cg.APIClient
}

func NewCoinGeckoClient(cfg config.CoingeckoConfig, pacer *cg.RequestPacer) *CoinGeckoClient {
	return &CoinGeckoClient{
		client: cg.NewAPIClient(cfg, metrics.ServiceMarketChart, pacer),
	}
}

func (c *CoinGeckoClient) Healthy() bool {
	return c.client.Healthy()
}

// FetchMarketChart returns price, market cap and volume series for one coin
func (c *CoinGeckoClient) FetchMarketChart(ctx context.Context, params MarketChartParams) (*MarketChartResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	defer metrics.RecordFetchDuration(metrics.ServiceMarketChart, "market_chart", time.Now())

	rb := NewMarketChartRequestBuilder(c.client.NewRequestBuilder(MarketChartPath(params.ID)), params.ID).
		WithDays(params.Days).
		WithCurrency(params.Currency)

	var resp MarketChartResponse
	if err := c.client.GetJSON(ctx, rb.Builder(), &resp); err != nil {
		return nil, fmt.Errorf("fetch market chart for %s: %w", params.ID, err)
	}

	log.Debug().
		Str("coin_id", params.ID).
		Int("days", params.Days).
		Int("prices", len(resp.Prices)).
		Msg("CoinGecko-MarketChart: fetched market chart")

	return &resp, nil
}
