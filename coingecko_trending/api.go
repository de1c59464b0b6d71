package coingecko_trending

//go:generate mockgen -destination=mocks/api.go . IAPIClient

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/market_data"
	"github.com/status-im/market-dashboard/metrics"
)

const TRENDING_API_PATH = "/api/v3/search/trending"

type IAPIClient interface {
	FetchTrending(ctx context.Context) ([]market_data.TrendingCoin, error)
	Healthy() bool
}

type CoinGeckoClient struct {
	client *cg.APIClient
}

func NewCoinGeckoClient(cfg config.CoingeckoConfig, pacer *cg.RequestPacer) *CoinGeckoClient {
	return &CoinGeckoClient{
		client: cg.NewAPIClient(cfg, metrics.ServiceTrending, pacer),
	}
}

func (c *CoinGeckoClient) Healthy() bool {
	return c.client.Healthy()
}

// FetchTrending returns the trending coins in upstream order
func (c *CoinGeckoClient) FetchTrending(ctx context.Context) ([]market_data.TrendingCoin, error) {
	defer metrics.RecordFetchDuration(metrics.ServiceTrending, "search_trending", time.Now())

	var resp TrendingResponse
	if err := c.client.GetJSON(ctx, c.client.NewRequestBuilder(TRENDING_API_PATH), &resp); err != nil {
		return nil, err
	}

	coins := ConvertTrendingResponse(resp)
	log.Debug().Int("coins", len(coins)).Msg("CoinGecko-Trending: fetched trending coins")
	return coins, nil
}

// ConvertTrendingResponse maps upstream items to domain coins.
// A coin without a USD 24h change keeps a nil change.
func ConvertTrendingResponse(resp TrendingResponse) []market_data.TrendingCoin {
	coins := make([]market_data.TrendingCoin, 0, len(resp.Coins))
	for _, entry := range resp.Coins {
		item := entry.Item
		coin := market_data.TrendingCoin{
			ID:       item.ID,
			Name:     item.Name,
			Symbol:   item.Symbol,
			ImageURL: item.Large,
		}
		if item.MarketCapRank != nil {
			coin.Rank = *item.MarketCapRank
		}
		if item.Data != nil {
			coin.Price = item.Data.Price
			coin.MarketCap = string(item.Data.MarketCap)
			coin.Volume = string(item.Data.TotalVolume)
			if change, ok := item.Data.PriceChangePercentage24h[cg.DEFAULT_CURRENCY]; ok {
				coin.PriceChangePercentage24h = &change
			}
		}
		coins = append(coins, coin)
	}
	return coins
}
