package coingecko_coins

//go:generate mockgen -destination=mocks/api.go . IAPIClient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/market_data"
	"github.com/status-im/market-dashboard/metrics"
)

const COIN_API_PATH_TEMPLATE = "/api/v3/coins/%s"

var ErrMissingCoinID = errors.New("coin ID is required")

// heavyParams switches off response sections the dashboard never shows
var heavyParams = map[string]string{
	"localization":   "false",
	"tickers":        "false",
	"community_data": "false",
	"developer_data": "false",
}

type IAPIClient interface {
	FetchCoin(ctx context.Context, coinID string) (*market_data.CoinDetail, error)
	Healthy() bool
}

type CoinGeckoClient struct {
	client *cg.APIClient
}

func NewCoinGeckoClient(cfg config.CoingeckoConfig, pacer *cg.RequestPacer) *CoinGeckoClient {
	return &CoinGeckoClient{
		client: cg.NewAPIClient(cfg, metrics.ServiceCoinDetail, pacer),
	}
}

func (c *CoinGeckoClient) Healthy() bool {
	return c.client.Healthy()
}

// FetchCoin returns descriptive metadata and USD market stats for one coin
func (c *CoinGeckoClient) FetchCoin(ctx context.Context, coinID string) (*market_data.CoinDetail, error) {
	if strings.TrimSpace(coinID) == "" {
		return nil, ErrMissingCoinID
	}
	defer metrics.RecordFetchDuration(metrics.ServiceCoinDetail, "coin", time.Now())

	rb := c.client.NewRequestBuilder(fmt.Sprintf(COIN_API_PATH_TEMPLATE, url.PathEscape(coinID)))
	for key, value := range heavyParams {
		rb.With(key, value)
	}

	var resp CoinResponse
	if err := c.client.GetJSON(ctx, rb, &resp); err != nil {
		return nil, fmt.Errorf("fetch coin %s: %w", coinID, err)
	}

	log.Debug().Str("coin_id", coinID).Msg("CoinGecko-Coins: fetched coin info")
	return ConvertCoinResponse(resp), nil
}

// ConvertCoinResponse projects the upstream record into a CoinDetail.
// Missing USD entries read as zero.
func ConvertCoinResponse(resp CoinResponse) *market_data.CoinDetail {
	detail := &market_data.CoinDetail{
		ID:             resp.ID,
		Name:           resp.Name,
		Symbol:         resp.Symbol,
		ImageURL:       resp.Image.Small,
		CurrentPrice:   resp.MarketData.CurrentPrice[cg.DEFAULT_CURRENCY],
		MarketCap:      resp.MarketData.MarketCap[cg.DEFAULT_CURRENCY],
		TotalVolume24h: resp.MarketData.TotalVolume[cg.DEFAULT_CURRENCY],
	}
	if resp.MarketCapRank != nil {
		detail.MarketCapRank = *resp.MarketCapRank
	}
	if resp.MarketData.PriceChangePercentage24h != nil {
		detail.PriceChangePercentage24h = *resp.MarketData.PriceChangePercentage24h
	}
	return detail
}
