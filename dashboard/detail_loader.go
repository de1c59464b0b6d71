package dashboard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/coingecko_market_chart"
	"github.com/status-im/market-dashboard/market_data"
)

// ChartFetcher loads the price history of one coin
type ChartFetcher interface {
	FetchMarketChart(ctx context.Context, params coingecko_market_chart.MarketChartParams) (*coingecko_market_chart.MarketChartResponse, error)
}

// CoinFetcher loads descriptive metadata of one coin
type CoinFetcher interface {
	FetchCoin(ctx context.Context, coinID string) (*market_data.CoinDetail, error)
}

// DetailResult is what the detail panel shows for one coin and time frame
type DetailResult struct {
	Points []market_data.PricePoint
	Coin   *market_data.CoinDetail
	// InfoErr is set when the chart loaded but the coin info did not
	InfoErr error
}

// DetailLoader fetches the chart first and then the coin info
type DetailLoader struct {
	charts ChartFetcher
	coins  CoinFetcher
}

func NewDetailLoader(charts ChartFetcher, coins CoinFetcher) *DetailLoader {
	return &DetailLoader{charts: charts, coins: coins}
}

// Load returns an error only if the chart could not be fetched or ctx ended.
// A coin info failure is reported through DetailResult.InfoErr.
func (l *DetailLoader) Load(ctx context.Context, coinID string, tf TimeFrame) (*DetailResult, error) {
	chart, err := l.charts.FetchMarketChart(ctx, coingecko_market_chart.MarketChartParams{
		ID:   coinID,
		Days: int(tf),
	})
	if err != nil {
		return nil, err
	}

	result := &DetailResult{Points: chart.PricePoints()}

	coin, err := l.coins.FetchCoin(ctx, coinID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn().Str("coin_id", coinID).Err(err).Msg("Dashboard: coin info failed, showing chart only")
		result.InfoErr = fmt.Errorf("%w: %v", errDetailUnavailable, err)
		return result, nil
	}

	result.Coin = coin
	return result, nil
}
