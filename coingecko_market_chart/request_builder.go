package coingecko_market_chart

import (
	"fmt"
	"net/url"
	"strconv"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

const (
	MARKET_CHART_API_PATH_TEMPLATE = "/api/v3/coins/%s/market_chart"
)

type MarketChartRequestBuilder struct {
	builder *cg.CoingeckoRequestBuilder
	coinID  string
}

// NewMarketChartRequestBuilder wraps base, which must already point at the
// market chart path of coinID
func NewMarketChartRequestBuilder(base *cg.CoingeckoRequestBuilder, coinID string) *MarketChartRequestBuilder {
	rb := &MarketChartRequestBuilder{
		builder: base,
		coinID:  coinID,
	}

	rb.builder.WithCurrency(cg.DEFAULT_CURRENCY)
	rb.WithDays(7)

	return rb
}

// MarketChartPath returns the escaped API path for coinID
func MarketChartPath(coinID string) string {
	return fmt.Sprintf(MARKET_CHART_API_PATH_TEMPLATE, url.PathEscape(coinID))
}

func (rb *MarketChartRequestBuilder) WithDays(days int) *MarketChartRequestBuilder {
	rb.builder.With("days", strconv.Itoa(days))
	return rb
}

func (rb *MarketChartRequestBuilder) WithCurrency(currency string) *MarketChartRequestBuilder {
	rb.builder.WithCurrency(currency)
	return rb
}

// Builder returns the underlying request builder
func (rb *MarketChartRequestBuilder) Builder() *cg.CoingeckoRequestBuilder {
	return rb.builder
}
