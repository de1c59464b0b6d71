package coingecko_market_chart

import (
	"errors"
	"strings"

	"github.com/status-im/market-dashboard/market_data"
)

var (
	ErrMissingCoinID = errors.New("coin ID is required")
	ErrInvalidDays   = errors.New("invalid days parameter, must be a number from 1 to 365")
)

// MarketChartParams represents parameters for market chart requests
type MarketChartParams struct {
	// ID is the coin id (required)
	ID string `json:"id"`

	// Currency to compare against; defaults to usd
	Currency string `json:"vs_currency"`

	// Days of history to return. Upstream granularity is automatic:
	// 1 day = 5-minutely data
	// 2-90 days = hourly data
	// above 90 days = daily data
	Days int `json:"days"`
}

// Validate validates the MarketChartParams
func (p *MarketChartParams) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrMissingCoinID
	}
	if p.Days < 1 || p.Days > 365 {
		return ErrInvalidDays
	}
	return nil
}

// MarketChartResponse represents the market chart API response structure
type MarketChartResponse struct {
	// Prices contains historical price data as [timestamp, price] pairs
	Prices []market_data.SeriesPoint `json:"prices"`

	// MarketCaps contains historical market cap data as [timestamp, market_cap] pairs
	MarketCaps []market_data.SeriesPoint `json:"market_caps"`

	// TotalVolumes contains historical volume data as [timestamp, total_volume] pairs
	TotalVolumes []market_data.SeriesPoint `json:"total_volumes"`
}

// PricePoints zips prices with volumes into chart samples
func (r *MarketChartResponse) PricePoints() []market_data.PricePoint {
	return market_data.BuildPricePoints(r.Prices, r.TotalVolumes)
}
