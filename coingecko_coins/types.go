package coingecko_coins

// CoinResponse is the subset of GET /api/v3/coins/{id} the dashboard reads
type CoinResponse struct {
	ID            string         `json:"id"`
	Symbol        string         `json:"symbol"`
	Name          string         `json:"name"`
	MarketCapRank *int           `json:"market_cap_rank"`
	Image         CoinImage      `json:"image"`
	MarketData    CoinMarketData `json:"market_data"`
}

type CoinImage struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// CoinMarketData holds the market block. Currency maps are keyed by code.
type CoinMarketData struct {
	CurrentPrice             map[string]float64 `json:"current_price"`
	MarketCap                map[string]float64 `json:"market_cap"`
	TotalVolume              map[string]float64 `json:"total_volume"`
	PriceChangePercentage24h *float64           `json:"price_change_percentage_24h"`
}
