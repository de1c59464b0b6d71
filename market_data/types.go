package market_data

// TrendingCoin is one entry of the upstream trending list, taken verbatim.
// It is never mutated after a fetch; each poll replaces the whole list.
type TrendingCoin struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	Rank     int     `json:"rank"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`

	// PriceChangePercentage24h is nil when the upstream omitted it
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`

	// MarketCap and Volume come preformatted from the trending endpoint
	MarketCap string `json:"market_cap"`
	Volume    string `json:"volume"`
}

// PricePoint is one chart sample
type PricePoint struct {
	Date      string  `json:"date"`
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
}

// CoinDetail holds descriptive metadata and current market stats of one coin
type CoinDetail struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	ImageURL                 string  `json:"image_url"`
	MarketCapRank            int     `json:"market_cap_rank"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume24h           float64 `json:"total_volume_24h"`
}

// Mover is a trending coin projected for the gainers and losers lists.
// Only coins with a known 24h change become movers.
type Mover struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Symbol                string  `json:"symbol"`
	ImageURL              string  `json:"image_url"`
	Price                 float64 `json:"price"`
	PriceChangePercentage float64 `json:"price_change_percentage"`
	MarketCap             string  `json:"market_cap"`
	Volume                string  `json:"volume"`
}

// SeriesPoint is a raw [timestamp, value] pair as returned by the upstream
type SeriesPoint [2]float64
