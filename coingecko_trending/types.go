package coingecko_trending

import (
	"encoding/json"
	"strconv"
)

// TrendingResponse is the body of GET /api/v3/search/trending.
// Only the coins section is decoded; nfts and categories are ignored.
type TrendingResponse struct {
	Coins []TrendingEntry `json:"coins"`
}

// TrendingEntry wraps one trending coin
type TrendingEntry struct {
	Item TrendingItem `json:"item"`
}

// TrendingItem is the upstream coin record
type TrendingItem struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Symbol        string            `json:"symbol"`
	MarketCapRank *int              `json:"market_cap_rank"`
	Thumb         string            `json:"thumb"`
	Small         string            `json:"small"`
	Large         string            `json:"large"`
	Data          *TrendingItemData `json:"data"`
}

// TrendingItemData carries the market block of a trending item.
// PriceChangePercentage24h is keyed by currency code.
type TrendingItemData struct {
	Price                    float64            `json:"price"`
	PriceChangePercentage24h map[string]float64 `json:"price_change_percentage_24h"`
	MarketCap                displayValue       `json:"market_cap"`
	TotalVolume              displayValue       `json:"total_volume"`
}

// displayValue accepts either a preformatted string ("$1,234") or a bare number
type displayValue string

func (v *displayValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = displayValue(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = displayValue(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}
