package market_data

import (
	"slices"
	"strings"

	"github.com/status-im/market-dashboard/formatters"
)

// DefaultMoversLimit is the size of the gainers and losers lists
const DefaultMoversLimit = 5

// BuildPricePoints zips the price and volume series by index.
// Volume defaults to zero where the volume series is shorter. The two series
// are assumed to be timestamp-aligned; entries are not matched by timestamp.
func BuildPricePoints(prices, volumes []SeriesPoint) []PricePoint {
	points := make([]PricePoint, 0, len(prices))
	for i, p := range prices {
		timestamp := int64(p[0])

		volume := 0.0
		if i < len(volumes) {
			volume = volumes[i][1]
		}

		points = append(points, PricePoint{
			Date:      formatters.FormatChartDate(timestamp),
			Timestamp: timestamp,
			Price:     p[1],
			Volume:    volume,
		})
	}
	return points
}

// TopMovers derives the top gainers and losers from coins.
// Coins without a 24h change are excluded from both lists. Gainers are
// ordered by descending change with ties kept in source order; losers are
// the same ordering reversed.
func TopMovers(coins []TrendingCoin, limit int) (gainers, losers []Mover) {
	if limit <= 0 {
		return []Mover{}, []Mover{}
	}

	sorted := make([]Mover, 0, len(coins))
	for _, c := range coins {
		if c.PriceChangePercentage24h == nil {
			continue
		}
		sorted = append(sorted, toMover(c))
	}

	slices.SortStableFunc(sorted, func(a, b Mover) int {
		switch {
		case a.PriceChangePercentage > b.PriceChangePercentage:
			return -1
		case a.PriceChangePercentage < b.PriceChangePercentage:
			return 1
		}
		return 0
	})

	gainers = slices.Clone(sorted[:min(limit, len(sorted))])

	reversed := slices.Clone(sorted)
	slices.Reverse(reversed)
	losers = reversed[:min(limit, len(reversed))]

	return gainers, losers
}

// SearchCoins filters coins whose name or symbol contains query,
// case-insensitively. An empty query returns all coins.
func SearchCoins(coins []TrendingCoin, query string) []TrendingCoin {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(coins)
	}

	result := make([]TrendingCoin, 0)
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Symbol), q) {
			result = append(result, c)
		}
	}
	return result
}

// FindCoin looks a coin up by its identifier
func FindCoin(coins []TrendingCoin, id string) (TrendingCoin, bool) {
	for _, c := range coins {
		if c.ID == id {
			return c, true
		}
	}
	return TrendingCoin{}, false
}

func toMover(c TrendingCoin) Mover {
	return Mover{
		ID:                    c.ID,
		Name:                  c.Name,
		Symbol:                c.Symbol,
		ImageURL:              c.ImageURL,
		Price:                 c.Price,
		PriceChangePercentage: *c.PriceChangePercentage24h,
		MarketCap:             c.MarketCap,
		Volume:                c.Volume,
	}
}
