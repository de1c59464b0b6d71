package dashboard

import (
	"fmt"
	"strings"

	"github.com/status-im/market-dashboard/formatters"
	"github.com/status-im/market-dashboard/market_data"
)

// View is the render-ready projection of State. Every number a template
// would print is already formatted.
type View struct {
	Status     Status `json:"status"`
	Error      string `json:"error,omitempty"`
	Refreshing bool   `json:"refreshing"`

	Coins   []CoinOption `json:"coins"`
	Gainers []MoverCard  `json:"gainers"`
	Losers  []MoverCard  `json:"losers"`

	Selection  Selection `json:"selection"`
	TimeFrames []Choice  `json:"time_frames"`
	ChartTypes []Choice  `json:"chart_types"`

	Detail DetailView `json:"detail"`
}

// CoinOption is one row of the coin selector
type CoinOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	ImageURL  string `json:"image_url"`
	RankLabel string `json:"rank_label,omitempty"`
	Selected  bool   `json:"selected"`
}

// MoverCard is one gainers or losers card
type MoverCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	ImageURL  string `json:"image_url"`
	Price     string `json:"price"`
	Change    string `json:"change"`
	Positive  bool   `json:"positive"`
	Volume    string `json:"volume"`
	MarketCap string `json:"market_cap"`
}

// Choice is a selectable option of a toggle group
type Choice struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type DetailView struct {
	Status    DetailStatus     `json:"status"`
	Error     string           `json:"error,omitempty"`
	InfoError string           `json:"info_error,omitempty"`
	Coin      *CoinInfoView    `json:"coin,omitempty"`
	ChartType ChartType        `json:"chart_type"`
	Chart     []ChartPointView `json:"chart"`
}

type CoinInfoView struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	ImageURL  string `json:"image_url"`
	RankLabel string `json:"rank_label,omitempty"`
	Price     string `json:"price"`
	Change    string `json:"change"`
	Positive  bool   `json:"positive"`
	MarketCap string `json:"market_cap"`
	Volume    string `json:"volume"`
}

// ChartPointView keeps the raw values for plotting next to tooltip labels
type ChartPointView struct {
	Date        string  `json:"date"`
	Timestamp   int64   `json:"timestamp"`
	Price       float64 `json:"price"`
	Volume      float64 `json:"volume"`
	PriceLabel  string  `json:"price_label"`
	VolumeLabel string  `json:"volume_label"`
}

// BuildView projects state into render props
func BuildView(state State) View {
	view := View{
		Status:     state.Status,
		Error:      state.Err,
		Refreshing: state.Refreshing,
		Coins:      make([]CoinOption, 0, len(state.Coins)),
		Gainers:    moverCards(state.Gainers),
		Losers:     moverCards(state.Losers),
		Selection:  state.Selection,
		TimeFrames: make([]Choice, 0, len(TimeFrames)),
		ChartTypes: make([]Choice, 0, len(ChartTypes)),
		Detail:     buildDetailView(state.Detail, state.Selection.ChartType),
	}

	for _, c := range state.Coins {
		view.Coins = append(view.Coins, CoinOption{
			ID:        c.ID,
			Name:      c.Name,
			Symbol:    strings.ToUpper(c.Symbol),
			ImageURL:  c.ImageURL,
			RankLabel: rankLabel(c.Rank),
			Selected:  c.ID == state.Selection.CoinID,
		})
	}
	for _, tf := range TimeFrames {
		view.TimeFrames = append(view.TimeFrames, Choice{
			Value:    fmt.Sprint(int(tf)),
			Label:    tf.Label(),
			Selected: tf == state.Selection.TimeFrame,
		})
	}
	for _, ct := range ChartTypes {
		view.ChartTypes = append(view.ChartTypes, Choice{
			Value:    string(ct),
			Label:    strings.ToUpper(string(ct[:1])) + string(ct[1:]),
			Selected: ct == state.Selection.ChartType,
		})
	}

	return view
}

func moverCards(movers []market_data.Mover) []MoverCard {
	cards := make([]MoverCard, 0, len(movers))
	for _, m := range movers {
		change := m.PriceChangePercentage
		cards = append(cards, MoverCard{
			ID:        m.ID,
			Name:      m.Name,
			Symbol:    strings.ToUpper(m.Symbol),
			ImageURL:  m.ImageURL,
			Price:     formatters.FormatCurrencyOrNA(m.Price),
			Change:    formatters.FormatPercentage(&change),
			Positive:  change >= 0,
			Volume:    m.Volume,
			MarketCap: m.MarketCap,
		})
	}
	return cards
}

func buildDetailView(detail DetailState, chartType ChartType) DetailView {
	view := DetailView{
		Status:    detail.Status,
		Error:     detail.Err,
		InfoError: detail.InfoErr,
		ChartType: chartType,
		Chart:     make([]ChartPointView, 0, len(detail.Points)),
	}

	for _, p := range detail.Points {
		view.Chart = append(view.Chart, ChartPointView{
			Date:        p.Date,
			Timestamp:   p.Timestamp,
			Price:       p.Price,
			Volume:      p.Volume,
			PriceLabel:  formatters.FormatCurrency(p.Price),
			VolumeLabel: formatters.FormatCompact(p.Volume),
		})
	}

	if c := detail.Coin; c != nil {
		view.Coin = &CoinInfoView{
			Name:      c.Name,
			Symbol:    strings.ToUpper(c.Symbol),
			ImageURL:  c.ImageURL,
			RankLabel: rankLabel(c.MarketCapRank),
			Price:     formatters.FormatCurrency(c.CurrentPrice),
			Change:    formatters.FormatSignedPercentage(c.PriceChangePercentage24h),
			Positive:  c.PriceChangePercentage24h >= 0,
			MarketCap: formatters.FormatCompact(c.MarketCap),
			Volume:    formatters.FormatCompact(c.TotalVolume24h),
		}
	}

	return view
}

func rankLabel(rank int) string {
	if rank <= 0 {
		return ""
	}
	return fmt.Sprintf("Rank #%d", rank)
}
