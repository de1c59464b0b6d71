package dashboard

import "github.com/status-im/market-dashboard/market_data"

// Action is an input to Reduce
type Action interface {
	actionName() string
}

type TrendingLoading struct{}

type TrendingLoaded struct {
	Coins []market_data.TrendingCoin
}

type TrendingFailed struct {
	Err string
}

type SelectCoin struct {
	CoinID string
}

type SetTimeFrame struct {
	TimeFrame TimeFrame
}

type SetChartType struct {
	ChartType ChartType
}

type Retry struct{}

// DetailLoaded delivers the result of the fetch tagged with Generation.
// InfoErr is set when the chart arrived but the coin info did not.
type DetailLoaded struct {
	Generation uint64
	Points     []market_data.PricePoint
	Coin       *market_data.CoinDetail
	InfoErr    string
}

type DetailFailed struct {
	Generation uint64
	Err        string
}

func (TrendingLoading) actionName() string { return "trending_loading" }
func (TrendingLoaded) actionName() string  { return "trending_loaded" }
func (TrendingFailed) actionName() string  { return "trending_failed" }
func (SelectCoin) actionName() string      { return "select_coin" }
func (SetTimeFrame) actionName() string    { return "set_time_frame" }
func (SetChartType) actionName() string    { return "set_chart_type" }
func (Retry) actionName() string           { return "retry" }
func (DetailLoaded) actionName() string    { return "detail_loaded" }
func (DetailFailed) actionName() string    { return "detail_failed" }

// Effect is work Reduce asks its caller to perform
type Effect interface {
	effectName() string
}

// FetchDetail loads chart and coin info for CoinID. The result must be
// dispatched with the same Generation.
type FetchDetail struct {
	Generation uint64
	CoinID     string
	TimeFrame  TimeFrame
}

// RetryTrending re-runs the trending poll now
type RetryTrending struct{}

func (FetchDetail) effectName() string   { return "fetch_detail" }
func (RetryTrending) effectName() string { return "retry_trending" }
