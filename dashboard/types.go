package dashboard

import (
	"errors"
	"fmt"

	"github.com/status-im/market-dashboard/market_data"
)

var (
	ErrUnknownCoin       = errors.New("coin is not in the trending list")
	ErrInvalidTimeFrame  = errors.New("time frame must be 7, 14 or 30 days")
	ErrInvalidChartType  = errors.New("chart type must be line, area or bar")
	ErrSessionClosed     = errors.New("session is closed")
	errDetailUnavailable = errors.New("coin info unavailable")
)

// Status is the top-level state of a dashboard view
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// TimeFrame is the chart lookback window in days
type TimeFrame int

const (
	TimeFrame7Days  TimeFrame = 7
	TimeFrame14Days TimeFrame = 14
	TimeFrame30Days TimeFrame = 30
)

// TimeFrames lists the selectable windows in display order
var TimeFrames = []TimeFrame{TimeFrame7Days, TimeFrame14Days, TimeFrame30Days}

func (tf TimeFrame) Valid() bool {
	switch tf {
	case TimeFrame7Days, TimeFrame14Days, TimeFrame30Days:
		return true
	}
	return false
}

// Label returns the selector caption, e.g. "7 Days"
func (tf TimeFrame) Label() string {
	return fmt.Sprintf("%d Days", int(tf))
}

// ParseTimeFrame validates days
func ParseTimeFrame(days int) (TimeFrame, error) {
	tf := TimeFrame(days)
	if !tf.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTimeFrame, days)
	}
	return tf, nil
}

// ChartType selects how the price series is drawn
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartArea ChartType = "area"
	ChartBar  ChartType = "bar"
)

// ChartTypes lists the selectable chart types in display order
var ChartTypes = []ChartType{ChartLine, ChartArea, ChartBar}

func (ct ChartType) Valid() bool {
	switch ct {
	case ChartLine, ChartArea, ChartBar:
		return true
	}
	return false
}

// ParseChartType validates s
func ParseChartType(s string) (ChartType, error) {
	ct := ChartType(s)
	if !ct.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidChartType, s)
	}
	return ct, nil
}

// Selection is what the user is currently looking at
type Selection struct {
	CoinID    string    `json:"coin_id"`
	TimeFrame TimeFrame `json:"time_frame"`
	ChartType ChartType `json:"chart_type"`
}

// DetailStatus is the state of the detail panel
type DetailStatus string

const (
	DetailIdle    DetailStatus = "idle"
	DetailLoading DetailStatus = "loading"
	DetailReady   DetailStatus = "ready"
	DetailError   DetailStatus = "error"
)

// DetailState is the detail panel for the selected coin.
// Generation identifies the fetch whose result the panel is waiting for.
type DetailState struct {
	Status     DetailStatus             `json:"status"`
	Generation uint64                   `json:"generation"`
	CoinID     string                   `json:"coin_id"`
	TimeFrame  TimeFrame                `json:"time_frame"`
	Points     []market_data.PricePoint `json:"points"`
	Coin       *market_data.CoinDetail  `json:"coin"`
	InfoErr    string                   `json:"info_error,omitempty"`
	Err        string                   `json:"error,omitempty"`
}

// State is the whole view state of one dashboard
type State struct {
	Status Status `json:"status"`
	Err    string `json:"error,omitempty"`

	// Refreshing is set while a background poll runs after the first load
	Refreshing bool `json:"refreshing"`
	// Loaded is set once trending coins were fetched successfully
	Loaded bool `json:"loaded"`

	Coins   []market_data.TrendingCoin `json:"coins"`
	Gainers []market_data.Mover        `json:"gainers"`
	Losers  []market_data.Mover        `json:"losers"`

	Selection Selection   `json:"selection"`
	Detail    DetailState `json:"detail"`
}

// Options parameterise the reducer
type Options struct {
	DefaultTimeFrame TimeFrame
	DefaultChartType ChartType
	MoversLimit      int
}

// DefaultOptions mirror the stock dashboard: 7 days, line chart, top five movers
func DefaultOptions() Options {
	return Options{
		DefaultTimeFrame: TimeFrame7Days,
		DefaultChartType: ChartLine,
		MoversLimit:      market_data.DefaultMoversLimit,
	}
}

// NewState returns the state of a freshly mounted view
func NewState(opts Options) State {
	return State{
		Status:  StatusLoading,
		Coins:   []market_data.TrendingCoin{},
		Gainers: []market_data.Mover{},
		Losers:  []market_data.Mover{},
		Selection: Selection{
			TimeFrame: opts.DefaultTimeFrame,
			ChartType: opts.DefaultChartType,
		},
		Detail: DetailState{Status: DetailIdle},
	}
}
