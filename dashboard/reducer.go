package dashboard

import (
	"github.com/status-im/market-dashboard/market_data"
)

// Reduce is the single transition function of a dashboard view.
// It never mutates state in place and performs no I/O; fetches are
// requested through the returned effects.
func Reduce(state State, action Action, opts Options) (State, []Effect) {
	switch a := action.(type) {
	case TrendingLoading:
		if !state.Loaded {
			state.Status = StatusLoading
			state.Err = ""
		} else {
			state.Refreshing = true
		}
		return state, nil

	case TrendingLoaded:
		coins := a.Coins
		if coins == nil {
			coins = []market_data.TrendingCoin{}
		}
		state.Coins = coins
		state.Gainers, state.Losers = market_data.TopMovers(coins, opts.MoversLimit)
		state.Status = StatusReady
		state.Err = ""
		state.Refreshing = false
		state.Loaded = true

		if state.Selection.CoinID == "" && len(coins) > 0 {
			state.Selection.CoinID = coins[0].ID
			return startDetail(state)
		}
		return state, nil

	case TrendingFailed:
		state.Status = StatusError
		state.Err = a.Err
		state.Refreshing = false
		return state, nil

	case SelectCoin:
		if a.CoinID == "" || a.CoinID == state.Selection.CoinID {
			return state, nil
		}
		state.Selection.CoinID = a.CoinID
		return startDetail(state)

	case SetTimeFrame:
		if !a.TimeFrame.Valid() || a.TimeFrame == state.Selection.TimeFrame {
			return state, nil
		}
		state.Selection.TimeFrame = a.TimeFrame
		if state.Selection.CoinID == "" {
			return state, nil
		}
		return startDetail(state)

	case SetChartType:
		if a.ChartType.Valid() {
			state.Selection.ChartType = a.ChartType
		}
		return state, nil

	case Retry:
		var effects []Effect
		if state.Status == StatusError {
			state.Status = StatusLoading
			state.Err = ""
			effects = append(effects, RetryTrending{})
		}
		if state.Detail.Status == DetailError && state.Selection.CoinID != "" {
			var detailEffects []Effect
			state, detailEffects = startDetail(state)
			effects = append(effects, detailEffects...)
		}
		return state, effects

	case DetailLoaded:
		if IsStale(state, a) {
			return state, nil
		}
		state.Detail.Status = DetailReady
		state.Detail.Points = a.Points
		state.Detail.Coin = a.Coin
		state.Detail.InfoErr = a.InfoErr
		state.Detail.Err = ""
		return state, nil

	case DetailFailed:
		if IsStale(state, a) {
			return state, nil
		}
		state.Detail.Status = DetailError
		state.Detail.Points = nil
		state.Detail.Coin = nil
		state.Detail.InfoErr = ""
		state.Detail.Err = a.Err
		return state, nil
	}

	return state, nil
}

// IsStale reports whether a detail result belongs to a superseded fetch
func IsStale(state State, action Action) bool {
	switch a := action.(type) {
	case DetailLoaded:
		return a.Generation != state.Detail.Generation || state.Detail.Status != DetailLoading
	case DetailFailed:
		return a.Generation != state.Detail.Generation || state.Detail.Status != DetailLoading
	}
	return false
}

// startDetail resets the panel for the current selection under a new generation
func startDetail(state State) (State, []Effect) {
	gen := state.Detail.Generation + 1
	state.Detail = DetailState{
		Status:     DetailLoading,
		Generation: gen,
		CoinID:     state.Selection.CoinID,
		TimeFrame:  state.Selection.TimeFrame,
	}
	return state, []Effect{FetchDetail{
		Generation: gen,
		CoinID:     state.Selection.CoinID,
		TimeFrame:  state.Selection.TimeFrame,
	}}
}
