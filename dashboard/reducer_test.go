package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-dashboard/market_data"
)

func change(v float64) *float64 { return &v }

func sampleCoins() []market_data.TrendingCoin {
	return []market_data.TrendingCoin{
		{ID: "pepe", Name: "Pepe", Symbol: "pepe", PriceChangePercentage24h: change(12)},
		{ID: "bonk", Name: "Bonk", Symbol: "bonk", PriceChangePercentage24h: change(-4)},
		{ID: "sui", Name: "Sui", Symbol: "sui"},
	}
}

func loadedState(t *testing.T) State {
	t.Helper()
	state, _ := Reduce(NewState(DefaultOptions()), TrendingLoaded{Coins: sampleCoins()}, DefaultOptions())
	require.Equal(t, "pepe", state.Selection.CoinID)
	return state
}

func TestReduce_InitialLoad(t *testing.T) {
	opts := DefaultOptions()
	state := NewState(opts)
	assert.Equal(t, StatusLoading, state.Status)
	assert.Equal(t, TimeFrame7Days, state.Selection.TimeFrame)
	assert.Equal(t, ChartLine, state.Selection.ChartType)

	state, effects := Reduce(state, TrendingLoading{}, opts)
	assert.Equal(t, StatusLoading, state.Status)
	assert.False(t, state.Refreshing)
	assert.Empty(t, effects)

	state, effects = Reduce(state, TrendingLoaded{Coins: sampleCoins()}, opts)
	assert.Equal(t, StatusReady, state.Status)
	assert.True(t, state.Loaded)
	assert.Len(t, state.Coins, 3)
	require.Len(t, state.Gainers, 2)
	assert.Equal(t, "pepe", state.Gainers[0].ID)
	assert.Equal(t, "bonk", state.Losers[0].ID)

	assert.Equal(t, "pepe", state.Selection.CoinID, "first coin is auto-selected")
	assert.Equal(t, DetailLoading, state.Detail.Status)
	assert.Equal(t, uint64(1), state.Detail.Generation)
	assert.Equal(t, []Effect{FetchDetail{Generation: 1, CoinID: "pepe", TimeFrame: TimeFrame7Days}}, effects)
}

func TestReduce_EmptyTrendingListSelectsNothing(t *testing.T) {
	state, effects := Reduce(NewState(DefaultOptions()), TrendingLoaded{}, DefaultOptions())
	assert.Equal(t, StatusReady, state.Status)
	assert.NotNil(t, state.Coins)
	assert.Empty(t, state.Selection.CoinID)
	assert.Empty(t, effects)
}

func TestReduce_BackgroundRefreshKeepsReady(t *testing.T) {
	opts := DefaultOptions()
	state := loadedState(t)

	state, effects := Reduce(state, TrendingLoading{}, opts)
	assert.Equal(t, StatusReady, state.Status)
	assert.True(t, state.Refreshing)
	assert.Empty(t, effects)

	refreshed := []market_data.TrendingCoin{{ID: "wif", Name: "Wif", PriceChangePercentage24h: change(3)}}
	state, effects = Reduce(state, TrendingLoaded{Coins: refreshed}, opts)
	assert.False(t, state.Refreshing)
	assert.Equal(t, refreshed, state.Coins)
	assert.Equal(t, "pepe", state.Selection.CoinID, "selection survives a refresh")
	assert.Empty(t, effects)
}

func TestReduce_TrendingFailureKeepsCoins(t *testing.T) {
	opts := DefaultOptions()
	state := loadedState(t)

	state, effects := Reduce(state, TrendingFailed{Err: "API request failed with status 500"}, opts)
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "API request failed with status 500", state.Err)
	assert.Len(t, state.Coins, 3)
	assert.Len(t, state.Gainers, 2)
	assert.Empty(t, effects)
}

func TestReduce_SelectCoin(t *testing.T) {
	opts := DefaultOptions()
	state := loadedState(t)

	same, effects := Reduce(state, SelectCoin{CoinID: "pepe"}, opts)
	assert.Equal(t, state, same)
	assert.Empty(t, effects)

	state, effects = Reduce(state, SetTimeFrame{TimeFrame: TimeFrame30Days}, opts)
	require.Len(t, effects, 1)

	state, effects = Reduce(state, SelectCoin{CoinID: "bonk"}, opts)
	assert.Equal(t, "bonk", state.Selection.CoinID)
	assert.Equal(t, TimeFrame30Days, state.Selection.TimeFrame, "time frame persists across coins")
	assert.Equal(t, DetailLoading, state.Detail.Status)
	assert.Equal(t, []Effect{FetchDetail{Generation: 3, CoinID: "bonk", TimeFrame: TimeFrame30Days}}, effects)
}

func TestReduce_SetTimeFrame(t *testing.T) {
	opts := DefaultOptions()
	state := loadedState(t)

	same, effects := Reduce(state, SetTimeFrame{TimeFrame: TimeFrame7Days}, opts)
	assert.Equal(t, state, same)
	assert.Empty(t, effects)

	same, effects = Reduce(state, SetTimeFrame{TimeFrame: 9}, opts)
	assert.Equal(t, state, same)
	assert.Empty(t, effects)

	state, effects = Reduce(state, SetTimeFrame{TimeFrame: TimeFrame14Days}, opts)
	assert.Equal(t, []Effect{FetchDetail{Generation: 2, CoinID: "pepe", TimeFrame: TimeFrame14Days}}, effects)
	assert.Equal(t, TimeFrame14Days, state.Detail.TimeFrame)

	// without a selection the window is only remembered
	fresh, effects := Reduce(NewState(opts), SetTimeFrame{TimeFrame: TimeFrame30Days}, opts)
	assert.Equal(t, TimeFrame30Days, fresh.Selection.TimeFrame)
	assert.Empty(t, effects)
}

func TestReduce_SetChartTypeNeverFetches(t *testing.T) {
	opts := DefaultOptions()
	state := loadedState(t)
	gen := state.Detail.Generation

	for _, ct := range []ChartType{ChartArea, ChartBar, ChartLine} {
		var effects []Effect
		state, effects = Reduce(state, SetChartType{ChartType: ct}, opts)
		assert.Empty(t, effects)
		assert.Equal(t, ct, state.Selection.ChartType)
		assert.Equal(t, gen, state.Detail.Generation)
	}
}

func TestReduce_DetailResults(t *testing.T) {
	opts := DefaultOptions()
	state := loadedState(t)
	points := []market_data.PricePoint{{Timestamp: 1, Price: 2}}
	coin := &market_data.CoinDetail{ID: "pepe"}

	stale, _ := Reduce(state, DetailLoaded{Generation: 0, Points: points}, opts)
	assert.Equal(t, DetailLoading, stale.Detail.Status, "stale generation is ignored")
	assert.True(t, IsStale(state, DetailLoaded{Generation: 0}))

	loaded, effects := Reduce(state, DetailLoaded{Generation: 1, Points: points, Coin: coin}, opts)
	assert.Empty(t, effects)
	assert.Equal(t, DetailReady, loaded.Detail.Status)
	assert.Equal(t, points, loaded.Detail.Points)
	assert.Equal(t, coin, loaded.Detail.Coin)

	// a late duplicate for an already settled generation is stale too
	assert.True(t, IsStale(loaded, DetailFailed{Generation: 1, Err: "late"}))

	partial, _ := Reduce(state, DetailLoaded{Generation: 1, Points: points, InfoErr: "coin info unavailable"}, opts)
	assert.Equal(t, DetailReady, partial.Detail.Status)
	assert.Nil(t, partial.Detail.Coin)
	assert.Equal(t, "coin info unavailable", partial.Detail.InfoErr)

	failed, _ := Reduce(state, DetailFailed{Generation: 1, Err: "boom"}, opts)
	assert.Equal(t, DetailError, failed.Detail.Status)
	assert.Equal(t, "boom", failed.Detail.Err)
	assert.Equal(t, StatusReady, failed.Status, "detail failure does not blank the view")
	assert.Len(t, failed.Gainers, 2)
}

func TestReduce_Retry(t *testing.T) {
	opts := DefaultOptions()

	t.Run("nothing failed", func(t *testing.T) {
		state := loadedState(t)
		next, effects := Reduce(state, Retry{}, opts)
		assert.Equal(t, state, next)
		assert.Empty(t, effects)
	})

	t.Run("trending failed", func(t *testing.T) {
		state, _ := Reduce(NewState(opts), TrendingFailed{Err: "down"}, opts)
		state, effects := Reduce(state, Retry{}, opts)
		assert.Equal(t, StatusLoading, state.Status)
		assert.Empty(t, state.Err)
		assert.Equal(t, []Effect{RetryTrending{}}, effects)
	})

	t.Run("detail failed", func(t *testing.T) {
		state := loadedState(t)
		state, _ = Reduce(state, DetailFailed{Generation: 1, Err: "boom"}, opts)
		state, effects := Reduce(state, Retry{}, opts)
		assert.Equal(t, DetailLoading, state.Detail.Status)
		assert.Equal(t, []Effect{FetchDetail{Generation: 2, CoinID: "pepe", TimeFrame: TimeFrame7Days}}, effects)
	})

	t.Run("both failed", func(t *testing.T) {
		state := loadedState(t)
		state, _ = Reduce(state, DetailFailed{Generation: 1, Err: "boom"}, opts)
		state, _ = Reduce(state, TrendingFailed{Err: "down"}, opts)
		_, effects := Reduce(state, Retry{}, opts)
		assert.Equal(t, []Effect{RetryTrending{}, FetchDetail{Generation: 2, CoinID: "pepe", TimeFrame: TimeFrame7Days}}, effects)
	})
}

func TestParseTimeFrameAndChartType(t *testing.T) {
	tf, err := ParseTimeFrame(14)
	require.NoError(t, err)
	assert.Equal(t, TimeFrame14Days, tf)
	assert.Equal(t, "14 Days", tf.Label())

	_, err = ParseTimeFrame(5)
	assert.ErrorIs(t, err, ErrInvalidTimeFrame)

	ct, err := ParseChartType("area")
	require.NoError(t, err)
	assert.Equal(t, ChartArea, ct)

	_, err = ParseChartType("pie")
	assert.ErrorIs(t, err, ErrInvalidChartType)
}
