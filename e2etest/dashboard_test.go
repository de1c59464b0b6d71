package e2etest

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-dashboard/dashboard"
)

func TestDashboard_InitialLoad(t *testing.T) {
	env := SetupTest(t)
	id := createSession(t, env).ID

	view := waitForView(t, env, id, detailReadyFor("pepe", dashboard.TimeFrame7Days))

	require.Len(t, view.Coins, 4)
	assert.Equal(t, "PEPE", view.Coins[0].Symbol)
	assert.Equal(t, "Rank #30", view.Coins[0].RankLabel)
	assert.True(t, view.Coins[0].Selected)

	require.Len(t, view.Gainers, 2)
	assert.Equal(t, "pepe", view.Gainers[0].ID)
	assert.Equal(t, "15.50%", view.Gainers[0].Change)
	assert.Equal(t, "bitcoin", view.Gainers[1].ID)
	assert.Equal(t, "$65,000.50", view.Gainers[1].Price)

	require.Len(t, view.Losers, 2)
	assert.Equal(t, "bonk", view.Losers[0].ID)
	assert.Equal(t, "-7.75%", view.Losers[0].Change)
	assert.False(t, view.Losers[0].Positive)
	assert.Equal(t, "sui", view.Losers[1].ID)

	require.Len(t, view.Detail.Chart, 7)
	assert.Equal(t, "1/25/2024", view.Detail.Chart[0].Date)
	assert.Equal(t, "1/31/2024", view.Detail.Chart[6].Date)
	require.NotNil(t, view.Detail.Coin)
	assert.Equal(t, "Pepe", view.Detail.Coin.Name)
	assert.Equal(t, "+15.50%", view.Detail.Coin.Change)
	assert.Equal(t, "5.00B", view.Detail.Coin.MarketCap)

	assert.Equal(t, 1, env.MockServer.Requests("/api/v3/search/trending"))
	assert.Equal(t, 1, env.MockServer.Requests("/api/v3/coins/pepe/market_chart"))
	assert.Equal(t, 1, env.MockServer.Requests("/api/v3/coins/pepe"))
}

func TestDashboard_SelectionAndTimeFrame(t *testing.T) {
	env := SetupTest(t)
	id := createSession(t, env).ID
	waitForView(t, env, id, detailReadyFor("pepe", dashboard.TimeFrame7Days))

	status, body := call(t, http.MethodPost, sessionURL(env, id)+"/selection", map[string]string{"coin_id": "bitcoin"})
	require.Equal(t, http.StatusOK, status, string(body))

	view := waitForView(t, env, id, detailReadyFor("bitcoin", dashboard.TimeFrame7Days))
	require.NotNil(t, view.Detail.Coin)
	assert.Equal(t, "BTC", view.Detail.Coin.Symbol)
	assert.Equal(t, "$65,000.50", view.Detail.Coin.Price)
	assert.Equal(t, "Rank #1", view.Detail.Coin.RankLabel)

	status, body = call(t, http.MethodPost, sessionURL(env, id)+"/time_frame", map[string]int{"days": 30})
	require.Equal(t, http.StatusOK, status, string(body))

	view = waitForView(t, env, id, detailReadyFor("bitcoin", dashboard.TimeFrame30Days))
	assert.Len(t, view.Detail.Chart, 30)

	// chart type is presentation only
	chartRequests := env.MockServer.Requests("/api/v3/coins/bitcoin/market_chart")
	status, _ = call(t, http.MethodPost, sessionURL(env, id)+"/chart_type", map[string]string{"chart_type": "bar"})
	require.Equal(t, http.StatusOK, status)
	view, ok := getView(env, id)
	require.True(t, ok)
	assert.Equal(t, dashboard.ChartBar, view.Detail.ChartType)
	assert.Equal(t, chartRequests, env.MockServer.Requests("/api/v3/coins/bitcoin/market_chart"))
}

func TestDashboard_TrendingFailureAndRetry(t *testing.T) {
	env := SetupTest(t)
	env.MockServer.SetTrendingFails(true)

	id := createSession(t, env).ID
	view := waitForView(t, env, id, func(v dashboard.View) bool { return v.Status == dashboard.StatusError })
	assert.NotEmpty(t, view.Error)
	assert.Empty(t, view.Coins)
	assert.Equal(t, dashboard.DetailIdle, view.Detail.Status)

	env.MockServer.SetTrendingFails(false)
	status, _ := call(t, http.MethodPost, sessionURL(env, id)+"/retry", nil)
	require.Equal(t, http.StatusAccepted, status)

	view = waitForView(t, env, id, detailReadyFor("pepe", dashboard.TimeFrame7Days))
	assert.Empty(t, view.Error)
	assert.Len(t, view.Coins, 4)
}

func TestDashboard_DetailFailureAndRetry(t *testing.T) {
	env := SetupTest(t)
	env.MockServer.SetChartFails("pepe", true)

	id := createSession(t, env).ID
	view := waitForView(t, env, id, func(v dashboard.View) bool { return v.Detail.Status == dashboard.DetailError })
	assert.Equal(t, dashboard.StatusReady, view.Status)
	assert.NotEmpty(t, view.Detail.Error)
	assert.Empty(t, view.Detail.Chart)

	env.MockServer.SetChartFails("pepe", false)
	status, _ := call(t, http.MethodPost, sessionURL(env, id)+"/retry", nil)
	require.Equal(t, http.StatusAccepted, status)

	view = waitForView(t, env, id, detailReadyFor("pepe", dashboard.TimeFrame7Days))
	assert.Empty(t, view.Detail.Error)
	assert.Len(t, view.Detail.Chart, 7)
}

func TestDashboard_RapidSelectionShowsLastChoice(t *testing.T) {
	env := SetupTest(t)
	id := createSession(t, env).ID
	waitForView(t, env, id, detailReadyFor("pepe", dashboard.TimeFrame7Days))

	env.MockServer.SetChartDelay(100 * time.Millisecond)
	for _, coin := range []string{"bitcoin", "bonk", "sui"} {
		status, body := call(t, http.MethodPost, sessionURL(env, id)+"/selection", map[string]string{"coin_id": coin})
		require.Equal(t, http.StatusOK, status, string(body))
	}

	view := waitForView(t, env, id, detailReadyFor("sui", dashboard.TimeFrame7Days))
	require.NotNil(t, view.Detail.Coin)
	assert.Equal(t, "Sui", view.Detail.Coin.Name)

	// a superseded result must never replace the latest one
	time.Sleep(300 * time.Millisecond)
	view, ok := getView(env, id)
	require.True(t, ok)
	assert.Equal(t, "Sui", view.Detail.Coin.Name)
}

func TestDashboard_Stream(t *testing.T) {
	env := SetupTest(t)
	id := createSession(t, env).ID

	url := "ws" + strings.TrimPrefix(sessionURL(env, id), "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	for {
		var view dashboard.View
		require.NoError(t, conn.ReadJSON(&view))
		if detailReadyFor("pepe", dashboard.TimeFrame7Days)(view) {
			break
		}
	}

	status, _ := call(t, http.MethodDelete, sessionURL(env, id), nil)
	require.Equal(t, http.StatusNoContent, status)

	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			break
		}
	}
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "unexpected error: %v", err)
}

func TestHealthEndpoint(t *testing.T) {
	env := SetupTest(t)
	id := createSession(t, env).ID
	waitForView(t, env, id, detailReadyFor("pepe", dashboard.TimeFrame7Days))

	status, body := call(t, http.MethodGet, env.ServerBaseURL+"/health", nil)
	require.Equal(t, http.StatusOK, status)

	var health struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
		Sessions int               `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 1, health.Sessions)
	assert.Equal(t, map[string]string{
		"coingecko_trending":     "up",
		"coingecko_market_chart": "up",
		"coingecko_coins":        "up",
	}, health.Services)
}

func TestMetricsEndpoint(t *testing.T) {
	env := SetupTest(t)
	id := createSession(t, env).ID
	waitForView(t, env, id, detailReadyFor("pepe", dashboard.TimeFrame7Days))

	status, body := call(t, http.MethodGet, env.ServerBaseURL+"/metrics", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "market_dashboard_")
}
