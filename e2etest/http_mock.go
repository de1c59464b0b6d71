package e2etest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// MockServer imitates the CoinGecko endpoints the dashboard calls
type MockServer struct {
	server *httptest.Server

	mu            sync.RWMutex
	trendingFails bool
	chartFails    map[string]bool
	chartDelay    time.Duration
	requests      map[string]int
}

// NewMockServer creates and starts a new mock server
func NewMockServer() *MockServer {
	ms := &MockServer{
		chartFails: make(map[string]bool),
		requests:   make(map[string]int),
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/v3/search/trending", ms.handleTrending).Methods(http.MethodGet)
	router.HandleFunc("/api/v3/coins/{id}/market_chart", ms.handleMarketChart).Methods(http.MethodGet)
	router.HandleFunc("/api/v3/coins/{id}", ms.handleCoin).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Warn().Str("path", r.URL.Path).Msg("MockServer: unexpected request")
		http.NotFound(w, r)
	})

	ms.server = httptest.NewServer(router)
	return ms
}

// GetURL returns the base URL of the mock server
func (ms *MockServer) GetURL() string {
	return ms.server.URL
}

// Close shuts the mock server down
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetTrendingFails makes the trending endpoint answer 503 while fail is true
func (ms *MockServer) SetTrendingFails(fail bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.trendingFails = fail
}

// SetChartFails makes the market chart of coinID answer 500 while fail is true
func (ms *MockServer) SetChartFails(coinID string, fail bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.chartFails[coinID] = fail
}

// SetChartDelay delays every market chart response
func (ms *MockServer) SetChartDelay(d time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.chartDelay = d
}

// Requests returns how many times path was requested
func (ms *MockServer) Requests(path string) int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.requests[path]
}

func (ms *MockServer) record(r *http.Request) {
	ms.mu.Lock()
	ms.requests[r.URL.Path]++
	ms.mu.Unlock()
}

func (ms *MockServer) handleTrending(w http.ResponseWriter, r *http.Request) {
	ms.record(r)

	ms.mu.RLock()
	fail := ms.trendingFails
	ms.mu.RUnlock()
	if fail {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "service unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, defaultTrendingData())
}

func (ms *MockServer) handleMarketChart(w http.ResponseWriter, r *http.Request) {
	ms.record(r)
	id := mux.Vars(r)["id"]

	ms.mu.RLock()
	fail := ms.chartFails[id]
	delay := ms.chartDelay
	ms.mu.RUnlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if fail {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid days"})
		return
	}
	writeJSON(w, http.StatusOK, marketChartData(days))
}

func (ms *MockServer) handleCoin(w http.ResponseWriter, r *http.Request) {
	ms.record(r)
	id := mux.Vars(r)["id"]

	coin, ok := defaultCoinData()[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "coin not found"})
		return
	}
	writeJSON(w, http.StatusOK, coin)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("MockServer: failed to write response")
	}
}

func defaultTrendingData() map[string]interface{} {
	item := func(id, name, symbol string, rank int, price, change float64, marketCap string) map[string]interface{} {
		return map[string]interface{}{
			"item": map[string]interface{}{
				"id":              id,
				"name":            name,
				"symbol":          symbol,
				"market_cap_rank": rank,
				"large":           "https://assets.example.com/" + id + ".png",
				"data": map[string]interface{}{
					"price":                       price,
					"price_change_percentage_24h": map[string]float64{"usd": change, "eur": change + 1},
					"market_cap":                  marketCap,
					"total_volume":                "$1,000,000",
				},
			},
		}
	}

	return map[string]interface{}{
		"coins": []interface{}{
			item("pepe", "Pepe", "PEPE", 30, 0.00001234, 15.5, "$5,000,000,000"),
			item("bitcoin", "Bitcoin", "BTC", 1, 65000.5, 2.25, "$1,280,000,000,000"),
			item("bonk", "Bonk", "BONK", 60, 0.00002, -7.75, "$1,500,000,000"),
			item("sui", "Sui", "SUI", 20, 1.5, -1.5, "$4,000,000,000"),
		},
	}
}

// marketChartData returns one daily point per day ending 2024-01-31 UTC
func marketChartData(days int) map[string]interface{} {
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	prices := make([][2]float64, 0, days)
	volumes := make([][2]float64, 0, days)
	for i := days - 1; i >= 0; i-- {
		ts := float64(end.AddDate(0, 0, -i).UnixMilli())
		prices = append(prices, [2]float64{ts, 100 + float64(i)})
		volumes = append(volumes, [2]float64{ts, 1000000 + float64(i)*1000})
	}
	return map[string]interface{}{
		"prices":        prices,
		"market_caps":   prices,
		"total_volumes": volumes,
	}
}

func defaultCoinData() map[string]interface{} {
	coin := func(id, name, symbol string, rank int, price, marketCap, change float64) map[string]interface{} {
		return map[string]interface{}{
			"id":              id,
			"name":            name,
			"symbol":          symbol,
			"market_cap_rank": rank,
			"image": map[string]string{
				"thumb": "https://assets.example.com/" + id + "-thumb.png",
				"small": "https://assets.example.com/" + id + "-small.png",
				"large": "https://assets.example.com/" + id + ".png",
			},
			"market_data": map[string]interface{}{
				"current_price":               map[string]float64{"usd": price},
				"market_cap":                  map[string]float64{"usd": marketCap},
				"total_volume":                map[string]float64{"usd": marketCap / 10},
				"price_change_percentage_24h": change,
			},
		}
	}

	return map[string]interface{}{
		"pepe":    coin("pepe", "Pepe", "pepe", 30, 0.00001234, 5.0e9, 15.5),
		"bitcoin": coin("bitcoin", "Bitcoin", "btc", 1, 65000.5, 1.28e12, 2.25),
		"bonk":    coin("bonk", "Bonk", "bonk", 60, 0.00002, 1.5e9, -7.75),
		"sui":     coin("sui", "Sui", "sui", 20, 1.5, 4.0e9, -1.5),
	}
}
