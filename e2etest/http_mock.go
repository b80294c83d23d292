package e2etest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

// MockServer imitates the CoinGecko endpoints the dashboard calls
type MockServer struct {
	server *httptest.Server

	mu       sync.Mutex
	requests map[string]int
	failNext map[string]int
}

// NewMockServer starts a mock CoinGecko API
func NewMockServer() *MockServer {
	m := &MockServer{
		requests: make(map[string]int),
		failNext: make(map[string]int),
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/v3/coins/markets", m.handleMarkets)
	router.HandleFunc("/api/v3/coins/list", m.handleCoinsList)
	router.HandleFunc("/api/v3/coins/{id}/market_chart", m.handleMarketChart)

	m.server = httptest.NewServer(router)
	return m
}

// GetURL returns the base URL of the mock
func (m *MockServer) GetURL() string {
	return m.server.URL
}

// Close stops the mock
func (m *MockServer) Close() {
	m.server.Close()
}

// Requests returns how many times an endpoint ("markets", "coins_list", "market_chart") was hit
func (m *MockServer) Requests(endpoint string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[endpoint]
}

// FailNext makes the next n calls to endpoint answer 404
func (m *MockServer) FailNext(endpoint string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext[endpoint] = n
}

// record counts a request and reports whether it should fail
func (m *MockServer) record(endpoint string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[endpoint]++
	if m.failNext[endpoint] > 0 {
		m.failNext[endpoint]--
		return true
	}
	return false
}

func (m *MockServer) handleMarkets(w http.ResponseWriter, r *http.Request) {
	if m.record("markets") {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, mockMarkets)
}

func (m *MockServer) handleCoinsList(w http.ResponseWriter, r *http.Request) {
	if m.record("coins_list") {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, mockCoinsList)
}

func (m *MockServer) handleMarketChart(w http.ResponseWriter, r *http.Request) {
	if m.record("market_chart") {
		http.Error(w, `{"error":"coin not found"}`, http.StatusNotFound)
		return
	}

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 {
		http.Error(w, `{"error":"invalid days"}`, http.StatusBadRequest)
		return
	}

	// one point per day ending at a fixed date, prices rising by 1 per day
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	prices := make([][2]float64, 0, days)
	caps := make([][2]float64, 0, days)
	volumes := make([][2]float64, 0, days)
	for i := days - 1; i >= 0; i-- {
		ts := float64(end.AddDate(0, 0, -i).UnixMilli())
		price := float64(100 + days - 1 - i)
		prices = append(prices, [2]float64{ts, price})
		caps = append(caps, [2]float64{ts, price * 1e6})
		volumes = append(volumes, [2]float64{ts, price * 1e4})
	}

	writeJSON(w, map[string]interface{}{
		"prices":        prices,
		"market_caps":   caps,
		"total_volumes": volumes,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

var mockCoinsList = []map[string]string{
	{"id": "bitcoin", "symbol": "btc", "name": "Bitcoin"},
	{"id": "ethereum", "symbol": "eth", "name": "Ethereum"},
	{"id": "ripple", "symbol": "xrp", "name": "XRP"},
	{"id": "solana", "symbol": "sol", "name": "Solana"},
}

var mockMarkets = []map[string]interface{}{
	{
		"id": "ethereum", "symbol": "eth", "name": "Ethereum", "image": "https://example.com/eth.png",
		"current_price": 3000.5, "market_cap": 300, "market_cap_rank": 2, "total_volume": 30,
		"price_change_percentage_1h_in_currency":  0.2,
		"price_change_percentage_24h_in_currency": -1.5,
		"price_change_percentage_7d_in_currency":  3.1,
		"price_change_percentage_30d_in_currency": nil,
		"last_updated": "2024-05-01T12:00:00.000Z",
	},
	{
		"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "image": "https://example.com/btc.png",
		"current_price": 64000, "market_cap": 600, "market_cap_rank": 1, "total_volume": 60,
		"price_change_percentage_1h_in_currency":  0.1,
		"price_change_percentage_24h_in_currency": 2.5,
		"price_change_percentage_7d_in_currency":  5,
		"price_change_percentage_30d_in_currency": 12,
		"last_updated": "2024-05-01T12:00:00.000Z",
	},
	{
		"id": "ripple", "symbol": "xrp", "name": "Ripple",
		"current_price": 0.5, "market_cap": 100, "market_cap_rank": 3, "total_volume": 10,
		"price_change_percentage_1h_in_currency":  -0.3,
		"price_change_percentage_24h_in_currency": -4,
		"price_change_percentage_7d_in_currency":  -2,
		"price_change_percentage_30d_in_currency": -10,
		"last_updated": "2024-05-01T12:00:00.000Z",
	},
}
