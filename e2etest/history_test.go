package e2etest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type historyBody struct {
	Symbol  string `json:"symbol"`
	Days    int    `json:"days"`
	Samples []struct {
		Timestamp string   `json:"timestamp"`
		Price     float64  `json:"price"`
		MarketCap *float64 `json:"market_cap"`
	} `json:"samples"`
	Warnings []string `json:"warnings"`
}

func TestHistoryEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	t.Run("Days above the limit are clamped", func(t *testing.T) {
		var history historyBody
		resp := getJSON(t, env.ServerBaseURL+"/api/v1/history/btc?days=500", &history)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "BTC", history.Symbol)
		assert.Equal(t, 365, history.Days)
		assert.Len(t, history.Samples, 365)
		require.Len(t, history.Warnings, 1)
		assert.Contains(t, history.Warnings[0], "limiting to 365 days")
		assert.Contains(t, resp.Header.Get("Warning"), "limiting to 365 days")
		assert.Equal(t, "miss", resp.Header.Get("Cache-Status"))
	})

	t.Run("Repeated request is served from cache", func(t *testing.T) {
		before := env.MockServer.Requests("market_chart")

		var history historyBody
		resp := getJSON(t, env.ServerBaseURL+"/api/v1/history/BTC?days=365", &history)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "hit", resp.Header.Get("Cache-Status"))
		assert.Empty(t, history.Warnings)
		assert.Equal(t, before, env.MockServer.Requests("market_chart"))
	})

	t.Run("Samples are ordered and complete", func(t *testing.T) {
		var history historyBody
		resp := getJSON(t, env.ServerBaseURL+"/api/v1/history/eth?days=7", &history)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, history.Samples, 7)
		assert.Equal(t, 100.0, history.Samples[0].Price)
		assert.Equal(t, 106.0, history.Samples[6].Price)
		require.NotNil(t, history.Samples[6].MarketCap)
		assert.Equal(t, 106e6, *history.Samples[6].MarketCap)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		before := env.MockServer.Requests("market_chart")

		resp := getJSON(t, env.ServerBaseURL+"/api/v1/history/ZZZ", nil)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, before, env.MockServer.Requests("market_chart"), "Unresolved symbols never reach the provider")
	})
}
