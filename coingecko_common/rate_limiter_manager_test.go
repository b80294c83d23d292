package coingecko_common

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-dashboard/config"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestRateLimiterManager_GetLimiterForURL(t *testing.T) {
	manager := NewRateLimiterManager(config.APIKeyConfig{
		Pro:   config.RateLimit{RateLimitPerMinute: 300, Burst: 10},
		Demo:  config.RateLimit{RateLimitPerMinute: 60, Burst: 2},
		NoKey: config.RateLimit{RateLimitPerMinute: 30, Burst: 1},
	})

	tests := []struct {
		name            string
		url             string
		expectedLimiter bool
	}{
		{"pro key", "https://pro-api.coingecko.com/api/v3/coins/markets?x_cg_pro_api_key=test-pro-key", true},
		{"demo key", "https://api.coingecko.com/api/v3/coins/markets?x_cg_demo_api_key=test-demo-key", true},
		{"public api without key", "https://api.coingecko.com/api/v3/coins/markets", true},
		{"pro host without key", "https://pro-api.coingecko.com/api/v3/coins/list", true},
		{"unrelated host", "https://example.com/api/data", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := manager.GetLimiterForURL(mustParse(t, tt.url))
			assert.Equal(t, tt.expectedLimiter, limiter != nil)
		})
	}
}

func TestRateLimiterManager_NilChecks(t *testing.T) {
	manager := NewRateLimiterManager(config.APIKeyConfig{})
	assert.Nil(t, manager.GetLimiterForURL(nil))

	var nilManager *RateLimiterManager
	assert.Nil(t, nilManager.GetLimiterForURL(&url.URL{}))
}

func TestRateLimiterManager_SharedPerKey(t *testing.T) {
	manager := NewRateLimiterManager(config.APIKeyConfig{})

	markets := manager.GetLimiterForURL(mustParse(t, "https://pro-api.coingecko.com/api/v3/coins/markets?x_cg_pro_api_key=same"))
	chart := manager.GetLimiterForURL(mustParse(t, "https://pro-api.coingecko.com/api/v3/coins/bitcoin/market_chart?x_cg_pro_api_key=same"))
	other := manager.GetLimiterForURL(mustParse(t, "https://pro-api.coingecko.com/api/v3/coins/markets?x_cg_pro_api_key=other"))
	public := manager.GetLimiterForURL(mustParse(t, "https://api.coingecko.com/api/v3/coins/markets"))

	assert.Same(t, markets, chart)
	assert.NotSame(t, markets, other)
	assert.NotSame(t, markets, public)
}

func TestRateLimiterManager_Rates(t *testing.T) {
	manager := NewRateLimiterManager(config.APIKeyConfig{
		Pro: config.RateLimit{RateLimitPerMinute: 600, Burst: 15},
	})

	pro := manager.GetLimiterForURL(mustParse(t, "https://pro-api.coingecko.com/api/v3/ping?x_cg_pro_api_key=k"))
	demo := manager.GetLimiterForURL(mustParse(t, "https://api.coingecko.com/api/v3/ping?x_cg_demo_api_key=d"))
	noKey := manager.GetLimiterForURL(mustParse(t, "https://api.coingecko.com/api/v3/ping"))

	assert.Equal(t, 15, pro.Burst())
	assert.InDelta(t, 10.0, float64(pro.Limit()), 0.01)
	assert.InDelta(t, float64(defaultDemoRPM)/60.0, float64(demo.Limit()), 0.01)
	assert.InDelta(t, float64(defaultNoKeyRPM)/60.0, float64(noKey.Limit()), 0.01)
	assert.Equal(t, 1, noKey.Burst())
}

func TestRateLimiterManager_SetConfigRebuildsChangedTypes(t *testing.T) {
	manager := NewRateLimiterManager(config.APIKeyConfig{})
	u := mustParse(t, "https://api.coingecko.com/api/v3/coins/markets")
	before := manager.GetLimiterForURL(u)

	manager.SetConfig(config.APIKeyConfig{NoKey: config.RateLimit{RateLimitPerMinute: 120, Burst: 4}})

	after := manager.GetLimiterForURL(u)
	assert.NotSame(t, before, after)
	assert.Equal(t, 4, after.Burst())
	assert.InDelta(t, 2.0, float64(after.Limit()), 0.01)
}

func TestRateLimiterManager_AddPublicHost(t *testing.T) {
	manager := NewRateLimiterManager(config.APIKeyConfig{})
	u := mustParse(t, "http://127.0.0.1:9999/api/v3/coins/markets")
	assert.Nil(t, manager.GetLimiterForURL(u))

	manager.AddPublicHost("http://127.0.0.1:9999")
	assert.NotNil(t, manager.GetLimiterForURL(u))

	manager.AddPublicHost("::not a url")
}
