package coingecko_common

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoingeckoRequestBuilder_BuildURL(t *testing.T) {
	tests := []struct {
		name    string
		builder *CoingeckoRequestBuilder
		path    string
		query   url.Values
	}{
		{
			name:    "coins list without key",
			builder: NewCoingeckoRequestBuilder("https://api.coingecko.com/", "/api/v3/coins/list").WithCurrency("usd"),
			path:    "/api/v3/coins/list",
			query:   url.Values{"vs_currency": {"usd"}},
		},
		{
			name:    "markets with pro key",
			builder: NewCoingeckoRequestBuilder(COINGECKO_PRO_URL, "api/v3/coins/markets").WithKey(APIKey{Key: "secret", Type: ProKey}),
			path:    "/api/v3/coins/markets",
			query:   url.Values{ProKeyParam: {"secret"}},
		},
		{
			name: "market chart with demo key",
			builder: NewCoingeckoRequestBuilder(COINGECKO_PUBLIC_URL, "/api/v3/coins/bitcoin/market_chart").
				WithKey(APIKey{Key: "demo", Type: DemoKey}).
				With("days", "7"),
			path:  "/api/v3/coins/bitcoin/market_chart",
			query: url.Values{DemoKeyParam: {"demo"}, "days": {"7"}},
		},
		{
			name:    "anonymous key sends nothing",
			builder: NewCoingeckoRequestBuilder(COINGECKO_PUBLIC_URL, "/api/v3/coins/markets").WithKey(APIKey{Type: NoKey}),
			path:    "/api/v3/coins/markets",
			query:   url.Values{},
		},
		{
			name:    "key without value sends nothing",
			builder: NewCoingeckoRequestBuilder(COINGECKO_PUBLIC_URL, "/api/v3/coins/markets").WithKey(APIKey{Type: DemoKey}),
			path:    "/api/v3/coins/markets",
			query:   url.Values{},
		},
		{
			name:    "empty currency keeps earlier value",
			builder: NewCoingeckoRequestBuilder(COINGECKO_PUBLIC_URL, "/api/v3/coins/markets").WithCurrency("eur").WithCurrency(""),
			path:    "/api/v3/coins/markets",
			query:   url.Values{"vs_currency": {"eur"}},
		},
		{
			name:    "later value replaces earlier",
			builder: NewCoingeckoRequestBuilder(COINGECKO_PUBLIC_URL, "/api/v3/coins/markets").With("page", "1").With("page", "3"),
			path:    "/api/v3/coins/markets",
			query:   url.Values{"page": {"3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.builder.BuildURL())
			require.NoError(t, err)
			assert.Equal(t, tt.path, u.Path)
			assert.Equal(t, tt.query, u.Query())
		})
	}
}

func TestCoingeckoRequestBuilder_WithKeyReplacesEarlierKey(t *testing.T) {
	rb := NewCoingeckoRequestBuilder(COINGECKO_PRO_URL, "/api/v3/coins/markets")

	keyed := rb.WithKey(APIKey{Key: "first", Type: ProKey}).BuildURL()
	anonymous := rb.WithKey(APIKey{}).BuildURL()

	assert.Contains(t, keyed, ProKeyParam+"=first")
	assert.Equal(t, COINGECKO_PRO_URL+"/api/v3/coins/markets", anonymous)
}

func TestCoingeckoRequestBuilder_Build(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := NewCoingeckoRequestBuilder(COINGECKO_PUBLIC_URL, "/api/v3/coins/markets").
		WithCurrency("usd").
		Build(ctx)
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, UserAgent, req.Header.Get("User-Agent"))
	assert.Equal(t, "usd", req.URL.Query().Get("vs_currency"))
	assert.True(t, req.Context() == ctx)
}

func TestKeyType_QueryParam(t *testing.T) {
	assert.Equal(t, ProKeyParam, ProKey.QueryParam())
	assert.Equal(t, DemoKeyParam, DemoKey.QueryParam())
	assert.Empty(t, NoKey.QueryParam())
}
