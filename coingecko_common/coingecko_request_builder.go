package coingecko_common

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const (
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com"
	COINGECKO_PRO_URL    = "https://pro-api.coingecko.com"

	// UserAgent is sent with every upstream request
	UserAgent = "market-dashboard/1.0"
)

// CoingeckoRequestBuilder assembles GET requests against one CoinGecko endpoint.
// Endpoint packages embed it and add their own With* helpers.
type CoingeckoRequestBuilder struct {
	endpoint string
	query    url.Values
	key      APIKey
}

// NewCoingeckoRequestBuilder joins baseURL and apiPath regardless of slashes
func NewCoingeckoRequestBuilder(baseURL, apiPath string) *CoingeckoRequestBuilder {
	return &CoingeckoRequestBuilder{
		endpoint: strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(apiPath, "/"),
		query:    url.Values{},
	}
}

// With sets a query parameter, replacing any earlier value
func (rb *CoingeckoRequestBuilder) With(key, value string) *CoingeckoRequestBuilder {
	rb.query.Set(key, value)
	return rb
}

// WithCurrency sets vs_currency; empty keeps the current value
func (rb *CoingeckoRequestBuilder) WithCurrency(currency string) *CoingeckoRequestBuilder {
	if currency != "" {
		rb.query.Set("vs_currency", currency)
	}
	return rb
}

// WithKey authenticates the request; the anonymous key sends nothing
func (rb *CoingeckoRequestBuilder) WithKey(key APIKey) *CoingeckoRequestBuilder {
	rb.key = key
	return rb
}

// BuildURL renders the endpoint with its query
func (rb *CoingeckoRequestBuilder) BuildURL() string {
	query := url.Values{}
	for k, v := range rb.query {
		query[k] = v
	}
	if !rb.key.Anonymous() {
		query.Set(rb.key.Type.QueryParam(), rb.key.Key)
	}

	if len(query) == 0 {
		return rb.endpoint
	}
	return rb.endpoint + "?" + query.Encode()
}

// Build creates the http.Request bound to ctx
func (rb *CoingeckoRequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	return req, nil
}
