package coingecko_markets

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"go.uber.org/zap"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/market_errors"
	"github.com/status-im/market-dashboard/metrics"
)

//go:generate mockgen -destination=mocks/api_client.go . APIClient

// APIClient defines interface for API operations
type APIClient interface {
	// FetchListings fetches a single page of market listings
	FetchListings(ctx context.Context, params ListingsParams) ([]RawMarket, error)
	// Healthy reports whether at least one fetch succeeded
	Healthy() bool
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config          *config.Config
	keyManager      cg.IAPIKeyManager
	httpClient      *cg.HTTPClientWithRetries
	successfulFetch atomic.Bool // Flag indicating if at least one fetch was successful
}

// NewCoinGeckoClient creates a new CoinGecko API client
func NewCoinGeckoClient(cfg *config.Config, limiterManager cg.IRateLimiterManager) *CoinGeckoClient {
	retryOpts := cg.DefaultRetryOptions()
	retryOpts.LogPrefix = "CoinGecko-Markets"

	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceListings)

	return &CoinGeckoClient{
		config:     cfg,
		keyManager: cg.NewAPIKeyManager(cfg.APITokens),
		httpClient: cg.NewHTTPClientWithRetries(retryOpts, metricsWriter, limiterManager),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *CoinGeckoClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchListings fetches one page of /coins/markets ordered by market cap
func (c *CoinGeckoClient) FetchListings(ctx context.Context, params ListingsParams) ([]RawMarket, error) {
	body, err := c.executeFetchRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	var markets []RawMarket
	if err := json.Unmarshal(body, &markets); err != nil {
		zap.L().Error("Error parsing markets response", zap.Error(err))
		return nil, market_errors.NewMalformedPayload("undecodable markets response: %v", err)
	}

	zap.L().Info("Fetched market listings",
		zap.String("currency", params.Currency),
		zap.Int("page", params.Page),
		zap.Int("items", len(markets)))

	c.successfulFetch.Store(true)

	return markets, nil
}

func (c *CoinGeckoClient) executeFetchRequest(ctx context.Context, params ListingsParams) ([]byte, error) {
	executor := func(apiKey cg.APIKey) ([]byte, bool, error) {
		baseURL := cg.BaseURLFor(c.config, apiKey.Type)

		requestBuilder := NewMarketRequestBuilder(baseURL).
			WithPage(params.Page).
			WithPerPage(params.PerPage).
			WithPriceChangePercentage(c.config.CoingeckoMarkets.PriceChangePercentage)
		requestBuilder.
			WithCurrency(params.Currency).
			WithKey(apiKey)

		request, err := requestBuilder.Build(ctx)
		if err != nil {
			return nil, false, err
		}

		_, body, duration, err := c.httpClient.ExecuteRequest(request)
		if err != nil {
			return nil, false, err
		}

		zap.L().Debug("Markets request successful",
			zap.String("key_type", apiKey.Type.String()),
			zap.Duration("duration", duration))

		return body, true, nil
	}

	onFailed := cg.CreateFailCallback(c.keyManager)
	availableKeys := c.keyManager.GetAvailableKeys()

	return cg.TryWithKeys(ctx, availableKeys, "CoinGecko-Markets", executor, onFailed)
}
