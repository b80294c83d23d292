package coingecko_market_chart

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

// APIClient defines interface for market chart API operations
type APIClient interface {
	// FetchMarketChart fetches the price, market cap and volume series of one coin
	FetchMarketChart(ctx context.Context, params MarketChartParams) (MarketChartResponse, error)
	// Healthy reports whether at least one fetch succeeded
	Healthy() bool
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config          *config.Config
	keyManager      cg.IAPIKeyManager
	httpClient      *cg.HTTPClientWithRetries
	successfulFetch atomic.Bool
}

// NewCoinGeckoClient creates a new CoinGecko market chart client
func NewCoinGeckoClient(cfg *config.Config, limiterManager cg.IRateLimiterManager) *CoinGeckoClient {
	retryOpts := cg.DefaultRetryOptions()
	retryOpts.LogPrefix = "CoinGecko-MarketChart"

	return &CoinGeckoClient{
		config:     cfg,
		keyManager: cg.NewAPIKeyManager(cfg.APITokens),
		httpClient: cg.NewHTTPClientWithRetries(retryOpts, metrics.NewMetricsWriter(metrics.ServiceHistory), limiterManager),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *CoinGeckoClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchMarketChart fetches /coins/{id}/market_chart
func (c *CoinGeckoClient) FetchMarketChart(ctx context.Context, params MarketChartParams) (MarketChartResponse, error) {
	body, err := c.executeFetchRequest(ctx, params)
	if err != nil {
		return MarketChartResponse{}, err
	}

	var chart MarketChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		zap.L().Error("Error parsing market chart response", zap.String("coin_id", params.ID), zap.Error(err))
		return MarketChartResponse{}, market_errors.NewMalformedPayload("undecodable market chart response for %s: %v", params.ID, err)
	}

	zap.L().Info("Fetched market chart",
		zap.String("coin_id", params.ID),
		zap.Int("days", params.Days),
		zap.Int("prices", len(chart.Prices)))

	c.successfulFetch.Store(true)

	return chart, nil
}

func (c *CoinGeckoClient) executeFetchRequest(ctx context.Context, params MarketChartParams) ([]byte, error) {
	executor := func(apiKey cg.APIKey) ([]byte, bool, error) {
		baseURL := cg.BaseURLFor(c.config, apiKey.Type)

		requestBuilder := NewMarketChartRequestBuilder(baseURL, params.ID).
			WithDays(params.Days).
			WithInterval(params.Interval)
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

		zap.L().Debug("Market chart request successful",
			zap.String("coin_id", params.ID),
			zap.String("key_type", apiKey.Type.String()),
			zap.Duration("duration", duration))

		return body, true, nil
	}

	onFailed := cg.CreateFailCallback(c.keyManager)
	availableKeys := c.keyManager.GetAvailableKeys()

	return cg.TryWithKeys(ctx, availableKeys, "CoinGecko-MarketChart", executor, onFailed)
}
