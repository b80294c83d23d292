package coingecko_coins

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

const (
	// Endpoint for the full coin list
	COINS_LIST_API_PATH = "/api/v3/coins/list"
)

// Coin is one entry of the /coins/list response
type Coin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

//go:generate mockgen -destination=mocks/client.go . IClient

// IClient fetches the provider's coin list
type IClient interface {
	FetchCoinsList(ctx context.Context) ([]Coin, error)
}

// CoinGeckoClient implements IClient
type CoinGeckoClient struct {
	config          *config.Config
	keyManager      cg.IAPIKeyManager
	httpClient      *cg.HTTPClientWithRetries
	successfulFetch atomic.Bool
}

// NewCoinGeckoClient creates a new coins list client
func NewCoinGeckoClient(cfg *config.Config, limiterManager cg.IRateLimiterManager) *CoinGeckoClient {
	retryOpts := cg.DefaultRetryOptions()
	retryOpts.LogPrefix = "CoinGecko-CoinsList"

	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceCoinsList)

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

// FetchCoinsList retrieves every coin known to the provider
func (c *CoinGeckoClient) FetchCoinsList(ctx context.Context) ([]Coin, error) {
	executor := func(apiKey cg.APIKey) ([]byte, bool, error) {
		request, err := cg.NewRequestFor(c.config, apiKey, COINS_LIST_API_PATH).Build(ctx)
		if err != nil {
			return nil, false, err
		}

		_, body, _, err := c.httpClient.ExecuteRequest(request)
		if err != nil {
			return nil, false, err
		}
		return body, true, nil
	}

	body, err := cg.TryWithKeys(ctx, c.keyManager.GetAvailableKeys(), "CoinGecko-CoinsList", executor, cg.CreateFailCallback(c.keyManager))
	if err != nil {
		return nil, err
	}

	var coins []Coin
	if err := json.Unmarshal(body, &coins); err != nil {
		return nil, market_errors.NewMalformedPayload("undecodable coins list: %v", err)
	}

	zap.L().Info("Fetched coins list", zap.Int("coins", len(coins)))
	c.successfulFetch.Store(true)

	return coins, nil
}
