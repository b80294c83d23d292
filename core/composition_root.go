package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/api"
	"github.com/status-im/market-dashboard/cache"
	"github.com/status-im/market-dashboard/coingecko_coins"
	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/coingecko_market_chart"
	"github.com/status-im/market-dashboard/coingecko_markets"
	"github.com/status-im/market-dashboard/config"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// One limiter manager for every client so they share per-key budgets
	limiterManager := cg.NewRateLimiterManager(cfg.APIKeys)
	if cfg.OverrideCoingeckoPublicURL != "" {
		limiterManager.AddPublicHost(cfg.OverrideCoingeckoPublicURL)
	}

	// Create Cache service
	cacheService := cache.NewService(cfg.Cache)
	registry.Register(cacheService)

	// Create Coins service (symbol index used by history)
	coinsService := coingecko_coins.NewService(cfg, coingecko_coins.NewCoinGeckoClient(cfg, limiterManager))
	registry.Register(coinsService)

	// Create Markets service with cache dependency
	marketsService := coingecko_markets.NewService(cacheService, cfg, coingecko_markets.NewCoinGeckoClient(cfg, limiterManager))
	registry.Register(marketsService)

	// Create Market Chart service with cache and symbol index dependencies
	marketChartService := coingecko_market_chart.NewService(cacheService, cfg,
		coingecko_market_chart.NewCoinGeckoClient(cfg, limiterManager), coinsService)
	registry.Register(marketChartService)

	// Create HTTP server and register it last so it stops first
	server := api.New(cfg.Server.Port, marketsService, marketChartService, coinsService)
	registry.Register(server)

	zap.L().Info("Services registered", zap.Int("count", registry.Len()))

	return registry, nil
}
