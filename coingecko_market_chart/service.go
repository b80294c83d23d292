package coingecko_market_chart

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/cache"
	cg "github.com/status-im/market-dashboard/coingecko_common"
	cfg "github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/market_errors"
	"github.com/status-im/market-dashboard/metrics"
)

//go:generate mockgen -destination=mocks/symbol_resolver.go . ISymbolResolver

// ISymbolResolver maps a ticker symbol to a provider coin id
type ISymbolResolver interface {
	Resolve(ctx context.Context, symbol string) (string, error)
}

// Service provides historical series with a time-based cache in front of the API client
type Service struct {
	cache         cache.Cache
	config        *cfg.Config
	metricsWriter *metrics.MetricsWriter
	apiClient     APIClient
	resolver      ISymbolResolver
	inflight      *cg.SharedFetch
}

// NewService creates a history service
func NewService(cache cache.Cache, config *cfg.Config, apiClient APIClient, resolver ISymbolResolver) *Service {
	return &Service{
		cache:         cache,
		config:        config,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceHistory),
		apiClient:     apiClient,
		resolver:      resolver,
		inflight:      cg.NewSharedFetch(cg.DefaultSharedFetchTimeout),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.apiClient == nil {
		return fmt.Errorf("history service: api client is not set")
	}
	if s.resolver == nil {
		return fmt.Errorf("history service: symbol resolver is not set")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy reports whether the provider has answered at least once
func (s *Service) Healthy() bool {
	return s.apiClient != nil && s.apiClient.Healthy()
}

// History returns the normalized daily series of symbol over the last daysRaw days.
// daysRaw is corrected rather than rejected; corrections come back as warnings.
func (s *Service) History(ctx context.Context, symbol, daysRaw string) (HistoryResult, error) {
	chartCfg := s.config.CoingeckoMarketChart
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	days, warnings := ParseDays(daysRaw, chartCfg.DefaultDays, chartCfg.MaxDays)
	for _, w := range warnings {
		zap.L().Warn("History parameter corrected", zap.String("symbol", symbol), zap.String("warning", w))
	}

	result := HistoryResult{Symbol: symbol, Days: days, Warnings: warnings}
	if symbol == "" {
		return result, market_errors.NewInvalidParameter("symbol is required")
	}

	key := HistoryCacheKey(symbol, days)
	loaded := false

	data, err := s.cache.GetOrLoad([]string{key}, func(missingKeys []string) (map[string][]byte, error) {
		loaded = true
		payloadBytes, err := s.fetchShared(ctx, key, symbol, days)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: payloadBytes}, nil
	}, false, chartCfg.TTL)

	s.metricsWriter.RecordCacheLookup(!loaded)
	if err != nil {
		zap.L().Error("Failed to fetch history", zap.String("key", key), zap.Error(err))
		return result, fmt.Errorf("fetch history: %w", err)
	}

	raw, ok := data[key]
	if !ok {
		return result, market_errors.NewMalformedPayload("history payload missing for %s", key)
	}
	if err := json.Unmarshal(raw, &result.Payload); err != nil {
		return result, market_errors.NewMalformedPayload("cached history payload: %v", err)
	}

	result.CacheStatus = cache.StatusHit
	if loaded {
		result.CacheStatus = cache.StatusMiss
	}

	return result, nil
}

// fetchShared resolves the coin id and fetches its chart once per key, however many callers wait.
// A caller whose ctx ends stops waiting without failing the others.
func (s *Service) fetchShared(ctx context.Context, key, symbol string, days int) ([]byte, error) {
	return s.inflight.Do(ctx, key, func(ctx context.Context) ([]byte, error) {
		id, err := s.resolver.Resolve(ctx, symbol)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		defer func() {
			s.metricsWriter.RecordFetchDuration(time.Since(start))
		}()

		params := MarketChartParams{
			ID:       id,
			Currency: s.config.CoingeckoMarketChart.Currency,
			Days:     days,
			Interval: s.config.CoingeckoMarketChart.Interval,
		}
		chart, err := s.apiClient.FetchMarketChart(ctx, params)
		if err != nil {
			return nil, err
		}

		return json.Marshal(NormalizeHistory(chart, symbol, params.Currency, time.Now()))
	})
}
