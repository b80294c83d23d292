package coingecko_markets

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

// Service provides listings fetching with a time-based cache in front of the API client
type Service struct {
	cache         cache.Cache
	config        *cfg.Config
	metricsWriter *metrics.MetricsWriter
	apiClient     APIClient
	inflight      *cg.SharedFetch
}

// NewService creates a listings service. The cache is shared with the rest of the process.
func NewService(cache cache.Cache, config *cfg.Config, apiClient APIClient) *Service {
	return &Service{
		cache:         cache,
		config:        config,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceListings),
		apiClient:     apiClient,
		inflight:      cg.NewSharedFetch(cg.DefaultSharedFetchTimeout),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.apiClient == nil {
		return fmt.Errorf("listings service: api client is not set")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy reports whether the provider has answered at least once
func (s *Service) Healthy() bool {
	return s.apiClient != nil && s.apiClient.Healthy()
}

// ResolveParams applies configured defaults and clamps out-of-range values.
// Zero values mean "not set"; corrections are reported as warnings.
func (s *Service) ResolveParams(params ListingsParams) (ListingsParams, []string) {
	marketsCfg := s.config.CoingeckoMarkets
	var warnings []string

	params.Currency = strings.ToLower(strings.TrimSpace(params.Currency))
	if params.Currency == "" {
		params.Currency = marketsCfg.Currency
	}

	switch {
	case params.PerPage == 0:
		params.PerPage = marketsCfg.PerPage
	case params.PerPage < 0:
		warnings = append(warnings, fmt.Sprintf("per_page %d is below 1, using 1", params.PerPage))
		params.PerPage = 1
	case params.PerPage > marketsCfg.MaxPerPage:
		warnings = append(warnings, fmt.Sprintf("per_page %d exceeds the provider limit, using %d", params.PerPage, marketsCfg.MaxPerPage))
		params.PerPage = marketsCfg.MaxPerPage
	}

	switch {
	case params.Page == 0:
		params.Page = marketsCfg.Page
	case params.Page < 0:
		warnings = append(warnings, fmt.Sprintf("page %d is below 1, using 1", params.Page))
		params.Page = 1
	}

	return params, warnings
}

// Listings returns the normalized listings payload for params, from cache when fresh
func (s *Service) Listings(ctx context.Context, params ListingsParams) (ListingsResult, error) {
	resolved, warnings := s.ResolveParams(params)
	for _, w := range warnings {
		zap.L().Warn("Listings parameter corrected", zap.String("warning", w))
	}

	key := resolved.CacheKey()
	loaded := false

	data, err := s.cache.GetOrLoad([]string{key}, func(missingKeys []string) (map[string][]byte, error) {
		loaded = true
		payloadBytes, err := s.fetchShared(ctx, key, resolved)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: payloadBytes}, nil
	}, false, s.config.CoingeckoMarkets.TTL)

	s.metricsWriter.RecordCacheLookup(!loaded)
	if err != nil {
		zap.L().Error("Failed to fetch listings", zap.String("key", key), zap.Error(err))
		return ListingsResult{Params: resolved, Warnings: warnings}, fmt.Errorf("fetch listings: %w", err)
	}

	raw, ok := data[key]
	if !ok {
		return ListingsResult{Params: resolved, Warnings: warnings}, market_errors.NewMalformedPayload("listings payload missing for %s", key)
	}

	var payload ListingsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ListingsResult{Params: resolved, Warnings: warnings}, market_errors.NewMalformedPayload("cached listings payload: %v", err)
	}
	payload.Currency = strings.ToUpper(resolved.Currency)

	status := cache.StatusHit
	if loaded {
		status = cache.StatusMiss
	}

	return ListingsResult{
		Payload:     payload,
		Params:      resolved,
		Warnings:    warnings,
		CacheStatus: status,
	}, nil
}

// fetchShared collapses concurrent fetches of the same key into one provider call.
// A caller whose ctx ends stops waiting without failing the others.
func (s *Service) fetchShared(ctx context.Context, key string, params ListingsParams) ([]byte, error) {
	return s.inflight.Do(ctx, key, func(ctx context.Context) ([]byte, error) {
		start := time.Now()
		defer func() {
			s.metricsWriter.RecordFetchDuration(time.Since(start))
		}()

		raw, err := s.apiClient.FetchListings(ctx, params)
		if err != nil {
			return nil, err
		}

		return json.Marshal(NormalizeListings(raw, params.Currency))
	})
}
