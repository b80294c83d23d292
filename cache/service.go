package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/metrics"
)

// Service implements Cache interface with go-cache only
type Service struct {
	goCache       *GoCache
	config        Config
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	return NewServiceWithClock(config, time.Now)
}

// NewServiceWithClock creates a cache service that reads time from now.
// With go_cache disabled nothing is stored and every lookup goes to the loader.
func NewServiceWithClock(config Config, now Clock) *Service {
	s := &Service{
		config:        config,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceCache),
	}
	if config.GoCache.Enabled {
		s.goCache = NewGoCache(config.GoCache.DefaultExpiration, config.GoCache.StaleRetention, config.GoCache.CleanupInterval, now)
	}
	return s
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.goCache == nil {
		zap.L().Warn("In-memory cache disabled, every request goes upstream")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.goCache != nil {
		s.goCache.Clear()
		s.metricsWriter.RecordCacheSize(0)
	}
}

// GetOrLoad retrieves data by keys from local cache or loads them using LoaderFunc
func (s *Service) GetOrLoad(keys []string, loader LoaderFunc, loadOnlyMissingKeys bool, ttl time.Duration) (map[string][]byte, error) {
	if len(keys) == 0 {
		return make(map[string][]byte), nil
	}

	// Step 1: Get from local cache
	result, missingKeys := s.getFromLocalCache(keys)

	// Step 2: Load missing data if needed
	if len(missingKeys) > 0 {
		keysToLoad := s.determineKeysToLoad(keys, missingKeys, loadOnlyMissingKeys)
		loadedData, err := s.loadAndCacheLocal(keysToLoad, loader, ttl)
		if err != nil {
			return nil, err
		}
		s.mergeResults(result, loadedData)
	}

	// Step 3: Prepare final result
	return s.prepareFinalResult(keys, result, loadOnlyMissingKeys), nil
}

// Get retrieves fresh data by keys
func (s *Service) Get(keys []string) (map[string][]byte, []string, error) {
	found, missing := s.getFromLocalCache(keys)
	return found, missing, nil
}

// Set stores data with the given ttl; 0 uses the configured default
func (s *Service) Set(data map[string][]byte, ttl time.Duration) error {
	if s.goCache != nil && len(data) > 0 {
		s.goCache.Set(data, ttl)
	}
	return nil
}

// Peek returns an entry even if it has expired
func (s *Service) Peek(key string) (Entry, bool) {
	if s.goCache == nil {
		return Entry{}, false
	}
	return s.goCache.Peek(key)
}

// getFromLocalCache retrieves data from go-cache only
func (s *Service) getFromLocalCache(keys []string) (map[string][]byte, []string) {
	if s.goCache == nil {
		return make(map[string][]byte), keys
	}
	l1Result := s.goCache.Get(keys)
	return l1Result.Found, l1Result.MissingKeys
}

// loadAndCacheLocal loads data using loader function and updates local cache only.
// A failed load leaves existing entries untouched.
func (s *Service) loadAndCacheLocal(keysToLoad []string, loader LoaderFunc, ttl time.Duration) (map[string][]byte, error) {
	loadedData, err := loader(keysToLoad)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	if s.goCache != nil && len(loadedData) > 0 {
		s.goCache.Set(loadedData, ttl)
		s.metricsWriter.RecordCacheSize(s.goCache.ItemCount())
	}

	return loadedData, nil
}

// mergeResults merges source map into destination map
func (s *Service) mergeResults(dest, src map[string][]byte) {
	for key, value := range src {
		dest[key] = value
	}
}

// determineKeysToLoad decides which keys to load based on loadOnlyMissingKeys parameter
func (s *Service) determineKeysToLoad(originalKeys, missingKeys []string, loadOnlyMissingKeys bool) []string {
	if loadOnlyMissingKeys {
		return missingKeys
	}
	return originalKeys
}

// prepareFinalResult creates the final result map based on loadOnlyMissingKeys parameter
func (s *Service) prepareFinalResult(originalKeys []string, cachedData map[string][]byte, loadOnlyMissingKeys bool) map[string][]byte {
	if loadOnlyMissingKeys {
		return cachedData
	}

	result := make(map[string][]byte)
	for _, key := range originalKeys {
		if value, exists := cachedData[key]; exists {
			result[key] = value
		}
	}
	return result
}
