package cache

import "time"

// Config represents cache configuration
type Config struct {
	// GoCache configuration
	GoCache GoCacheConfig `yaml:"go_cache"`
}

// GoCacheConfig configuration for in-memory go-cache
type GoCacheConfig struct {
	// DefaultExpiration is the freshness window used when Set is called with ttl 0
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// StaleRetention is how long an expired entry stays inspectable before
	// the janitor removes it. Expired entries are never served.
	StaleRetention time.Duration `yaml:"stale_retention"`

	// CleanupInterval interval for cleaning up expired items
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Enabled turns caching on; when false nothing is stored and every lookup loads
	Enabled bool `yaml:"enabled"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		GoCache: GoCacheConfig{
			DefaultExpiration: 60 * time.Second,
			StaleRetention:    10 * time.Minute,
			CleanupInterval:   5 * time.Minute,
			Enabled:           true,
		},
	}
}
