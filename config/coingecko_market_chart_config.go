package config

import (
	"time"
)

// CoingeckoMarketChartFetcher defines configuration for the history (market_chart) client
type CoingeckoMarketChartFetcher struct {
	// Currency is the quote currency for historical series
	Currency string `yaml:"currency" validate:"required"`

	// DefaultDays is used when the requested lookback is not a number
	DefaultDays int `yaml:"default_days" validate:"min=1"`

	// MaxDays is the longest lookback public API users may query.
	// Larger requests are clamped to it with a warning.
	MaxDays int `yaml:"max_days" validate:"min=1,max=365"`

	// Interval is passed to the provider; "daily" gives one sample per day
	Interval string `yaml:"interval" validate:"omitempty,oneof=5m hourly daily"`

	// TTL is how long a fetched series is served from cache
	TTL time.Duration `yaml:"ttl" validate:"gt=0"`
}

// GetDefaultMarketChartConfig returns default configuration for market chart service
func GetDefaultMarketChartConfig() CoingeckoMarketChartFetcher {
	return CoingeckoMarketChartFetcher{
		Currency:    "usd",
		DefaultDays: 30,
		MaxDays:     365,
		Interval:    "daily",
		TTL:         60 * time.Second,
	}
}
