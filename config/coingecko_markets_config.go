package config

import (
	"time"
)

// CoingeckoMarketsFetcher configures the listings (coins/markets) client
type CoingeckoMarketsFetcher struct {
	// Currency is the quote currency used when a request does not name one
	Currency string `yaml:"currency" validate:"required"`

	// PerPage is the default page size, MaxPerPage the provider limit
	PerPage    int `yaml:"per_page" validate:"min=1"`
	MaxPerPage int `yaml:"max_per_page" validate:"min=1,max=250"`

	// Page is the default page number (1-based)
	Page int `yaml:"page" validate:"min=1"`

	// PriceChangePercentage lists the windows requested from the provider
	PriceChangePercentage []string `yaml:"price_change_percentage"`

	// TTL is how long a fetched listings page is served from cache
	TTL time.Duration `yaml:"ttl" validate:"gt=0"`
}

// GetDefaultMarketsConfig returns default configuration for the listings client
func GetDefaultMarketsConfig() CoingeckoMarketsFetcher {
	return CoingeckoMarketsFetcher{
		Currency:              "usd",
		PerPage:               100,
		MaxPerPage:            250,
		Page:                  1,
		PriceChangePercentage: []string{"1h", "24h", "7d", "30d"},
		TTL:                   60 * time.Second,
	}
}
