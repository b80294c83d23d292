package config

import "time"

// CoingeckoCoinsListFetcher configures the symbol index built from coins/list
type CoingeckoCoinsListFetcher struct {
	// BuildOnStart builds the index when the service starts instead of on first lookup
	BuildOnStart bool `yaml:"build_on_start"`

	// RefreshInterval rebuilds the index in the background; zero disables refreshing
	RefreshInterval time.Duration `yaml:"refresh_interval" validate:"min=0"`
}

func GetDefaultCoinsListConfig() CoingeckoCoinsListFetcher {
	return CoingeckoCoinsListFetcher{
		BuildOnStart:    false,
		RefreshInterval: 24 * time.Hour,
	}
}
