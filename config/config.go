package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/status-im/market-dashboard/cache"
)

type Config struct {
	Server               ServerConfig                `yaml:"server"`
	Log                  LogConfig                   `yaml:"log"`
	Cache                cache.Config                `yaml:"cache"`
	CoingeckoMarkets     CoingeckoMarketsFetcher     `yaml:"coingecko_markets"`
	CoingeckoMarketChart CoingeckoMarketChartFetcher `yaml:"coingecko_market_chart"`
	CoingeckoCoins       CoingeckoCoinsListFetcher   `yaml:"coingecko_coins"`
	APIKeys              APIKeyConfig                `yaml:"api_keys"`
	TokensFile           string                      `yaml:"tokens_file"`
	APITokens            *APITokens                  `yaml:"-"`

	OverrideCoingeckoPublicURL string `yaml:"override_coingecko_public_url" validate:"omitempty,url"`
	OverrideCoingeckoProURL    string `yaml:"override_coingecko_pro_url" validate:"omitempty,url"`
}

// ServerConfig configures the HTTP presentation layer
type ServerConfig struct {
	Port string `yaml:"port" validate:"required,numeric"`
}

var validate = validator.New()

// DefaultConfig returns a configuration usable without a config file
func DefaultConfig() *Config {
	return &Config{
		Server:               ServerConfig{Port: "8080"},
		Log:                  GetDefaultLogConfig(),
		Cache:                cache.DefaultCacheConfig(),
		CoingeckoMarkets:     GetDefaultMarketsConfig(),
		CoingeckoMarketChart: GetDefaultMarketChartConfig(),
		CoingeckoCoins:       GetDefaultCoinsListConfig(),
		APITokens:            &APITokens{Tokens: []string{}},
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig, loads API
// tokens, applies environment overrides and validates the result
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if config.TokensFile != "" {
		apiTokens, err := LoadAPITokens(config.TokensFile)
		if err != nil {
			zap.L().Warn("Error loading API tokens, using public API without authentication",
				zap.String("tokens_file", config.TokensFile), zap.Error(err))
			config.APITokens = &APITokens{Tokens: []string{}}
		} else {
			config.APITokens = apiTokens
		}
	}

	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides lets deployments change a few settings without editing the file
func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if publicURL := os.Getenv("COINGECKO_PUBLIC_URL"); publicURL != "" {
		c.OverrideCoingeckoPublicURL = publicURL
	}
}

// Validate checks struct tags and cross-field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.CoingeckoMarketChart.DefaultDays > c.CoingeckoMarketChart.MaxDays {
		return fmt.Errorf("invalid config: coingecko_market_chart.default_days (%d) exceeds max_days (%d)",
			c.CoingeckoMarketChart.DefaultDays, c.CoingeckoMarketChart.MaxDays)
	}
	if c.CoingeckoMarkets.PerPage > c.CoingeckoMarkets.MaxPerPage {
		return fmt.Errorf("invalid config: coingecko_markets.per_page (%d) exceeds max_per_page (%d)",
			c.CoingeckoMarkets.PerPage, c.CoingeckoMarkets.MaxPerPage)
	}
	return nil
}
