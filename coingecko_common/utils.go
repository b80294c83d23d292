package coingecko_common

import (
	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/config"
)

// BaseURLFor picks the host a key must talk to. Pro keys only work on the pro
// host; demo keys and the anonymous tier share the public one.
func BaseURLFor(cfg *config.Config, keyType KeyType) string {
	base, override := COINGECKO_PUBLIC_URL, cfg.OverrideCoingeckoPublicURL
	if keyType == ProKey {
		base, override = COINGECKO_PRO_URL, cfg.OverrideCoingeckoProURL
	}
	if override == "" {
		return base
	}
	zap.L().Debug("Using overridden CoinGecko URL", zap.Stringer("key_type", keyType), zap.String("url", override))
	return override
}

// NewRequestFor starts a builder for apiPath on the host matching key
func NewRequestFor(cfg *config.Config, key APIKey, apiPath string) *CoingeckoRequestBuilder {
	return NewCoingeckoRequestBuilder(BaseURLFor(cfg, key.Type), apiPath).WithKey(key)
}
