package coingecko_common

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/config"
)

// KeyBackoff is how long a failed key is skipped before it is tried again
const KeyBackoff = 5 * time.Minute

// Query parameters CoinGecko reads the key from
const (
	ProKeyParam  = "x_cg_pro_api_key"
	DemoKeyParam = "x_cg_demo_api_key"
)

// KeyType defines the API key type
type KeyType int

const (
	NoKey KeyType = iota
	ProKey
	DemoKey
)

func (k KeyType) String() string {
	switch k {
	case ProKey:
		return "pro"
	case DemoKey:
		return "demo"
	default:
		return "none"
	}
}

// QueryParam is the query parameter carrying a key of this type, empty for NoKey
func (k KeyType) QueryParam() string {
	switch k {
	case ProKey:
		return ProKeyParam
	case DemoKey:
		return DemoKeyParam
	default:
		return ""
	}
}

// APIKey is one credential to try against the provider.
// The zero value is the anonymous public tier.
type APIKey struct {
	Key  string
	Type KeyType
}

// Anonymous reports whether the key carries no credential
func (k APIKey) Anonymous() bool {
	return k.Type == NoKey || k.Key == ""
}

// IAPIKeyManager hands out keys in the order they should be tried
type IAPIKeyManager interface {
	// GetAvailableKeys lists pro keys, then demo keys, then the anonymous tier.
	// Keys in backoff are left out, except a lone pro key.
	GetAvailableKeys() []APIKey

	MarkKeyAsFailed(key string)
}

// APIKeyManager rotates the configured CoinGecko tokens
type APIKeyManager struct {
	pro     []string
	demo    []string
	backoff time.Duration

	mu       sync.RWMutex
	failedAt map[string]time.Time
}

// NewAPIKeyManager copies the tokens so later config edits do not leak in
func NewAPIKeyManager(apiTokens *config.APITokens) *APIKeyManager {
	m := &APIKeyManager{
		backoff:  KeyBackoff,
		failedAt: make(map[string]time.Time),
	}
	if apiTokens != nil {
		m.pro = append([]string(nil), apiTokens.Tokens...)
		m.demo = append([]string(nil), apiTokens.DemoTokens...)
	}
	return m
}

func (m *APIKeyManager) coolingDown(key string, now time.Time) bool {
	failed, ok := m.failedAt[key]
	return ok && now.Sub(failed) < m.backoff
}

// GetAvailableKeys implements IAPIKeyManager
func (m *APIKeyManager) GetAvailableKeys() []APIKey {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	keys := make([]APIKey, 0, len(m.pro)+len(m.demo)+1)

	for _, key := range m.pro {
		// a single pro key is still better than the demo tier
		if len(m.pro) == 1 || !m.coolingDown(key, now) {
			keys = append(keys, APIKey{Key: key, Type: ProKey})
		}
	}
	for _, key := range m.demo {
		if !m.coolingDown(key, now) {
			keys = append(keys, APIKey{Key: key, Type: DemoKey})
		}
	}

	return append(keys, APIKey{Type: NoKey})
}

// MarkKeyAsFailed puts key into backoff
func (m *APIKeyManager) MarkKeyAsFailed(key string) {
	if key == "" {
		return
	}

	m.mu.Lock()
	m.failedAt[key] = time.Now()
	m.mu.Unlock()

	zap.L().Warn("API key marked as failed", zap.Duration("backoff", m.backoff))
}
