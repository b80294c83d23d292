package coingecko_common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/status-im/market-dashboard/config"
)

func keysOfType(keys []APIKey, keyType KeyType) []string {
	var result []string
	for _, k := range keys {
		if k.Type == keyType {
			result = append(result, k.Key)
		}
	}
	return result
}

func TestAPIKeyManager_GetAvailableKeys(t *testing.T) {
	manager := NewAPIKeyManager(&config.APITokens{
		Tokens:     []string{"pro1", "pro2"},
		DemoTokens: []string{"demo1", "demo2"},
	})

	keys := manager.GetAvailableKeys()
	assert.Equal(t, []APIKey{
		{Key: "pro1", Type: ProKey},
		{Key: "pro2", Type: ProKey},
		{Key: "demo1", Type: DemoKey},
		{Key: "demo2", Type: DemoKey},
		{Key: "", Type: NoKey},
	}, keys)

	manager.MarkKeyAsFailed("pro1")
	manager.MarkKeyAsFailed("demo2")

	keys = manager.GetAvailableKeys()
	assert.Equal(t, []string{"pro2"}, keysOfType(keys, ProKey))
	assert.Equal(t, []string{"demo1"}, keysOfType(keys, DemoKey))
	assert.Equal(t, APIKey{Type: NoKey}, keys[len(keys)-1])
}

func TestAPIKeyManager_SingleProKeyIgnoresBackoff(t *testing.T) {
	manager := NewAPIKeyManager(&config.APITokens{Tokens: []string{"solo-pro"}})
	manager.MarkKeyAsFailed("solo-pro")

	assert.Equal(t, []string{"solo-pro"}, keysOfType(manager.GetAvailableKeys(), ProKey))
}

func TestAPIKeyManager_BackoffExpires(t *testing.T) {
	manager := NewAPIKeyManager(&config.APITokens{DemoTokens: []string{"demo1", "demo2"}})
	manager.backoff = 50 * time.Millisecond

	manager.MarkKeyAsFailed("demo1")
	assert.Equal(t, []string{"demo2"}, keysOfType(manager.GetAvailableKeys(), DemoKey))

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"demo1", "demo2"}, keysOfType(manager.GetAvailableKeys(), DemoKey))
}

func TestAPIKeyManager_NoTokens(t *testing.T) {
	manager := NewAPIKeyManager(nil)
	manager.MarkKeyAsFailed("")

	assert.Equal(t, []APIKey{{Type: NoKey}}, manager.GetAvailableKeys())
}

func TestKeyType_String(t *testing.T) {
	assert.Equal(t, "pro", ProKey.String())
	assert.Equal(t, "demo", DemoKey.String())
	assert.Equal(t, "none", NoKey.String())
}
