package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache in-memory entry store on top of go-cache.
// Freshness is decided against the injected clock; go-cache only evicts
// entries once their stale retention has passed.
type GoCache struct {
	cache             *cache.Cache
	defaultExpiration time.Duration
	staleRetention    time.Duration
	now               Clock
}

// NewGoCache creates a new GoCache instance
// defaultExpiration: freshness window for Set calls with timeout 0
// staleRetention: how long expired entries stay available to Peek
// cleanupInterval: interval for cleaning up expired items
func NewGoCache(defaultExpiration, staleRetention, cleanupInterval time.Duration, now Clock) *GoCache {
	if now == nil {
		now = time.Now
	}
	return &GoCache{
		cache:             cache.New(defaultExpiration+staleRetention, cleanupInterval),
		defaultExpiration: defaultExpiration,
		staleRetention:    staleRetention,
		now:               now,
	}
}

// GetResult represents the result of a Get operation
type GetResult struct {
	Found       map[string][]byte // keys that were found in cache and are fresh
	MissingKeys []string          // keys that were not found or have expired
}

// Get retrieves fresh values for the given keys
func (gc *GoCache) Get(keys []string) GetResult {
	result := GetResult{
		Found:       make(map[string][]byte),
		MissingKeys: make([]string, 0),
	}

	now := gc.now()
	for _, key := range keys {
		entry, ok := gc.Peek(key)
		if !ok || !entry.FreshAt(now) {
			result.MissingKeys = append(result.MissingKeys, key)
			continue
		}
		result.Found[key] = entry.Data
	}

	return result
}

// Peek returns the stored entry regardless of freshness
func (gc *GoCache) Peek(key string) (Entry, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return Entry{}, false
	}
	entry, ok := value.(Entry)
	return entry, ok
}

// Set stores key-value pairs with specified timeout
// If timeout is 0, uses cache's default expiration
func (gc *GoCache) Set(data map[string][]byte, timeout time.Duration) {
	if timeout <= 0 {
		timeout = gc.defaultExpiration
	}
	now := gc.now()
	for key, value := range data {
		gc.cache.Set(key, Entry{Data: value, StoredAt: now, TTL: timeout}, timeout+gc.staleRetention)
	}
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache, stale ones included
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}

// DeleteExpired manually triggers deletion of entries past their retention
func (gc *GoCache) DeleteExpired() {
	gc.cache.DeleteExpired()
}
