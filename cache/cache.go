package cache

import "time"

// LoaderFunc defines a function for loading data by missing keys.
// The function receives a list of keys that are missing from the cache,
// and should return a key->data map for those keys.
type LoaderFunc func(missingKeys []string) (map[string][]byte, error)

// Clock returns the current time; tests replace it to move time forward
type Clock func() time.Time

// Entry is a cached payload together with the time it was written
type Entry struct {
	Data     []byte
	StoredAt time.Time
	TTL      time.Duration
}

// FreshAt reports whether the entry may still be served at now
func (e Entry) FreshAt(now time.Time) bool {
	return now.Sub(e.StoredAt) < e.TTL
}

//go:generate mockgen -destination=mocks/cache.go . Cache

// Cache interface for the time-based payload cache
type Cache interface {
	// GetOrLoad retrieves data by keys from cache or loads them using LoaderFunc
	//
	// Parameters:
	// - keys: list of keys to retrieve data for
	// - loader: function to load missing data
	// - loadOnlyMissingKeys: if true, loader is called only with missing keys;
	//   if false, when any data is missing, loader is called with all keys
	// - ttl: time to live for cached data; if 0, uses cache's default expiration
	//
	// A loader error is wrapped and returned, and nothing is written.
	GetOrLoad(keys []string, loader LoaderFunc, loadOnlyMissingKeys bool, ttl time.Duration) (map[string][]byte, error)

	// Get retrieves fresh data by keys from cache.
	// Expired entries are reported as missing.
	Get(keys []string) (map[string][]byte, []string, error)

	// Set stores data in cache with the specified TTL
	Set(data map[string][]byte, ttl time.Duration) error

	// Peek returns the entry for key even when it has expired, for inspection only
	Peek(key string) (Entry, bool)
}

// Status tells whether a payload was served from cache or fetched
type Status string

const (
	StatusHit  Status = "hit"
	StatusMiss Status = "miss"
)

func (s Status) String() string {
	return string(s)
}
