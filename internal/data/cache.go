package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"dca-backtest/internal/model"
)

// CacheEntry represents a cached price series fetch.
type CacheEntry struct {
	Series    *model.PriceSeries
	ExpiresAt time.Time
}

// SeriesCache provides in-memory caching for fetched price series, keyed by
// symbol + range. PriceSeries values are immutable after construction, so
// entries are shared safely across goroutines.
//
// Opt-in via DCA_PRICE_CACHE=true; entry lifetime via DCA_PRICE_CACHE_TTL
// (Go duration string, default 1h).
type SeriesCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
}

var globalCache *SeriesCache
var cacheOnce sync.Once

// GetCache returns the global cache instance if caching is enabled,
// nil otherwise.
func GetCache() *SeriesCache {
	if os.Getenv("DCA_PRICE_CACHE") != "true" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("DCA_PRICE_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}

		globalCache = &SeriesCache{
			store: make(map[string]*CacheEntry),
			ttl:   ttl,
		}

		go globalCache.cleanup()
	})

	return globalCache
}

// Get retrieves a cached series if available and not expired.
func (c *SeriesCache) Get(key string) (*model.PriceSeries, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Series, true
}

// Set stores a series in the cache.
func (c *SeriesCache) Set(key string, series *model.PriceSeries) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Series:    series,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache.
func (c *SeriesCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// cleanup periodically removes expired entries.
func (c *SeriesCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// cacheKey creates a deterministic cache key for a symbol + range fetch.
func cacheKey(symbol string, start, end time.Time) string {
	keyStr := fmt.Sprintf("%s:%s:%s",
		symbol,
		start.Format(model.DayLayout),
		end.Format(model.DayLayout),
	)

	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
