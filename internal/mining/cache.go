package mining

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SkillForge_Go/internal/skill"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the progress cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache size and TTL
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedProgress wraps a player's progress with version metadata
type cachedProgress struct {
	Version  string
	Progress *skill.Progress
	CachedAt time.Time
}

// progressCache keeps loaded players' progress in memory. Writes go to the
// store first, so an evicted or expired entry is simply reloaded.
type progressCache struct {
	lru    *expirable.LRU[string, *cachedProgress]
	hits   atomic.Int64
	misses atomic.Int64
}

func newProgressCache(cfg CacheConfig) *progressCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &progressCache{
		lru: expirable.NewLRU[string, *cachedProgress](cfg.Size, nil, cfg.TTL),
	}
}

func cacheKey(playerID, skillKey string) string {
	return playerID + ":" + skillKey
}

// Get returns cached progress when present and of the current schema version
func (c *progressCache) Get(playerID, skillKey string) (*skill.Progress, bool) {
	key := cacheKey(playerID, skillKey)
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry.Progress, true
}

// Set stores progress under the current schema version
func (c *progressCache) Set(playerID, skillKey string, p *skill.Progress) {
	c.lru.Add(cacheKey(playerID, skillKey), &cachedProgress{
		Version:  CacheSchemaVersion,
		Progress: p,
		CachedAt: time.Now(),
	})
}

// Invalidate drops a player's entry
func (c *progressCache) Invalidate(playerID, skillKey string) {
	c.lru.Remove(cacheKey(playerID, skillKey))
}

// Clear removes all entries
func (c *progressCache) Clear() {
	c.lru.Purge()
}

// Stats returns hit/miss counters and the current size
func (c *progressCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
