package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is a process-local response cache used when Valkey is not
// configured. Entries expire after the TTL and are purged every two TTLs.
type MemoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache creates an in-memory cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{c: gocache.New(ttl, ttl*2)}
}

// Get returns a copy of the cached bytes so callers cannot mutate the entry.
func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := mc.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b...), true
}

// Set stores a copy of value with the default expiration.
func (mc *MemoryCache) Set(_ context.Context, key string, value []byte) {
	mc.c.Set(key, append([]byte(nil), value...), gocache.DefaultExpiration)
}

// InvalidateAll drops every entry.
func (mc *MemoryCache) InvalidateAll(_ context.Context) {
	mc.c.Flush()
}

// Len returns the number of entries, including expired ones not yet purged.
func (mc *MemoryCache) Len() int {
	return mc.c.ItemCount()
}
