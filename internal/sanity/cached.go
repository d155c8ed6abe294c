package sanity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// RawFetcher is implemented by Client. CachedFetcher needs the undecoded
// result bytes and a stable key for each query.
type RawFetcher interface {
	FetchRaw(ctx context.Context, query string, params map[string]any) (json.RawMessage, error)
	QueryURL(query string, params map[string]any) (string, error)
}

// ResponseCache stores raw query results. cache.RedisCache and
// cache.MemoryCache satisfy it.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// CachedFetcher serves repeated queries from a ResponseCache. Failed fetches
// are never cached.
type CachedFetcher struct {
	inner   RawFetcher
	cache   ResponseCache
	observe func(hit bool)
}

// NewCachedFetcher wraps inner with cache. observe, if non-nil, is called
// once per lookup with the hit/miss outcome.
func NewCachedFetcher(inner RawFetcher, cache ResponseCache, observe func(hit bool)) *CachedFetcher {
	return &CachedFetcher{inner: inner, cache: cache, observe: observe}
}

// Fetch implements Fetcher.
func (f *CachedFetcher) Fetch(ctx context.Context, query string, params map[string]any, dest any) error {
	endpoint, err := f.inner.QueryURL(query, params)
	if err != nil {
		return err
	}
	key := cacheKey(endpoint)

	raw, hit := f.cache.Get(ctx, key)
	if f.observe != nil {
		f.observe(hit)
	}

	if !hit {
		result, err := f.inner.FetchRaw(ctx, query, params)
		if err != nil {
			return err
		}
		raw = result
		f.cache.Set(ctx, key, raw)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("sanity decode cached result: %w", err)
	}
	return nil
}

func cacheKey(endpoint string) string {
	sum := sha256.Sum256([]byte(endpoint))
	return hex.EncodeToString(sum[:])
}
