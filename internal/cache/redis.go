// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// redis.go provides a Valkey-backed response cache shared between instances.
// Query responses from the content CDN client are stored under a prefixed
// key so a restart or a second replica does not re-fetch immediately.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix is the Valkey key prefix for cached query responses.
	keyPrefix = "content:"

	// DefaultTTL is how long a response stays cached when no TTL is given.
	DefaultTTL = time.Minute
)

// RedisCache manages query response caching in Valkey.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a response cache backed by the given Valkey client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Get retrieves a cached response. Returns false on miss or error.
func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("content cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("content cache hit", "key", key)
	return val, true
}

// Set stores a response with the configured TTL.
func (rc *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := rc.client.Set(ctx, keyPrefix+key, value, rc.ttl).Err(); err != nil {
		slog.Warn("content cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes all cached responses by scanning for the prefix.
func (rc *RedisCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("content cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("content cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("content cache fully cleared", "deleted", deleted)
	}
}
