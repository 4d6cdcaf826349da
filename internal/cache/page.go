// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed cache for encoded page contexts (L2).
// When a public path is resolved and aggregated, the resulting JSON is
// stored in Valkey so subsequent requests skip the database entirely.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached page contexts.
	pageKeyPrefix = "ctx:"

	// DefaultPageTTL is how long a page context stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages page-context caching in Valkey. A nil *PageCache is
// valid and never hits, so callers need no separate "cache disabled" path.
// Errors are logged and treated as misses.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves the cached body for a key.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	return val, true
}

// Set stores a body for a key with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key string, body []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, pageKeyPrefix+key, body, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single key.
func (pc *PageCache) Invalidate(ctx context.Context, key string) {
	if pc == nil {
		return
	}
	if err := pc.client.Del(ctx, pageKeyPrefix+key).Err(); err != nil {
		slog.Warn("page cache invalidate error", "key", key, "error", err)
		return
	}
	slog.Debug("page cache invalidated", "key", key)
}

// InvalidatePrefix removes every key starting with prefix, e.g. all pages
// of one locale.
func (pc *PageCache) InvalidatePrefix(ctx context.Context, prefix string) {
	if pc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, next, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache cleared", "prefix", prefix, "deleted", deleted)
	}
}

// InvalidateAll removes all cached page contexts.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	pc.InvalidatePrefix(ctx, "")
}

// PathKey returns the cache key for a request path. Paths that differ only
// in case or a trailing slash share a key.
func PathKey(path string) string {
	path = strings.ToLower(strings.TrimSpace(path))
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}
