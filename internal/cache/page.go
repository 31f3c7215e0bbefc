// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go caches the public JSON response for each page document so
// repeated requests skip the database.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"lawsite/internal/models"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached page responses.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a page response stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache stores encoded page responses in Valkey.
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

// PageKey returns the Valkey key for a page.
func PageKey(key models.PageKey) string {
	return pageKeyPrefix + string(key)
}

// Get returns the cached response for key. Errors count as a miss.
func (pc *PageCache) Get(ctx context.Context, key models.PageKey) ([]byte, bool) {
	val, err := pc.client.Get(ctx, PageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "page", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "page", key)
	return val, true
}

// Set stores the response for key with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key models.PageKey, body []byte) {
	if err := pc.client.Set(ctx, PageKey(key), body, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "page", key, "error", err)
	}
}

// Invalidate removes one page from the cache.
func (pc *PageCache) Invalidate(ctx context.Context, key models.PageKey) {
	if err := pc.client.Del(ctx, PageKey(key)).Err(); err != nil {
		slog.Warn("page cache invalidate error", "page", key, "error", err)
		return
	}
	slog.Debug("page cache invalidated", "page", key)
}

// InvalidateAll removes every cached page by scanning for the prefix.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
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
		slog.Info("page cache fully cleared", "deleted", deleted)
	}
}
