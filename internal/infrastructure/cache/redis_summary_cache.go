package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/orderdesk/backend/internal/domain/billing"
	"github.com/redis/go-redis/v9"
)

const (
	summaryKeyPrefix  = "orderdesk:summary"
	summaryVersionKey = "orderdesk:summary:version"
)

// RedisSummaryCache caches dashboard summaries in Redis so multiple
// instances share one cache. Invalidation bumps a version counter
// instead of scanning for keys; stale entries age out via TTL.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a Redis-backed summary cache
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

// Get returns a cached summary for the current cache version
func (c *RedisSummaryCache) Get(ctx context.Context, key string) (*billing.Summary, bool, error) {
	fullKey, err := c.versionedKey(ctx, key)
	if err != nil {
		return nil, false, err
	}

	data, err := c.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var summary billing.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached summary: %w", err)
	}
	return &summary, true, nil
}

// Set stores a summary under the current cache version with TTL
func (c *RedisSummaryCache) Set(ctx context.Context, key string, summary billing.Summary) error {
	fullKey, err := c.versionedKey(ctx, key)
	if err != nil {
		return err
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, fullKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate bumps the version counter, orphaning all cached entries
func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, summaryVersionKey).Err(); err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	return nil
}

func (c *RedisSummaryCache) versionedKey(ctx context.Context, key string) (string, error) {
	version, err := c.client.Get(ctx, summaryVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("redis get version: %w", err)
	}
	return fmt.Sprintf("%s:%d:%s", summaryKeyPrefix, version, key), nil
}
