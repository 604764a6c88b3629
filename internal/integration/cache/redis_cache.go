// Package cache implements the summary memoization on Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// keyPattern matches every summary entry for bulk invalidation. Keys are
// already prefixed by the use case, so the pattern stays narrow.
const keyPattern = "summary:*"

// RedisSummaryCache implements adapter.SummaryCache on a Redis instance.
// Entries carry a TTL as a backstop; explicit invalidation on mutation is
// what keeps reads correct.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a new RedisSummaryCache instance.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached summary for the key, or (nil, nil) on a miss.
func (c *RedisSummaryCache) Get(ctx context.Context, key string) (*entity.FinancialSummary, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var summary entity.FinancialSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		// An unreadable entry reads as a miss; it will be overwritten.
		return nil, nil
	}
	return &summary, nil
}

// Set stores the summary under the key.
func (c *RedisSummaryCache) Set(ctx context.Context, key string, summary *entity.FinancialSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached summary.
func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to drop summary cache entry: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan summary cache: %w", err)
	}
	return nil
}

var _ adapter.SummaryCache = (*RedisSummaryCache)(nil)
