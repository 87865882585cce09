// Package redis provides a Redis-backed settlement cache.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/settleup/internal/models"
)

const keyPrefix = "settleup:settlement:"

// NewClient creates a new Redis client and verifies the connection.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// SettlementCache stores one settlement per group. Entries have no TTL;
// they live until the group is mutated.
type SettlementCache struct {
	client *redis.Client
}

// NewSettlementCache creates a SettlementCache on top of client.
func NewSettlementCache(client *redis.Client) *SettlementCache {
	return &SettlementCache{client: client}
}

type cachedSettlement struct {
	Transactions []models.Transaction `json:"transactions"`
	ComputedAt   int64                `json:"computed_at"`
}

func key(groupID string) string {
	return keyPrefix + groupID
}

// LoadCacheEntry returns the cached settlement of a group, or nil on a miss.
func (c *SettlementCache) LoadCacheEntry(ctx context.Context, groupID string) (*models.CachedSettlement, error) {
	data, err := c.client.Get(ctx, key(groupID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached settlement: %w", err)
	}

	var cached cachedSettlement
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached settlement: %w", err)
	}

	return &models.CachedSettlement{
		Transactions: cached.Transactions,
		ComputedAt:   time.Unix(0, cached.ComputedAt).UTC(),
		Valid:        cached.ComputedAt != 0,
	}, nil
}

// StoreCacheEntry writes a valid entry. Storing an invalid entry deletes the key.
func (c *SettlementCache) StoreCacheEntry(ctx context.Context, groupID string, entry *models.CachedSettlement) error {
	if !entry.IsValid() {
		return c.InvalidateCacheEntry(ctx, groupID)
	}

	transactions := entry.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	data, err := json.Marshal(cachedSettlement{
		Transactions: transactions,
		ComputedAt:   entry.ComputedAt.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode cached settlement: %w", err)
	}

	if err := c.client.Set(ctx, key(groupID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set cached settlement: %w", err)
	}
	return nil
}

// InvalidateCacheEntry removes the cached settlement of a group.
func (c *SettlementCache) InvalidateCacheEntry(ctx context.Context, groupID string) error {
	if err := c.client.Del(ctx, key(groupID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached settlement: %w", err)
	}
	return nil
}
