package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/models"
)

// newTestCache starts an in-memory Redis and connects a SettlementCache to it
// the same way the server does.
func newTestCache(t *testing.T) (*SettlementCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewSettlementCache(client), mr
}

func TestSettlementCache(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	computedAt := time.Date(2024, 5, 1, 10, 0, 0, 123, time.UTC)

	t.Run("miss", func(t *testing.T) {
		entry, err := cache.LoadCacheEntry(ctx, "g1")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("store and load", func(t *testing.T) {
		err := cache.StoreCacheEntry(ctx, "g1", &models.CachedSettlement{
			Transactions: []models.Transaction{{From: "B", To: "A", Amount: 33.34}},
			ComputedAt:   computedAt,
			Valid:        true,
		})
		require.NoError(t, err)

		assert.True(t, mr.Exists("settleup:settlement:g1"))
		assert.Zero(t, mr.TTL("settleup:settlement:g1"), "entries do not expire")

		entry, err := cache.LoadCacheEntry(ctx, "g1")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.True(t, entry.IsValid())
		assert.True(t, computedAt.Equal(entry.ComputedAt))
		assert.Equal(t, []models.Transaction{{From: "B", To: "A", Amount: 33.34}}, entry.Transactions)
	})

	t.Run("empty settlement stays valid", func(t *testing.T) {
		err := cache.StoreCacheEntry(ctx, "g2", &models.CachedSettlement{
			ComputedAt: computedAt,
			Valid:      true,
		})
		require.NoError(t, err)

		entry, err := cache.LoadCacheEntry(ctx, "g2")
		require.NoError(t, err)
		assert.True(t, entry.IsValid())
		assert.Empty(t, entry.Transactions)
	})

	t.Run("invalidate", func(t *testing.T) {
		require.NoError(t, cache.InvalidateCacheEntry(ctx, "g1"))

		entry, err := cache.LoadCacheEntry(ctx, "g1")
		require.NoError(t, err)
		assert.Nil(t, entry)

		// Invalidating a missing entry is not an error
		assert.NoError(t, cache.InvalidateCacheEntry(ctx, "never-stored"))
	})

	t.Run("storing an invalid entry removes it", func(t *testing.T) {
		require.NoError(t, cache.StoreCacheEntry(ctx, "g2", &models.CachedSettlement{}))
		assert.False(t, mr.Exists("settleup:settlement:g2"))
	})

	t.Run("corrupt payload", func(t *testing.T) {
		require.NoError(t, mr.Set("settleup:settlement:g3", "{not json"))

		_, err := cache.LoadCacheEntry(ctx, "g3")
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("server unavailable", func(t *testing.T) {
		mr.SetError("LOADING")
		defer mr.SetError("")

		err := cache.StoreCacheEntry(ctx, "g1", &models.CachedSettlement{ComputedAt: computedAt, Valid: true})
		assert.Error(t, err)
	})
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "not a url")
	assert.ErrorContains(t, err, "parse redis URL")
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewClient(ctx, "redis://"+addr)
	assert.ErrorContains(t, err, "failed to ping redis")
}
