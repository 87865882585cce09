// Package settlement serves group settlements, recomputing them only when the
// group's expenses or roster changed since the last computation.
package settlement

//go:generate mockgen -source=coordinator.go -destination=mocks/mock_settlement.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/events"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/models"
)

// Ledger provides the inputs of a settlement computation.
type Ledger interface {
	LoadRosterAndExpenses(ctx context.Context, groupID string) ([]models.ParticipantID, []models.Expense, error)
}

// CacheStore persists the last computed settlement of each group.
type CacheStore interface {
	LoadCacheEntry(ctx context.Context, groupID string) (*models.CachedSettlement, error)
	StoreCacheEntry(ctx context.Context, groupID string, entry *models.CachedSettlement) error
	InvalidateCacheEntry(ctx context.Context, groupID string) error
}

// Result is a settlement as served to callers.
type Result struct {
	Transactions []models.Transaction
	ComputedAt   time.Time
	// Cached is true when the settlement was served without recomputation.
	Cached bool
}

// Coordinator serializes settlement reads and ledger mutations per group.
//
// Reads of a Valid entry run concurrently under the group's read lock.
// Recomputation and mutations hold the group's write lock, so a settlement is
// never stored for a ledger that changed while it was being computed.
type Coordinator struct {
	ledger    Ledger
	cache     CacheStore
	locks     groupLocks
	retrier   *Retrier
	metrics   *metrics.Metrics
	publisher events.Publisher
	now       func() time.Time
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRetrier sets the retrier used for cache writes.
func WithRetrier(r *Retrier) Option {
	return func(c *Coordinator) { c.retrier = r }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// WithPublisher sets the publisher for settlement events.
func WithPublisher(p events.Publisher) Option {
	return func(c *Coordinator) { c.publisher = p }
}

// WithClock overrides the clock used for computation timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// NewCoordinator creates a coordinator reading from ledger and caching into cache.
func NewCoordinator(ledger Ledger, cache CacheStore, opts ...Option) *Coordinator {
	c := &Coordinator{
		ledger:    ledger,
		cache:     cache,
		retrier:   NewRetrier(3, 50*time.Millisecond),
		publisher: events.Nop{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSettlement returns the settlement of a group, recomputing it if the cached
// entry is missing or stale.
//
// When the recomputed settlement cannot be cached, both the result and a
// *CacheStoreError are returned.
func (c *Coordinator) GetSettlement(ctx context.Context, groupID string) (*Result, error) {
	lock := c.locks.get(groupID)

	lock.RLock()
	entry, err := c.cache.LoadCacheEntry(ctx, groupID)
	lock.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("failed to load cached settlement: %w", err)
	}
	if entry.IsValid() {
		c.metrics.CacheHit()
		return cachedResult(entry), nil
	}

	lock.Lock()
	defer lock.Unlock()

	// Another reader may have recomputed while we waited
	entry, err = c.cache.LoadCacheEntry(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cached settlement: %w", err)
	}
	if entry.IsValid() {
		c.metrics.CacheHit()
		return cachedResult(entry), nil
	}

	c.metrics.CacheMiss()
	return c.recompute(ctx, groupID)
}

// Mutate runs mutation under the group's write lock after invalidating its
// cached settlement. If invalidation fails the mutation does not run.
func (c *Coordinator) Mutate(ctx context.Context, groupID string, mutation func(ctx context.Context) error) error {
	lock := c.locks.get(groupID)
	lock.Lock()
	defer lock.Unlock()

	if err := c.invalidate(ctx, groupID); err != nil {
		return err
	}
	if err := mutation(ctx); err != nil {
		return err
	}

	c.publish(ctx, events.Event{
		Type:      events.TypeSettlementInvalidated,
		GroupID:   groupID,
		Timestamp: c.now(),
	})
	return nil
}

// Invalidate marks the cached settlement of a group as stale.
func (c *Coordinator) Invalidate(ctx context.Context, groupID string) error {
	lock := c.locks.get(groupID)
	lock.Lock()
	defer lock.Unlock()

	if err := c.invalidate(ctx, groupID); err != nil {
		return err
	}

	c.publish(ctx, events.Event{
		Type:      events.TypeSettlementInvalidated,
		GroupID:   groupID,
		Timestamp: c.now(),
	})
	return nil
}

func (c *Coordinator) invalidate(ctx context.Context, groupID string) error {
	if err := c.cache.InvalidateCacheEntry(ctx, groupID); err != nil {
		return fmt.Errorf("failed to invalidate cached settlement: %w", err)
	}
	c.metrics.Invalidated()
	return nil
}

// recompute must be called with the group's write lock held.
func (c *Coordinator) recompute(ctx context.Context, groupID string) (*Result, error) {
	start := time.Now()

	roster, expenses, err := c.ledger.LoadRosterAndExpenses(ctx, groupID)
	if err != nil {
		c.metrics.ComputeFailed("ledger")
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	balances, err := calculator.ComputeBalances(roster, expenses)
	if err != nil {
		c.metrics.ComputeFailed("input")
		slog.Error("Settlement computation failed", "group_id", groupID, "error", err)
		return nil, err
	}

	transactions, err := calculator.ComputeSettlement(balances)
	if err != nil {
		c.metrics.ComputeFailed("consistency")
		slog.Error("Settlement computation failed", "group_id", groupID, "sum", balances.Sum(), "error", err)
		return nil, err
	}

	entry := &models.CachedSettlement{
		Transactions: transactions,
		ComputedAt:   c.now(),
		Valid:        true,
	}
	c.metrics.Computed(time.Since(start), len(transactions))

	slog.Debug("Settlement recomputed",
		"group_id", groupID,
		"expenses", len(expenses),
		"transactions", len(transactions),
	)

	result := &Result{
		Transactions: transactions,
		ComputedAt:   entry.ComputedAt,
	}

	err = c.retrier.Retry(ctx, func() error {
		c.metrics.StoreAttempted()
		return c.cache.StoreCacheEntry(ctx, groupID, entry)
	})
	if err != nil {
		c.metrics.StoreFailed()
		slog.Warn("Failed to cache settlement", "group_id", groupID, "error", err)

		// A partial write must not be served as Valid
		if invErr := c.cache.InvalidateCacheEntry(ctx, groupID); invErr != nil {
			slog.Warn("Failed to invalidate settlement after store failure", "group_id", groupID, "error", invErr)
		}
		return result, &CacheStoreError{GroupID: groupID, Err: err}
	}

	c.publish(ctx, events.Event{
		Type:         events.TypeSettlementComputed,
		GroupID:      groupID,
		Transactions: len(transactions),
		Timestamp:    entry.ComputedAt,
	})
	return result, nil
}

func (c *Coordinator) publish(ctx context.Context, evt events.Event) {
	if err := c.publisher.Publish(ctx, evt); err != nil {
		slog.Warn("Failed to publish settlement event",
			"event_type", evt.Type,
			"group_id", evt.GroupID,
			"error", err,
		)
	}
}

func cachedResult(entry *models.CachedSettlement) *Result {
	return &Result{
		Transactions: entry.Transactions,
		ComputedAt:   entry.ComputedAt,
		Cached:       true,
	}
}
