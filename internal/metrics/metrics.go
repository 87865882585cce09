package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Settlement metrics
	SettlementRequests     *prometheus.CounterVec
	SettlementDuration     prometheus.Histogram
	SettlementTransactions prometheus.Histogram
	SettlementErrors       *prometheus.CounterVec

	// Cache metrics
	CacheInvalidations prometheus.Counter
	CacheStoreFailures prometheus.Counter
	CacheStoreAttempts prometheus.Counter

	// API metrics
	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SettlementRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settleup_settlement_requests_total",
				Help: "Total settlement requests by cache outcome",
			},
			[]string{"cache"},
		),
		SettlementDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "settleup_settlement_compute_duration_seconds",
			Help:    "Duration of settlement recomputations",
			Buckets: prometheus.DefBuckets,
		}),
		SettlementTransactions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "settleup_settlement_transactions",
			Help:    "Number of transactions in computed settlements",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		SettlementErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settleup_settlement_errors_total",
				Help: "Total settlement computation errors by type",
			},
			[]string{"error_type"},
		),

		CacheInvalidations: factory.NewCounter(prometheus.CounterOpts{
			Name: "settleup_cache_invalidations_total",
			Help: "Total cached settlement invalidations",
		}),
		CacheStoreFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "settleup_cache_store_failures_total",
			Help: "Total settlements that could not be cached after retries",
		}),
		CacheStoreAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "settleup_cache_store_attempts_total",
			Help: "Total attempts to store a cached settlement",
		}),

		RPCRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settleup_rpc_requests_total",
				Help: "Total RPC requests",
			},
			[]string{"procedure", "code"},
		),
		RPCDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settleup_rpc_duration_seconds",
				Help:    "RPC request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
	}
}

// CacheHit records a settlement served from cache.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.SettlementRequests.WithLabelValues("hit").Inc()
}

// CacheMiss records a settlement that had to be recomputed.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.SettlementRequests.WithLabelValues("miss").Inc()
}

// Computed records a successful recomputation.
func (m *Metrics) Computed(d time.Duration, transactions int) {
	if m == nil {
		return
	}
	m.SettlementDuration.Observe(d.Seconds())
	m.SettlementTransactions.Observe(float64(transactions))
}

// ComputeFailed records a recomputation error.
func (m *Metrics) ComputeFailed(errorType string) {
	if m == nil {
		return
	}
	m.SettlementErrors.WithLabelValues(errorType).Inc()
}

// Invalidated records a cache invalidation.
func (m *Metrics) Invalidated() {
	if m == nil {
		return
	}
	m.CacheInvalidations.Inc()
}

// StoreAttempted records one attempt to persist a cache entry.
func (m *Metrics) StoreAttempted() {
	if m == nil {
		return
	}
	m.CacheStoreAttempts.Inc()
}

// StoreFailed records a cache entry that could not be persisted.
func (m *Metrics) StoreFailed() {
	if m == nil {
		return
	}
	m.CacheStoreFailures.Inc()
}

// RPC records a finished RPC.
func (m *Metrics) RPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(d.Seconds())
}
