package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersCreated prometheus.Counter
	TransferDuration prometheus.Histogram
	TransferErrors   *prometheus.CounterVec

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountsDeleted   prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Concurrency metrics
	VersionConflicts prometheus.Counter

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Transfer metrics
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobudget_transfers_created_total",
			Help: "Total number of transfers created",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobudget_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobudget_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobudget_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobudget_accounts_deleted_total",
			Help: "Total number of accounts tombstoned",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobudget_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		// Concurrency metrics
		VersionConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobudget_version_conflicts_total",
			Help: "Total number of optimistic lock conflicts",
		}),

		// Cache metrics
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobudget_cache_hits_total",
			Help: "Total number of account cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobudget_cache_misses_total",
			Help: "Total number of account cache misses",
		}),
	}
}
