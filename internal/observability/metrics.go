// Package observability exposes the editing engine's prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jstruct_parse_seconds",
		Help:    "Time spent parsing the Java buffer.",
		Buckets: prometheus.DefBuckets,
	})

	ParsedRevision = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "jstruct_parsed_revision",
		Help: "Buffer revision of the last published parse.",
	})

	BufferTransactionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jstruct_buffer_transactions_total",
		Help: "Total number of atomic buffer transactions applied.",
	})

	ConfirmWaitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jstruct_confirm_wait_seconds",
		Help:    "Time spent waiting for the source model to reflect a mutation.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"predicate", "outcome"})

	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jstruct_operations_total",
		Help: "Composite outline operations by name and result.",
	}, []string{"operation", "result"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jstruct_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
