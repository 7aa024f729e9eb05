// Package observability provides metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallboard_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// StoreOpLatency records entity store operation latency.
	StoreOpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wallboard_store_op_latency_seconds",
		Help:    "Entity store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "store"})

	// CascadeDeletedComments counts comments removed by post-deletion cascades.
	CascadeDeletedComments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallboard_cascade_deleted_comments_total",
		Help: "Total number of comments removed by post deletion cascades",
	})
)

// TrackStoreOp returns a function that records operation latency when called
// (e.g. defer).
func TrackStoreOp(operation, store string) func() {
	start := time.Now()
	return func() {
		StoreOpLatency.WithLabelValues(operation, store).Observe(time.Since(start).Seconds())
	}
}
