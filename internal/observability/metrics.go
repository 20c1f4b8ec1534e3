package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linkup_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// OtpDispatches counts OTP dispatch attempts by outcome.
	OtpDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_otp_dispatch_total",
		Help: "Total OTP dispatch attempts by outcome",
	}, []string{"outcome"})

	// FollowMutations counts follow graph mutations by kind.
	FollowMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_follow_mutations_total",
		Help: "Total follow/unfollow mutations",
	}, []string{"kind"})

	// FeedSize records the number of posts returned per home feed query.
	FeedSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkup_feed_posts_returned",
		Help:    "Number of posts returned per home feed query",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
