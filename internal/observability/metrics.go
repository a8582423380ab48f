package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reward_platform",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reward_platform",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	claimDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reward_platform",
			Subsystem: "claims",
			Name:      "decisions_total",
			Help:      "Reward claim outcomes by status and event condition.",
		},
		[]string{"status", "condition"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reward_platform",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of calls to collaborator services.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"operation", "outcome"},
	)

	upstreamFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reward_platform",
			Subsystem: "upstream",
			Name:      "failures_total",
			Help:      "Collaborator failures absorbed locally.",
		},
		[]string{"operation"},
	)

	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reward_platform",
			Subsystem: "gateway",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the gateway rate limiter.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		claimDecisions,
		upstreamDuration,
		upstreamFailures,
		rateLimited,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// MetricsHandler returns an HTTP handler exposing the registered Prometheus metrics.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func observeHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordClaimDecision counts one persisted claim outcome.
func RecordClaimDecision(status, condition string) {
	claimDecisions.WithLabelValues(status, condition).Inc()
}

// ObserveUpstreamCall records the latency of one collaborator call.
func ObserveUpstreamCall(operation string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	upstreamDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// RecordUpstreamFailure counts a collaborator failure that was absorbed.
func RecordUpstreamFailure(operation string) {
	upstreamFailures.WithLabelValues(operation).Inc()
}

// RecordRateLimited counts one request rejected by the rate limiter.
func RecordRateLimited() {
	rateLimited.Inc()
}
