package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "crypto_advisor",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crypto_advisor",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "crypto_advisor",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	providerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crypto_advisor",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Outbound provider calls by outcome.",
		},
		[]string{"provider", "outcome"},
	)

	providerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "crypto_advisor",
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound provider calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"provider"},
	)

	dashboardFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crypto_advisor",
			Subsystem: "dashboard",
			Name:      "fallbacks_total",
			Help:      "Dashboard sections served from static fallback data.",
		},
		[]string{"section", "reason"},
	)

	votesRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crypto_advisor",
			Subsystem: "votes",
			Name:      "recorded_total",
			Help:      "Votes recorded by item type and direction.",
		},
		[]string{"type", "direction"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		providerRequests,
		providerDuration,
		dashboardFallbacks,
		votesRecorded,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks an in-flight request and returns the func that records its completion.
func RequestStarted() func(method, path string, status int, elapsed time.Duration) {
	httpInFlight.Inc()
	return func(method, path string, status int, elapsed time.Duration) {
		httpInFlight.Dec()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(method, path, statusLabel(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
	}
}

// RecordProviderCall records one outbound call to a market data provider.
func RecordProviderCall(provider string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	providerRequests.WithLabelValues(provider, outcome).Inc()
	providerDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordFallback counts a dashboard section served from static data.
func RecordFallback(section, reason string) {
	dashboardFallbacks.WithLabelValues(section, reason).Inc()
}

func RecordVote(itemType string, value int) {
	direction := "up"
	if value < 0 {
		direction = "down"
	}
	votesRecorded.WithLabelValues(itemType, direction).Inc()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
