package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	ViewRenders      *prometheus.CounterVec
	UserCacheLookups *prometheus.CounterVec
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, matched route and status code.",
		}, []string{"method", "route", "status"}),

		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and matched route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		ViewRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "view_renders_total",
			Help: "Total number of HTML views rendered.",
		}, []string{"view"}),

		UserCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_cache_lookups_total",
			Help: "User cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.ViewRenders,
		m.UserCacheLookups,
	)

	return m
}

// CacheHook returns the callback expected by service.UserService.
// Keeps prometheus out of the service package.
func (m *Metrics) CacheHook() func(result string) {
	return func(result string) {
		m.UserCacheLookups.WithLabelValues(result).Inc()
	}
}
