package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dwed_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dwed_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	IntentsRoutedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dwed_intents_routed_total",
			Help: "Total number of assistant replies routed, by outcome.",
		},
		[]string{"kind"},
	)

	ProviderFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dwed_provider_failures_total",
			Help: "Total number of completion requests that exhausted all providers.",
		},
	)

	LiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dwed_live_sessions",
			Help: "Number of conversation sessions currently held in memory.",
		},
	)
)

// Intent routing outcomes for IntentsRoutedTotal.
const (
	IntentVenues   = "venues"
	IntentPlanners = "event_planners"
	IntentText     = "text"
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		IntentsRoutedTotal,
		ProviderFailuresTotal,
		LiveSessions,
	)
}
