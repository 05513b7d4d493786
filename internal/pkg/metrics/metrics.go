package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsCreated  *prometheus.CounterVec
	QuotesCreated prometheus.Counter
	LoginAttempts *prometheus.CounterVec
	RateLimited   *prometheus.CounterVec
	Notifications *prometheus.CounterVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		LeadsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_created_total",
				Help: "Leads captured, by utm_source",
			},
			[]string{"source"},
		),
		QuotesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "quotes_created_total",
			Help: "Quote requests captured",
		}),
		LoginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admin_login_attempts_total",
				Help: "Admin login attempts by outcome",
			},
			[]string{"result"},
		),
		RateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_limited_requests_total",
				Help: "Requests rejected by a rate-limit policy",
			},
			[]string{"policy"},
		),
		Notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Quote notification outcomes",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func (m *Metrics) LeadCreated(source string) {
	if m == nil {
		return
	}
	m.LeadsCreated.WithLabelValues(source).Inc()
}

func (m *Metrics) QuoteCreated() {
	if m == nil {
		return
	}
	m.QuotesCreated.Inc()
}

func (m *Metrics) LoginAttempt(result string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) Limited(policy string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(policy).Inc()
}

func (m *Metrics) Notification(result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(result).Inc()
}
