package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.LeadCreated("organic")
	m.LeadCreated("organic")
	m.Notification("skipped")
	m.Limited("leads")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LeadsCreated.WithLabelValues("organic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited.WithLabelValues("leads")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.LeadCreated("x")
		m.QuoteCreated()
		m.ObserveRequest("GET", "/", "200", 0.1)
		m.Notification("sent")
		m.Limited("api")
		m.LoginAttempt("success")
	})
}
