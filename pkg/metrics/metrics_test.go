package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("nokta", reg)

	m.ObserveHTTP("GET", "/api/v1/businesses/{businessId}/page", 200, 10*time.Millisecond)
	m.ObserveRemoteCall("fetch_appointments", nil, time.Millisecond)
	m.ObserveRemoteCall("fetch_appointments", errors.New("boom"), time.Millisecond)
	m.IncTransition("accept", "success")
	m.IncBookingRejection("past_date")
	m.IncConfirmation("issued")
	m.ObserveDBQuery("exec", nil, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/businesses/{businessId}/page", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteRequests.WithLabelValues("fetch_appointments", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteRequests.WithLabelValues("fetch_appointments", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("accept", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingRejection.WithLabelValues("past_date")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.confirmations.WithLabelValues("issued")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueries.WithLabelValues("exec", "success")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Second)
		m.ObserveRemoteCall("op", nil, time.Second)
		m.IncTransition("accept", "success")
		m.IncBookingRejection("past_date")
		m.IncConfirmation("issued")
		m.ObserveDBQuery("query", nil, time.Second)
	})
}
