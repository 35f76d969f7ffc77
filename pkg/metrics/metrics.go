// Package metrics holds the Prometheus collectors of the service.
// All methods are safe on a nil *Metrics so collectors stay optional.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы Prometheus сервиса
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	remoteRequests   *prometheus.CounterVec
	remoteDuration   *prometheus.HistogramVec
	transitions      *prometheus.CounterVec
	bookingRejection *prometheus.CounterVec
	confirmations    *prometheus.CounterVec
	dbQueries        *prometheus.CounterVec
	dbDuration       *prometheus.HistogramVec
}

// New создает коллекторы и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает коллекторы и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Count of HTTP requests by method, route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		remoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "remote_store_requests_total",
			Help:        "Count of remote store calls by operation and outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
		remoteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "remote_store_request_duration_seconds",
			Help:        "Duration of remote store calls.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_transitions_total",
			Help:        "Count of appointment actions by action and outcome.",
			ConstLabels: constLabels,
		}, []string{"action", "outcome"}),
		bookingRejection: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_rejections_total",
			Help:        "Count of rejected booking attempts by reason.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "confirmations_total",
			Help:        "Count of two-step confirmations by stage.",
			ConstLabels: constLabels,
		}, []string{"stage"}),
		dbQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Count of audit journal queries by kind and outcome.",
			ConstLabels: constLabels,
		}, []string{"kind", "outcome"}),
		dbDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Duration of audit journal queries.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.remoteRequests,
		m.remoteDuration,
		m.transitions,
		m.bookingRejection,
		m.confirmations,
		m.dbQueries,
		m.dbDuration,
	)

	return m
}

// ObserveHTTP учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveRemoteCall учитывает вызов удаленного хранилища
func (m *Metrics) ObserveRemoteCall(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.remoteRequests.WithLabelValues(operation, outcome).Inc()
	m.remoteDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// IncTransition учитывает попытку изменить запись
func (m *Metrics) IncTransition(action, outcome string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(action, outcome).Inc()
}

// IncBookingRejection учитывает отклоненную попытку записи
func (m *Metrics) IncBookingRejection(reason string) {
	if m == nil {
		return
	}
	m.bookingRejection.WithLabelValues(reason).Inc()
}

// IncConfirmation учитывает этап двухшагового подтверждения (issued, consumed, invalid)
func (m *Metrics) IncConfirmation(stage string) {
	if m == nil {
		return
	}
	m.confirmations.WithLabelValues(stage).Inc()
}

// ObserveDBQuery учитывает запрос к базе данных (kind: exec, query, query_row)
func (m *Metrics) ObserveDBQuery(kind string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.dbQueries.WithLabelValues(kind, outcome).Inc()
	m.dbDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
