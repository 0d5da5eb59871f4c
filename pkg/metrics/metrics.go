// Package metrics - prometheus метрики сервиса
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекция метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	canvasMutations     *prometheus.CounterVec
	rejectedOperations  *prometheus.CounterVec
	autosaveFailures    *prometheus.CounterVec
	activeSessions      prometheus.Gauge
	dbQueryDuration     *prometheus.HistogramVec
	dbConnections       *prometheus.GaugeVec
	dbWaitCount         prometheus.Gauge
	dbWaitDuration      prometheus.Gauge
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в указанном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		canvasMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "canvas_mutations_total",
			Help:        "Applied canvas mutations by operation",
			ConstLabels: labels,
		}, []string{"operation"}),
		rejectedOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "canvas_rejected_operations_total",
			Help:        "Canvas operations rejected as no-ops (fixed or unknown elements)",
			ConstLabels: labels,
		}, []string{"operation"}),
		autosaveFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "autosave_failures_total",
			Help:        "Failed best-effort autosave writes",
			ConstLabels: labels,
		}, []string{"reason"}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "design_sessions_active",
			Help:        "Number of open design sessions",
			ConstLabels: labels,
		}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		dbConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database pool connections by state",
			ConstLabels: labels,
		}, []string{"state"}),
		dbWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		dbWaitDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_wait_duration_seconds",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTP учитывает один HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// CanvasMutation учитывает примененную мутацию холста
func (m *Metrics) CanvasMutation(operation string) {
	m.canvasMutations.WithLabelValues(operation).Inc()
}

// OperationRejected учитывает отклоненную операцию
func (m *Metrics) OperationRejected(operation string) {
	m.rejectedOperations.WithLabelValues(operation).Inc()
}

// AutosaveFailed учитывает неудачное автосохранение
func (m *Metrics) AutosaveFailed(reason string) {
	m.autosaveFailures.WithLabelValues(reason).Inc()
}

// SessionOpened увеличивает число активных сессий
func (m *Metrics) SessionOpened() {
	m.activeSessions.Inc()
}

// SessionClosed уменьшает число активных сессий
func (m *Metrics) SessionClosed() {
	m.activeSessions.Dec()
}

// ObserveQuery учитывает запрос к базе данных
func (m *Metrics) ObserveQuery(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// ObservePoolStats обновляет метрики пула соединений
func (m *Metrics) ObservePoolStats(stats sql.DBStats) {
	m.dbConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
	m.dbWaitDuration.Set(stats.WaitDuration.Seconds())
}
