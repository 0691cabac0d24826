// Package metrics содержит prometheus коллекторы, общие для HTTP
// middleware и обёртки БД.
package metrics

import (
	"database/sql"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics агрегирует все prometheus коллекторы сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpen   prometheus.Gauge
	dbPoolIdle   prometheus.Gauge
	dbPoolInUse  prometheus.Gauge
	dbPoolWaited prometheus.Gauge
}

// New регистрирует и возвращает коллекторы сервиса в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		dbPoolOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Open connections in the database pool",
			ConstLabels: constLabels,
		}),
		dbPoolIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Idle connections in the database pool",
			ConstLabels: constLabels,
		}),
		dbPoolInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "In-use connections in the database pool",
			ConstLabels: constLabels,
		}),
		dbPoolWaited: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_wait_count_total",
			Help:        "Total number of connection waits",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest записывает один обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveDBQuery записывает один запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, seconds float64) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPoolStats публикует снимок состояния пула соединений
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbPoolOpen.Set(float64(stats.OpenConnections))
	m.dbPoolIdle.Set(float64(stats.Idle))
	m.dbPoolInUse.Set(float64(stats.InUse))
	m.dbPoolWaited.Set(float64(stats.WaitCount))
}
