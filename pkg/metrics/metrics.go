package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbQueryErrors     *prometheus.CounterVec
	dbOpenConnections *prometheus.GaugeVec

	conflictChecksTotal *prometheus.CounterVec
	suggestionsReturned *prometheus.HistogramVec
	storeFailuresTotal  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		conflictChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_conflict_checks_total",
			Help: "Total number of schedule conflict checks by result",
		}, []string{"service", "conflict"}),
		suggestionsReturned: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "schedule_alternatives_returned",
			Help:    "Number of alternative dates returned per request",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		}, []string{"service"}),
		storeFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_store_failures_total",
			Help: "Total number of job store failures by operation",
		}, []string{"service", "operation"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConnections,
		m.conflictChecksTotal,
		m.suggestionsReturned,
		m.storeFailuresTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.dbOpenConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.dbOpenConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}

// ObserveConflictCheck фиксирует результат проверки конфликта расписания
func (m *Metrics) ObserveConflictCheck(hasConflict bool) {
	if m == nil {
		return
	}
	m.conflictChecksTotal.WithLabelValues(m.serviceName, strconv.FormatBool(hasConflict)).Inc()
}

// ObserveSuggestions фиксирует количество предложенных альтернативных дат
func (m *Metrics) ObserveSuggestions(count int) {
	if m == nil {
		return
	}
	m.suggestionsReturned.WithLabelValues(m.serviceName).Observe(float64(count))
}

// ObserveStoreFailure фиксирует недоступность хранилища
func (m *Metrics) ObserveStoreFailure(operation string) {
	if m == nil {
		return
	}
	m.storeFailuresTotal.WithLabelValues(m.serviceName, operation).Inc()
}
