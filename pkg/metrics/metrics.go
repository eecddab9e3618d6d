package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBOperationDuration *prometheus.HistogramVec
	DBOperationsTotal   *prometheus.CounterVec
	AuthAttemptsTotal   *prometheus.CounterVec
}

// New регистрирует метрики сервиса в переданном registerer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DBOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_operation_duration_seconds",
				Help:        "Document store operation latency",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		DBOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_operations_total",
				Help:        "Total number of document store operations",
				ConstLabels: constLabels,
			},
			[]string{"operation", "result"},
		),
		AuthAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "auth_attempts_total",
				Help:        "Register and login attempts by outcome",
				ConstLabels: constLabels,
			},
			[]string{"action", "result"},
		),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBOperation фиксирует операцию с хранилищем
func (m *Metrics) ObserveDBOperation(operation string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "error"
	}
	m.DBOperationsTotal.WithLabelValues(operation, result).Inc()
	m.DBOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncAuthAttempt увеличивает счетчик попыток регистрации/входа
func (m *Metrics) IncAuthAttempt(action, result string) {
	m.AuthAttemptsTotal.WithLabelValues(action, result).Inc()
}
