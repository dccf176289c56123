// Package metrics содержит Prometheus-метрики сервиса.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики рендеринга.
var (
	// RendersTotal считает отрисованные секции по формату вывода.
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsboard_renders_total",
			Help: "Total number of rendered news sections by output format",
		},
		[]string{"format"},
	)

	// RenderedRows - распределение количества строк в секции.
	RenderedRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsboard_rendered_rows",
			Help:    "Number of rows per rendered news section",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
	)

	// DateFallbacksTotal считает даты, показанные как исходная строка.
	DateFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsboard_date_fallbacks_total",
			Help: "Total number of item dates that could not be parsed and were shown verbatim",
		},
	)

	// UnknownTagsTotal считает теги, оформленные стилем по умолчанию.
	UnknownTagsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsboard_unknown_tags_total",
			Help: "Total number of item tags without a dedicated style",
		},
	)
)

// Метрики синхронизации источников.
var (
	SyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsboard_sync_total",
			Help: "Total number of source sync attempts by status",
		},
		[]string{"status"},
	)

	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsboard_sync_duration_seconds",
			Help:    "Duration of a single source sync in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// HTTP-метрики.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordRender учитывает отрисовку секции в указанном формате.
func RecordRender(format string) {
	RendersTotal.WithLabelValues(format).Inc()
}

// RecordSync учитывает результат синхронизации одного источника.
func RecordSync(success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	SyncTotal.WithLabelValues(status).Inc()
	SyncDuration.Observe(duration.Seconds())
}

// RecordHTTPRequest учитывает обработанный HTTP-запрос.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
