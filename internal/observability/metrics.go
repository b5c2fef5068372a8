package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	wsConnections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jtbridge",
			Subsystem: "ws",
			Name:      "connections_total",
			Help:      "Total accepted WebSocket connections.",
		},
	)
	wsActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "jtbridge",
			Subsystem: "ws",
			Name:      "active_connections",
			Help:      "Currently open WebSocket connections.",
		},
	)
	commandRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jtbridge",
			Subsystem: "command",
			Name:      "requests_total",
			Help:      "Command requests handled, by command and status.",
		},
		[]string{"command", "status"},
	)
	conversionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jtbridge",
			Subsystem: "convert",
			Name:      "duration_seconds",
			Help:      "AJT to JT conversion duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jtbridge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jtbridge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			wsConnections,
			wsActiveConnections,
			commandRequests,
			conversionDuration,
			httpRequests,
			httpDuration,
		)
	})
}

func RecordConnectionOpened() {
	RegisterMetrics()
	wsConnections.Inc()
	wsActiveConnections.Inc()
}

func RecordConnectionClosed() {
	RegisterMetrics()
	wsActiveConnections.Dec()
}

func RecordCommand(command, status string) {
	RegisterMetrics()
	commandRequests.WithLabelValues(command, status).Inc()
}

func RecordConversion(outcome string, duration time.Duration) {
	RegisterMetrics()
	conversionDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}
