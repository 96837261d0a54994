package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antiddos_api_requests_total",
			Help: "Total requests sent to the Anti-DDoS service",
		},
		[]string{"method", "endpoint", "code"},
	)
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "antiddos_api_request_duration_seconds",
			Help:    "Latency of requests sent to the Anti-DDoS service",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Task metrics
	TasksSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antiddos_tasks_submitted_total",
			Help: "Tasks accepted by the service, by action",
		},
		[]string{"action"},
	)
)

// ObserveRequest records one HTTP exchange. code is 0 when no response arrived.
// ObserveRequest 记录一次 HTTP 交互。未收到响应时 code 为 0。
func ObserveRequest(method, endpoint string, code int, elapsed time.Duration) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	APIRequestsTotal.WithLabelValues(method, endpoint, label).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// ObserveTask counts a task returned by open, set or close.
// ObserveTask 统计 open、set 或 close 返回的任务。
func ObserveTask(action string) {
	TasksSubmittedTotal.WithLabelValues(action).Inc()
}
