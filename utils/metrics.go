package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	ReminderCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_reminders_fired_total",
			Help: "Reminder notifications fired",
		},
		[]string{"delivery"}, // "push", "ws"
	)
)

func InitMetrics() {
	prometheus.MustRegister(ReqCount, ReqDuration, ReminderCount)
}
