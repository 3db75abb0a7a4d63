package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts finished requests by route template, method and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpchat_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rpchat_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// SessionsIssued counts session tokens handed out, labelled register or login.
	SessionsIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpchat_sessions_issued_total",
		Help: "Total number of session tokens issued",
	}, []string{"action"})

	MessagesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rpchat_messages_created_total",
		Help: "Total number of chat messages created",
	})
)
