package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, path and status class.",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	gateWaitDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "status_gate_wait_seconds",
			Help:      "Time spent waiting for a shop status admission slot.",
			Buckets:   []float64{0, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	paymentCallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "payment_callbacks_total",
			Help:      "Count of gateway callbacks by outcome code.",
		},
		[]string{"rsp_code"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(requestsTotal, requestDuration, gateWaitDuration, paymentCallbacks)
	})
}

func ObserveRequest(method, path, status string, seconds float64) {
	requestsTotal.WithLabelValues(method, path, status).Inc()
	requestDuration.WithLabelValues(method, path).Observe(seconds)
}

// GateWaitObserver exposes the gate wait histogram through the gate package's
// minimal Observer interface.
func GateWaitObserver() prometheus.Histogram {
	return gateWaitDuration
}

func IncPaymentCallback(rspCode string) {
	paymentCallbacks.WithLabelValues(rspCode).Inc()
}
