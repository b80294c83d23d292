package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts requests served by the presentation layer
	// Cardinality: ~40 (8 routes × 5 status codes)
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "api_requests_total",
			Help: "Total number of API requests served by route and status code",
		},
		[]string{"route", "code"},
	)

	// APIRequestDuration tracks how long handlers take per route
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "api_request_duration_seconds",
			Help: "Time taken to serve API requests",
		},
		[]string{"route"},
	)
)

// RecordAPIRequest records one served request
func RecordAPIRequest(route string, code int, start time.Time) {
	APIRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	APIRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}
