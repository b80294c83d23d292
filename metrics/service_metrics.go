package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_dashboard_"

// Service constants
const (
	ServiceListings  = "listings"
	ServiceHistory   = "history"
	ServiceCoinsList = "coins-list"
	ServiceCache     = "cache"
)

var (
	// Global Coingecko request counter (all services)
	// Cardinality: ~3 (success, error, rate_limited)
	CoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API across all services",
		},
		[]string{"status"},
	)

	// Service-specific Coingecko request counter
	// Cardinality: ~9 (3 services × 3 statuses)
	ServiceCoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API per service",
		},
		[]string{"service", "status"},
	)

	// Fetch duration per service, measured around the whole keyed fetch
	// Cardinality: ~3 (number of services)
	FetchDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "fetch_duration_seconds",
			Help: "Time taken to fetch data from the Coingecko API",
		},
		[]string{"service"},
	)

	// Cache lookups by result
	// Cardinality: ~6 (3 services × hit/miss)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_lookups_total",
			Help: "Number of cache lookups by service and result",
		},
		[]string{"service", "result"},
	)

	// Service cache size
	// Cardinality: ~3 (number of services)
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)

	// Number of symbols known to the symbol index
	SymbolIndexSizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "symbol_index_size",
			Help: "Number of symbols in the symbol to coin id index",
		},
	)

	// Retry attempts counter
	// Cardinality: ~3 (number of services)
	ServiceRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_retry_attempts_total",
			Help: "Total number of retry attempts per service",
		},
		[]string{"service"},
	)

	// Rate limit hits counter
	// Cardinality: ~3 (number of services)
	RateLimitCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "rate_limit_hits_total",
			Help: "Total number of rate limit hits per service",
		},
		[]string{"service"},
	)
)

// RecordSymbolIndexSize records the number of symbols in the index
func RecordSymbolIndexSize(size int) {
	SymbolIndexSizeGauge.Set(float64(size))
	zap.L().Debug("Metrics: symbol index size", zap.Int("size", size))
}

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordServiceCoingeckoRequest records a service-specific Coingecko API request
func (mw *MetricsWriter) RecordServiceCoingeckoRequest(status string) {
	CoingeckoRequestsTotal.WithLabelValues(status).Inc()
	ServiceCoingeckoRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
	if status == "rate_limited" {
		RateLimitCounter.WithLabelValues(mw.serviceName).Inc()
	}
	zap.L().Debug("Metrics: Coingecko request recorded",
		zap.String("service", mw.serviceName), zap.String("status", status))
}

// RecordFetchDuration records how long a fetch took
func (mw *MetricsWriter) RecordFetchDuration(duration time.Duration) {
	FetchDurationHistogram.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// RecordCacheLookup records a fresh hit or a miss
func (mw *MetricsWriter) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(mw.serviceName, result).Inc()
}

// RecordCacheSize records the number of items in service cache
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordRetryAttempt records a retry attempt
func (mw *MetricsWriter) RecordRetryAttempt() {
	ServiceRetryCounter.WithLabelValues(mw.serviceName).Inc()
	zap.L().Debug("Metrics: retry attempt recorded", zap.String("service", mw.serviceName))
}

// Implement HttpStatusHandler interface for MetricsWriter
// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordServiceCoingeckoRequest(status)
}

// OnRetry records an HTTP retry attempt
func (mw *MetricsWriter) OnRetry() {
	mw.RecordRetryAttempt()
}
