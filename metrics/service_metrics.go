package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_dashboard_"

// Service constants
const (
	ServiceTrending    = "trending"
	ServiceMarketChart = "market-chart"
	ServiceCoinDetail  = "coin-detail"
	ServiceSessions    = "sessions"
	ServiceDashboard   = "dashboard"
)

var (
	// Global Coingecko request counter (all services)
	// Cardinality: ~4 (success, error, rate_limited, canceled)
	CoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API across all services",
		},
		[]string{"status"},
	)

	// Service-specific Coingecko request counter
	// Cardinality: ~12 (3 services × 4 statuses)
	ServiceCoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API per service",
		},
		[]string{"service", "status"},
	)

	// Data fetch cycle duration per service
	// Cardinality: ~3 (number of services)
	DataFetchCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "data_fetch_cycle_duration_seconds",
			Help: "Time taken to complete a full data fetch cycle",
		},
		[]string{"service"},
	)

	// Number of coins held by the last successful trending fetch
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items held by a service",
		},
		[]string{"service"},
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

	// Detail results dropped because the selection moved on
	StaleResponsesCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "stale_responses_total",
			Help: "Total number of fetch results discarded as superseded",
		},
		[]string{"service"},
	)

	// ActiveSessionsGauge tracks open dashboard sessions
	ActiveSessionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "active_sessions",
			Help: "Number of open dashboard sessions",
		},
	)
)

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
	log.Trace().Str("service", mw.serviceName).Str("status", status).Msg("Metrics: Coingecko request recorded")
}

// RecordDataFetchCycle records the duration of a data fetch cycle
func (mw *MetricsWriter) RecordDataFetchCycle(duration time.Duration) {
	DataFetchCycleDuration.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
	log.Debug().Str("service", mw.serviceName).Dur("duration", duration).Msg("Metrics: data fetch cycle finished")
}

// RecordCacheSize records the number of items a service currently holds
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordRetryAttempt records a retry attempt
func (mw *MetricsWriter) RecordRetryAttempt() {
	ServiceRetryCounter.WithLabelValues(mw.serviceName).Inc()
}

// RecordStaleResponse records a result dropped because a newer request superseded it
func (mw *MetricsWriter) RecordStaleResponse() {
	StaleResponsesCounter.WithLabelValues(mw.serviceName).Inc()
}

// SessionOpened increments the active sessions gauge
func SessionOpened() {
	ActiveSessionsGauge.Inc()
}

// SessionClosed decrements the active sessions gauge
func SessionClosed() {
	ActiveSessionsGauge.Dec()
}
