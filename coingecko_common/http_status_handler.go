package coingecko_common

import (
	"github.com/status-im/market-dashboard/metrics"
)

// HttpRequestMetricsWriter implements IHttpStatusHandler by writing to metrics
type HttpRequestMetricsWriter struct {
	writer *metrics.MetricsWriter
}

// NewHttpRequestMetricsWriter creates a new metrics writer for the given service
func NewHttpRequestMetricsWriter(serviceName string) *HttpRequestMetricsWriter {
	return &HttpRequestMetricsWriter{
		writer: metrics.NewMetricsWriter(serviceName),
	}
}

// OnRequest records an HTTP request with its status
func (h *HttpRequestMetricsWriter) OnRequest(status string) {
	h.writer.RecordServiceCoingeckoRequest(status)
}

// OnRetry records an HTTP retry attempt
func (h *HttpRequestMetricsWriter) OnRetry() {
	h.writer.RecordRetryAttempt()
}
