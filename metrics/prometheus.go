package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

var (
	// FetchDurationHistogram tracks the duration of fetch operations
	FetchDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "fetch_duration_seconds",
			Help: "Time taken to fetch data from external APIs",
		},
		[]string{"service", "operation"},
	)
)

// RecordFetchDuration measures and records the duration of a single fetch operation
func RecordFetchDuration(service, operation string, start time.Time) {
	duration := time.Since(start)
	FetchDurationHistogram.WithLabelValues(service, operation).Observe(duration.Seconds())
	log.Debug().
		Str("service", service).
		Str("operation", operation).
		Dur("duration", duration).
		Msg("Metrics: fetch finished")
}
