package coingecko_common

import (
	"context"
	"math"

	"golang.org/x/time/rate"

	"github.com/status-im/market-dashboard/config"
)

// RequestPacer spaces outgoing requests to a configured rate.
// A nil *RequestPacer does not pace.
type RequestPacer struct {
	limiter *rate.Limiter
}

// NewRequestPacer returns nil when pacing is disabled (zero RPM)
func NewRequestPacer(cfg config.RateLimit) *RequestPacer {
	if cfg.RateLimitPerMinute <= 0 {
		return nil
	}

	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurstForLimit(limit)
	}

	return &RequestPacer{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until the next request may be sent or ctx is done
func (p *RequestPacer) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}

// Limit returns the configured rate, or rate.Inf for a nil pacer
func (p *RequestPacer) Limit() rate.Limit {
	if p == nil {
		return rate.Inf
	}
	return p.limiter.Limit()
}

// Burst returns the configured burst, or 0 for a nil pacer
func (p *RequestPacer) Burst() int {
	if p == nil {
		return 0
	}
	return p.limiter.Burst()
}

func defaultBurstForLimit(limit rate.Limit) int {
	if limit <= 1.0 {
		return 1
	}
	return int(math.Ceil(float64(limit)))
}
