package trending

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/coingecko_trending"
	"github.com/status-im/market-dashboard/market_data"
	"github.com/status-im/market-dashboard/metrics"
	"github.com/status-im/market-dashboard/scheduler"
)

// Phase is the stage of one poll
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	}
	return "unknown"
}

// Update is emitted at every phase change of a poll.
// Coins holds the latest successful list, so a failure still carries the
// previously fetched coins.
type Update struct {
	Phase Phase
	Coins []market_data.TrendingCoin
	Err   error
}

// UpdateCallback receives poll updates on the poller goroutine
type UpdateCallback func(ctx context.Context, update Update)

// Poller fetches trending coins on a fixed interval until stopped
type Poller struct {
	interval      time.Duration
	client        coingecko_trending.IAPIClient
	metricsWriter *metrics.MetricsWriter
	onUpdate      UpdateCallback
	scheduler     *scheduler.Scheduler
	initialized   atomic.Bool

	mu    sync.RWMutex
	coins []market_data.TrendingCoin
}

// NewPoller creates a poller. Nothing is fetched until Start.
func NewPoller(interval time.Duration, client coingecko_trending.IAPIClient, onUpdate UpdateCallback) *Poller {
	return &Poller{
		interval:      interval,
		client:        client,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceTrending),
		onUpdate:      onUpdate,
	}
}

// Start fetches immediately and then every interval
func (p *Poller) Start(ctx context.Context) error {
	if p.interval <= 0 {
		return fmt.Errorf("trending poll interval must be positive, got %v", p.interval)
	}

	p.scheduler = scheduler.New(p.interval, p.poll)
	p.scheduler.Start(ctx, true)
	return nil
}

// Stop cancels the timer and any in-flight fetch and waits for the poll loop
func (p *Poller) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}

// Retry fetches again right away. Returns false when the poller is not running.
func (p *Poller) Retry() bool {
	if p.scheduler == nil {
		return false
	}
	return p.scheduler.TriggerNow()
}

// IsInitialized returns true once a fetch has succeeded
func (p *Poller) IsInitialized() bool {
	return p.initialized.Load()
}

// Coins returns the latest successfully fetched list
func (p *Poller) Coins() []market_data.TrendingCoin {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.coins
}

func (p *Poller) poll(ctx context.Context) {
	p.emit(ctx, Update{Phase: PhaseLoading, Coins: p.Coins()})

	startTime := time.Now()
	coins, err := p.client.FetchTrending(ctx)
	if ctx.Err() != nil {
		// stopped mid-fetch; nobody is listening any more
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("Trending: fetch failed")
		p.emit(ctx, Update{Phase: PhaseFailure, Coins: p.Coins(), Err: err})
		return
	}
	if coins == nil {
		coins = []market_data.TrendingCoin{}
	}

	p.mu.Lock()
	p.coins = coins
	p.mu.Unlock()
	p.initialized.Store(true)

	p.metricsWriter.RecordDataFetchCycle(time.Since(startTime))
	p.metricsWriter.RecordCacheSize(len(coins))

	log.Info().Int("coins", len(coins)).Msg("Trending: updated trending coins")
	p.emit(ctx, Update{Phase: PhaseSuccess, Coins: coins})
}

func (p *Poller) emit(ctx context.Context, update Update) {
	if p.onUpdate != nil {
		p.onUpdate(ctx, update)
	}
}

// ErrorMessage renders a fetch error for display
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}
