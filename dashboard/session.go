package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/coingecko_trending"
	"github.com/status-im/market-dashboard/events"
	"github.com/status-im/market-dashboard/market_data"
	"github.com/status-im/market-dashboard/metrics"
	"github.com/status-im/market-dashboard/trending"
)

// SessionConfig holds the per-view settings
type SessionConfig struct {
	Options         Options
	RefreshInterval time.Duration
	DetailTimeout   time.Duration
}

// Session is one mounted dashboard view. It owns a trending poller and at
// most one live detail fetch, and serialises every transition through Reduce.
type Session struct {
	id      string
	cfg     SessionConfig
	poller  *trending.Poller
	loader  *DetailLoader
	changes *events.SubscriptionManager
	stale   *metrics.MetricsWriter

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	state        State
	closed       bool
	detailCancel context.CancelFunc

	closeOnce sync.Once
}

// NewSession builds a session. Nothing is fetched until Start.
func NewSession(id string, cfg SessionConfig, trendingClient coingecko_trending.IAPIClient, loader *DetailLoader) *Session {
	s := &Session{
		id:      id,
		cfg:     cfg,
		loader:  loader,
		changes: events.NewSubscriptionManager(),
		stale:   metrics.NewMetricsWriter(metrics.ServiceDashboard),
		state:   NewState(cfg.Options),
	}
	s.poller = trending.NewPoller(cfg.RefreshInterval, trendingClient, s.onTrendingUpdate)
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Start begins polling trending coins. The session outlives ctx only until
// ctx is cancelled; Close tears it down explicitly.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	if err := s.poller.Start(s.ctx); err != nil {
		s.cancel()
		return err
	}
	log.Info().Str("session_id", s.id).Msg("Dashboard: session started")
	return nil
}

// Close stops the poller, cancels any detail fetch and waits for both.
// Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		if s.detailCancel != nil {
			s.detailCancel()
		}
		cancel := s.cancel
		s.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		s.poller.Stop()
		s.wg.Wait()
		s.changes.Close()

		log.Info().Str("session_id", s.id).Msg("Dashboard: session closed")
	})
}

// Closed reports whether Close has been called
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Snapshot returns the current state. Slices inside are never mutated
// after publication, so the copy is safe to read.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View returns the current render props
func (s *Session) View() View {
	return BuildView(s.Snapshot())
}

// Subscribe returns a subscription signalled after every state change.
// It is closed when the session closes.
func (s *Session) Subscribe() events.ISubscription {
	return s.changes.Subscribe()
}

// SelectCoin switches the detail panel to coinID, which must be trending
func (s *Session) SelectCoin(coinID string) error {
	if _, ok := market_data.FindCoin(s.Snapshot().Coins, coinID); !ok {
		return ErrUnknownCoin
	}
	return s.Dispatch(SelectCoin{CoinID: coinID})
}

// SetTimeFrame changes the chart window; days must be 7, 14 or 30
func (s *Session) SetTimeFrame(days int) error {
	tf, err := ParseTimeFrame(days)
	if err != nil {
		return err
	}
	return s.Dispatch(SetTimeFrame{TimeFrame: tf})
}

// SetChartType changes how the chart is drawn. It never fetches.
func (s *Session) SetChartType(chartType string) error {
	ct, err := ParseChartType(chartType)
	if err != nil {
		return err
	}
	return s.Dispatch(SetChartType{ChartType: ct})
}

// Retry re-attempts whatever failed: the trending poll, the detail panel, or both
func (s *Session) Retry() error {
	return s.Dispatch(Retry{})
}

// SearchCoins filters the trending list for the coin selector
func (s *Session) SearchCoins(query string) []market_data.TrendingCoin {
	return market_data.SearchCoins(s.Snapshot().Coins, query)
}

// Dispatch applies action and runs the resulting effects
func (s *Session) Dispatch(action Action) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}

	if IsStale(s.state, action) {
		s.mu.Unlock()
		s.stale.RecordStaleResponse()
		log.Debug().Str("session_id", s.id).Str("action", action.actionName()).Msg("Dashboard: discarded stale detail result")
		return nil
	}

	next, effects := Reduce(s.state, action, s.cfg.Options)
	s.state = next

	var retryTrending bool
	for _, effect := range effects {
		switch e := effect.(type) {
		case FetchDetail:
			s.startDetailFetch(e)
		case RetryTrending:
			retryTrending = true
		}
	}
	s.mu.Unlock()

	// the poller may be mid-callback waiting on s.mu, so trigger it unlocked
	if retryTrending {
		s.poller.Retry()
	}

	s.changes.Emit(context.Background())
	return nil
}

// startDetailFetch supersedes the in-flight fetch. Caller holds s.mu.
func (s *Session) startDetailFetch(e FetchDetail) {
	if s.detailCancel != nil {
		s.detailCancel()
	}

	parent := s.ctx
	if parent == nil {
		parent = context.Background()
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if s.cfg.DetailTimeout > 0 {
		ctx, cancel = context.WithTimeout(parent, s.cfg.DetailTimeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	s.detailCancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		s.loadDetail(ctx, e)
	}()
}

func (s *Session) loadDetail(ctx context.Context, e FetchDetail) {
	logger := log.With().Str("session_id", s.id).Str("coin_id", e.CoinID).Uint64("generation", e.Generation).Logger()

	result, err := s.loader.Load(ctx, e.CoinID, e.TimeFrame)

	var action Action
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Debug().Msg("Dashboard: detail fetch cancelled")
		} else {
			logger.Warn().Err(err).Msg("Dashboard: detail fetch failed")
		}
		action = DetailFailed{Generation: e.Generation, Err: trending.ErrorMessage(err)}
	} else {
		loaded := DetailLoaded{Generation: e.Generation, Points: result.Points, Coin: result.Coin}
		if result.InfoErr != nil {
			loaded.InfoErr = result.InfoErr.Error()
		}
		action = loaded
	}

	if err := s.Dispatch(action); err != nil && !errors.Is(err, ErrSessionClosed) {
		logger.Error().Err(err).Msg("Dashboard: failed to apply detail result")
	}
}

func (s *Session) onTrendingUpdate(_ context.Context, update trending.Update) {
	var action Action
	switch update.Phase {
	case trending.PhaseLoading:
		action = TrendingLoading{}
	case trending.PhaseSuccess:
		action = TrendingLoaded{Coins: update.Coins}
	case trending.PhaseFailure:
		action = TrendingFailed{Err: trending.ErrorMessage(update.Err)}
	default:
		return
	}

	if err := s.Dispatch(action); err != nil && !errors.Is(err, ErrSessionClosed) {
		log.Error().Str("session_id", s.id).Err(err).Msg("Dashboard: failed to apply trending update")
	}
}
