package sessions

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/metrics"
)

var ErrStoreStopped = errors.New("session store is stopped")

// SessionFactory builds an unstarted session for id
type SessionFactory func(id string) *dashboard.Session

// Store keeps live sessions in a go-cache with a sliding idle expiration.
// An evicted session is closed, whether it expired or was deleted.
type Store struct {
	cache         *cache.Cache
	factory       SessionFactory
	metricsWriter *metrics.MetricsWriter

	mu      sync.RWMutex
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

// NewStore creates a session store
// IdleTimeout: how long a session survives without access
// CleanupInterval: interval for sweeping expired sessions
func NewStore(cfg config.SessionsConfig, factory SessionFactory) *Store {
	s := &Store{
		cache:         cache.New(cfg.IdleTimeout, cfg.CleanupInterval),
		factory:       factory,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceSessions),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.cache.OnEvicted(s.onEvicted)
	return s
}

// Start binds new sessions to ctx
func (s *Store) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.stopped = false
	log.Info().Msg("Sessions: store started")
	return nil
}

// Stop closes every live session
func (s *Store) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	for id := range s.cache.Items() {
		s.cache.Delete(id)
	}
	s.cancel()
	log.Info().Msg("Sessions: store stopped")
}

// Create starts a new session and stores it under a fresh id
func (s *Store) Create() (*dashboard.Session, error) {
	s.mu.RLock()
	stopped, ctx := s.stopped, s.ctx
	s.mu.RUnlock()
	if stopped {
		return nil, ErrStoreStopped
	}

	id := uuid.NewString()
	session := s.factory(id)
	if err := session.Start(ctx); err != nil {
		session.Close()
		return nil, err
	}

	s.cache.SetDefault(id, session)
	metrics.SessionOpened()
	s.metricsWriter.RecordCacheSize(s.cache.ItemCount())
	log.Info().Str("session_id", id).Int("active", s.cache.ItemCount()).Msg("Sessions: created")
	return session, nil
}

// Get returns the session for id and extends its idle expiration
func (s *Store) Get(id string) (*dashboard.Session, bool) {
	value, found := s.cache.Get(id)
	if !found {
		return nil, false
	}
	session, ok := value.(*dashboard.Session)
	if !ok || session.Closed() {
		return nil, false
	}

	// Replace fails if the janitor evicted id in the meantime
	if err := s.cache.Replace(id, session, cache.DefaultExpiration); err != nil {
		return nil, false
	}
	return session, true
}

// Delete closes and removes the session. Returns false if id is unknown.
func (s *Store) Delete(id string) bool {
	if _, found := s.cache.Get(id); !found {
		return false
	}
	s.cache.Delete(id)
	return true
}

// Count returns the number of live sessions, expired-but-unswept included
func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// DeleteExpired sweeps expired sessions now instead of waiting for the janitor
func (s *Store) DeleteExpired() {
	s.cache.DeleteExpired()
}

func (s *Store) onEvicted(id string, value interface{}) {
	session, ok := value.(*dashboard.Session)
	if !ok {
		return
	}
	session.Close()
	metrics.SessionClosed()
	s.metricsWriter.RecordCacheSize(s.cache.ItemCount())
	log.Info().Str("session_id", id).Msg("Sessions: evicted")
}
