package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/sessions"
)

// HealthChecker is implemented by every upstream client reported on /health
type HealthChecker interface {
	Healthy() bool
}

// NamedHealthChecker pairs a checker with the name it is reported under
type NamedHealthChecker struct {
	Name    string
	Checker HealthChecker
}

type Server struct {
	port     string
	store    *sessions.Store
	checkers []NamedHealthChecker
	upgrader websocket.Upgrader
	server   *http.Server
}

func New(port string, store *sessions.Store, checkers ...NamedHealthChecker) *Server {
	return &Server{
		port:     port,
		store:    store,
		checkers: checkers,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler builds the router serving every endpoint
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/sessions", s.handleCreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/selection", s.handleSelectCoin).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/time_frame", s.handleSetTimeFrame).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/chart_type", s.handleSetChartType).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/retry", s.handleRetry).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/coins", s.handleSearchCoins).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/stream", s.handleStream).Methods(http.MethodGet)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	log.Info().Str("port", s.port).Msg("Server starting")
	log.Info().Msg("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	return nil
}
