package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/dashboard"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

// handleStream pushes the session view over a websocket: once on connect
// and again after every state change. Pings keep the session from idling out.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Warn().Err(err).Str("session_id", session.ID()).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	sub := session.Subscribe()
	defer sub.Cancel()

	logger := log.With().Str("session_id", session.ID()).Str("remote", r.RemoteAddr).Logger()
	logger.Debug().Msg("Stream opened")

	closed := make(chan struct{})
	go readPump(conn, closed)

	if err := writeView(conn, session.View()); err != nil {
		logger.Debug().Err(err).Msg("Stream write failed")
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case _, ok := <-sub.Chan():
			if !ok {
				// session closed
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"))
				logger.Debug().Msg("Stream closed by session")
				return
			}
			if err := writeView(conn, session.View()); err != nil {
				logger.Debug().Err(err).Msg("Stream write failed")
				return
			}
		case <-ticker.C:
			s.store.Get(session.ID())
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Debug().Err(err).Msg("Stream ping failed")
				return
			}
		case <-closed:
			logger.Debug().Msg("Stream closed by client")
			return
		}
	}
}

func writeView(conn *websocket.Conn, view dashboard.View) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(view)
}

// readPump drains client frames so control messages are processed.
// closed is closed once the connection fails or the client goes away.
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
