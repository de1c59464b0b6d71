package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/market_data"
)

type sessionResponse struct {
	ID   string         `json:"id"`
	View dashboard.View `json:"view"`
}

type selectCoinRequest struct {
	CoinID string `json:"coin_id"`
}

type timeFrameRequest struct {
	Days int `json:"days"`
}

type chartTypeRequest struct {
	ChartType string `json:"chart_type"`
}

type coinsResponse struct {
	Query string                     `json:"query"`
	Coins []market_data.TrendingCoin `json:"coins"`
}

// lookupSession resolves the {id} route variable, writing a 404 when unknown
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*dashboard.Session, bool) {
	id := mux.Vars(r)["id"]
	session, ok := s.store.Get(id)
	if !ok {
		sendError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return session, true
}

func sendSession(w http.ResponseWriter, status int, session *dashboard.Session) {
	sendJSONResponseWithStatus(w, status, sessionResponse{
		ID:   session.ID(),
		View: session.View(),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Create()
	if err != nil {
		sendCommandError(w, err)
		return
	}
	sendSession(w, http.StatusCreated, session)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	sendSession(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !s.store.Delete(id) {
		sendError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelectCoin(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req selectCoinRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.CoinID == "" {
		sendError(w, http.StatusBadRequest, "coin_id is required")
		return
	}

	if err := session.SelectCoin(req.CoinID); err != nil {
		sendCommandError(w, err)
		return
	}
	log.Debug().Str("session_id", session.ID()).Str("coin_id", req.CoinID).Msg("Coin selected")
	sendSession(w, http.StatusOK, session)
}

func (s *Server) handleSetTimeFrame(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req timeFrameRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := session.SetTimeFrame(req.Days); err != nil {
		sendCommandError(w, err)
		return
	}
	sendSession(w, http.StatusOK, session)
}

func (s *Server) handleSetChartType(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req chartTypeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := session.SetChartType(req.ChartType); err != nil {
		sendCommandError(w, err)
		return
	}
	sendSession(w, http.StatusOK, session)
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	if err := session.Retry(); err != nil {
		sendCommandError(w, err)
		return
	}
	sendSession(w, http.StatusAccepted, session)
}

// handleSearchCoins filters the session's trending list by name or symbol
func (s *Server) handleSearchCoins(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	query := getParamTrimmed(r, "query")
	coins := session.SearchCoins(query)
	if coins == nil {
		coins = []market_data.TrendingCoin{}
	}
	sendJSONResponse(w, coinsResponse{Query: query, Coins: coins})
}
