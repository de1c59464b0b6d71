package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/sessions"
)

const maxRequestBodyBytes = 1 << 16

type errorResponse struct {
	Error string `json:"error"`
}

// sendJSONResponse writes data with a 200 status
func sendJSONResponse(w http.ResponseWriter, data interface{}) {
	sendJSONResponseWithStatus(w, http.StatusOK, data)
}

// sendJSONResponseWithStatus is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func sendJSONResponseWithStatus(w http.ResponseWriter, status int, data interface{}) {
	// Marshal the data to calculate content length and ETag
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// ETag is the MD5 of the body
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(status)

	if _, err := w.Write(responseBytes); err != nil {
		log.Error().Err(err).Msg("Error writing response")
	}
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSONResponseWithStatus(w, status, errorResponse{Error: message})
}

// sendCommandError maps a session command failure onto a status code
func sendCommandError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboard.ErrUnknownCoin),
		errors.Is(err, dashboard.ErrInvalidTimeFrame),
		errors.Is(err, dashboard.ErrInvalidChartType):
		sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, dashboard.ErrSessionClosed):
		sendError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sessions.ErrStoreStopped):
		sendError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Error().Err(err).Msg("Unexpected session command error")
		sendError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSONBody decodes a size-limited request body into out.
// Unknown fields are rejected.
func decodeJSONBody(r *http.Request, out interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Error shutting down server")
		}
	}
}

func getParamTrimmed(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(key))
}
