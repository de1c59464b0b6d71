package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running.
// Upstreams are "up" once they have served at least one request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := make(map[string]string, len(s.checkers))
	for _, c := range s.checkers {
		services[c.Name] = "unknown"
		if c.Checker.Healthy() {
			services[c.Name] = "up"
		}
	}

	status := map[string]interface{}{
		"status":   "ok",
		"services": services,
		"sessions": s.store.Count(),
	}

	sendJSONResponse(w, status)
}
