// Package handler provides HTTP handlers for all API endpoints. Handlers
// decode requests, delegate to the league service, and translate domain
// errors into status codes with a human-readable detail.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jstevez608/Football-Sim/internal/api/respond"
	"github.com/jstevez608/Football-Sim/internal/league"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	svc *league.Service
}

// New creates a Handler around the league service.
func New(svc *league.Service) *Handler {
	return &Handler{svc: svc}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Football Draft League API",
		"status":  "running",
		"version": "1.0.0",
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// decode reads a JSON body into v, reporting a 400 on malformed input.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return false
	}
	return true
}

// writeDomainError maps a league error to its HTTP status.
func writeDomainError(w http.ResponseWriter, err error) {
	detail := league.Detail(err)
	switch {
	case errors.Is(err, league.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", detail)
	case errors.Is(err, league.ErrRule):
		respond.WriteError(w, http.StatusBadRequest, "RULE_VIOLATION", detail)
	default:
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", detail)
	}
}
