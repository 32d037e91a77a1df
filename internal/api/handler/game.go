package handler

import (
	"net/http"

	"github.com/jstevez608/Football-Sim/internal/api/respond"
)

// GetGameState returns the current state. When no game exists the response
// is a 200 carrying an error field, which clients treat as "no game".
func (h *Handler) GetGameState(w http.ResponseWriter, r *http.Request) {
	state, ok := h.svc.GameStateSnapshot()
	if !ok {
		respond.WriteJSON(w, http.StatusOK, map[string]string{"error": "no game initialized"})
		return
	}
	respond.WriteJSON(w, http.StatusOK, state)
}

// InitGame resets the game, keeping operator-edited players when a pool
// already exists.
func (h *Handler) InitGame(w http.ResponseWriter, r *http.Request) {
	available, err := h.svc.Init(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":           "game reset successfully",
		"players_available": available,
	})
}
