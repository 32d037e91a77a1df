package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jstevez608/Football-Sim/internal/api/respond"
	"github.com/jstevez608/Football-Sim/internal/league"
)

// ListPlayers returns the whole pool, drafted and free.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.svc.ListPlayers())
}

// UpdatePlayer applies an operator edit to one player.
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var upd league.PlayerUpdate
	if !decode(w, r, &upd) {
		return
	}
	if err := h.svc.UpdatePlayer(r.Context(), chi.URLParam(r, "playerID"), upd); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "player updated"})
}
