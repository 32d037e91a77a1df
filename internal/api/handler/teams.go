package handler

import (
	"net/http"

	"github.com/jstevez608/Football-Sim/internal/api/respond"
	"github.com/jstevez608/Football-Sim/internal/league"
)

type createTeamRequest struct {
	Name   string            `json:"name"`
	Colors league.TeamColors `json:"colors"`
	Budget int               `json:"budget"`
}

// CreateTeam registers a team during setup.
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if !decode(w, r, &req) {
		return
	}
	teamID, err := h.svc.CreateTeam(r.Context(), req.Name, req.Colors, req.Budget)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"team_id": teamID})
}

// ListTeams returns all teams in creation order.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.svc.ListTeams())
}
