package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jstevez608/Football-Sim/internal/api/respond"
	"github.com/jstevez608/Football-Sim/internal/league"
)

// StartLeague closes the draft and generates the calendar.
func (h *Handler) StartLeague(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.StartLeague(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "league started",
		"total_matches": result.TotalMatches,
		"rounds":        result.Rounds,
	})
}

// Formations returns the fixed template catalogue.
func (h *Handler) Formations(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, league.Formations)
}

// Standings returns the server-computed league table.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.svc.Standings())
}

// RoundMatches returns the fixtures of one round.
func (h *Handler) RoundMatches(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil || round < 1 {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid round number")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.svc.RoundMatches(round))
}

// MarketStatus reports the server-owned market flag.
func (h *Handler) MarketStatus(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.svc.MarketStatusNow())
}

type lineupRequest struct {
	TeamID    string   `json:"team_id"`
	Formation string   `json:"formation"`
	Players   []string `json:"players"`
}

// SelectLineup stores a team's lineup for the current round.
func (h *Handler) SelectLineup(w http.ResponseWriter, r *http.Request) {
	var req lineupRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.SelectLineup(r.Context(), req.TeamID, req.Formation, req.Players)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, result)
}

// SkipLineupTurn passes the lineup selection turn.
func (h *Handler) SkipLineupTurn(w http.ResponseWriter, r *http.Request) {
	var req teamTurnRequest
	if !decode(w, r, &req) {
		return
	}
	next, err := h.svc.SkipLineupTurn(r.Context(), req.TeamID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "turn skipped",
		"next_turn": next,
	})
}

// SimulateNextMatch plays the next unplayed fixture of the current round.
func (h *Handler) SimulateNextMatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SimulateNextMatch(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, result)
}
