package handler

import (
	"net/http"

	"github.com/jstevez608/Football-Sim/internal/api/respond"
)

type draftPickRequest struct {
	TeamID       string `json:"team_id"`
	PlayerID     string `json:"player_id"`
	ClauseAmount int    `json:"clause_amount"`
}

type teamTurnRequest struct {
	TeamID string `json:"team_id"`
}

// StartDraft opens the draft with the sequential team order.
func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.StartDraft(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "draft started",
		"draft_order": order,
	})
}

// DraftPick assigns a free player to the acting team.
func (h *Handler) DraftPick(w http.ResponseWriter, r *http.Request) {
	var req draftPickRequest
	if !decode(w, r, &req) {
		return
	}
	next, err := h.svc.DraftPick(r.Context(), req.TeamID, req.PlayerID, req.ClauseAmount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "player drafted successfully",
		"next_turn_index": next,
	})
}

// SkipDraftTurn passes without drafting.
func (h *Handler) SkipDraftTurn(w http.ResponseWriter, r *http.Request) {
	var req teamTurnRequest
	if !decode(w, r, &req) {
		return
	}
	next, err := h.svc.SkipDraftTurn(r.Context(), req.TeamID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "turn skipped successfully",
		"next_turn_index": next,
	})
}
