package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jstevez608/Football-Sim/internal/api/respond"
)

type setClauseRequest struct {
	PlayerID     string `json:"player_id"`
	ClauseAmount int    `json:"clause_amount"`
}

// SetClause puts a protection clause on a team's own player.
func (h *Handler) SetClause(w http.ResponseWriter, r *http.Request) {
	var req setClauseRequest
	if !decode(w, r, &req) {
		return
	}
	teamID := chi.URLParam(r, "teamID")
	if err := h.svc.SetClause(r.Context(), teamID, req.PlayerID, req.ClauseAmount); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "clause set successfully",
		"clause_amount": req.ClauseAmount,
	})
}

type buyPlayerRequest struct {
	BuyerTeamID  string `json:"buyer_team_id"`
	SellerTeamID string `json:"seller_team_id"`
	PlayerID     string `json:"player_id"`
}

// BuyPlayer transfers a player for price plus clause. An empty seller
// signs a free agent from the open market.
func (h *Handler) BuyPlayer(w http.ResponseWriter, r *http.Request) {
	var req buyPlayerRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.BuyPlayer(r.Context(), req.BuyerTeamID, req.SellerTeamID, req.PlayerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":            "player purchased successfully",
		"player_name":        result.PlayerName,
		"total_cost":         result.TotalCost,
		"base_price":         result.BasePrice,
		"clause_amount":      result.ClauseAmount,
		"lineup_affected":    result.LineupAffected,
		"additional_message": result.AdditionalMessage,
	})
}

type releasePlayerRequest struct {
	TeamID   string `json:"team_id"`
	PlayerID string `json:"player_id"`
}

// ReleasePlayer returns a player to the free-agent pool for a 90% refund.
func (h *Handler) ReleasePlayer(w http.ResponseWriter, r *http.Request) {
	var req releasePlayerRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.ReleasePlayer(r.Context(), req.TeamID, req.PlayerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":            "player released successfully",
		"player_name":        result.PlayerName,
		"refund":             result.Refund,
		"lineup_affected":    result.LineupAffected,
		"additional_message": result.AdditionalMessage,
	})
}
