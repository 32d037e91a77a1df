// Package client is the typed gateway to the league API. Every call is
// fire-once: no retries, no caching, no request coordination. Server
// validation failures surface as APIError with the human-readable detail.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jstevez608/Football-Sim/internal/league"
)

const requestTimeout = 15 * time.Second

// ErrNoGame is returned by GameState when the server reports that no game
// has been initialized yet.
var ErrNoGame = errors.New("no game initialized")

// APIError is a server-reported failure carrying the response detail.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
}

// Client issues requests against one configured backend root.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given backend root (without the /api
// suffix).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Detail == "" {
			e.Detail = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Detail: e.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// ---------------------------------------------------------------------------
// Game
// ---------------------------------------------------------------------------

// GameState loads the state machine snapshot. ErrNoGame means the server
// has never been initialized.
func (c *Client) GameState(ctx context.Context) (*league.GameState, error) {
	var envelope struct {
		Error string `json:"error"`
		league.GameState
	}
	if err := c.get(ctx, "/game/state", &envelope); err != nil {
		return nil, err
	}
	if envelope.Error != "" {
		return nil, ErrNoGame
	}
	state := envelope.GameState
	return &state, nil
}

// InitGame resets the game and returns the available player count.
func (c *Client) InitGame(ctx context.Context) (int, error) {
	var resp struct {
		PlayersAvailable int `json:"players_available"`
	}
	if err := c.post(ctx, "/game/init", nil, &resp); err != nil {
		return 0, err
	}
	return resp.PlayersAvailable, nil
}

// ---------------------------------------------------------------------------
// Players and teams
// ---------------------------------------------------------------------------

// Players loads the whole pool.
func (c *Client) Players(ctx context.Context) ([]league.Player, error) {
	var players []league.Player
	if err := c.get(ctx, "/players", &players); err != nil {
		return nil, err
	}
	return players, nil
}

// UpdatePlayer applies an operator edit.
func (c *Client) UpdatePlayer(ctx context.Context, playerID string, upd league.PlayerUpdate) error {
	return c.do(ctx, http.MethodPut, "/players/"+playerID, upd, nil)
}

// Teams loads all teams.
func (c *Client) Teams(ctx context.Context) ([]league.Team, error) {
	var teams []league.Team
	if err := c.get(ctx, "/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// CreateTeam registers a team and returns its id.
func (c *Client) CreateTeam(ctx context.Context, name string, colors league.TeamColors, budget int) (string, error) {
	req := map[string]interface{}{"name": name, "colors": colors, "budget": budget}
	var resp struct {
		TeamID string `json:"team_id"`
	}
	if err := c.post(ctx, "/teams", req, &resp); err != nil {
		return "", err
	}
	return resp.TeamID, nil
}

// ---------------------------------------------------------------------------
// Draft
// ---------------------------------------------------------------------------

// StartDraft opens the draft and returns the turn order.
func (c *Client) StartDraft(ctx context.Context) ([]string, error) {
	var resp struct {
		DraftOrder []string `json:"draft_order"`
	}
	if err := c.post(ctx, "/draft/start", nil, &resp); err != nil {
		return nil, err
	}
	return resp.DraftOrder, nil
}

// DraftPick drafts a player for the acting team.
func (c *Client) DraftPick(ctx context.Context, teamID, playerID string, clauseAmount int) error {
	req := map[string]interface{}{
		"team_id":       teamID,
		"player_id":     playerID,
		"clause_amount": clauseAmount,
	}
	return c.post(ctx, "/draft/pick", req, nil)
}

// SkipDraftTurn passes the draft turn.
func (c *Client) SkipDraftTurn(ctx context.Context, teamID string) error {
	return c.post(ctx, "/draft/skip-turn", map[string]string{"team_id": teamID}, nil)
}

// ---------------------------------------------------------------------------
// League
// ---------------------------------------------------------------------------

// StartLeague generates the calendar and opens round one.
func (c *Client) StartLeague(ctx context.Context) (*league.StartLeagueResult, error) {
	var resp league.StartLeagueResult
	if err := c.post(ctx, "/league/start", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Standings loads the league table.
func (c *Client) Standings(ctx context.Context) ([]league.StandingsRow, error) {
	var rows []league.StandingsRow
	if err := c.get(ctx, "/league/standings", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// RoundMatches loads the fixtures of one round.
func (c *Client) RoundMatches(ctx context.Context, round int) ([]league.Match, error) {
	var matches []league.Match
	if err := c.get(ctx, fmt.Sprintf("/league/matches/round/%d", round), &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Formations loads the template catalogue.
func (c *Client) Formations(ctx context.Context) (map[string]league.Formation, error) {
	var formations map[string]league.Formation
	if err := c.get(ctx, "/league/formations", &formations); err != nil {
		return nil, err
	}
	return formations, nil
}

// MarketStatus loads the server-owned market flag.
func (c *Client) MarketStatus(ctx context.Context) (*league.MarketStatus, error) {
	var status league.MarketStatus
	if err := c.get(ctx, "/league/market-status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SelectLineup submits a formation and seven players.
func (c *Client) SelectLineup(ctx context.Context, teamID, formation string, players []string) (*league.LineupResult, error) {
	req := map[string]interface{}{
		"team_id":   teamID,
		"formation": formation,
		"players":   players,
	}
	var resp league.LineupResult
	if err := c.post(ctx, "/league/lineup/select", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SkipLineupTurn passes the lineup selection turn.
func (c *Client) SkipLineupTurn(ctx context.Context, teamID string) error {
	return c.post(ctx, "/league/lineup/skip-turn", map[string]string{"team_id": teamID}, nil)
}

// SimulateNextMatch plays the next fixture of the current round.
func (c *Client) SimulateNextMatch(ctx context.Context) (*league.MatchResult, error) {
	var resp league.MatchResult
	if err := c.post(ctx, "/league/simulate-next-match", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ---------------------------------------------------------------------------
// Transfer market
// ---------------------------------------------------------------------------

// TransferResponse reports a completed purchase or release.
type TransferResponse struct {
	Message           string `json:"message"`
	PlayerName        string `json:"player_name"`
	TotalCost         int    `json:"total_cost"`
	BasePrice         int    `json:"base_price"`
	ClauseAmount      int    `json:"clause_amount"`
	Refund            int    `json:"refund"`
	LineupAffected    bool   `json:"lineup_affected"`
	AdditionalMessage string `json:"additional_message"`
}

// SetClause puts a protection clause on an owned player.
func (c *Client) SetClause(ctx context.Context, teamID, playerID string, clauseAmount int) error {
	req := map[string]interface{}{
		"player_id":     playerID,
		"clause_amount": clauseAmount,
	}
	return c.post(ctx, "/teams/"+teamID+"/set-clause", req, nil)
}

// BuyPlayer buys from a seller team, or signs a free agent when sellerID
// is empty.
func (c *Client) BuyPlayer(ctx context.Context, buyerID, sellerID, playerID string) (*TransferResponse, error) {
	req := map[string]string{
		"buyer_team_id":  buyerID,
		"seller_team_id": sellerID,
		"player_id":      playerID,
	}
	var resp TransferResponse
	if err := c.post(ctx, "/teams/buy-player", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReleasePlayer releases an owned player for a 90% refund.
func (c *Client) ReleasePlayer(ctx context.Context, teamID, playerID string) (*TransferResponse, error) {
	req := map[string]string{
		"team_id":   teamID,
		"player_id": playerID,
	}
	var resp TransferResponse
	if err := c.post(ctx, "/teams/release-player", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
