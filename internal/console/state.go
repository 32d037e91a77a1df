// Package console is the operator console: a view-state store fed by the
// API client plus a pure text renderer. The store holds whole server
// responses and replaces them wholesale after each action; it never
// computes game transitions locally.
package console

import (
	"context"
	"errors"
	"sync"

	"github.com/jstevez608/Football-Sim/internal/client"
	"github.com/jstevez608/Football-Sim/internal/league"
)

// ViewState is everything the renderer reads. All slices are full server
// responses; UI selections are the only client-owned fields.
type ViewState struct {
	GameState    *league.GameState
	Players      []league.Player
	Teams        []league.Team
	Standings    []league.StandingsRow
	RoundMatches []league.Match
	Formations   map[string]league.Formation
	Market       *league.MarketStatus
	LastMatch    *league.MatchResult

	SelectedTeamID   string
	SelectedPlayerID string
}

// TeamByID looks a team up in the loaded list.
func (v ViewState) TeamByID(id string) (league.Team, bool) {
	for _, t := range v.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return league.Team{}, false
}

// PlayerByID looks a player up in the loaded pool.
func (v ViewState) PlayerByID(id string) (league.Player, bool) {
	for _, p := range v.Players {
		if p.ID == id {
			return p, true
		}
	}
	return league.Player{}, false
}

// Store drives the console. Every mutating method fires the API call and
// then reloads the resources the action invalidated, in a fixed order.
// On any failure the previous view state is kept untouched.
type Store struct {
	api *client.Client

	mu   sync.Mutex
	view ViewState
}

// NewStore wraps an API client.
func NewStore(api *client.Client) *Store {
	return &Store{api: api}
}

// View returns a copy of the current view state.
func (s *Store) View() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SelectTeam records the operator's team selection.
func (s *Store) SelectTeam(teamID string) {
	s.mu.Lock()
	s.view.SelectedTeamID = teamID
	s.mu.Unlock()
}

// SelectPlayer records the operator's player selection.
func (s *Store) SelectPlayer(playerID string) {
	s.mu.Lock()
	s.view.SelectedPlayerID = playerID
	s.mu.Unlock()
}

// loadState tolerates a server with no initialized game: the view keeps a
// nil GameState and the renderer shows the setup prompt.
func (s *Store) loadState(ctx context.Context) (*league.GameState, error) {
	state, err := s.api.GameState(ctx)
	if errors.Is(err, client.ErrNoGame) {
		return nil, nil
	}
	return state, err
}

// Refresh reloads the whole view: game state, players, teams, and — once
// the league is running — standings, the current round's fixtures, and
// the market flag.
func (s *Store) Refresh(ctx context.Context) error {
	state, err := s.loadState(ctx)
	if err != nil {
		return err
	}
	next := ViewState{GameState: state}

	if state != nil {
		if next.Players, err = s.api.Players(ctx); err != nil {
			return err
		}
		if next.Teams, err = s.api.Teams(ctx); err != nil {
			return err
		}
		if state.CurrentPhase == league.PhasePreMatch || state.CurrentPhase == league.PhaseMatch {
			if next.Standings, err = s.api.Standings(ctx); err != nil {
				return err
			}
			if next.RoundMatches, err = s.api.RoundMatches(ctx, state.CurrentRound); err != nil {
				return err
			}
			if next.Market, err = s.api.MarketStatus(ctx); err != nil {
				return err
			}
		}
		if next.Formations, err = s.api.Formations(ctx); err != nil {
			return err
		}
	}

	s.mu.Lock()
	next.SelectedTeamID = s.view.SelectedTeamID
	next.SelectedPlayerID = s.view.SelectedPlayerID
	next.LastMatch = s.view.LastMatch
	s.view = next
	s.mu.Unlock()
	return nil
}

// InitGame resets the server game and reloads everything.
func (s *Store) InitGame(ctx context.Context) (int, error) {
	n, err := s.api.InitGame(ctx)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	s.view.LastMatch = nil
	s.view.SelectedTeamID = ""
	s.view.SelectedPlayerID = ""
	s.mu.Unlock()
	return n, s.Refresh(ctx)
}

// CreateTeam validates locally, registers the team, and reloads teams and
// game state.
func (s *Store) CreateTeam(ctx context.Context, name string, colors league.TeamColors, budget int) (string, error) {
	if err := ValidateTeamInput(name, budget); err != nil {
		return "", err
	}
	id, err := s.api.CreateTeam(ctx, name, colors, budget)
	if err != nil {
		return "", err
	}
	return id, s.reload(ctx, reloadState, reloadTeams)
}

// EditPlayer applies a pool edit and reloads the players.
func (s *Store) EditPlayer(ctx context.Context, playerID string, upd league.PlayerUpdate) error {
	if err := s.api.UpdatePlayer(ctx, playerID, upd); err != nil {
		return err
	}
	return s.reload(ctx, reloadPlayers)
}

// StartDraft validates the team count locally and opens the draft.
func (s *Store) StartDraft(ctx context.Context) ([]string, error) {
	if err := CanStartDraft(s.View().Teams); err != nil {
		return nil, err
	}
	order, err := s.api.StartDraft(ctx)
	if err != nil {
		return nil, err
	}
	return order, s.reload(ctx, reloadState)
}

// DraftPick drafts a player and reloads state, players, and teams — in
// that order, so the turn pointer is fresh before the rosters.
func (s *Store) DraftPick(ctx context.Context, teamID, playerID string, clauseAmount int) error {
	if err := s.api.DraftPick(ctx, teamID, playerID, clauseAmount); err != nil {
		return err
	}
	return s.reload(ctx, reloadState, reloadPlayers, reloadTeams)
}

// SkipDraftTurn passes the draft turn and reloads the state.
func (s *Store) SkipDraftTurn(ctx context.Context, teamID string) error {
	if err := s.api.SkipDraftTurn(ctx, teamID); err != nil {
		return err
	}
	return s.reload(ctx, reloadState)
}

// StartLeague validates roster sizes locally and starts the season.
func (s *Store) StartLeague(ctx context.Context) (*league.StartLeagueResult, error) {
	if err := CanStartLeague(s.View().Teams); err != nil {
		return nil, err
	}
	result, err := s.api.StartLeague(ctx)
	if err != nil {
		return nil, err
	}
	return result, s.Refresh(ctx)
}

// SelectLineup validates the submission locally (when the needed data is
// loaded) and submits it.
func (s *Store) SelectLineup(ctx context.Context, teamID, formationKey string, playerIDs []string) (*league.LineupResult, error) {
	view := s.View()
	if f, ok := view.Formations[formationKey]; ok {
		if team, ok := view.TeamByID(teamID); ok {
			picks := make([]league.Player, 0, len(playerIDs))
			complete := true
			for _, id := range playerIDs {
				p, ok := view.PlayerByID(id)
				if !ok {
					complete = false
					break
				}
				picks = append(picks, p)
			}
			if complete {
				if err := ValidateLineup(f, team, picks); err != nil {
					return nil, err
				}
			}
		}
	}
	result, err := s.api.SelectLineup(ctx, teamID, formationKey, playerIDs)
	if err != nil {
		return nil, err
	}
	return result, s.reload(ctx, reloadState, reloadTeams)
}

// SkipLineupTurn passes the lineup turn and reloads the state.
func (s *Store) SkipLineupTurn(ctx context.Context, teamID string) error {
	if err := s.api.SkipLineupTurn(ctx, teamID); err != nil {
		return err
	}
	return s.reload(ctx, reloadState)
}

// SimulateNextMatch plays the next fixture and refreshes everything the
// result touches: state, teams, standings, fixtures, and player fatigue.
func (s *Store) SimulateNextMatch(ctx context.Context) (*league.MatchResult, error) {
	result, err := s.api.SimulateNextMatch(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.view.LastMatch = result
	s.mu.Unlock()
	return result, s.Refresh(ctx)
}

// RoundFixtures fetches the fixtures of an arbitrary round without
// touching the committed view.
func (s *Store) RoundFixtures(ctx context.Context, round int) ([]league.Match, error) {
	return s.api.RoundMatches(ctx, round)
}

// SetClause puts a clause on a player and reloads the pool.
func (s *Store) SetClause(ctx context.Context, teamID, playerID string, clauseAmount int) error {
	if err := s.api.SetClause(ctx, teamID, playerID, clauseAmount); err != nil {
		return err
	}
	return s.reload(ctx, reloadPlayers, reloadTeams)
}

// BuyPlayer performs a purchase (or a free-agent signing with empty
// sellerID) and reloads state, players, and teams.
func (s *Store) BuyPlayer(ctx context.Context, buyerID, sellerID, playerID string) (*client.TransferResponse, error) {
	result, err := s.api.BuyPlayer(ctx, buyerID, sellerID, playerID)
	if err != nil {
		return nil, err
	}
	return result, s.reload(ctx, reloadState, reloadPlayers, reloadTeams)
}

// ReleasePlayer releases a player and reloads state, players, and teams.
func (s *Store) ReleasePlayer(ctx context.Context, teamID, playerID string) (*client.TransferResponse, error) {
	result, err := s.api.ReleasePlayer(ctx, teamID, playerID)
	if err != nil {
		return nil, err
	}
	return result, s.reload(ctx, reloadState, reloadPlayers, reloadTeams)
}

// ---------------------------------------------------------------------------
// Partial reloads
// ---------------------------------------------------------------------------

type reloadKind int

const (
	reloadState reloadKind = iota
	reloadPlayers
	reloadTeams
)

// reload fetches the requested resources in the given order into locals
// and commits them together. A failed fetch leaves the view untouched.
func (s *Store) reload(ctx context.Context, kinds ...reloadKind) error {
	var (
		state   *league.GameState
		players []league.Player
		teams   []league.Team
		err     error
	)
	for _, k := range kinds {
		switch k {
		case reloadState:
			if state, err = s.loadState(ctx); err != nil {
				return err
			}
		case reloadPlayers:
			if players, err = s.api.Players(ctx); err != nil {
				return err
			}
		case reloadTeams:
			if teams, err = s.api.Teams(ctx); err != nil {
				return err
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range kinds {
		switch k {
		case reloadState:
			s.view.GameState = state
		case reloadPlayers:
			s.view.Players = players
		case reloadTeams:
			s.view.Teams = teams
		}
	}
	return nil
}
