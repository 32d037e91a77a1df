// Package league implements the draft-and-league game: the player pool,
// team management, the turn-based draft, the 14-round calendar, lineup
// selection, the transfer market, and match simulation. The whole game
// lives in a single Game document mutated under the store's lock.
package league

// Position enumerates the four player roles. Values match the original
// Spanish data set and are part of the wire format.
type Position string

const (
	Portero   Position = "PORTERO"
	Defensa   Position = "DEFENSA"
	Medio     Position = "MEDIO"
	Delantero Position = "DELANTERO"
)

// Phase is the server-owned game phase. Clients dispatch rendering on it
// but never compute transitions themselves.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseDraft    Phase = "draft"
	PhasePreMatch Phase = "pre_match"
	PhaseMatch    Phase = "match"
	// PhaseLeague is the umbrella value the operator console renders for
	// the pre_match/match cycle. The server reports the concrete phase.
	PhaseLeague Phase = "league"
)

// Budget bounds for team creation, in currency units.
const (
	MinBudget = 40_000_000
	MaxBudget = 180_000_000
)

// Roster limits.
const (
	MaxRosterSize   = 10
	MinRosterSize   = 7
	LeagueTeamCount = 8
	LineupSize      = 7
)

// MarketOpensAtRound is the first round in which the free-agent market is
// open. The flag is server-communicated; clients must not derive it.
const MarketOpensAtRound = 7

// TotalRounds in the double round-robin calendar of 8 teams.
const TotalRounds = 14

// ReleaseRefundPercent of the player's price is refunded on release.
const ReleaseRefundPercent = 90

// Prize money per simulated match.
const (
	HomeBonus     = 500_000
	PrizePerPoint = 1_000_000
)

// PlayerStats holds the twelve 1-6 attributes a duel draws from.
type PlayerStats struct {
	Pase    int `json:"pase"`
	Area    int `json:"area"`
	Tiro    int `json:"tiro"`
	Remate  int `json:"remate"`
	Corner  int `json:"corner"`
	Penalti int `json:"penalti"`
	Regate  int `json:"regate"`
	Parada  int `json:"parada"`
	Despeje int `json:"despeje"`
	Robo    int `json:"robo"`
	Bloqueo int `json:"bloqueo"`
	Atajada int `json:"atajada"`
}

// Get returns the attribute backing an action name (PASE, ROBO, ...).
func (s PlayerStats) Get(action string) int {
	switch action {
	case "PASE":
		return s.Pase
	case "AREA":
		return s.Area
	case "TIRO":
		return s.Tiro
	case "REMATE":
		return s.Remate
	case "CORNER":
		return s.Corner
	case "PENALTI":
		return s.Penalti
	case "REGATE":
		return s.Regate
	case "PARADA":
		return s.Parada
	case "DESPEJE":
		return s.Despeje
	case "ROBO":
		return s.Robo
	case "BLOQUEO":
		return s.Bloqueo
	case "ATAJADA":
		return s.Atajada
	}
	return 0
}

// Valid reports whether every attribute is inside 1-6.
func (s PlayerStats) Valid() bool {
	for _, v := range []int{s.Pase, s.Area, s.Tiro, s.Remate, s.Corner, s.Penalti,
		s.Regate, s.Parada, s.Despeje, s.Robo, s.Bloqueo, s.Atajada} {
		if v < 1 || v > 6 {
			return false
		}
	}
	return true
}

// Player is a pool member. TeamID empty means free agent.
type Player struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Position          Position    `json:"position"`
	Price             int         `json:"price"`
	Resistance        int         `json:"resistance"`
	Stats             PlayerStats `json:"stats"`
	TeamID            string      `json:"team_id,omitempty"`
	ClauseAmount      int         `json:"clause_amount"`
	GamesPlayed       int         `json:"games_played"`
	IsResting         bool        `json:"is_resting"`
	RestingSinceRound int         `json:"resting_since_round,omitempty"`
}

// TeamColors is the two-color kit of a team.
type TeamColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Team carries the roster, the budget, and — once the league starts — the
// per-season statistics and the current round's lineup.
type Team struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Colors  TeamColors `json:"colors"`
	Budget  int        `json:"budget"`
	Players []string   `json:"players"`

	Points        int `json:"points"`
	MatchesPlayed int `json:"matches_played"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	GoalsFor      int `json:"goals_for"`
	GoalsAgainst  int `json:"goals_against"`

	CurrentLineup    []string `json:"current_lineup"`
	CurrentFormation string   `json:"current_formation"`

	// Transfer disruption: set when a lineup player is sold or released,
	// entitling the team to an out-of-order replacement selection.
	NeedsReplacementTurn bool `json:"needs_replacement_turn,omitempty"`
	PriorityTurn         bool `json:"priority_turn,omitempty"`
}

// HasPlayer reports roster membership.
func (t *Team) HasPlayer(playerID string) bool {
	for _, id := range t.Players {
		if id == playerID {
			return true
		}
	}
	return false
}

// GameState is the server-owned state machine snapshot the client reads.
type GameState struct {
	ID                   string   `json:"id"`
	Teams                []string `json:"teams"`
	CurrentPhase         Phase    `json:"current_phase"`
	CurrentRound         int      `json:"current_round"`
	CurrentTeamTurn      int      `json:"current_team_turn"`
	MarketOpen           bool     `json:"market_open"`
	DraftOrder           []string `json:"draft_order"`
	LineupSelectionPhase bool     `json:"lineup_selection_phase"`
}

// Formation is a named lineup template. Counts sum to LineupSize.
type Formation struct {
	Name       string `json:"name"`
	Portero    int    `json:"portero"`
	Defensas   int    `json:"defensas"`
	Medios     int    `json:"medios"`
	Delanteros int    `json:"delanteros"`
}

// Count returns the required players for a position.
func (f Formation) Count(p Position) int {
	switch p {
	case Portero:
		return f.Portero
	case Defensa:
		return f.Defensas
	case Medio:
		return f.Medios
	case Delantero:
		return f.Delanteros
	}
	return 0
}

// Match is a calendar fixture, filled in when simulated.
type Match struct {
	ID          string    `json:"id"`
	HomeTeamID  string    `json:"home_team_id"`
	AwayTeamID  string    `json:"away_team_id"`
	RoundNumber int       `json:"round_number"`
	HomeScore   int       `json:"home_score"`
	AwayScore   int       `json:"away_score"`
	HomeLineup  []string  `json:"home_lineup"`
	AwayLineup  []string  `json:"away_lineup"`
	MatchLog    *MatchLog `json:"match_log,omitempty"`
	Played      bool      `json:"played"`
}

// StandingsRow is one server-computed league table entry.
type StandingsRow struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Points         int    `json:"points"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}

// MarketStatus is the server-communicated market flag.
type MarketStatus struct {
	MarketOpen   bool `json:"market_open"`
	OpensAtRound int  `json:"opens_at_round"`
	CurrentRound int  `json:"current_round"`
}
