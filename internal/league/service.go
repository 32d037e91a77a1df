package league

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Game is the single mutable game document: state machine, player pool,
// teams, and calendar. There is exactly one per server, as in the original
// deployment.
type Game struct {
	State   *GameState `json:"state"`
	Players []*Player  `json:"players"`
	Teams   []*Team    `json:"teams"`
	Matches []*Match   `json:"matches"`
}

// Persister saves game snapshots after mutations. Implementations must be
// safe for sequential use; the service never calls Save concurrently.
type Persister interface {
	Save(ctx context.Context, g *Game) error
}

// Service owns the game document and serializes every operation under one
// lock. All methods return copies; callers never see shared mutable state.
type Service struct {
	mu      sync.Mutex
	game    *Game
	rng     *rand.Rand
	persist Persister
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithSeed makes player generation and match simulation deterministic.
func WithSeed(seed int64) ServiceOption {
	return func(s *Service) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithPersister enables snapshot persistence after each mutation.
func WithPersister(p Persister) ServiceOption {
	return func(s *Service) { s.persist = p }
}

// WithGame restores a previously persisted game document.
func WithGame(g *Game) ServiceOption {
	return func(s *Service) { s.game = g }
}

// NewService creates a service with no game until Init is called, unless a
// restored document is supplied.
func NewService(logger *slog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// save persists the current document. Persistence failures are logged, not
// surfaced: the in-memory document remains authoritative.
func (s *Service) save(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(ctx, s.game); err != nil {
		s.logger.Error("persist game snapshot", "error", err)
	}
}

// ---------------------------------------------------------------------------
// Lookup helpers (callers hold s.mu)
// ---------------------------------------------------------------------------

func (s *Service) teamByID(id string) *Team {
	for _, t := range s.game.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Service) playerByID(id string) *Player {
	for _, p := range s.game.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Service) playersByIDs(ids []string) []*Player {
	players := make([]*Player, 0, len(ids))
	for _, id := range ids {
		if p := s.playerByID(id); p != nil {
			players = append(players, p)
		}
	}
	return players
}

// leagueRunning reports whether the pre_match/match cycle is active, which
// is when market operations (clause, buy, release) are permitted.
func (s *Service) leagueRunning() bool {
	phase := s.game.State.CurrentPhase
	return phase == PhasePreMatch || phase == PhaseMatch
}

func (s *Service) marketOpen() bool {
	return s.leagueRunning() && s.game.State.CurrentRound >= MarketOpensAtRound
}

// CurrentActor resolves the acting team from an order and an index. An
// out-of-range index is an explicit error, never a silent fallback.
func CurrentActor(order []string, index int) (string, error) {
	if index < 0 || index >= len(order) {
		return "", Rulef("invalid turn index %d for order of %d", index, len(order))
	}
	return order[index], nil
}

// ---------------------------------------------------------------------------
// Game lifecycle
// ---------------------------------------------------------------------------

// Init resets the game: teams, matches, and state are discarded. An
// existing player pool keeps operator edits and only loses its team
// assignments; otherwise a fresh pool is generated. Returns the number of
// available players.
func (s *Service) Init(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var players []*Player
	if s.game != nil && len(s.game.Players) > 0 {
		players = s.game.Players
		for _, p := range players {
			p.TeamID = ""
			p.ClauseAmount = 0
			p.IsResting = false
			p.GamesPlayed = 0
			p.RestingSinceRound = 0
		}
	} else {
		players = GeneratePlayers(s.rng)
	}

	s.game = &Game{
		State: &GameState{
			ID:              uuid.NewString(),
			Teams:           []string{},
			CurrentPhase:    PhaseSetup,
			CurrentRound:    1,
			CurrentTeamTurn: 0,
			DraftOrder:      []string{},
		},
		Players: players,
		Teams:   []*Team{},
		Matches: []*Match{},
	}
	s.save(ctx)
	return len(players), nil
}

// GameStateSnapshot returns a copy of the state, or ok=false when no game
// has been initialized.
func (s *Service) GameStateSnapshot() (GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return GameState{}, false
	}
	st := *s.game.State
	st.Teams = append([]string(nil), s.game.State.Teams...)
	st.DraftOrder = append([]string(nil), s.game.State.DraftOrder...)
	return st, true
}

// ListPlayers returns a copy of the pool.
func (s *Service) ListPlayers() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return []Player{}
	}
	players := make([]Player, 0, len(s.game.Players))
	for _, p := range s.game.Players {
		players = append(players, *p)
	}
	return players
}

// ListTeams returns a copy of all teams in creation order.
func (s *Service) ListTeams() []Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return []Team{}
	}
	teams := make([]Team, 0, len(s.game.Teams))
	for _, t := range s.game.Teams {
		teams = append(teams, copyTeam(t))
	}
	return teams
}

func copyTeam(t *Team) Team {
	out := *t
	out.Players = append([]string(nil), t.Players...)
	out.CurrentLineup = append([]string(nil), t.CurrentLineup...)
	return out
}

// PlayerUpdate carries the operator-editable player fields.
type PlayerUpdate struct {
	Name       string      `json:"name"`
	Price      int         `json:"price"`
	Resistance int         `json:"resistance"`
	Stats      PlayerStats `json:"stats"`
}

// UpdatePlayer applies an operator edit to a pool player.
func (s *Service) UpdatePlayer(ctx context.Context, id string, upd PlayerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return NotFoundf("no game found")
	}
	p := s.playerByID(id)
	if p == nil {
		return NotFoundf("player not found")
	}
	if strings.TrimSpace(upd.Name) == "" {
		return Rulef("player name must not be empty")
	}
	if upd.Price < 0 {
		return Rulef("price must not be negative")
	}
	if upd.Resistance < 4 || upd.Resistance > 14 {
		return Rulef("resistance must be between 4 and 14")
	}
	if !upd.Stats.Valid() {
		return Rulef("every stat must be between 1 and 6")
	}
	p.Name = upd.Name
	p.Price = upd.Price
	p.Resistance = upd.Resistance
	p.Stats = upd.Stats
	s.save(ctx)
	return nil
}

// CreateTeam registers a team during setup. The cap is eight teams and the
// budget must sit inside the allowed band.
func (s *Service) CreateTeam(ctx context.Context, name string, colors TeamColors, budget int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return "", NotFoundf("no game found")
	}
	if s.game.State.CurrentPhase != PhaseSetup {
		return "", Rulef("teams can only be created during setup")
	}
	if strings.TrimSpace(name) == "" {
		return "", Rulef("team name must not be empty")
	}
	if budget < MinBudget || budget > MaxBudget {
		return "", Rulef("budget must be between %d and %d", MinBudget, MaxBudget)
	}
	if len(s.game.Teams) >= LeagueTeamCount {
		return "", Rulef("maximum of %d teams reached", LeagueTeamCount)
	}

	team := &Team{
		ID:            uuid.NewString(),
		Name:          name,
		Colors:        colors,
		Budget:        budget,
		Players:       []string{},
		CurrentLineup: []string{},
	}
	s.game.Teams = append(s.game.Teams, team)
	s.game.State.Teams = append(s.game.State.Teams, team.ID)
	s.save(ctx)
	return team.ID, nil
}

// ---------------------------------------------------------------------------
// Draft
// ---------------------------------------------------------------------------

// StartDraft opens the draft. The order is the team creation order,
// deliberately not shuffled.
func (s *Service) StartDraft(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return nil, NotFoundf("no game found")
	}
	if s.game.State.CurrentPhase != PhaseSetup {
		return nil, Rulef("draft can only start from setup")
	}
	if len(s.game.Teams) != LeagueTeamCount {
		return nil, Rulef("need exactly %d teams to start draft (have %d)", LeagueTeamCount, len(s.game.Teams))
	}

	order := append([]string(nil), s.game.State.Teams...)
	s.game.State.CurrentPhase = PhaseDraft
	s.game.State.DraftOrder = order
	s.game.State.CurrentTeamTurn = 0
	s.save(ctx)
	return order, nil
}

// draftTurnCheck validates the acting team and returns the current index.
func (s *Service) draftTurnCheck(teamID string) (int, error) {
	if s.game == nil {
		return 0, NotFoundf("no game found")
	}
	if s.game.State.CurrentPhase != PhaseDraft {
		return 0, Rulef("not in draft phase")
	}
	idx := s.game.State.CurrentTeamTurn
	actor, err := CurrentActor(s.game.State.DraftOrder, idx)
	if err != nil {
		return 0, err
	}
	if actor != teamID {
		return 0, Rulef("not your turn (current turn: team index %d)", idx)
	}
	return idx, nil
}

// DraftPick assigns a free player to the acting team, debits price plus
// clause, and advances the turn cyclically. Returns the next turn index.
func (s *Service) DraftPick(ctx context.Context, teamID, playerID string, clauseAmount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.draftTurnCheck(teamID)
	if err != nil {
		return 0, err
	}
	if clauseAmount < 0 {
		return 0, Rulef("clause amount must not be negative")
	}
	team := s.teamByID(teamID)
	player := s.playerByID(playerID)
	if team == nil || player == nil {
		return 0, NotFoundf("team or player not found")
	}
	if player.TeamID != "" {
		return 0, Rulef("player already drafted")
	}
	if len(team.Players) >= MaxRosterSize {
		return 0, Rulef("team is full (has %d/%d players)", len(team.Players), MaxRosterSize)
	}
	totalCost := player.Price + clauseAmount
	if team.Budget < totalCost {
		return 0, Rulef("insufficient budget (need %d, have %d)", totalCost, team.Budget)
	}

	player.TeamID = teamID
	player.ClauseAmount = clauseAmount
	team.Players = append(team.Players, playerID)
	team.Budget -= totalCost

	next := (idx + 1) % len(s.game.State.DraftOrder)
	s.game.State.CurrentTeamTurn = next
	s.save(ctx)
	return next, nil
}

// SkipDraftTurn passes without drafting.
func (s *Service) SkipDraftTurn(ctx context.Context, teamID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.draftTurnCheck(teamID)
	if err != nil {
		return 0, err
	}
	next := (idx + 1) % len(s.game.State.DraftOrder)
	s.game.State.CurrentTeamTurn = next
	s.save(ctx)
	return next, nil
}

// ---------------------------------------------------------------------------
// League lifecycle
// ---------------------------------------------------------------------------

// StartLeagueResult reports the generated calendar size.
type StartLeagueResult struct {
	TotalMatches int `json:"total_matches"`
	Rounds       int `json:"rounds"`
}

// StartLeague closes the draft, generates the 14-round calendar, and opens
// the first round's lineup selection. Every roster must hold at least
// seven players.
func (s *Service) StartLeague(ctx context.Context) (*StartLeagueResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return nil, NotFoundf("no game found")
	}
	if s.game.State.CurrentPhase != PhaseDraft {
		return nil, Rulef("league can only start from the draft phase")
	}
	if len(s.game.Teams) != LeagueTeamCount {
		return nil, Rulef("need exactly %d teams to start league", LeagueTeamCount)
	}
	for _, t := range s.game.Teams {
		if len(t.Players) < MinRosterSize {
			return nil, Rulef("team %q needs at least %d players (has %d)", t.Name, MinRosterSize, len(t.Players))
		}
	}

	matches, err := GenerateCalendar(s.game.State.Teams)
	if err != nil {
		return nil, err
	}
	s.game.Matches = matches

	for _, t := range s.game.Teams {
		t.Points = 0
		t.MatchesPlayed = 0
		t.Wins = 0
		t.Draws = 0
		t.Losses = 0
		t.GoalsFor = 0
		t.GoalsAgainst = 0
		t.CurrentLineup = []string{}
		t.CurrentFormation = ""
		t.NeedsReplacementTurn = false
		t.PriorityTurn = false
	}
	for _, p := range s.game.Players {
		p.GamesPlayed = 0
		p.IsResting = false
		p.RestingSinceRound = 0
	}

	s.game.State.CurrentPhase = PhasePreMatch
	s.game.State.CurrentRound = 1
	s.game.State.CurrentTeamTurn = 0
	s.game.State.LineupSelectionPhase = true
	s.game.State.MarketOpen = false
	s.save(ctx)
	return &StartLeagueResult{TotalMatches: len(matches), Rounds: TotalRounds}, nil
}

// Standings computes the current league table.
func (s *Service) Standings() []StandingsRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return []StandingsRow{}
	}
	return ComputeStandings(s.game.Teams)
}

// RoundMatches returns the fixtures of one round.
func (s *Service) RoundMatches(round int) []Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return []Match{}
	}
	matches := make([]Match, 0, LeagueTeamCount/2)
	for _, m := range s.game.Matches {
		if m.RoundNumber == round {
			matches = append(matches, *m)
		}
	}
	return matches
}

// MarketStatusNow reports whether the transfer market is open. The flag is
// owned here; clients must never derive it from the round number.
func (s *Service) MarketStatusNow() MarketStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return MarketStatus{OpensAtRound: MarketOpensAtRound}
	}
	return MarketStatus{
		MarketOpen:   s.marketOpen(),
		OpensAtRound: MarketOpensAtRound,
		CurrentRound: s.game.State.CurrentRound,
	}
}

// ---------------------------------------------------------------------------
// Lineup selection
// ---------------------------------------------------------------------------

// LineupResult reports the outcome of a lineup selection.
type LineupResult struct {
	NextTurn     int    `json:"next_turn"`
	NextPhase    Phase  `json:"next_phase,omitempty"`
	PriorityTurn bool   `json:"priority_turn,omitempty"`
	Message      string `json:"message"`
}

// SelectLineup stores a team's formation and seven players for the current
// round. Teams flagged for a replacement turn may select out of order.
// Once every team has a complete lineup the round moves to the match
// phase.
func (s *Service) SelectLineup(ctx context.Context, teamID, formationKey string, playerIDs []string) (*LineupResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return nil, NotFoundf("no game found")
	}
	st := s.game.State
	if st.CurrentPhase != PhasePreMatch || !st.LineupSelectionPhase {
		return nil, Rulef("not in lineup selection phase")
	}
	team := s.teamByID(teamID)
	if team == nil {
		return nil, NotFoundf("team not found")
	}

	priority := team.NeedsReplacementTurn || team.PriorityTurn
	actor, err := CurrentActor(st.Teams, st.CurrentTeamTurn)
	if err != nil {
		return nil, err
	}
	if actor != teamID && !priority {
		return nil, Rulef("not your turn to select lineup")
	}

	formation, ok := Formations[formationKey]
	if !ok {
		return nil, Rulef("invalid formation %q", formationKey)
	}
	if len(playerIDs) != LineupSize {
		return nil, Rulef("must select exactly %d players", LineupSize)
	}
	selected := s.playersByIDs(playerIDs)
	if len(selected) != LineupSize {
		return nil, Rulef("some selected players not found")
	}
	for _, p := range selected {
		if p.TeamID != teamID {
			return nil, Rulef("player %s does not belong to your team", p.Name)
		}
		if p.IsResting {
			return nil, Rulef("player %s is resting and cannot play", p.Name)
		}
	}
	if !MatchesFormation(PositionCounts(selected), formation) {
		return nil, Rulef("formation %s requires %d GK, %d DEF, %d MID, %d FWD",
			formationKey, formation.Portero, formation.Defensas, formation.Medios, formation.Delanteros)
	}

	team.CurrentLineup = append([]string(nil), playerIDs...)
	team.CurrentFormation = formationKey
	team.NeedsReplacementTurn = false
	team.PriorityTurn = false

	result := &LineupResult{PriorityTurn: priority && actor != teamID, Message: "lineup selected"}

	// A priority selection does not consume the normal turn.
	if actor == teamID {
		st.CurrentTeamTurn = (st.CurrentTeamTurn + 1) % len(st.Teams)
	}
	result.NextTurn = st.CurrentTeamTurn

	if s.allLineupsComplete() {
		st.LineupSelectionPhase = false
		st.CurrentPhase = PhaseMatch
		st.CurrentTeamTurn = 0
		result.NextPhase = PhaseMatch
		result.NextTurn = 0
		result.Message = "lineup selected; all teams ready, proceeding to matches"
	}
	s.save(ctx)
	return result, nil
}

func (s *Service) allLineupsComplete() bool {
	for _, t := range s.game.Teams {
		if len(t.CurrentLineup) != LineupSize {
			return false
		}
	}
	return true
}

// SkipLineupTurn passes the lineup selection turn.
func (s *Service) SkipLineupTurn(ctx context.Context, teamID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return 0, NotFoundf("no game found")
	}
	st := s.game.State
	if !st.LineupSelectionPhase {
		return 0, Rulef("not in lineup selection phase")
	}
	actor, err := CurrentActor(st.Teams, st.CurrentTeamTurn)
	if err != nil {
		return 0, err
	}
	if actor != teamID {
		return 0, Rulef("not your turn")
	}
	st.CurrentTeamTurn = (st.CurrentTeamTurn + 1) % len(st.Teams)
	s.save(ctx)
	return st.CurrentTeamTurn, nil
}

// ---------------------------------------------------------------------------
// Match simulation
// ---------------------------------------------------------------------------

// MatchResult is the outcome of simulating one fixture.
type MatchResult struct {
	HomeTeam       string    `json:"home_team"`
	AwayTeam       string    `json:"away_team"`
	HomeScore      int       `json:"home_score"`
	AwayScore      int       `json:"away_score"`
	HomePrize      int       `json:"home_prize"`
	AwayPrize      int       `json:"away_prize"`
	MatchLog       *MatchLog `json:"match_log"`
	RoundCompleted bool      `json:"round_completed"`
	NextRound      int       `json:"next_round,omitempty"`
	SeasonComplete bool      `json:"season_complete,omitempty"`
}

// SimulateNextMatch plays the first unplayed fixture of the current round,
// updates team statistics, prize money, and player fatigue, and advances
// the round when its last fixture completes.
func (s *Service) SimulateNextMatch(ctx context.Context) (*MatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return nil, NotFoundf("no game found")
	}
	st := s.game.State
	if st.CurrentPhase != PhaseMatch {
		return nil, Rulef("not in match phase")
	}

	var match *Match
	for _, m := range s.game.Matches {
		if m.RoundNumber == st.CurrentRound && !m.Played {
			match = m
			break
		}
	}
	if match == nil {
		return nil, Rulef("no more matches in current round")
	}

	home := s.teamByID(match.HomeTeamID)
	away := s.teamByID(match.AwayTeamID)
	if home == nil || away == nil {
		return nil, NotFoundf("match team not found")
	}
	if len(home.CurrentLineup) != LineupSize || len(away.CurrentLineup) != LineupSize {
		return nil, Rulef("both teams need a complete lineup before simulation")
	}

	homeLineup := s.playersByIDs(home.CurrentLineup)
	awayLineup := s.playersByIDs(away.CurrentLineup)

	log := Simulate(home.Name, away.Name, homeLineup, awayLineup, s.rng)

	match.HomeScore = log.HomeScore
	match.AwayScore = log.AwayScore
	match.HomeLineup = append([]string(nil), home.CurrentLineup...)
	match.AwayLineup = append([]string(nil), away.CurrentLineup...)
	match.MatchLog = log
	match.Played = true

	homePoints, awayPoints := 0, 0
	switch {
	case log.HomeScore > log.AwayScore:
		homePoints = 3
		home.Wins++
		away.Losses++
	case log.HomeScore < log.AwayScore:
		awayPoints = 3
		away.Wins++
		home.Losses++
	default:
		homePoints, awayPoints = 1, 1
		home.Draws++
		away.Draws++
	}
	home.Points += homePoints
	away.Points += awayPoints
	home.MatchesPlayed++
	away.MatchesPlayed++
	home.GoalsFor += log.HomeScore
	home.GoalsAgainst += log.AwayScore
	away.GoalsFor += log.AwayScore
	away.GoalsAgainst += log.HomeScore

	homePrize := HomeBonus + homePoints*PrizePerPoint
	awayPrize := awayPoints * PrizePerPoint
	home.Budget += homePrize
	away.Budget += awayPrize

	s.applyFatigue(append(homeLineup, awayLineup...), log)

	result := &MatchResult{
		HomeTeam:  home.Name,
		AwayTeam:  away.Name,
		HomeScore: log.HomeScore,
		AwayScore: log.AwayScore,
		HomePrize: homePrize,
		AwayPrize: awayPrize,
		MatchLog:  log,
	}

	if s.roundComplete(st.CurrentRound) {
		result.RoundCompleted = true
		if st.CurrentRound < TotalRounds {
			s.advanceRound()
			result.NextRound = st.CurrentRound
		} else {
			result.SeasonComplete = true
		}
	}
	s.save(ctx)
	return result, nil
}

// applyFatigue increments games played for every lineup player who took
// part in an action. A player reaching his resistance is sent to rest for
// the following round.
func (s *Service) applyFatigue(lineup []*Player, log *MatchLog) {
	participants := log.PlayerNames()
	for _, p := range lineup {
		if !participants[p.Name] {
			continue
		}
		p.GamesPlayed++
		if p.GamesPlayed >= p.Resistance {
			p.IsResting = true
			p.GamesPlayed = 0
			p.RestingSinceRound = s.game.State.CurrentRound
		}
	}
}

func (s *Service) roundComplete(round int) bool {
	for _, m := range s.game.Matches {
		if m.RoundNumber == round && !m.Played {
			return false
		}
	}
	return true
}

// advanceRound opens the next round: lineups are cleared, lineup selection
// restarts, players who rested a full round wake up, and the market flag
// refreshes.
func (s *Service) advanceRound() {
	st := s.game.State
	st.CurrentRound++
	st.CurrentPhase = PhasePreMatch
	st.LineupSelectionPhase = true
	st.CurrentTeamTurn = 0

	for _, t := range s.game.Teams {
		t.CurrentLineup = []string{}
		t.CurrentFormation = ""
	}
	for _, p := range s.game.Players {
		if p.IsResting && p.RestingSinceRound <= st.CurrentRound-2 {
			p.IsResting = false
			p.RestingSinceRound = 0
		}
	}
	st.MarketOpen = st.CurrentRound >= MarketOpensAtRound
}

// ---------------------------------------------------------------------------
// Transfer market
// ---------------------------------------------------------------------------

// SetClause puts a protection clause on a team's own player, paid from the
// team's budget.
func (s *Service) SetClause(ctx context.Context, teamID, playerID string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return NotFoundf("no game found")
	}
	if !s.leagueRunning() {
		return Rulef("clauses can only be set during the league")
	}
	if amount < 0 {
		return Rulef("clause amount must not be negative")
	}
	player := s.playerByID(playerID)
	if player == nil {
		return NotFoundf("player not found")
	}
	if player.TeamID != teamID {
		return Rulef("you can only set clauses for your own players")
	}
	team := s.teamByID(teamID)
	if team == nil {
		return NotFoundf("team not found")
	}
	if team.Budget < amount {
		return Rulef("insufficient budget to set clause")
	}
	player.ClauseAmount = amount
	team.Budget -= amount
	s.save(ctx)
	return nil
}

// TransferResult reports a completed purchase or release, including
// whether the seller's stored lineup was disrupted.
type TransferResult struct {
	PlayerName        string `json:"player_name"`
	TotalCost         int    `json:"total_cost,omitempty"`
	BasePrice         int    `json:"base_price,omitempty"`
	ClauseAmount      int    `json:"clause_amount,omitempty"`
	Refund            int    `json:"refund,omitempty"`
	LineupAffected    bool   `json:"lineup_affected"`
	AdditionalMessage string `json:"additional_message,omitempty"`
}

// BuyPlayer transfers a player for price plus clause. An empty seller buys
// a free agent, which requires the market to be open. Selling a lineup
// player disrupts the seller's lineup and grants it a replacement turn.
func (s *Service) BuyPlayer(ctx context.Context, buyerID, sellerID, playerID string) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return nil, NotFoundf("no game found")
	}
	if !s.leagueRunning() {
		return nil, Rulef("players can only be bought during the league")
	}
	player := s.playerByID(playerID)
	buyer := s.teamByID(buyerID)
	if player == nil || buyer == nil {
		return nil, NotFoundf("player or team not found")
	}
	if len(buyer.Players) >= MaxRosterSize {
		return nil, Rulef("buyer team already has maximum players (%d)", MaxRosterSize)
	}

	totalCost := player.Price + player.ClauseAmount
	if buyer.Budget < totalCost {
		return nil, Rulef("insufficient budget (need %d, have %d)", totalCost, buyer.Budget)
	}

	result := &TransferResult{
		PlayerName:   player.Name,
		TotalCost:    totalCost,
		BasePrice:    player.Price,
		ClauseAmount: player.ClauseAmount,
	}

	if sellerID == "" {
		// Free-agent signing.
		if !s.marketOpen() {
			return nil, Rulef("the free-agent market is not open")
		}
		if player.TeamID != "" {
			return nil, Rulef("player is not a free agent")
		}
	} else {
		seller := s.teamByID(sellerID)
		if seller == nil {
			return nil, NotFoundf("player or team not found")
		}
		if player.TeamID != sellerID {
			return nil, Rulef("player does not belong to seller team")
		}
		if len(seller.Players) <= MinRosterSize {
			return nil, Rulef("cannot buy player: seller team must maintain at least %d players", MinRosterSize)
		}
		seller.Players = removeID(seller.Players, playerID)
		seller.Budget += totalCost
		if s.disruptLineup(seller, playerID) {
			result.LineupAffected = true
			result.AdditionalMessage = seller.Name + " must select a replacement for their lineup"
		}
	}

	player.TeamID = buyerID
	player.ClauseAmount = 0
	buyer.Players = append(buyer.Players, playerID)
	buyer.Budget -= totalCost
	s.save(ctx)
	return result, nil
}

// ReleasePlayer returns a player to the free-agent pool for a 90% refund.
func (s *Service) ReleasePlayer(ctx context.Context, teamID, playerID string) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return nil, NotFoundf("no game found")
	}
	if !s.leagueRunning() {
		return nil, Rulef("players can only be released during the league")
	}
	player := s.playerByID(playerID)
	team := s.teamByID(teamID)
	if player == nil || team == nil {
		return nil, NotFoundf("player or team not found")
	}
	if player.TeamID != teamID {
		return nil, Rulef("player does not belong to your team")
	}
	if len(team.Players) <= MinRosterSize {
		return nil, Rulef("cannot release player: team must maintain at least %d players", MinRosterSize)
	}

	refund := player.Price * ReleaseRefundPercent / 100
	team.Players = removeID(team.Players, playerID)
	team.Budget += refund
	player.TeamID = ""
	player.ClauseAmount = 0

	result := &TransferResult{PlayerName: player.Name, Refund: refund}
	if s.disruptLineup(team, playerID) {
		result.LineupAffected = true
		result.AdditionalMessage = team.Name + " must select a replacement for their lineup"
	}
	s.save(ctx)
	return result, nil
}

// disruptLineup removes a departing player from a stored lineup. The
// formation is cleared and the team flagged for an out-of-order
// replacement selection. Reports whether the lineup was affected.
func (s *Service) disruptLineup(team *Team, playerID string) bool {
	found := false
	for _, id := range team.CurrentLineup {
		if id == playerID {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	team.CurrentLineup = removeID(team.CurrentLineup, playerID)
	team.CurrentFormation = ""
	team.NeedsReplacementTurn = true
	if s.game.State.CurrentPhase == PhaseMatch {
		// Lineups are locked mid-round; reopen selection for the
		// replacement only.
		s.game.State.CurrentPhase = PhasePreMatch
		s.game.State.LineupSelectionPhase = true
	}
	return true
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
