package console

import (
	"strings"
	"testing"

	"github.com/jstevez608/Football-Sim/internal/league"
)

func TestEuroFormat(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{amount: 80_000_000, want: "80.000.000 €"},
		{amount: 1_500_000, want: "1.500.000 €"},
		{amount: 500, want: "500 €"},
		{amount: 0, want: "0 €"},
	}
	for _, tc := range cases {
		if got := Euro(tc.amount); got != tc.want {
			t.Fatalf("Euro(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestRenderNoGame(t *testing.T) {
	out := Render(ViewState{})
	if !strings.Contains(out, "no game initialized") {
		t.Fatalf("missing no-game notice:\n%s", out)
	}
}

func TestRenderUnknownPhase(t *testing.T) {
	out := Render(ViewState{GameState: &league.GameState{CurrentPhase: "halftime_show"}})
	if !strings.Contains(out, "unknown phase") || !strings.Contains(out, "halftime_show") {
		t.Fatalf("unknown phase must be surfaced, got:\n%s", out)
	}
}

func TestRenderSetupPhase(t *testing.T) {
	v := ViewState{
		GameState: &league.GameState{CurrentPhase: league.PhaseSetup},
		Teams: []league.Team{
			{ID: "t1", Name: "Rayo", Budget: 80_000_000},
		},
		Players: make([]league.Player, 75),
	}
	out := Render(v)
	if !strings.Contains(out, "Teams registered: 1/8") {
		t.Fatalf("missing team count:\n%s", out)
	}
	if !strings.Contains(out, "80.000.000 €") {
		t.Fatalf("budget not localized:\n%s", out)
	}
	if !strings.Contains(out, "75 total, 75 free") {
		t.Fatalf("missing pool summary:\n%s", out)
	}
}

func TestRenderDraftTurnHints(t *testing.T) {
	base := ViewState{
		GameState: &league.GameState{
			CurrentPhase:    league.PhaseDraft,
			DraftOrder:      []string{"t1", "t2"},
			CurrentTeamTurn: 1,
		},
		Teams: []league.Team{
			{ID: "t1", Name: "Rayo"},
			{ID: "t2", Name: "Betis"},
		},
	}

	base.SelectedTeamID = "t2"
	if out := Render(base); !strings.Contains(out, "Your turn") {
		t.Fatalf("acting team should see its turn:\n%s", out)
	}

	base.SelectedTeamID = "t1"
	if out := Render(base); !strings.Contains(out, "Draft controls disabled") {
		t.Fatalf("waiting team should see disabled controls:\n%s", out)
	}
}

func TestRenderFreeAgentsOnlyWhenMarketOpen(t *testing.T) {
	v := ViewState{
		GameState: &league.GameState{CurrentPhase: league.PhasePreMatch, CurrentRound: 7},
		Players: []league.Player{
			{ID: "p1", Name: "García", Position: league.Delantero, Price: 3_000_000},
		},
		Market: &league.MarketStatus{MarketOpen: false, OpensAtRound: 7, CurrentRound: 6},
	}
	if out := Render(v); strings.Contains(out, "FREE AGENTS") {
		t.Fatalf("free agents shown with the market closed:\n%s", out)
	}

	v.Market.MarketOpen = true
	out := Render(v)
	if !strings.Contains(out, "FREE AGENTS") || !strings.Contains(out, "García") {
		t.Fatalf("free agents missing with the market open:\n%s", out)
	}
}

func TestRenderStandingsAndFixtures(t *testing.T) {
	v := ViewState{
		GameState: &league.GameState{CurrentPhase: league.PhaseMatch, CurrentRound: 3},
		Teams: []league.Team{
			{ID: "t1", Name: "Rayo"},
			{ID: "t2", Name: "Betis"},
		},
		RoundMatches: []league.Match{
			{HomeTeamID: "t1", AwayTeamID: "t2", RoundNumber: 3, Played: true, HomeScore: 2, AwayScore: 1},
		},
		Standings: []league.StandingsRow{
			{Position: 1, TeamName: "Rayo", Points: 9, GoalsFor: 7, GoalsAgainst: 2, GoalDifference: 5},
		},
	}
	out := Render(v)
	if !strings.Contains(out, "ROUND 3 FIXTURES") {
		t.Fatalf("missing fixtures:\n%s", out)
	}
	if !strings.Contains(out, "Rayo") || !strings.Contains(out, "2 - 1") {
		t.Fatalf("played fixture not rendered with score:\n%s", out)
	}
	if !strings.Contains(out, "STANDINGS") {
		t.Fatalf("missing standings:\n%s", out)
	}
}
