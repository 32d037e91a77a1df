package league

import (
	"math/rand"
	"testing"
)

// testLineup builds a seven-player lineup in the 5-2-1 shape with flat
// stats so duel outcomes depend only on the dice.
func testLineup(prefix string, stat int) []*Player {
	flat := PlayerStats{
		Pase: stat, Area: stat, Tiro: stat, Remate: stat, Corner: stat,
		Penalti: stat, Regate: stat, Parada: stat, Despeje: stat,
		Robo: stat, Bloqueo: stat, Atajada: stat,
	}
	positions := []Position{Portero, Defensa, Defensa, Defensa, Medio, Medio, Delantero}
	lineup := make([]*Player, len(positions))
	for i, pos := range positions {
		lineup[i] = &Player{
			ID:         prefix + string(rune('a'+i)),
			Name:       prefix + "-" + string(rune('a'+i)),
			Position:   pos,
			Resistance: 10,
			Stats:      flat,
		}
	}
	return lineup
}

func TestSimulateTurnStructure(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	log := Simulate("Home", "Away", testLineup("h", 3), testLineup("a", 3), rng)

	if log.TotalTurns != 18 || len(log.Turns) != 18 {
		t.Fatalf("expected 18 turns, got total=%d len=%d", log.TotalTurns, len(log.Turns))
	}
	for i, turn := range log.Turns {
		if turn.Turn != i+1 {
			t.Fatalf("turn %d numbered %d", i, turn.Turn)
		}
		want := "Home"
		if turn.Turn%2 == 0 {
			want = "Away"
		}
		if turn.AttackingTeam != want {
			t.Fatalf("turn %d attacked by %s, want %s", turn.Turn, turn.AttackingTeam, want)
		}
		if len(turn.Actions) == 0 {
			t.Fatalf("turn %d has no actions", turn.Turn)
		}
		if len(turn.Actions) > maxActionsPerTurn {
			t.Fatalf("turn %d has %d actions, cap is %d", turn.Turn, len(turn.Actions), maxActionsPerTurn)
		}
	}
}

func TestSimulateDuelArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	log := Simulate("Home", "Away", testLineup("h", 4), testLineup("a", 4), rng)

	for _, turn := range log.Turns {
		for _, a := range turn.Actions {
			for _, side := range []ActionSide{a.Attacker, a.Defender} {
				if side.RandomBonus < 1 || side.RandomBonus > duelBonusSides {
					t.Fatalf("bonus %d outside 1-%d", side.RandomBonus, duelBonusSides)
				}
				if side.Total != side.StatValue+side.RandomBonus {
					t.Fatalf("total %d != stat %d + bonus %d", side.Total, side.StatValue, side.RandomBonus)
				}
			}
			if a.Successful != (a.Attacker.Total > a.Defender.Total) {
				t.Fatalf("success flag inconsistent with totals: %+v", a)
			}
			if a.IsGoal && !isShot(a.Action) {
				t.Fatalf("goal from non-shot action %s", a.Action)
			}
			if a.Defender.DefenseAction != defenseActions[a.Action] {
				t.Fatalf("action %s defended with %s, want %s",
					a.Action, a.Defender.DefenseAction, defenseActions[a.Action])
			}
		}
	}
}

func TestSimulateScoreMatchesGoalActions(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	log := Simulate("Home", "Away", testLineup("h", 6), testLineup("a", 1), rng)

	home, away := 0, 0
	for _, turn := range log.Turns {
		goals := 0
		for _, a := range turn.Actions {
			if a.IsGoal {
				goals++
			}
		}
		if goals > 1 {
			t.Fatalf("turn %d scored %d goals, a possession ends on the first", turn.Turn, goals)
		}
		if turn.GoalScored != (goals == 1) {
			t.Fatalf("turn %d goal flag inconsistent", turn.Turn)
		}
		if goals == 1 {
			if turn.AttackingTeam == "Home" {
				home++
			} else {
				away++
			}
		}
	}
	if home != log.HomeScore || away != log.AwayScore {
		t.Fatalf("score %d-%d but log records %d-%d", home, away, log.HomeScore, log.AwayScore)
	}
}

func TestSimulateKeeperRoles(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	log := Simulate("Home", "Away", testLineup("h", 3), testLineup("a", 3), rng)

	for _, turn := range log.Turns {
		for _, a := range turn.Actions {
			if a.Attacker.Position == string(Portero) {
				t.Fatalf("goalkeeper attacked in turn %d", turn.Turn)
			}
			if isShot(a.Action) && a.Defender.Position != string(Portero) {
				t.Fatalf("shot %s defended by %s, want goalkeeper", a.Action, a.Defender.Position)
			}
		}
	}
}
