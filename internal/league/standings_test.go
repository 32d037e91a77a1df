package league

import "testing"

func TestComputeStandingsOrdering(t *testing.T) {
	teams := []*Team{
		{ID: "a", Name: "Alpha", Points: 6, GoalsFor: 8, GoalsAgainst: 2},
		{ID: "b", Name: "Beta", Points: 9, GoalsFor: 5, GoalsAgainst: 5},
		{ID: "c", Name: "Gamma", Points: 6, GoalsFor: 10, GoalsAgainst: 4},
		{ID: "d", Name: "Delta", Points: 6, GoalsFor: 9, GoalsAgainst: 3},
	}

	rows := ComputeStandings(teams)
	// Beta leads on points. Alpha, Gamma, and Delta all sit on +6 goal
	// difference, so goals scored break the tie.
	wantOrder := []string{"Beta", "Gamma", "Delta", "Alpha"}
	for i, want := range wantOrder {
		if rows[i].TeamName != want {
			t.Fatalf("position %d: got %s, want %s", i+1, rows[i].TeamName, want)
		}
		if rows[i].Position != i+1 {
			t.Fatalf("row %d carries position %d", i, rows[i].Position)
		}
	}
	if rows[1].GoalDifference != 6 {
		t.Fatalf("goal difference = %d, want 6", rows[1].GoalDifference)
	}
}

func TestComputeStandingsEmpty(t *testing.T) {
	if rows := ComputeStandings(nil); len(rows) != 0 {
		t.Fatalf("expected empty standings, got %d rows", len(rows))
	}
}
