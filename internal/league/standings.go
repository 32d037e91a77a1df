package league

import "sort"

// ComputeStandings builds the league table from team statistics, ordered by
// points, then goal difference, then goals scored.
func ComputeStandings(teams []*Team) []StandingsRow {
	sorted := make([]*Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		adiff := a.GoalsFor - a.GoalsAgainst
		bdiff := b.GoalsFor - b.GoalsAgainst
		if adiff != bdiff {
			return adiff > bdiff
		}
		return a.GoalsFor > b.GoalsFor
	})

	rows := make([]StandingsRow, 0, len(sorted))
	for i, t := range sorted {
		rows = append(rows, StandingsRow{
			Position:       i + 1,
			TeamID:         t.ID,
			TeamName:       t.Name,
			Points:         t.Points,
			MatchesPlayed:  t.MatchesPlayed,
			Wins:           t.Wins,
			Draws:          t.Draws,
			Losses:         t.Losses,
			GoalsFor:       t.GoalsFor,
			GoalsAgainst:   t.GoalsAgainst,
			GoalDifference: t.GoalsFor - t.GoalsAgainst,
		})
	}
	return rows
}
