package league

import "github.com/google/uuid"

// GenerateCalendar builds the full double round-robin calendar for exactly
// eight teams: rounds 1-7 pair the list head with the tail and rotate,
// rounds 8-14 repeat the first half with home and away swapped.
func GenerateCalendar(teamIDs []string) ([]*Match, error) {
	if len(teamIDs) != LeagueTeamCount {
		return nil, Rulef("need exactly %d teams for league calendar", LeagueTeamCount)
	}

	ids := make([]string, len(teamIDs))
	copy(ids, teamIDs)

	var matches []*Match
	for round := 1; round <= TotalRounds/2; round++ {
		remaining := make([]string, len(ids))
		copy(remaining, ids)
		for len(remaining) >= 2 {
			home := remaining[0]
			away := remaining[len(remaining)-1]
			remaining = remaining[1 : len(remaining)-1]
			matches = append(matches, &Match{
				ID:          uuid.NewString(),
				HomeTeamID:  home,
				AwayTeamID:  away,
				RoundNumber: round,
				HomeLineup:  []string{},
				AwayLineup:  []string{},
			})
		}
		// Rotate: fixed head, last element moves to second position.
		rotated := make([]string, 0, len(ids))
		rotated = append(rotated, ids[0], ids[len(ids)-1])
		rotated = append(rotated, ids[1:len(ids)-1]...)
		ids = rotated
	}

	firstHalf := len(matches)
	for i := 0; i < firstHalf; i++ {
		m := matches[i]
		matches = append(matches, &Match{
			ID:          uuid.NewString(),
			HomeTeamID:  m.AwayTeamID,
			AwayTeamID:  m.HomeTeamID,
			RoundNumber: m.RoundNumber + TotalRounds/2,
			HomeLineup:  []string{},
			AwayLineup:  []string{},
		})
	}
	return matches, nil
}
