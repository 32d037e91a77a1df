package league

import (
	"fmt"
	"testing"
)

func teamIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("team-%d", i+1)
	}
	return ids
}

func TestGenerateCalendarShape(t *testing.T) {
	matches, err := GenerateCalendar(teamIDs(LeagueTeamCount))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 56 {
		t.Fatalf("expected 56 matches, got %d", len(matches))
	}

	perRound := map[int]int{}
	for _, m := range matches {
		perRound[m.RoundNumber]++
	}
	if len(perRound) != TotalRounds {
		t.Fatalf("expected %d rounds, got %d", TotalRounds, len(perRound))
	}
	for round, count := range perRound {
		if count != LeagueTeamCount/2 {
			t.Fatalf("round %d has %d matches, want %d", round, count, LeagueTeamCount/2)
		}
	}
}

func TestGenerateCalendarEachTeamPlaysOncePerRound(t *testing.T) {
	matches, err := GenerateCalendar(teamIDs(LeagueTeamCount))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for round := 1; round <= TotalRounds; round++ {
		seen := map[string]bool{}
		for _, m := range matches {
			if m.RoundNumber != round {
				continue
			}
			if seen[m.HomeTeamID] || seen[m.AwayTeamID] {
				t.Fatalf("round %d: a team appears twice", round)
			}
			seen[m.HomeTeamID] = true
			seen[m.AwayTeamID] = true
		}
		if len(seen) != LeagueTeamCount {
			t.Fatalf("round %d: %d teams scheduled, want %d", round, len(seen), LeagueTeamCount)
		}
	}
}

func TestGenerateCalendarSecondHalfMirrorsFirst(t *testing.T) {
	matches, err := GenerateCalendar(teamIDs(LeagueTeamCount))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	type pairing struct{ home, away string }
	firstHalf := map[int]map[pairing]bool{}
	for _, m := range matches {
		if m.RoundNumber > TotalRounds/2 {
			continue
		}
		if firstHalf[m.RoundNumber] == nil {
			firstHalf[m.RoundNumber] = map[pairing]bool{}
		}
		firstHalf[m.RoundNumber][pairing{m.HomeTeamID, m.AwayTeamID}] = true
	}
	for _, m := range matches {
		if m.RoundNumber <= TotalRounds/2 {
			continue
		}
		mirror := m.RoundNumber - TotalRounds/2
		// Venue must be swapped relative to the first half.
		if !firstHalf[mirror][pairing{m.AwayTeamID, m.HomeTeamID}] {
			t.Fatalf("round %d fixture %s-%s has no mirrored round %d fixture",
				m.RoundNumber, m.HomeTeamID, m.AwayTeamID, mirror)
		}
	}
}

func TestGenerateCalendarRejectsWrongTeamCount(t *testing.T) {
	for _, n := range []int{0, 2, 7, 9} {
		if _, err := GenerateCalendar(teamIDs(n)); err == nil {
			t.Fatalf("expected error for %d teams", n)
		}
	}
}
