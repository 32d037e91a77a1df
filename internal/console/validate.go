package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jstevez608/Football-Sim/internal/league"
)

// Client-side validation mirrors the server rules so obvious mistakes are
// rejected before any request goes out. The server remains authoritative;
// these checks only save a round trip.

// ValidateTeamInput checks a new team's name and budget.
func ValidateTeamInput(name string, budget int) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("team name must not be empty")
	}
	if budget < league.MinBudget || budget > league.MaxBudget {
		return fmt.Errorf("budget must be between %s and %s",
			Euro(league.MinBudget), Euro(league.MaxBudget))
	}
	return nil
}

// CanStartDraft checks the eight-team requirement.
func CanStartDraft(teams []league.Team) error {
	if len(teams) != league.LeagueTeamCount {
		return fmt.Errorf("draft needs exactly %d teams, have %d",
			league.LeagueTeamCount, len(teams))
	}
	return nil
}

// CanStartLeague checks that every roster reached the minimum size.
func CanStartLeague(teams []league.Team) error {
	for _, t := range teams {
		if len(t.Players) < league.MinRosterSize {
			return fmt.Errorf("team %q has %d players, needs at least %d",
				t.Name, len(t.Players), league.MinRosterSize)
		}
	}
	return nil
}

// ValidateLineup checks a lineup submission against a formation: exactly
// seven distinct players, all owned by the team, none resting, and the
// position counts matching the template.
func ValidateLineup(f league.Formation, team league.Team, picks []league.Player) error {
	if len(picks) != league.LineupSize {
		return fmt.Errorf("lineup needs exactly %d players, have %d",
			league.LineupSize, len(picks))
	}
	seen := make(map[string]bool, len(picks))
	counts := make(map[league.Position]int)
	for _, p := range picks {
		if seen[p.ID] {
			return fmt.Errorf("player %q selected twice", p.Name)
		}
		seen[p.ID] = true
		if !team.HasPlayer(p.ID) {
			return fmt.Errorf("player %q does not belong to %q", p.Name, team.Name)
		}
		if p.IsResting {
			return fmt.Errorf("player %q is resting", p.Name)
		}
		counts[p.Position]++
	}
	for _, pos := range []league.Position{league.Portero, league.Defensa, league.Medio, league.Delantero} {
		if counts[pos] != f.Count(pos) {
			return fmt.Errorf("formation %s needs %d %s, have %d",
				f.Name, f.Count(pos), strings.ToLower(string(pos)), counts[pos])
		}
	}
	return nil
}
