package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jstevez608/Football-Sim/internal/league"
)

// Render turns a view state into console text. It is a pure function of
// its input: no network, no clock, no mutation.
func Render(v ViewState) string {
	var b strings.Builder

	if v.GameState == nil {
		b.WriteString("FOOTBALL LEAGUE — no game initialized\n")
		b.WriteString("Run `admin init` to generate the 75-player pool.\n")
		return b.String()
	}

	renderHeader(&b, v)

	switch v.GameState.CurrentPhase {
	case league.PhaseSetup:
		renderSetup(&b, v)
	case league.PhaseDraft:
		renderDraft(&b, v)
	case league.PhasePreMatch:
		renderPreMatch(&b, v)
	case league.PhaseMatch:
		renderMatch(&b, v)
	default:
		fmt.Fprintf(&b, "\n!! unknown phase %q reported by server — refresh or update the console\n",
			v.GameState.CurrentPhase)
	}

	if v.Market != nil && v.Market.MarketOpen {
		renderFreeAgents(&b, v)
	}
	return b.String()
}

func renderHeader(b *strings.Builder, v ViewState) {
	st := v.GameState
	fmt.Fprintf(b, "FOOTBALL LEAGUE — phase: %s", st.CurrentPhase)
	if st.CurrentPhase == league.PhasePreMatch || st.CurrentPhase == league.PhaseMatch {
		fmt.Fprintf(b, " | round %d/%d", st.CurrentRound, league.TotalRounds)
	}
	if st.MarketOpen {
		b.WriteString(" | market OPEN")
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 64))
	b.WriteString("\n")
}

func renderSetup(b *strings.Builder, v ViewState) {
	fmt.Fprintf(b, "\nTeams registered: %d/%d\n", len(v.Teams), league.LeagueTeamCount)
	for _, t := range v.Teams {
		fmt.Fprintf(b, "  %-20s  budget %s  (%s/%s)\n",
			t.Name, Euro(t.Budget), t.Colors.Primary, t.Colors.Secondary)
	}
	if len(v.Teams) == league.LeagueTeamCount {
		b.WriteString("\nAll teams registered — the draft can start.\n")
	} else {
		fmt.Fprintf(b, "\nRegister %d more team(s) before starting the draft.\n",
			league.LeagueTeamCount-len(v.Teams))
	}
	renderPool(b, v)
}

func renderDraft(b *strings.Builder, v ViewState) {
	st := v.GameState
	b.WriteString("\nDRAFT ORDER\n")
	for i, teamID := range st.DraftOrder {
		marker := "  "
		if i == st.CurrentTeamTurn {
			marker = "> "
		}
		name := teamID
		if t, ok := v.TeamByID(teamID); ok {
			name = fmt.Sprintf("%s (%d players, %s)", t.Name, len(t.Players), Euro(t.Budget))
		}
		fmt.Fprintf(b, "%s%d. %s\n", marker, i+1, name)
	}

	if v.SelectedTeamID != "" {
		if actingID(st) == v.SelectedTeamID {
			b.WriteString("\nYour turn: pick a free player or skip.\n")
		} else {
			b.WriteString("\nDraft controls disabled: it is not your team's turn.\n")
		}
	}
	renderPool(b, v)
}

func renderPreMatch(b *strings.Builder, v ViewState) {
	st := v.GameState
	if st.LineupSelectionPhase {
		b.WriteString("\nLINEUP SELECTION\n")
		for i, teamID := range st.DraftOrder {
			marker := "  "
			if i == st.CurrentTeamTurn {
				marker = "> "
			}
			name := teamID
			status := "pending"
			if t, ok := v.TeamByID(teamID); ok {
				name = t.Name
				if len(t.CurrentLineup) == league.LineupSize {
					status = "lineup " + t.CurrentFormation
				}
				if t.NeedsReplacementTurn {
					status = "NEEDS REPLACEMENT"
				}
			}
			fmt.Fprintf(b, "%s%-20s  %s\n", marker, name, status)
		}
		renderFormations(b, v)
	}
	renderFixtures(b, v)
	renderStandings(b, v)
}

func renderMatch(b *strings.Builder, v ViewState) {
	b.WriteString("\nMATCH PHASE — all lineups are in. Simulate the next fixture.\n")
	renderFixtures(b, v)
	if v.LastMatch != nil {
		renderLastMatch(b, v.LastMatch)
	}
	renderStandings(b, v)
}

func actingID(st *league.GameState) string {
	if st.CurrentTeamTurn < 0 || st.CurrentTeamTurn >= len(st.DraftOrder) {
		return ""
	}
	return st.DraftOrder[st.CurrentTeamTurn]
}

func renderPool(b *strings.Builder, v ViewState) {
	free := 0
	for _, p := range v.Players {
		if p.TeamID == "" {
			free++
		}
	}
	fmt.Fprintf(b, "\nPlayer pool: %d total, %d free\n", len(v.Players), free)
}

func renderFormations(b *strings.Builder, v ViewState) {
	if len(v.Formations) == 0 {
		return
	}
	keys := make([]string, 0, len(v.Formations))
	for k := range v.Formations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteString("\nFormations: ")
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v.Formations[k].Name))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n")
}

func renderFixtures(b *strings.Builder, v ViewState) {
	if len(v.RoundMatches) == 0 {
		return
	}
	fmt.Fprintf(b, "\nROUND %d FIXTURES\n", v.GameState.CurrentRound)
	for _, m := range v.RoundMatches {
		home, away := m.HomeTeamID, m.AwayTeamID
		if t, ok := v.TeamByID(m.HomeTeamID); ok {
			home = t.Name
		}
		if t, ok := v.TeamByID(m.AwayTeamID); ok {
			away = t.Name
		}
		if m.Played {
			fmt.Fprintf(b, "  %-20s %d - %d %s\n", home, m.HomeScore, m.AwayScore, away)
		} else {
			fmt.Fprintf(b, "  %-20s   vs   %s\n", home, away)
		}
	}
}

func renderStandings(b *strings.Builder, v ViewState) {
	if len(v.Standings) == 0 {
		return
	}
	b.WriteString("\nSTANDINGS\n")
	fmt.Fprintf(b, "  %2s  %-20s %3s %3s %3s %3s %3s %4s %4s %4s\n",
		"#", "Team", "Pts", "P", "W", "D", "L", "GF", "GA", "GD")
	for _, row := range v.Standings {
		fmt.Fprintf(b, "  %2d  %-20s %3d %3d %3d %3d %3d %4d %4d %+4d\n",
			row.Position, row.TeamName, row.Points, row.MatchesPlayed,
			row.Wins, row.Draws, row.Losses,
			row.GoalsFor, row.GoalsAgainst, row.GoalDifference)
	}
}

func renderFreeAgents(b *strings.Builder, v ViewState) {
	b.WriteString("\nFREE AGENTS (market open)\n")
	shown := 0
	for _, p := range v.Players {
		if p.TeamID != "" {
			continue
		}
		fmt.Fprintf(b, "  %-20s %-9s %s\n", p.Name, p.Position, Euro(p.Price))
		shown++
	}
	if shown == 0 {
		b.WriteString("  (none available)\n")
	}
}

func renderLastMatch(b *strings.Builder, result *league.MatchResult) {
	fmt.Fprintf(b, "\nLAST RESULT: %s %d - %d %s\n",
		result.HomeTeam, result.HomeScore, result.AwayScore, result.AwayTeam)
	fmt.Fprintf(b, "  prizes: %s %s, %s %s\n",
		result.HomeTeam, Euro(result.HomePrize), result.AwayTeam, Euro(result.AwayPrize))
	if result.MatchLog == nil {
		return
	}
	for _, turn := range result.MatchLog.Turns {
		if !turn.GoalScored {
			continue
		}
		for _, a := range turn.Actions {
			if a.IsGoal {
				fmt.Fprintf(b, "  GOAL  turn %2d  %s (%s) — %s\n",
					turn.Turn, a.Attacker.Name, turn.AttackingTeam, a.Action)
			}
		}
	}
}
