// Command admin is the league operator console.
//
// Usage:
//
//	league-admin view
//	league-admin init
//	league-admin players list --free
//	league-admin players edit --id 3f2a... --price 5000000
//	league-admin teams create --name "Rayo" --primary red --secondary white --budget 80000000
//	league-admin draft start
//	league-admin draft pick --team 1a... --player 3f... --clause 2000000
//	league-admin league start
//	league-admin league lineup --team 1a... --formation A --players id1,id2,...
//	league-admin league simulate
//	league-admin market buy --buyer 1a... --seller 2b... --player 3f...
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jstevez608/Football-Sim/internal/client"
	"github.com/jstevez608/Football-Sim/internal/config"
	"github.com/jstevez608/Football-Sim/internal/console"
	"github.com/jstevez608/Football-Sim/internal/league"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "league-admin",
		Short: "Fantasy league operator console",
	}

	root.AddCommand(viewCmd())
	root.AddCommand(statusCmd())
	root.AddCommand(initCmd())
	root.AddCommand(playersCmd())
	root.AddCommand(teamsCmd())
	root.AddCommand(draftCmd())
	root.AddCommand(leagueCmd())
	root.AddCommand(marketCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// view / init
// --------------------------------------------------------------------------

func viewCmd() *cobra.Command {
	var teamID string
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Render the current game view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				if teamID != "" {
					store.SelectTeam(teamID)
				}
				fmt.Print(console.Render(store.View()))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "Act as this team (enables turn hints)")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "One-line summary of the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				view := store.View()
				if view.GameState == nil {
					fmt.Println("no game initialized")
					return nil
				}
				market := "closed"
				if view.Market != nil && view.Market.MarketOpen {
					market = "open"
				}
				fmt.Printf("phase %s  round %d/%d  teams %d/%d  market %s\n",
					view.GameState.CurrentPhase, view.GameState.CurrentRound,
					league.TotalRounds, len(view.Teams), league.LeagueTeamCount, market)
				return nil
			})
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Reset the game and generate a fresh 75-player pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				n, err := store.InitGame(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("game reset, %d players available\n", n)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// players command
// --------------------------------------------------------------------------

func playersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Inspect and edit the player pool",
	}
	cmd.AddCommand(playersListCmd())
	cmd.AddCommand(playersEditCmd())
	return cmd
}

func playersListCmd() *cobra.Command {
	var freeOnly bool
	var position string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pool players",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				for _, p := range store.View().Players {
					if freeOnly && p.TeamID != "" {
						continue
					}
					if position != "" && !strings.EqualFold(string(p.Position), position) {
						continue
					}
					status := "free"
					if p.TeamID != "" {
						status = "team " + p.TeamID
					}
					if p.IsResting {
						status += " (resting)"
					}
					fmt.Printf("%s  %-20s %-9s res %2d  %s  %s\n",
						p.ID, p.Name, p.Position, p.Resistance, console.Euro(p.Price), status)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&freeOnly, "free", false, "Only free agents")
	cmd.Flags().StringVar(&position, "position", "", "Filter by position (PORTERO, DEFENSA, MEDIO, DELANTERO)")
	return cmd
}

func playersEditCmd() *cobra.Command {
	var (
		playerID   string
		name       string
		price      int
		resistance int
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a player before the draft starts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerID == "" {
				return fmt.Errorf("--id is required")
			}
			return runConsole(func(ctx context.Context, store *console.Store) error {
				current, ok := store.View().PlayerByID(playerID)
				if !ok {
					return fmt.Errorf("player %s not found", playerID)
				}
				upd := league.PlayerUpdate{
					Name:       current.Name,
					Price:      current.Price,
					Resistance: current.Resistance,
					Stats:      current.Stats,
				}
				if cmd.Flags().Changed("name") {
					upd.Name = name
				}
				if cmd.Flags().Changed("price") {
					upd.Price = price
				}
				if cmd.Flags().Changed("resistance") {
					upd.Resistance = resistance
				}
				if err := store.EditPlayer(ctx, playerID, upd); err != nil {
					return err
				}
				fmt.Printf("player %s updated\n", upd.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&playerID, "id", "", "Player ID")
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().IntVar(&price, "price", 0, "New price")
	cmd.Flags().IntVar(&resistance, "resistance", 0, "New resistance (4-14)")
	return cmd
}

// --------------------------------------------------------------------------
// teams command
// --------------------------------------------------------------------------

func teamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Inspect and register teams",
	}
	cmd.AddCommand(teamsListCmd())
	cmd.AddCommand(teamsCreateCmd())
	return cmd
}

func teamsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				for _, t := range store.View().Teams {
					fmt.Printf("%s  %-20s %2d players  %s\n",
						t.ID, t.Name, len(t.Players), console.Euro(t.Budget))
				}
				return nil
			})
		},
	}
}

func teamsCreateCmd() *cobra.Command {
	var (
		name      string
		primary   string
		secondary string
		budget    int
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a team during setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				colors := league.TeamColors{Primary: primary, Secondary: secondary}
				id, err := store.CreateTeam(ctx, name, colors, budget)
				if err != nil {
					return err
				}
				fmt.Printf("team %q created: %s\n", name, id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Team name")
	cmd.Flags().StringVar(&primary, "primary", "blue", "Primary kit color")
	cmd.Flags().StringVar(&secondary, "secondary", "white", "Secondary kit color")
	cmd.Flags().IntVar(&budget, "budget", 100_000_000, "Budget (40M-180M)")
	return cmd
}

// --------------------------------------------------------------------------
// draft command
// --------------------------------------------------------------------------

func draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Run the sequential draft",
	}
	cmd.AddCommand(draftStartCmd())
	cmd.AddCommand(draftPickCmd())
	cmd.AddCommand(draftSkipCmd())
	return cmd
}

func draftStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the draft (requires eight teams)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				order, err := store.StartDraft(ctx)
				if err != nil {
					return err
				}
				fmt.Println("draft started, turn order:")
				for i, id := range order {
					name := id
					if t, ok := store.View().TeamByID(id); ok {
						name = t.Name
					}
					fmt.Printf("  %d. %s\n", i+1, name)
				}
				return nil
			})
		},
	}
}

func draftPickCmd() *cobra.Command {
	var teamID, playerID string
	var clause int
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Draft a free player for the acting team",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				if err := store.DraftPick(ctx, teamID, playerID, clause); err != nil {
					return err
				}
				fmt.Println("player drafted")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "Acting team ID")
	cmd.Flags().StringVar(&playerID, "player", "", "Player ID to draft")
	cmd.Flags().IntVar(&clause, "clause", 0, "Optional protection clause")
	return cmd
}

func draftSkipCmd() *cobra.Command {
	var teamID string
	cmd := &cobra.Command{
		Use:   "skip",
		Short: "Skip the acting team's draft turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				if err := store.SkipDraftTurn(ctx, teamID); err != nil {
					return err
				}
				fmt.Println("turn skipped")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "Acting team ID")
	return cmd
}

// --------------------------------------------------------------------------
// league command
// --------------------------------------------------------------------------

func leagueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "Run the 14-round season",
	}
	cmd.AddCommand(leagueStartCmd())
	cmd.AddCommand(leagueStandingsCmd())
	cmd.AddCommand(leagueMatchesCmd())
	cmd.AddCommand(leagueFormationsCmd())
	cmd.AddCommand(leagueMarketCmd())
	cmd.AddCommand(leagueLineupCmd())
	cmd.AddCommand(leagueSkipTurnCmd())
	cmd.AddCommand(leagueSimulateCmd())
	return cmd
}

func leagueStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Generate the calendar and open round one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				result, err := store.StartLeague(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("league started: %d matches over %d rounds\n",
					result.TotalMatches, result.Rounds)
				return nil
			})
		},
	}
}

func leagueStandingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show the league table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				fmt.Print(console.Render(store.View()))
				return nil
			})
		},
	}
}

func leagueMatchesCmd() *cobra.Command {
	var round int
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Show the fixtures of a round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				view := store.View()
				if round == 0 && view.GameState != nil {
					round = view.GameState.CurrentRound
				}
				matches, err := store.RoundFixtures(ctx, round)
				if err != nil {
					return err
				}
				fmt.Printf("round %d\n", round)
				for _, m := range matches {
					home, away := m.HomeTeamID, m.AwayTeamID
					if t, ok := view.TeamByID(m.HomeTeamID); ok {
						home = t.Name
					}
					if t, ok := view.TeamByID(m.AwayTeamID); ok {
						away = t.Name
					}
					if m.Played {
						fmt.Printf("  %-20s %d - %d %s\n", home, m.HomeScore, m.AwayScore, away)
					} else {
						fmt.Printf("  %-20s   vs   %s\n", home, away)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&round, "round", 0, "Round number (default: current)")
	return cmd
}

func leagueFormationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formations",
		Short: "Show the available formations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				view := store.View()
				if len(view.Formations) == 0 {
					fmt.Println("no formations available (is a game initialized?)")
					return nil
				}
				for _, key := range []string{"A", "B", "C"} {
					f, ok := view.Formations[key]
					if !ok {
						continue
					}
					fmt.Printf("%s  %s  (GK %d / DEF %d / MID %d / FWD %d)\n",
						key, f.Name, f.Portero, f.Defensas, f.Medios, f.Delanteros)
				}
				return nil
			})
		},
	}
}

func leagueMarketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Show the transfer market status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				view := store.View()
				if view.Market == nil {
					fmt.Println("market status unavailable outside the league")
					return nil
				}
				if view.Market.MarketOpen {
					fmt.Printf("market open (round %d)\n", view.Market.CurrentRound)
				} else {
					fmt.Printf("market closed, opens at round %d (current round %d)\n",
						view.Market.OpensAtRound, view.Market.CurrentRound)
				}
				return nil
			})
		},
	}
}

func leagueLineupCmd() *cobra.Command {
	var teamID, formation, players string
	cmd := &cobra.Command{
		Use:   "lineup",
		Short: "Submit a formation and seven players",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				ids := strings.Split(players, ",")
				for i := range ids {
					ids[i] = strings.TrimSpace(ids[i])
				}
				result, err := store.SelectLineup(ctx, teamID, formation, ids)
				if err != nil {
					return err
				}
				fmt.Println(result.Message)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "Acting team ID")
	cmd.Flags().StringVar(&formation, "formation", "A", "Formation key (A, B, C)")
	cmd.Flags().StringVar(&players, "players", "", "Comma-separated player IDs (exactly 7)")
	return cmd
}

func leagueSkipTurnCmd() *cobra.Command {
	var teamID string
	cmd := &cobra.Command{
		Use:   "skip-turn",
		Short: "Skip the acting team's lineup turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				if err := store.SkipLineupTurn(ctx, teamID); err != nil {
					return err
				}
				fmt.Println("turn skipped")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "Acting team ID")
	return cmd
}

func leagueSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Simulate the next fixture of the current round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				result, err := store.SimulateNextMatch(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%s %d - %d %s\n",
					result.HomeTeam, result.HomeScore, result.AwayScore, result.AwayTeam)
				if result.RoundCompleted {
					if result.SeasonComplete {
						fmt.Println("season complete")
					} else {
						fmt.Printf("round complete, next round: %d\n", result.NextRound)
					}
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// market command
// --------------------------------------------------------------------------

func marketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Transfer market operations",
	}
	cmd.AddCommand(marketSetClauseCmd())
	cmd.AddCommand(marketBuyCmd())
	cmd.AddCommand(marketReleaseCmd())
	return cmd
}

func marketSetClauseCmd() *cobra.Command {
	var teamID, playerID string
	var amount int
	cmd := &cobra.Command{
		Use:   "set-clause",
		Short: "Set a protection clause on an owned player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				if err := store.SetClause(ctx, teamID, playerID, amount); err != nil {
					return err
				}
				fmt.Printf("clause set: %s\n", console.Euro(amount))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "Owning team ID")
	cmd.Flags().StringVar(&playerID, "player", "", "Player ID")
	cmd.Flags().IntVar(&amount, "amount", 0, "Clause amount")
	return cmd
}

func marketBuyCmd() *cobra.Command {
	var buyerID, sellerID, playerID string
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy a player (omit --seller to sign a free agent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				result, err := store.BuyPlayer(ctx, buyerID, sellerID, playerID)
				if err != nil {
					return err
				}
				fmt.Printf("%s purchased for %s\n", result.PlayerName, console.Euro(result.TotalCost))
				if result.LineupAffected {
					fmt.Println(result.AdditionalMessage)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&buyerID, "buyer", "", "Buying team ID")
	cmd.Flags().StringVar(&sellerID, "seller", "", "Selling team ID (empty = free agent)")
	cmd.Flags().StringVar(&playerID, "player", "", "Player ID")
	return cmd
}

func marketReleaseCmd() *cobra.Command {
	var teamID, playerID string
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release an owned player for a 90% refund",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(func(ctx context.Context, store *console.Store) error {
				result, err := store.ReleasePlayer(ctx, teamID, playerID)
				if err != nil {
					return err
				}
				fmt.Printf("%s released, refund %s\n", result.PlayerName, console.Euro(result.Refund))
				if result.LineupAffected {
					fmt.Println(result.AdditionalMessage)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "Owning team ID")
	cmd.Flags().StringVar(&playerID, "player", "", "Player ID")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runConsole handles config loading, client construction, the initial
// refresh, and context cancellation.
func runConsole(fn func(ctx context.Context, store *console.Store) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store := console.NewStore(client.New(cfg.LeagueAPIURL))
	if err := store.Refresh(ctx); err != nil {
		logger.Warn("initial refresh failed", "error", err)
	}
	return fn(ctx, store)
}
