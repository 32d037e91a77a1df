package league

import "math/rand"

// Match simulation: 18 alternating possession turns (odd turns attack for
// the home side). Each turn opens with a weighted action; every action is a
// duel of attacker stat + d3 against defender stat + d3, with successful
// non-shooting actions chaining into follow-ups until a shot is resolved or
// possession is lost.

const (
	turnsPerMatch     = 18
	maxActionsPerTurn = 6
	duelBonusSides    = 3
)

var actionWeights = []struct {
	action string
	weight float64
}{
	{"PASE", 0.35},
	{"REGATE", 0.20},
	{"TIRO", 0.20},
	{"CORNER", 0.15},
	{"AREA", 0.10},
}

var attackWeights = map[Position]float64{
	Delantero: 0.40,
	Medio:     0.40,
	Defensa:   0.20,
	Portero:   0.00,
}

var defenseWeights = map[Position]float64{
	Delantero: 0.20,
	Medio:     0.30,
	Defensa:   0.50,
	Portero:   0.00,
}

// defenseActions maps each attacking action to the stat defending it.
var defenseActions = map[string]string{
	"PASE":    "BLOQUEO",
	"REGATE":  "ROBO",
	"CORNER":  "DESPEJE",
	"AREA":    "BLOQUEO",
	"TIRO":    "PARADA",
	"REMATE":  "PARADA",
	"PENALTI": "ATAJADA",
}

var followUps = map[string][]string{
	"PASE":   {"REGATE", "TIRO", "CORNER", "AREA"},
	"REGATE": {"TIRO", "PASE", "AREA"},
	"CORNER": {"REMATE"},
	"AREA":   {"PENALTI"},
}

func isShot(action string) bool {
	return action == "TIRO" || action == "REMATE" || action == "PENALTI"
}

// ActionSide records one participant of a duel.
type ActionSide struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	DefenseAction string `json:"defense_action,omitempty"`
	StatValue     int    `json:"stat_value"`
	RandomBonus   int    `json:"random_bonus"`
	Total         int    `json:"total"`
}

// Action is one resolved duel inside a turn.
type Action struct {
	Action     string     `json:"action"`
	Attacker   ActionSide `json:"attacker"`
	Defender   ActionSide `json:"defender"`
	Successful bool       `json:"successful"`
	IsGoal     bool       `json:"is_goal"`
}

// Turn is one possession in the match log.
type Turn struct {
	Turn          int      `json:"turn"`
	AttackingTeam string   `json:"attacking_team"`
	Actions       []Action `json:"actions"`
	GoalScored    bool     `json:"goal_scored"`
}

// MatchLog is the full play-by-play record of a simulated match.
type MatchLog struct {
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	Turns      []Turn `json:"turns"`
	TotalTurns int    `json:"total_turns"`
}

// PlayerNames returns every distinct participant appearing in the log.
func (l *MatchLog) PlayerNames() map[string]bool {
	names := make(map[string]bool)
	for _, turn := range l.Turns {
		for _, a := range turn.Actions {
			names[a.Attacker.Name] = true
			names[a.Defender.Name] = true
		}
	}
	return names
}

func chooseAction(rng *rand.Rand) string {
	r := rng.Float64()
	cumulative := 0.0
	for _, aw := range actionWeights {
		cumulative += aw.weight
		if r <= cumulative {
			return aw.action
		}
	}
	return "PASE"
}

// chooseWeighted picks a lineup player by position weight. Attackers never
// include the goalkeeper.
func chooseWeighted(players []*Player, weights map[Position]float64, excludeKeeper bool, rng *rand.Rand) *Player {
	candidates := players
	if excludeKeeper {
		candidates = nil
		for _, p := range players {
			if p.Position != Portero {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			candidates = players
		}
	}

	total := 0.0
	for _, p := range candidates {
		total += weights[p.Position]
	}
	if total == 0 {
		return candidates[rng.Intn(len(candidates))]
	}

	r := rng.Float64() * total
	cumulative := 0.0
	for _, p := range candidates {
		cumulative += weights[p.Position]
		if r <= cumulative {
			return p
		}
	}
	return candidates[len(candidates)-1]
}

func chooseDefender(players []*Player, action string, rng *rand.Rand) *Player {
	if isShot(action) {
		for _, p := range players {
			if p.Position == Portero {
				return p
			}
		}
		return players[rng.Intn(len(players))]
	}
	return chooseWeighted(players, defenseWeights, false, rng)
}

func resolveDuel(attacker *Player, action string, defender *Player, rng *rand.Rand) Action {
	defense := defenseActions[action]
	attackerStat := attacker.Stats.Get(action)
	defenderStat := defender.Stats.Get(defense)
	attackerBonus := 1 + rng.Intn(duelBonusSides)
	defenderBonus := 1 + rng.Intn(duelBonusSides)

	a := Action{
		Action: action,
		Attacker: ActionSide{
			Name:        attacker.Name,
			Position:    string(attacker.Position),
			StatValue:   attackerStat,
			RandomBonus: attackerBonus,
			Total:       attackerStat + attackerBonus,
		},
		Defender: ActionSide{
			Name:          defender.Name,
			Position:      string(defender.Position),
			DefenseAction: defense,
			StatValue:     defenderStat,
			RandomBonus:   defenderBonus,
			Total:         defenderStat + defenderBonus,
		},
	}
	a.Successful = a.Attacker.Total > a.Defender.Total
	a.IsGoal = a.Successful && isShot(action)
	return a
}

// Simulate plays a full match between two lineups and returns the log.
func Simulate(homeName, awayName string, homeLineup, awayLineup []*Player, rng *rand.Rand) *MatchLog {
	log := &MatchLog{
		HomeTeam:   homeName,
		AwayTeam:   awayName,
		TotalTurns: turnsPerMatch,
	}

	for turnNo := 1; turnNo <= turnsPerMatch; turnNo++ {
		homeAttacks := turnNo%2 == 1
		attacking, defending := homeLineup, awayLineup
		attackingName := homeName
		if !homeAttacks {
			attacking, defending = awayLineup, homeLineup
			attackingName = awayName
		}

		turn := Turn{Turn: turnNo, AttackingTeam: attackingName}
		action := chooseAction(rng)
		for steps := 0; steps < maxActionsPerTurn; steps++ {
			attacker := chooseWeighted(attacking, attackWeights, true, rng)
			defender := chooseDefender(defending, action, rng)
			resolved := resolveDuel(attacker, action, defender, rng)
			turn.Actions = append(turn.Actions, resolved)

			if !resolved.Successful {
				break
			}
			if resolved.IsGoal {
				turn.GoalScored = true
				if homeAttacks {
					log.HomeScore++
				} else {
					log.AwayScore++
				}
				break
			}
			next := followUps[action]
			if len(next) == 0 {
				break
			}
			action = next[rng.Intn(len(next))]
		}
		log.Turns = append(log.Turns, turn)
	}
	return log
}
