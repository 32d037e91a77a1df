package league

// Formations is the fixed template catalogue. Keys are the identifiers the
// lineup endpoint accepts.
var Formations = map[string]Formation{
	"A": {Name: "4-3-1", Portero: 1, Defensas: 2, Medios: 3, Delanteros: 1},
	"B": {Name: "5-2-1", Portero: 1, Defensas: 3, Medios: 2, Delanteros: 1},
	"C": {Name: "4-2-2", Portero: 1, Defensas: 2, Medios: 2, Delanteros: 2},
}

// PositionCounts tallies lineup players per position.
func PositionCounts(players []*Player) map[Position]int {
	counts := map[Position]int{Portero: 0, Defensa: 0, Medio: 0, Delantero: 0}
	for _, p := range players {
		counts[p.Position]++
	}
	return counts
}

// MatchesFormation reports whether the per-position counts satisfy the
// formation exactly. Pure check, shared by server validation and the
// operator console's submit gating.
func MatchesFormation(counts map[Position]int, f Formation) bool {
	return counts[Portero] == f.Portero &&
		counts[Defensa] == f.Defensas &&
		counts[Medio] == f.Medios &&
		counts[Delantero] == f.Delanteros
}
