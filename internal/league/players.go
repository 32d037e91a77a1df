package league

import (
	"math/rand"

	"github.com/google/uuid"
)

// Pool composition and pricing constants for the generated player set.
const (
	basePricePerStat = 1_500_000
	minPrice         = 500_000
)

type positionTemplate struct {
	count int
	base  PlayerStats
}

// One template per position: base attribute profile, varied ±1 per player.
var positionTemplates = []struct {
	position Position
	tpl      positionTemplate
}{
	{Portero, positionTemplate{count: 8, base: PlayerStats{
		Parada: 5, Atajada: 5, Despeje: 3, Pase: 2, Tiro: 1, Area: 1,
		Remate: 1, Corner: 2, Penalti: 4, Regate: 1, Robo: 2, Bloqueo: 3,
	}}},
	{Defensa, positionTemplate{count: 33, base: PlayerStats{
		Despeje: 5, Robo: 4, Bloqueo: 4, Pase: 3, Tiro: 2, Area: 2,
		Remate: 2, Corner: 2, Penalti: 2, Regate: 2, Parada: 1, Atajada: 1,
	}}},
	{Medio, positionTemplate{count: 18, base: PlayerStats{
		Pase: 5, Corner: 4, Regate: 4, Tiro: 3, Area: 3, Remate: 3,
		Penalti: 3, Despeje: 3, Robo: 3, Bloqueo: 3, Parada: 1, Atajada: 1,
	}}},
	{Delantero, positionTemplate{count: 16, base: PlayerStats{
		Remate: 5, Tiro: 5, Penalti: 4, Regate: 4, Area: 4, Pase: 3,
		Corner: 2, Despeje: 2, Robo: 2, Bloqueo: 2, Parada: 1, Atajada: 1,
	}}},
}

var playerNames = []string{
	"García", "Rodríguez", "López", "Martínez", "González", "Pérez", "Sánchez", "Ramírez", "Cruz", "Flores",
	"Morales", "Jiménez", "Hernández", "Vargas", "Castro", "Ruiz", "Ortega", "Silva", "Torres", "Mendoza",
	"Gutiérrez", "Vásquez", "Romero", "Álvarez", "Medina", "Guerrero", "Reyes", "Moreno", "Contreras", "Luna",
	"Ríos", "Aguilar", "Domínguez", "Herrera", "Campos", "Vega", "Ramos", "Muñoz", "Delgado", "Rojas",
	"Espinoza", "Castillo", "Salazar", "Navarro", "Paredes", "Sandoval", "Cabrera", "Ibarra", "Figueroa", "Soto",
	"Bravo", "Cortés", "Fuentes", "Peña", "Valdez", "Miranda", "Carrillo", "Maldonado", "Valencia", "Estrada",
	"Villanueva", "Pacheco", "Cáceres", "Quintero", "Molina", "Franco", "Núñez", "Bermúdez", "León", "Bustamante",
	"Ochoa", "Vidal", "Serrano", "Arias", "Pereira",
}

func clampStat(v int) int {
	if v < 1 {
		return 1
	}
	if v > 6 {
		return 6
	}
	return v
}

func varyStats(base PlayerStats, rng *rand.Rand) PlayerStats {
	vary := func(v int) int { return clampStat(v + rng.Intn(3) - 1) }
	return PlayerStats{
		Pase:    vary(base.Pase),
		Area:    vary(base.Area),
		Tiro:    vary(base.Tiro),
		Remate:  vary(base.Remate),
		Corner:  vary(base.Corner),
		Penalti: vary(base.Penalti),
		Regate:  vary(base.Regate),
		Parada:  vary(base.Parada),
		Despeje: vary(base.Despeje),
		Robo:    vary(base.Robo),
		Bloqueo: vary(base.Bloqueo),
		Atajada: vary(base.Atajada),
	}
}

func statSum(s PlayerStats) int {
	return s.Pase + s.Area + s.Tiro + s.Remate + s.Corner + s.Penalti +
		s.Regate + s.Parada + s.Despeje + s.Robo + s.Bloqueo + s.Atajada
}

// GeneratePlayers builds the initial 75-player pool. Price tracks the
// average attribute value with a random spread, floored at minPrice.
func GeneratePlayers(rng *rand.Rand) []*Player {
	var players []*Player
	nameIndex := 0
	for _, entry := range positionTemplates {
		for i := 0; i < entry.tpl.count; i++ {
			stats := varyStats(entry.tpl.base, rng)
			avg := float64(statSum(stats)) / 12.0
			price := int(avg * basePricePerStat)
			price += rng.Intn(1_500_001) - 500_000
			if price < minPrice {
				price = minPrice
			}
			players = append(players, &Player{
				ID:         uuid.NewString(),
				Name:       playerNames[nameIndex%len(playerNames)],
				Position:   entry.position,
				Price:      price,
				Resistance: 4 + rng.Intn(11),
				Stats:      stats,
			})
			nameIndex++
		}
	}
	return players
}
