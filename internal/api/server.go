package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/jstevez608/Football-Sim/internal/api/handler"
	"github.com/jstevez608/Football-Sim/internal/config"
	"github.com/jstevez608/Football-Sim/internal/league"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. Every game endpoint lives under /api, mirroring the path the
// operator console is configured with.
func NewRouter(svc *league.Service, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(svc)

	// --- Routes ---

	r.Get("/", h.Root)
	r.Get("/healthz", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/game", func(r chi.Router) {
			r.Get("/state", h.GetGameState)
			r.Post("/init", h.InitGame)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Put("/{playerID}", h.UpdatePlayer)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Post("/", h.CreateTeam)
			r.Post("/{teamID}/set-clause", h.SetClause)
			r.Post("/buy-player", h.BuyPlayer)
			r.Post("/release-player", h.ReleasePlayer)
		})

		r.Route("/draft", func(r chi.Router) {
			r.Post("/start", h.StartDraft)
			r.Post("/pick", h.DraftPick)
			r.Post("/skip-turn", h.SkipDraftTurn)
		})

		r.Route("/league", func(r chi.Router) {
			r.Post("/start", h.StartLeague)
			r.Get("/standings", h.Standings)
			r.Get("/formations", h.Formations)
			r.Get("/market-status", h.MarketStatus)
			r.Get("/matches/round/{round}", h.RoundMatches)
			r.Post("/simulate-next-match", h.SimulateNextMatch)
			r.Route("/lineup", func(r chi.Router) {
				r.Post("/select", h.SelectLineup)
				r.Post("/skip-turn", h.SkipLineupTurn)
			})
		})
	})

	return r
}
