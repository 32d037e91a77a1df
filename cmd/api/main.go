// Command api is the Football Draft League backend.
//
// Usage:
//
//	league-api
//	API_PORT=8000 league-api
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/jstevez608/Football-Sim/internal/api"
	"github.com/jstevez608/Football-Sim/internal/config"
	"github.com/jstevez608/Football-Sim/internal/db"
	"github.com/jstevez608/Football-Sim/internal/league"
	"github.com/jstevez608/Football-Sim/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// League service, optionally restored from and persisted to Postgres
	opts := []league.ServiceOption{}
	if cfg.RandomSeed != 0 {
		opts = append(opts, league.WithSeed(cfg.RandomSeed))
	}
	if cfg.DatabaseURL != "" {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		snapshots := store.NewPostgres(pool)
		game, err := snapshots.Load(ctx)
		if err != nil {
			logger.Error("Failed to load game snapshot", "error", err)
			os.Exit(1)
		}
		if game != nil {
			logger.Info("Restored game snapshot",
				"phase", game.State.CurrentPhase,
				"round", game.State.CurrentRound)
			opts = append(opts, league.WithGame(game))
		}
		opts = append(opts, league.WithPersister(snapshots))
	} else {
		logger.Info("No DATABASE_URL set, running in-memory only")
	}
	svc := league.NewService(logger, opts...)

	// Create router
	router := api.NewRouter(svc, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Football Draft League API",
			"addr", addr,
			"environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
