// Package store persists game snapshots to Postgres. The in-memory game
// document stays authoritative; the store only survives restarts.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jstevez608/Football-Sim/internal/db"
	"github.com/jstevez608/Football-Sim/internal/league"
)

// Postgres writes the whole game document as one JSONB row.
type Postgres struct {
	pool *db.Pool
}

// NewPostgres wraps an existing pool.
func NewPostgres(pool *db.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Save upserts the snapshot row.
func (s *Postgres) Save(ctx context.Context, g *league.Game) error {
	doc, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	if _, err := s.pool.Exec(ctx, "save_snapshot", doc); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the persisted game, or nil when none has been saved yet.
func (s *Postgres) Load(ctx context.Context) (*league.Game, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, "load_snapshot").Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var g league.Game
	if err := json.Unmarshal(doc, &g); err != nil {
		return nil, fmt.Errorf("unmarshal game: %w", err)
	}
	return &g, nil
}
