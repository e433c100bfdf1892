package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS onboarding_records (
        founder_id TEXT PRIMARY KEY,
        record JSONB NOT NULL,
        completed_at TIMESTAMPTZ NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS mission_reflections (
        id BIGSERIAL PRIMARY KEY,
        founder_id TEXT NOT NULL REFERENCES onboarding_records(founder_id) ON DELETE CASCADE,
        weekly_focus TEXT NOT NULL,
        reflection TEXT NOT NULL,
        prayer_intention TEXT NOT NULL DEFAULT '',
        guidance TEXT NOT NULL DEFAULT '',
        alignment_score INT NULL, -- null until a real scoring function exists
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE INDEX IF NOT EXISTS mission_reflections_founder_idx ON mission_reflections(founder_id, created_at DESC)`,
}

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range schema {
		if _, err := pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
