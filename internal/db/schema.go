package db

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS admins (
	     username TEXT PRIMARY KEY,
	     password_hash TEXT NOT NULL,
	     created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	     updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS evaluations (
	     id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	     evaluator_name TEXT NOT NULL,
	     trainer_name TEXT NOT NULL,
	     training_date TEXT NOT NULL,
	     observation_date TEXT NOT NULL DEFAULT '',
	     training_location TEXT NOT NULL DEFAULT '',
	     eval_type TEXT NOT NULL DEFAULT '',
	     recommendation TEXT NOT NULL DEFAULT '',
	     ratings JSONB NOT NULL DEFAULT '[]',
	     average_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	     score_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
	     rated_item_count INTEGER NOT NULL DEFAULT 0,
	     total_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	     total_possible DOUBLE PRECISION NOT NULL DEFAULT 0,
	     score_counts JSONB NOT NULL DEFAULT '{}',
	     section_totals JSONB NOT NULL DEFAULT '[]',
	     comments JSONB NOT NULL DEFAULT '{}',
	     submission_date TEXT NOT NULL DEFAULT '',
	     created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_trainer ON evaluations (trainer_name)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations (created_at DESC)`,
}

// Migrate creates the schema if it does not exist. Statements are idempotent
// so startup can run this unconditionally.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
