package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/htaso/evaltracker/internal/config"
)

const adminUsername = "admin"

// GetAdminHash returns the stored bcrypt hash for the admin account, or ""
// when no admin row exists yet.
func (db *DB) GetAdminHash(ctx context.Context) (string, error) {
	var hash string
	err := db.pool.QueryRow(ctx,
		`SELECT password_hash FROM admins WHERE username = $1`, adminUsername,
	).Scan(&hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get admin hash: %w", err)
	}
	return hash, nil
}

// SetAdminHash replaces the admin password hash, creating the row if needed.
func (db *DB) SetAdminHash(ctx context.Context, hash string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO admins (username, password_hash)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()`,
		adminUsername, hash)
	if err != nil {
		return fmt.Errorf("failed to set admin hash: %w", err)
	}
	return nil
}

// EnsureAdmin bootstraps the admin account with the default password when no
// credential is stored. Existing credentials are never touched.
func (db *DB) EnsureAdmin(ctx context.Context, pwCfg *config.PasswordConfig) error {
	hash, err := db.GetAdminHash(ctx)
	if err != nil {
		return err
	}
	if hash != "" {
		return nil
	}
	defaultHash, err := pwCfg.HashPassword(config.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}
	return db.SetAdminHash(ctx, defaultHash)
}
