package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

//go:embed migrations/001_initial.sql
var initialMigrationSQL string

var requiredTables = []string{
	"admins",
	"employees",
	"leaves",
	"payrolls",
	"attendance",
}

// EnsureSchema applies the initial migration when tables are missing and
// seeds the bootstrap admin account. The same SQL file drives the goose
// migrator binary; here only the Up section is executed.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if db == nil || db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	exists, err := db.hasAllRequiredTables(ctx)
	if err != nil {
		return fmt.Errorf("check existing tables: %w", err)
	}

	if !exists {
		slog.Info("database schema missing tables; applying initial migration")
		if _, err := db.Pool.Exec(ctx, upSection(initialMigrationSQL)); err != nil {
			return fmt.Errorf("apply initial migration: %w", err)
		}

		exists, err = db.hasAllRequiredTables(ctx)
		if err != nil {
			return fmt.Errorf("re-check tables after migration: %w", err)
		}

		if !exists {
			return fmt.Errorf("schema initialization incomplete: required tables are still missing")
		}
	}

	if err := db.seedDefaultAdmin(ctx); err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}

	slog.Info("database schema ensured")
	return nil
}

// seedDefaultAdmin creates the bootstrap admin/admin123 account once.
// The password should be rotated immediately in any real deployment.
func (db *DB) seedDefaultAdmin(ctx context.Context) error {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		return err
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING`,
		"admin", string(hash))
	if err != nil {
		return err
	}

	slog.Info("seeded default admin account", "username", "admin")
	return nil
}

func (db *DB) hasAllRequiredTables(ctx context.Context) (bool, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name = ANY($1)
	`, requiredTables).Scan(&count)
	if err != nil {
		return false, err
	}

	return count == len(requiredTables), nil
}

// upSection cuts the SQL file at the goose Down marker so startup never
// executes the teardown statements.
func upSection(sql string) string {
	if idx := strings.Index(sql, "-- +goose Down"); idx >= 0 {
		return sql[:idx]
	}
	return sql
}
