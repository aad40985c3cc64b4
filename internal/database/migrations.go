package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the projects schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			client_name TEXT NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('active', 'on_hold', 'completed')),
			start_date TEXT NOT NULL,
			end_date TEXT,
			description TEXT,
			position INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// List order is ascending position; prepends take min(position) - 1
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_projects_position
		ON projects(position)
	`)
	return err
}
