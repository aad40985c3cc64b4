package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/trackr/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// validateSeed enforces ID uniqueness and valid statuses on initial data
func validateSeed(projects []*models.Project) error {
	seen := make(map[string]bool, len(projects))
	for i, p := range projects {
		if p == nil {
			return fmt.Errorf("seed project %d is nil", i)
		}
		if p.ID == "" {
			return fmt.Errorf("seed project %d (%q) has no ID", i, p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", models.ErrDuplicateID, p.ID)
		}
		if !p.Status.Valid() {
			return fmt.Errorf("seed project %s: %w: %q", p.ID, models.ErrInvalidStatus, p.Status)
		}
		seen[p.ID] = true
	}
	return nil
}

// nullString maps an empty string to SQL NULL for optional columns
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
