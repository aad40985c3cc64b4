package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/trackr/internal/models"
)

const projectColumns = `id, name, client_name, status, start_date, end_date, description`

// Repository is a DataStore backed by SQLite
type Repository struct {
	db *sql.DB
}

// NewRepository wraps db and seeds it with the initial projects in order.
// The table must be empty; seeding a populated database is an error.
func NewRepository(ctx context.Context, db *sql.DB, initial []*models.Project) (*Repository, error) {
	if err := validateSeed(initial); err != nil {
		return nil, err
	}

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count projects: %w", err)
		}
		if count > 0 && len(initial) > 0 {
			return fmt.Errorf("refusing to seed: projects table already has %d rows", count)
		}

		for i, p := range initial {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO projects (`+projectColumns+`, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				p.ID, p.Name, p.ClientName, string(p.Status), p.StartDate,
				nullString(p.EndDate), nullString(p.Description), i,
			); err != nil {
				return fmt.Errorf("failed to seed project %s: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Repository{db: db}, nil
}

// ListProjects returns all projects ordered by position
func (r *Repository) ListProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	projects := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}
	return projects, nil
}

// GetProject returns the project with the given ID
func (r *Repository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}
	return p, err
}

// UpdateProjectStatus sets the status of one project and returns the updated row
func (r *Repository) UpdateProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	var updated *models.Project
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE projects SET status = ? WHERE id = ?`, string(status), id)
		if err != nil {
			return fmt.Errorf("failed to update project %s: %w", id, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
		}

		row := tx.QueryRowContext(ctx,
			`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
		updated, err = scanProject(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// InsertProject prepends the project by giving it the smallest position
func (r *Repository) InsertProject(ctx context.Context, project *models.Project) error {
	if project == nil || project.ID == "" {
		return fmt.Errorf("insert project: missing ID")
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var minPos sql.NullInt64
		if err := tx.QueryRowContext(ctx, `SELECT MIN(position) FROM projects`).Scan(&minPos); err != nil {
			return fmt.Errorf("failed to read min position: %w", err)
		}
		pos := int64(0)
		if minPos.Valid {
			pos = minPos.Int64 - 1
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (`+projectColumns+`, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			project.ID, project.Name, project.ClientName, string(project.Status), project.StartDate,
			nullString(project.EndDate), nullString(project.Description), pos,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", models.ErrDuplicateID, project.ID)
			}
			return fmt.Errorf("failed to insert project '%s': %w", project.Name, err)
		}
		return nil
	})
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var (
		p           models.Project
		status      string
		endDate     sql.NullString
		description sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.ClientName, &status, &p.StartDate, &endDate, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	p.Status = models.Status(status)
	p.EndDate = endDate.String
	p.Description = description.String
	return &p, nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY")
}
