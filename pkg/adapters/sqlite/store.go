package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/docket-run/docket/pkg/domain"
	"github.com/docket-run/docket/pkg/manifest"
)

// Store implements ports.ProjectStore on a single SQLite table holding
// JSON records.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at the given DSN and ensures
// the schema exists. Use ":memory:" for an ephemeral store.
func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = "docket.db"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS projects (
		id   TEXT PRIMARY KEY,
		spec BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create projects table: %w", err)
	}
	return &Store{db: db}, nil
}

// Save upserts the record.
func (s *Store) Save(ctx context.Context, id string, spec *manifest.ProjectSpec) error {
	data, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects(id, spec) VALUES(?, ?)
		 ON CONFLICT(id) DO UPDATE SET spec = excluded.spec`, id, data)
	if err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}
	return nil
}

// Load retrieves the record.
func (s *Store) Load(ctx context.Context, id string) (*manifest.ProjectSpec, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT spec FROM projects WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("select project: %w", err)
	}

	var spec manifest.ProjectSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	return &spec, nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// List returns stored project IDs in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan project id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
