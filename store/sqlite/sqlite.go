/*
Package sqlite provides the assessment session store.

PURPOSE:
  Holds named assessments: a saved parameter mapping plus the latest
  computed-result snapshot for the report renderer. The store defaults to
  ":memory:" - assessments live for the server session only. Passing a
  file path is an operator opt-in for durable storage; the same schema
  applies either way.

KEY TABLE:
  assessments: id (uuid), name, params_json, results_json, timestamps.
  Parameters and results are stored as JSON documents; the engine is the
  only component that interprets them, so the store stays schema-light.

CONCURRENCY:
  sync.RWMutex around the single connection. SQLite is opened in WAL
  mode so readers do not block.

USAGE:
  store, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/handlers.go: the only consumer of this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Assessment is one saved parameter set with its optional computed
// results snapshot.
type Assessment struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
	// Results is the opaque computed-result snapshot as serialized by the
	// API layer. Nil until the assessment has been computed.
	Results   json.RawMessage `json:"results,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store is the SQLite-backed assessment store.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the store and migrates the schema. Use
// ":memory:" for a session-scoped store.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS assessments (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		params_json  TEXT NOT NULL,
		results_json TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_assessments_name ON assessments(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveAssessment inserts or replaces an assessment by ID.
func (s *Store) SaveAssessment(ctx context.Context, a Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	params, err := json.Marshal(a.Parameters)
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}

	var results any
	if len(a.Results) > 0 {
		results = string(a.Results)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments (id, name, params_json, results_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			params_json = excluded.params_json,
			results_json = excluded.results_json,
			updated_at = excluded.updated_at`,
		a.ID, a.Name, string(params), results,
		a.CreatedAt.UTC().Format(time.RFC3339), a.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

// GetAssessment returns an assessment by ID, nil when absent.
func (s *Store) GetAssessment(ctx context.Context, id string) (*Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, params_json, results_json, created_at, updated_at
		FROM assessments WHERE id = ?`, id)

	a, err := scanAssessment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	return a, nil
}

// ListAssessments returns every assessment, most recently updated first.
func (s *Store) ListAssessments(ctx context.Context) ([]Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, params_json, results_json, created_at, updated_at
		FROM assessments ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// DeleteAssessment removes an assessment by ID. Deleting a missing ID
// is not an error.
func (s *Store) DeleteAssessment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	return nil
}

// Reset clears every assessment.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM assessments`); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(r rowScanner) (*Assessment, error) {
	var (
		a         Assessment
		params    string
		results   sql.NullString
		createdAt string
		updatedAt string
	)
	if err := r.Scan(&a.ID, &a.Name, &params, &results, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(params), &a.Parameters); err != nil {
		return nil, fmt.Errorf("unmarshal parameters: %w", err)
	}
	if results.Valid && results.String != "" {
		a.Results = json.RawMessage(results.String)
	}

	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &a, nil
}
