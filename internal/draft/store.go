// Package draft persists in-progress wizard sessions to a local SQLite
// database so an interrupted build can be resumed.
package draft

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	_ "modernc.org/sqlite"

	"github.com/mkail/foliogen/internal/wizard"
)

// ErrNoDrafts is returned by Latest when the store is empty.
var ErrNoDrafts = errors.New("no drafts saved")

// Draft is one saved wizard session.
type Draft struct {
	ID        string
	Name      string
	State     *wizard.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is a SQLite-backed draft store.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    state TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);
`

// Open creates or opens the draft database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating draft directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening draft database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging draft database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating draft database: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenMemory creates an in-memory draft store (useful for testing).
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating draft database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewDraft creates an unsaved draft wrapping the given state.
func NewDraft(state *wizard.State) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:        uuid.NewString(),
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Save upserts the draft. The draft name is re-derived from the current
// full-name field so resumed sessions list readably.
func (s *Store) Save(d *Draft) error {
	data, err := json.Marshal(d.State)
	if err != nil {
		return fmt.Errorf("serializing draft state: %w", err)
	}

	d.Name = draftName(d.State)
	d.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(`
		INSERT INTO drafts (id, name, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			state = excluded.state,
			updated_at = excluded.updated_at`,
		d.ID, d.Name, string(data), d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// Latest returns the most recently updated draft, or ErrNoDrafts.
func (s *Store) Latest() (*Draft, error) {
	row := s.db.QueryRow(`
		SELECT id, name, state, created_at, updated_at
		FROM drafts ORDER BY updated_at DESC LIMIT 1`)
	return scanDraft(row)
}

// Get returns the draft with the given id.
func (s *Store) Get(id string) (*Draft, error) {
	row := s.db.QueryRow(`
		SELECT id, name, state, created_at, updated_at
		FROM drafts WHERE id = ?`, id)
	return scanDraft(row)
}

// List returns all drafts, most recently updated first, without their
// state payloads.
func (s *Store) List() ([]*Draft, error) {
	rows, err := s.db.Query(`
		SELECT id, name, created_at, updated_at
		FROM drafts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	var out []*Draft
	for rows.Next() {
		d := &Draft{}
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Delete removes the draft with the given id. Deleting a missing draft
// is not an error.
func (s *Store) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM drafts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}

func scanDraft(row *sql.Row) (*Draft, error) {
	d := &Draft{}
	var stateJSON string
	err := row.Scan(&d.ID, &d.Name, &stateJSON, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDrafts
	}
	if err != nil {
		return nil, fmt.Errorf("scanning draft: %w", err)
	}

	d.State = wizard.New()
	if err := json.Unmarshal([]byte(stateJSON), d.State); err != nil {
		return nil, fmt.Errorf("restoring draft state: %w", err)
	}
	return d, nil
}

// draftName derives a readable draft name from the session's full-name
// field, falling back to "untitled".
func draftName(state *wizard.State) string {
	if state.FullName == "" {
		return "untitled"
	}
	return slug.Make(state.FullName)
}
