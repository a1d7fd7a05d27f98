// Package history records schedule triggers, reminder displays and
// execution failures in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pwrsched/pwrsched/internal/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id       TEXT PRIMARY KEY,
	at       TEXT NOT NULL,
	category TEXT NOT NULL,
	item_id  INTEGER NOT NULL,
	action   TEXT NOT NULL DEFAULT '',
	event    TEXT NOT NULL DEFAULT '',
	outcome  TEXT NOT NULL,
	detail   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_history_at ON history(at);
`

// Entry is one recorded occurrence.
type Entry struct {
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
	Category string    `json:"category"`
	ItemID   int       `json:"item_id"`
	Action   string    `json:"action,omitempty"`
	Event    string    `json:"event,omitempty"`
	Outcome  string    `json:"outcome"`
	Detail   string    `json:"detail,omitempty"`
}

// Store is the SQLite-backed history log. It implements engine.Recorder.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one engine record. Insert failures are swallowed: history
// is best-effort and must never disturb the tick.
func (s *Store) Record(r engine.Record) {
	action := ""
	if r.Action != 0 {
		action = r.Action.String()
	}
	event := ""
	if r.Event != 0 {
		event = r.Event.String()
	}
	_, _ = s.db.Exec(
		`INSERT INTO history (id, at, category, item_id, action, event, outcome, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		r.At.Format(time.RFC3339),
		r.Category.String(),
		r.ItemID,
		action,
		event,
		r.Outcome,
		r.Detail,
	)
}

// List returns up to limit entries, newest first. A non-positive limit
// defaults to 100.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(
		`SELECT id, at, category, item_id, action, event, outcome, detail
		 FROM history ORDER BY at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Category, &e.ItemID, &e.Action, &e.Event, &e.Outcome, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if ts, perr := time.Parse(time.RFC3339, at); perr == nil {
			e.At = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Flush deletes all history entries.
func (s *Store) Flush() error {
	if _, err := s.db.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("flush history: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ engine.Recorder = (*Store)(nil)
