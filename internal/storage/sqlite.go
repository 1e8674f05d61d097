// Package storage provides SQLite-based persistence for finished game sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the history database lives unless overridden.
const DefaultPath = "~/.shooter/history.db"

// Store manages the SQLite database connection for outcome history.
type Store struct {
	db *sql.DB
}

// OutcomeEntry represents one finished session.
type OutcomeEntry struct {
	ID               int64
	SessionID        string
	Outcome          string // "won" or "lost"
	Ticks            int
	Shots            int
	EnemiesDestroyed int
	CreatedAt        time.Time
}

// OutcomeSummary aggregates the whole history.
type OutcomeSummary struct {
	Played     int
	Won        int
	Lost       int
	LastPlayed time.Time
}

// NewSessionID returns a fresh identifier for a game session.
func NewSessionID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			enemies_destroyed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_outcomes_outcome ON outcomes(outcome);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveOutcome records a finished session. A missing session ID is filled
// with a new one. Returns the ID of the inserted record.
func (s *Store) SaveOutcome(e OutcomeEntry) (int64, error) {
	if e.Outcome == "" {
		return 0, fmt.Errorf("storage: outcome is required")
	}
	if e.SessionID == "" {
		e.SessionID = NewSessionID()
	}

	result, err := s.db.Exec(
		`INSERT INTO outcomes (session_id, outcome, ticks, shots, enemies_destroyed)
		 VALUES (?, ?, ?, ?, ?)`,
		e.SessionID, e.Outcome, e.Ticks, e.Shots, e.EnemiesDestroyed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save outcome: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentOutcomes retrieves the latest finished sessions, newest first.
func (s *Store) RecentOutcomes(limit int) ([]OutcomeEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, outcome, ticks, shots, enemies_destroyed, created_at
		 FROM outcomes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query outcomes: %w", err)
	}
	defer rows.Close()

	var entries []OutcomeEntry
	for rows.Next() {
		var e OutcomeEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Outcome, &e.Ticks, &e.Shots, &e.EnemiesDestroyed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Summary counts played, won and lost sessions.
func (s *Store) Summary() (OutcomeSummary, error) {
	var sum OutcomeSummary
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM outcomes`,
	).Scan(&sum.Played, &sum.Won, &sum.Lost, &lastPlayed)
	if err != nil {
		return OutcomeSummary{}, fmt.Errorf("storage: cannot summarize outcomes: %w", err)
	}
	sum.LastPlayed = parseTime(lastPlayed)

	return sum, nil
}

// Clear deletes the whole history.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM outcomes"); err != nil {
		return fmt.Errorf("storage: cannot clear outcomes: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
