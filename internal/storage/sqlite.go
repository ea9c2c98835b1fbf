// Package storage provides SQLite-based persistence for simulation run
// history. Only run statistics are stored; grid contents never are.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord summarizes one simulation session.
type RunRecord struct {
	ID              int64
	Pattern         string // Seed pattern name, empty for hand-drawn boards
	Width           int
	Height          int
	Generations     uint64
	PeakPopulation  int
	FinalPopulation int
	CreatedAt       time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pattern TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			peak_population INTEGER NOT NULL,
			final_population INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pattern ON runs(pattern);
		CREATE INDEX IF NOT EXISTS idx_runs_generations ON runs(pattern, generations DESC);
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

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (pattern, width, height, generations, peak_population, final_population)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Pattern, r.Width, r.Height, int64(r.Generations), r.PeakPopulation, r.FinalPopulation,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pattern, width, height, generations, peak_population, final_population, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var generations int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Pattern, &r.Width, &r.Height, &generations,
			&r.PeakPopulation, &r.FinalPopulation, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Generations = uint64(generations)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// LongestRun returns the highest generation count recorded for a pattern.
// Returns 0 if no runs exist.
func (s *Store) LongestRun(pattern string) (uint64, error) {
	var generations sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(generations) FROM runs WHERE pattern = ?",
		pattern,
	).Scan(&generations)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}

	if !generations.Valid {
		return 0, nil
	}

	return uint64(generations.Int64), nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
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
