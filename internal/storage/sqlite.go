// Package storage provides a SQLite ledger of generation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrRunNotFound is returned when a run ID is not in the ledger.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the ledger.
type Store struct {
	db *sql.DB
}

// RunEntry represents one recorded generation run.
type RunEntry struct {
	ID         int64
	RunID      string
	OutDir     string
	Prefix     string
	FrameCount int
	CreatedAt  time.Time
}

// FrameRecord represents one file written during a run.
type FrameRecord struct {
	Index  int
	Path   string
	Size   int
	Digest string
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

	// Test connection
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
			run_id TEXT NOT NULL UNIQUE,
			out_dir TEXT NOT NULL,
			prefix TEXT NOT NULL,
			frame_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS frames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(run_id),
			frame_index INTEGER NOT NULL,
			path TEXT NOT NULL,
			size INTEGER NOT NULL,
			digest TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_frames_run_id ON frames(run_id);
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

// RecordRun stores a run and its frames in one transaction.
// Returns the generated run ID.
func (s *Store) RecordRun(outDir, prefix string, frames []FrameRecord) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO runs (run_id, out_dir, prefix, frame_count) VALUES (?, ?, ?, ?)",
		runID, outDir, prefix, len(frames),
	); err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	for _, f := range frames {
		if _, err := tx.Exec(
			"INSERT INTO frames (run_id, frame_index, path, size, digest) VALUES (?, ?, ?, ?, ?)",
			runID, f.Index, f.Path, f.Size, f.Digest,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save frame %d: %w", f.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return runID, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, out_dir, prefix, frame_count, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.OutDir, &e.Prefix, &e.FrameCount, &createdAt); err != nil {
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

// Run retrieves a single run by its run ID.
func (s *Store) Run(runID string) (RunEntry, error) {
	var e RunEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, run_id, out_dir, prefix, frame_count, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	).Scan(&e.ID, &e.RunID, &e.OutDir, &e.Prefix, &e.FrameCount, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return RunEntry{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot query run: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// RunFrames retrieves the frames of a run ordered by frame index.
func (s *Store) RunFrames(runID string) ([]FrameRecord, error) {
	rows, err := s.db.Query(
		`SELECT frame_index, path, size, digest
		 FROM frames
		 WHERE run_id = ?
		 ORDER BY frame_index`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	var frames []FrameRecord
	for rows.Next() {
		var f FrameRecord
		if err := rows.Scan(&f.Index, &f.Path, &f.Size, &f.Digest); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return frames, nil
}

// SameOutput reports whether two runs recorded identical frame digests.
func (s *Store) SameOutput(runA, runB string) (bool, error) {
	a, err := s.RunFrames(runA)
	if err != nil {
		return false, err
	}
	b, err := s.RunFrames(runB)
	if err != nil {
		return false, err
	}

	if len(a) != len(b) {
		return false, nil
	}
	for i := range a {
		if a[i].Index != b[i].Index || a[i].Digest != b[i].Digest {
			return false, nil
		}
	}
	return true, nil
}

// parseTime handles both time.Time and string datetime columns.
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
