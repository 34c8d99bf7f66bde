// Package storage provides SQLite-based persistence for recorded runs.
// A run keeps everything needed to re-simulate it: seed, configuration and
// the per-tick input stream. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultPath is the database location used when none is given.
const DefaultPath = "~/.asteroids/runs.db"

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one recorded simulation.
type Run struct {
	ID         int64
	GameID     string
	Seed       int64
	Config     []byte // YAML the run was simulated with
	Inputs     []core.InputFrame
	Ticks      int
	Games      int    // Games that ended during the run
	BestScore  int    // Best final score across those games
	FinalScore int    // Score when the run stopped
	FinalHash  uint64 // Snapshot hash after the last tick
	CreatedAt  time.Time
}

// RunSummary is a run without its configuration and input stream.
type RunSummary struct {
	ID         int64
	GameID     string
	Seed       int64
	Ticks      int
	Games      int
	BestScore  int
	FinalScore int
	CreatedAt  time.Time
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
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			config BLOB,
			inputs BLOB,
			ticks INTEGER NOT NULL,
			games INTEGER NOT NULL DEFAULT 0,
			best_score INTEGER NOT NULL DEFAULT 0,
			final_score INTEGER NOT NULL DEFAULT 0,
			final_hash INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
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

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if len(run.Inputs) != run.Ticks {
		return 0, fmt.Errorf("storage: run has %d input frames for %d ticks", len(run.Inputs), run.Ticks)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, seed, config, inputs, ticks, games, best_score, final_score, final_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.GameID,
		run.Seed,
		run.Config,
		EncodeInputs(run.Inputs),
		run.Ticks,
		run.Games,
		run.BestScore,
		run.FinalScore,
		int64(run.FinalHash), //#nosec G115 -- stored bit pattern, converted back on read
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

// Run retrieves a run with its configuration and input stream.
// Returns nil without error if no run has that ID.
func (s *Store) Run(id int64) (*Run, error) {
	var (
		run       Run
		inputs    []byte
		hash      int64
		createdAt any
	)

	err := s.db.QueryRow(
		`SELECT id, game_id, seed, config, inputs, ticks, games, best_score, final_score, final_hash, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(
		&run.ID,
		&run.GameID,
		&run.Seed,
		&run.Config,
		&inputs,
		&run.Ticks,
		&run.Games,
		&run.BestScore,
		&run.FinalScore,
		&hash,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	run.Inputs, err = DecodeInputs(inputs)
	if err != nil {
		return nil, fmt.Errorf("storage: run %d: %w", id, err)
	}
	run.FinalHash = uint64(hash) //#nosec G115 -- restores the stored bit pattern
	run.CreatedAt = parseTime(createdAt)

	return &run, nil
}

// Runs retrieves the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, ticks, games, best_score, final_score, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.Ticks, &r.Games, &r.BestScore, &r.FinalScore, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run. Deleting a missing run is not an error.
func (s *Store) DeleteRun(id int64) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}

// parseTime handles the datetime column as either time.Time or string.
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
