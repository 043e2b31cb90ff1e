// Package persistence archives finished runs in SQLite: what was simulated,
// how it ended, and every fight along the way. The archive is a write-once
// log for the history command, not resumable simulation state.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/ant-mania/internal/engine"
)

// DB wraps a SQLite connection for the run archive.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the archive at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		map_path TEXT NOT NULL,
		ants INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		reason TEXT NOT NULL,
		survivors INTEGER NOT NULL,
		fights INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS fights (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		step INTEGER NOT NULL,
		colony TEXT NOT NULL,
		ants_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_fights_run ON fights(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Run is one archived simulation run.
type Run struct {
	ID         string    `db:"id"`
	MapPath    string    `db:"map_path"`
	Ants       int       `db:"ants"`
	Seed       int64     `db:"seed"`
	Steps      int       `db:"steps"`
	Reason     string    `db:"reason"`
	Survivors  int       `db:"survivors"`
	Fights     int       `db:"fights"`
	DurationMS int64     `db:"duration_ms"`
	CreatedAt  time.Time `db:"created_at"`
}

// NewRunID returns a fresh archive run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// SaveRun writes one finished run and its fight log in a single transaction.
func (db *DB) SaveRun(run Run, fights []engine.Fight) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, map_path, ants, seed, steps, reason, survivors, fights, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.MapPath, run.Ants, run.Seed, run.Steps, run.Reason,
		run.Survivors, run.Fights, run.DurationMS, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	if len(fights) > 0 {
		stmt, err := tx.Preparex(
			"INSERT INTO fights (run_id, step, colony, ants_json) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, f := range fights {
			antsJSON, _ := json.Marshal(f.Ants)
			if _, err := stmt.Exec(run.ID, f.Step, f.Colony, string(antsJSON)); err != nil {
				return fmt.Errorf("insert fight at %s: %w", f.Colony, err)
			}
		}
	}

	return tx.Commit()
}

// RecentRuns returns the most recently archived runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT * FROM runs ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	return runs, err
}

// GetRun returns one archived run by ID.
func (db *DB) GetRun(id string) (Run, error) {
	var run Run
	err := db.conn.Get(&run, "SELECT * FROM runs WHERE id = ?", id)
	return run, err
}

// FightsForRun returns one run's fight log in the order it happened.
func (db *DB) FightsForRun(runID string) ([]engine.Fight, error) {
	var rows []struct {
		Step     int    `db:"step"`
		Colony   string `db:"colony"`
		AntsJSON string `db:"ants_json"`
	}
	err := db.conn.Select(&rows,
		"SELECT step, colony, ants_json FROM fights WHERE run_id = ? ORDER BY id", runID)
	if err != nil {
		return nil, err
	}

	fights := make([]engine.Fight, 0, len(rows))
	for _, r := range rows {
		f := engine.Fight{Step: r.Step, Colony: r.Colony}
		if err := json.Unmarshal([]byte(r.AntsJSON), &f.Ants); err != nil {
			return nil, fmt.Errorf("fight at %s: %w", r.Colony, err)
		}
		fights = append(fights, f)
	}
	return fights, nil
}
