package report

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/tspcompare/experiment"
)

const resultsSchema = `
	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL,
		num_nodes INTEGER NOT NULL,
		trial INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		heuristic_cost REAL NOT NULL,
		exact_cost REAL NOT NULL,
		gap REAL NOT NULL,
		cost_equal INTEGER NOT NULL,
		segments INTEGER NOT NULL,
		heuristic_ns INTEGER NOT NULL,
		exact_ns INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (run_id, num_nodes, trial)
	);
	CREATE INDEX IF NOT EXISTS idx_results_nodes ON results (num_nodes);
`

// SQLiteSink stores records in the results table of a SQLite database.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err = db.Exec(resultsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Close releases the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// Write inserts records in one transaction.
func (s *SQLiteSink) Write(records []experiment.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO results (run_id, num_nodes, trial, seed, heuristic_cost, exact_cost, gap,
			cost_equal, segments, heuristic_ns, exact_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range records {
		if _, err = stmt.Exec(
			r.RunID, r.Nodes, r.Trial, r.Seed,
			r.HeuristicCost, r.ExactCost, r.Gap,
			r.CostEqual, r.Segments,
			int64(r.HeuristicTime), int64(r.ExactTime),
			now,
		); err != nil {
			return fmt.Errorf("insert n=%d trial=%d: %w", r.Nodes, r.Trial, err)
		}
	}

	return tx.Commit()
}

// Records returns the records of one run ordered by group and trial.
func (s *SQLiteSink) Records(runID string) ([]experiment.Record, error) {
	rows, err := s.db.Query(`
		SELECT run_id, num_nodes, trial, seed, heuristic_cost, exact_cost, gap,
			cost_equal, segments, heuristic_ns, exact_ns
		FROM results WHERE run_id = ? ORDER BY num_nodes, trial`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var (
		out    []experiment.Record
		hn, en int64
	)
	for rows.Next() {
		var r experiment.Record
		if err = rows.Scan(&r.RunID, &r.Nodes, &r.Trial, &r.Seed,
			&r.HeuristicCost, &r.ExactCost, &r.Gap,
			&r.CostEqual, &r.Segments, &hn, &en); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.HeuristicTime = time.Duration(hn)
		r.ExactTime = time.Duration(en)
		out = append(out, r)
	}

	return out, rows.Err()
}

// Runs lists the distinct run ids in the database.
func (s *SQLiteSink) Runs() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT run_id FROM results ORDER BY run_id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, rows.Err()
}
