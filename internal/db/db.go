// Package db persists agreement analysis runs to a local sqlite file so
// successive runs over a dataset can be compared.
package db

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/agreement.report/internal/kappa"
)

type DB struct {
	*sql.DB
}

func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS analysis_runs (
			run_id            TEXT PRIMARY KEY,
			source            TEXT,
			questions         BIGINT,
			mean_kappa        DOUBLE,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS question_results (
			run_id            TEXT,
			question          TEXT,
			kappa             DOUBLE,
			n_responses       BIGINT,
			count_a           BIGINT,
			count_b           BIGINT,
			count_c           BIGINT,
			agreement_level   TEXT,
			FOREIGN KEY(run_id) REFERENCES analysis_runs(run_id)
		);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// Run describes one stored analysis run.
type Run struct {
	RunID     string
	Source    string
	Questions int
	MeanKappa float64
	Timestamp string
}

// RecordRun stores a complete analysis run in one transaction and
// returns its generated run ID. Undefined kappa values (NaN) are stored
// as NULL; the mean likewise.
func (db *DB) RecordRun(source string, results []kappa.Result, summary kappa.Summary) (string, error) {
	runID := uuid.New().String()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO analysis_runs (run_id, source, questions, mean_kappa) VALUES (?, ?, ?, ?)`,
		runID, source, summary.TotalQuestions, nullableKappa(summary.MeanKappa),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %v", err)
	}

	for _, r := range results {
		_, err = tx.Exec(
			`INSERT INTO question_results (run_id, question, kappa, n_responses, count_a, count_b, count_c, agreement_level)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.Question, nullableKappa(r.Kappa), r.NResponses, r.CountA, r.CountB, r.CountC, r.Level.String(),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert result for question %q: %v", r.Question, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %v", err)
	}
	return runID, nil
}

// ListRuns returns stored runs, most recent first.
func (db *DB) ListRuns() ([]Run, error) {
	rows, err := db.Query(
		`SELECT run_id, source, questions, mean_kappa, timestamp FROM analysis_runs ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %v", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var mean sql.NullFloat64
		if err := rows.Scan(&r.RunID, &r.Source, &r.Questions, &mean, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan run: %v", err)
		}
		r.MeanKappa = kappaValue(mean)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunResults reads back the per-question rows of a stored run, in
// insertion order. NULL kappa values come back as NaN.
func (db *DB) RunResults(runID string) ([]kappa.Result, error) {
	rows, err := db.Query(
		`SELECT question, kappa, n_responses, count_a, count_b, count_c FROM question_results WHERE run_id = ? ORDER BY rowid`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %v", err)
	}
	defer rows.Close()

	var results []kappa.Result
	for rows.Next() {
		var r kappa.Result
		var k sql.NullFloat64
		if err := rows.Scan(&r.Question, &k, &r.NResponses, &r.CountA, &r.CountB, &r.CountC); err != nil {
			return nil, fmt.Errorf("failed to scan result: %v", err)
		}
		r.Kappa = kappaValue(k)
		r.Level = kappa.Interpret(r.Kappa)
		results = append(results, r)
	}
	return results, rows.Err()
}

func nullableKappa(k float64) sql.NullFloat64 {
	if math.IsNaN(k) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: k, Valid: true}
}

func kappaValue(k sql.NullFloat64) float64 {
	if !k.Valid {
		return math.NaN()
	}
	return k.Float64
}
