package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-complaint-report/internal/model"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// DefaultDSN keeps the run log in memory for the life of the process
const DefaultDSN = "file:report-session?mode=memory&cache=shared"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		spec TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);`,
	`CREATE TABLE IF NOT EXISTS stage_progress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		stage TEXT,
		status TEXT,
		started_at DATETIME,
		ended_at DATETIME,
		records_processed INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS pipeline_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		stage TEXT,
		level TEXT,
		message TEXT,
		details TEXT,
		created_at DATETIME
	);`,
	`CREATE TABLE IF NOT EXISTS export_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		view TEXT,
		type TEXT,
		path TEXT,
		record_count INTEGER,
		success BOOLEAN,
		error TEXT,
		created_at DATETIME
	);`,
}

// Store is the session run log
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open connects to SQLite and creates the run log tables
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}
	// an in-memory database lives only as long as a connection to it
	db.SetMaxOpenConns(1)

	s := New(db, logger)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing database handle
func New(db *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// Migrate creates the tables if they do not exist
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create run log schema: %w", err)
		}
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores a new run
func (s *Store) SaveRun(ctx context.Context, runID string, job model.ReportJobSpec) error {
	specJSON, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode run spec: %w", err)
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, string(specJSON), "running", now, now)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", runID, err)
	}
	return nil
}

// UpdateRunStatus updates a run's status
func (s *Store) UpdateRunStatus(ctx context.Context, runID, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), runID)
	if err != nil {
		return fmt.Errorf("failed to update run %s: %w", runID, err)
	}
	return nil
}

// SaveRunError records an error for a run
func (s *Store) SaveRunError(ctx context.Context, runID string, runErr error) error {
	if runErr == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, runErr.Error(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save run error: %w", err)
	}
	return nil
}

// SaveStageProgress records a stage transition
func (s *Store) SaveStageProgress(ctx context.Context, runID, stage, status string, start time.Time, end *time.Time, processed int64) error {
	var ended interface{}
	if end != nil {
		ended = end.UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO stage_progress (run_id, stage, status, started_at, ended_at, records_processed) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, stage, status, start.UTC(), ended, processed)
	if err != nil {
		return fmt.Errorf("failed to save stage progress: %w", err)
	}
	return nil
}

// SavePipelineLog stores a log line with structured details
func (s *Store) SavePipelineLog(ctx context.Context, runID, stage, level, message string, details map[string]interface{}) error {
	detailsJSON := "{}"
	if len(details) > 0 {
		b, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("failed to encode log details: %w", err)
		}
		detailsJSON = string(b)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pipeline_logs (run_id, stage, level, message, details, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, stage, level, message, detailsJSON, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save pipeline log: %w", err)
	}
	return nil
}

// SaveExportResult stores the outcome of one export
func (s *Store) SaveExportResult(ctx context.Context, runID string, r model.ExportResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO export_results (run_id, view, type, path, record_count, success, error, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, r.View, r.Type, r.Path, r.RecordCount, r.Success, r.Error, r.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("failed to save export result: %w", err)
	}
	if !r.Success {
		s.logger.Debug("Recorded failed export", zap.String("run_id", runID), zap.String("path", r.Path))
	}
	return nil
}

// RunSummary is a row of the runs table
type RunSummary struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListRuns returns all runs, newest first
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetExportResults returns a run's export outcomes in the order they were written
func (s *Store) GetExportResults(ctx context.Context, runID string) ([]model.ExportResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT view, type, path, record_count, success, error, created_at FROM export_results WHERE run_id = ? ORDER BY id`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get export results: %w", err)
	}
	defer rows.Close()

	var results []model.ExportResult
	for rows.Next() {
		var r model.ExportResult
		var errMsg sql.NullString
		if err := rows.Scan(&r.View, &r.Type, &r.Path, &r.RecordCount, &r.Success, &errMsg, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan export result: %w", err)
		}
		r.Error = errMsg.String
		results = append(results, r)
	}
	return results, rows.Err()
}

// CountRunErrors returns how many errors a run recorded
func (s *Store) CountRunErrors(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM run_errors WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count run errors: %w", err)
	}
	return n, nil
}
