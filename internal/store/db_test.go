package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go-complaint-report/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, zap.NewNop()), mock
}

func TestMigrateCreatesTables(t *testing.T) {
	s, mock := setupStore(t)
	for range schema {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS")).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFailure(t *testing.T) {
	s, mock := setupStore(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS runs")).WillReturnError(errors.New("disk I/O error"))

	err := s.Migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run log schema")
}

func TestSaveRun(t *testing.T) {
	s, mock := setupStore(t)
	job := model.ReportJobSpec{Source: model.Source{Type: "csv", URL: "complaints.csv"}}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO runs")).
		WithArgs("run-1", sqlmock.AnyArg(), "running", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SaveRun(context.Background(), "run-1", job))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRunStatus(t *testing.T) {
	s, mock := setupStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE runs SET status = ?")).
		WithArgs("completed", sqlmock.AnyArg(), "run-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateRunStatus(context.Background(), "run-1", "completed"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRunErrorIgnoresNil(t *testing.T) {
	s, mock := setupStore(t)
	require.NoError(t, s.SaveRunError(context.Background(), "run-1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRunError(t *testing.T) {
	s, mock := setupStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO run_errors")).
		WithArgs("run-1", "[ingestion] parse_failure: bad quote", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.SaveRunError(context.Background(), "run-1", errors.New("[ingestion] parse_failure: bad quote"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveStageProgress(t *testing.T) {
	s, mock := setupStore(t)
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Second)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stage_progress")).
		WithArgs("run-1", "filter", "started", start, nil, int64(0)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stage_progress")).
		WithArgs("run-1", "filter", "completed", start, end, int64(12)).
		WillReturnResult(sqlmock.NewResult(2, 1))

	ctx := context.Background()
	require.NoError(t, s.SaveStageProgress(ctx, "run-1", "filter", "started", start, nil, 0))
	require.NoError(t, s.SaveStageProgress(ctx, "run-1", "filter", "completed", start, &end, 12))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePipelineLog(t *testing.T) {
	s, mock := setupStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pipeline_logs")).
		WithArgs("run-1", "resolve", "info", "Stage resolve completed", `{"records":2}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.SavePipelineLog(context.Background(), "run-1", "resolve", "info", "Stage resolve completed", map[string]interface{}{"records": 2})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveExportResult(t *testing.T) {
	s, mock := setupStore(t)
	res := model.ExportResult{View: "officers", Type: "xlsx", Path: "out/officers.xlsx", RecordCount: 4, Success: false, Error: "disk full", Timestamp: time.Now()}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO export_results")).
		WithArgs("run-1", "officers", "xlsx", "out/officers.xlsx", 4, false, "disk full", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SaveExportResult(context.Background(), "run-1", res))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveExportResultError(t *testing.T) {
	s, mock := setupStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO export_results")).WillReturnError(errors.New("database is locked"))

	err := s.SaveExportResult(context.Background(), "run-1", model.ExportResult{View: "cnd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestListRuns(t *testing.T) {
	s, mock := setupStore(t)
	t1 := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	t0 := t1.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "status", "created_at", "updated_at"}).
		AddRow("run-2", "completed", t1, t1).
		AddRow("run-1", "failed", t0, t0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, status, created_at, updated_at FROM runs")).WillReturnRows(rows)

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Equal(t, "failed", runs[1].Status)
	assert.Equal(t, t0, runs[1].CreatedAt)
}

func TestGetExportResults(t *testing.T) {
	s, mock := setupStore(t)
	ts := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"view", "type", "path", "record_count", "success", "error", "created_at"}).
		AddRow("officers", "xlsx", "out/a.xlsx", 4, true, nil, ts).
		AddRow("dashboard", "pdf", "out/b.pdf", 0, false, "render failed", ts)
	mock.ExpectQuery(regexp.QuoteMeta("FROM export_results WHERE run_id = ?")).
		WithArgs("run-1").
		WillReturnRows(rows)

	results, err := s.GetExportResults(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, "render failed", results[1].Error)
	assert.Equal(t, "pdf", results[1].Type)
}

func TestCountRunErrors(t *testing.T) {
	s, mock := setupStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM run_errors")).
		WithArgs("run-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := s.CountRunErrors(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
