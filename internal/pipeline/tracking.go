package pipeline

import (
	"context"
	"fmt"
	"time"

	"go-complaint-report/internal/model"

	"go.uber.org/zap"
)

// RunLog records run progress. The store package provides the SQLite implementation.
type RunLog interface {
	SaveRun(ctx context.Context, runID string, job model.ReportJobSpec) error
	UpdateRunStatus(ctx context.Context, runID, status string) error
	SaveStageProgress(ctx context.Context, runID, stage, status string, start time.Time, end *time.Time, processed int64) error
	SavePipelineLog(ctx context.Context, runID, stage, level, message string, details map[string]interface{}) error
	SaveExportResult(ctx context.Context, runID string, result model.ExportResult) error
	SaveRunError(ctx context.Context, runID string, err error) error
}

// Stage names
const (
	StageIngest    = "ingestion"
	StageFilter    = "filter"
	StageResolve   = "resolve"
	StageAggregate = "aggregation"
	StageExport    = "export"
)

// RunTracker collects metrics for one run and mirrors them to the run log.
// Runs are synchronous, so the tracker is not safe for concurrent use.
type RunTracker struct {
	ctx     context.Context
	metrics model.RunMetrics
	runLog  RunLog
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunTracker starts tracking a run. runLog may be nil.
func NewRunTracker(ctx context.Context, runID string, runLog RunLog, logger *zap.Logger, now func() time.Time) *RunTracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &RunTracker{
		ctx: ctx,
		metrics: model.RunMetrics{
			RunID:        runID,
			StartTime:    now(),
			Status:       "running",
			TierCounts:   make(map[model.MatchTier]int64),
			StageMetrics: make(map[string]model.StageMetrics),
			Errors:       make([]model.ErrorDetail, 0),
		},
		runLog: runLog,
		logger: logger.With(zap.String("run_id", runID)),
		now:    now,
	}
}

// StartStage marks the start of a stage
func (t *RunTracker) StartStage(stage string) {
	start := t.now()
	t.metrics.StageMetrics[stage] = model.StageMetrics{StageName: stage, StartTime: start, Status: "running"}
	t.logger.Debug("Stage started", zap.String("stage", stage))
	if t.runLog != nil {
		t.warn(t.runLog.SaveStageProgress(t.ctx, t.metrics.RunID, stage, "started", start, nil, 0))
	}
}

// EndStage marks a stage completed
func (t *RunTracker) EndStage(stage string, processed int64) {
	t.finishStage(stage, "completed", processed)
}

// FailStage marks a stage failed and records the error
func (t *RunTracker) FailStage(stage string, err error) {
	t.finishStage(stage, "failed", 0)
	t.RecordError(stage, "stage_failure", err.Error())
}

func (t *RunTracker) finishStage(stage, status string, processed int64) {
	end := t.now()
	sm := t.metrics.StageMetrics[stage]
	sm.StageName = stage
	if sm.StartTime.IsZero() {
		sm.StartTime = end
	}
	sm.EndTime = end
	sm.Duration = end.Sub(sm.StartTime)
	sm.RecordsProcessed = processed
	sm.Status = status
	t.metrics.StageMetrics[stage] = sm

	t.logger.Info("Stage finished",
		zap.String("stage", stage),
		zap.String("status", status),
		zap.Int64("records", processed),
		zap.Duration("duration", sm.Duration))
	if t.runLog != nil {
		t.warn(t.runLog.SaveStageProgress(t.ctx, t.metrics.RunID, stage, status, sm.StartTime, &end, processed))
		t.warn(t.runLog.SavePipelineLog(t.ctx, t.metrics.RunID, stage, "info", fmt.Sprintf("Stage %s %s", stage, status), map[string]interface{}{
			"records":     processed,
			"duration_ms": sm.Duration.Milliseconds(),
		}))
	}
}

// RecordError records an error with its stage and severity
func (t *RunTracker) RecordError(stage, errorType, message string) {
	detail := model.ErrorDetail{
		Stage:     stage,
		ErrorType: errorType,
		Message:   message,
		Timestamp: t.now(),
		Severity:  determineSeverity(errorType, stage),
	}
	t.metrics.Errors = append(t.metrics.Errors, detail)

	t.logger.Warn("Run error",
		zap.String("stage", stage),
		zap.String("error_type", errorType),
		zap.String("severity", detail.Severity),
		zap.String("message", message))
	if t.runLog != nil {
		t.warn(t.runLog.SaveRunError(t.ctx, t.metrics.RunID, fmt.Errorf("[%s] %s: %s", stage, errorType, message)))
	}
}

// RecordLoad stores the ingest, filter and resolve counters
func (t *RunTracker) RecordLoad(read int, fs FilterStats, records []model.ComplaintRecord) {
	t.metrics.RowsRead = int64(read)
	t.metrics.RowsKept = int64(fs.Kept)
	t.metrics.RowsDropped = int64(fs.Dropped)
	for _, r := range records {
		if r.Assigned() {
			t.metrics.Assigned++
			t.metrics.TierCounts[r.MatchTier]++
		} else {
			t.metrics.Unassigned++
		}
		if !r.HasDate() {
			t.metrics.UnparseableDates++
		}
	}
}

// RecordExport counts an export outcome and stores it in the run log
func (t *RunTracker) RecordExport(result model.ExportResult) {
	if !result.Success {
		t.RecordError(StageExport, "export_failure", result.Error)
	}
	if t.runLog != nil {
		t.warn(t.runLog.SaveExportResult(t.ctx, t.metrics.RunID, result))
	}
}

// Complete marks the run completed
func (t *RunTracker) Complete() {
	t.finish("completed")
	t.logger.Info("Run completed",
		zap.Duration("duration", t.metrics.Duration),
		zap.Int64("rows_read", t.metrics.RowsRead),
		zap.Int64("rows_kept", t.metrics.RowsKept),
		zap.Int64("assigned", t.metrics.Assigned),
		zap.Int64("unassigned", t.metrics.Unassigned))
}

// Fail marks the run failed
func (t *RunTracker) Fail(err error) {
	t.finish("failed")
	t.logger.Error("Run failed", zap.Duration("duration", t.metrics.Duration), zap.Error(err))
}

func (t *RunTracker) finish(status string) {
	end := t.now()
	t.metrics.EndTime = end
	t.metrics.Duration = end.Sub(t.metrics.StartTime)
	t.metrics.Status = status
	if t.runLog != nil {
		t.warn(t.runLog.UpdateRunStatus(t.ctx, t.metrics.RunID, status))
	}
}

// Metrics returns a copy of the run metrics
func (t *RunTracker) Metrics() model.RunMetrics {
	m := t.metrics
	m.TierCounts = make(map[model.MatchTier]int64, len(t.metrics.TierCounts))
	for k, v := range t.metrics.TierCounts {
		m.TierCounts[k] = v
	}
	m.StageMetrics = make(map[string]model.StageMetrics, len(t.metrics.StageMetrics))
	for k, v := range t.metrics.StageMetrics {
		m.StageMetrics[k] = v
	}
	m.Errors = append([]model.ErrorDetail(nil), t.metrics.Errors...)
	return m
}

// warn logs a run log write failure; the run itself continues
func (t *RunTracker) warn(err error) {
	if err != nil {
		t.logger.Warn("Failed to write run log", zap.Error(err))
	}
}

// determineSeverity grades an error by type
func determineSeverity(errorType, stage string) string {
	switch errorType {
	case "parse_failure", "source_unavailable":
		return "critical"
	case "stage_failure":
		if stage == StageIngest {
			return "critical"
		}
		return "high"
	case "export_failure":
		return "medium"
	}
	return "low"
}
