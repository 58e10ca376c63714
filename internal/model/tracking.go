package model

import "time"

// RunMetrics represents overall metrics for one report run
type RunMetrics struct {
	RunID            string                  `json:"run_id"`
	StartTime        time.Time               `json:"start_time"`
	EndTime          time.Time               `json:"end_time"`
	Duration         time.Duration           `json:"duration"`
	Status           string                  `json:"status"`
	RowsRead         int64                   `json:"rows_read"`
	RowsKept         int64                   `json:"rows_kept"`
	RowsDropped      int64                   `json:"rows_dropped"`
	Assigned         int64                   `json:"assigned"`
	Unassigned       int64                   `json:"unassigned"`
	UnparseableDates int64                   `json:"unparseable_dates"`
	TierCounts       map[MatchTier]int64     `json:"tier_counts"`
	StageMetrics     map[string]StageMetrics `json:"stage_metrics"`
	Errors           []ErrorDetail           `json:"errors"`
}

// StageMetrics represents metrics for a specific pipeline stage
type StageMetrics struct {
	StageName        string        `json:"stage_name"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	Duration         time.Duration `json:"duration"`
	RecordsProcessed int64         `json:"records_processed"`
	Status           string        `json:"status"` // "running", "completed", "failed"
}

// ErrorDetail represents a detailed error with context
type ErrorDetail struct {
	Stage     string    `json:"stage"`
	ErrorType string    `json:"error_type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Severity  string    `json:"severity"`
}
