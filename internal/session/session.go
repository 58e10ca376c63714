// Package session holds the in-memory state of one reporting session: the
// loaded complaints, the date-filtered subset and its stats.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go-complaint-report/internal/model"
	"go-complaint-report/internal/pipeline"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoData is returned by views that need a loaded file
var ErrNoData = errors.New("no data available, load a complaint file first")

// Session is single-user state. Every change replaces the record set and
// stats wholesale; nothing is mutated in place.
type Session struct {
	ID string

	pipeline  *pipeline.Pipeline
	runID     string
	data      []model.ComplaintRecord
	filtered  []model.ComplaintRecord
	stats     *model.Stats
	bounds    model.DateRange
	dateRange model.DateRange
	metrics   model.RunMetrics
}

// New creates an empty session
func New(p *pipeline.Pipeline) *Session {
	return &Session{ID: uuid.New().String(), pipeline: p}
}

// Upload loads a complaint source. On failure the previous state is kept.
func (s *Session) Upload(ctx context.Context, source model.Source) error {
	ds, err := s.pipeline.Load(ctx, source)
	if err != nil {
		return err
	}
	s.replace(ds)
	return nil
}

// UploadReader loads complaints from r. On failure the previous state is kept.
func (s *Session) UploadReader(ctx context.Context, name string, r io.Reader) error {
	ds, err := s.pipeline.LoadReader(ctx, model.Source{Type: "csv", URL: name}, r)
	if err != nil {
		return err
	}
	s.replace(ds)
	return nil
}

// replace installs a freshly loaded dataset. The date range is preset to the
// data's bounds while every record, dated or not, stays visible.
func (s *Session) replace(ds *pipeline.Dataset) {
	stats := s.pipeline.Aggregate(ds.Records)
	s.runID = ds.RunID
	s.data = ds.Records
	s.filtered = ds.Records
	s.stats = &stats
	s.bounds = ds.Bounds
	s.dateRange = ds.Bounds
	s.metrics = ds.Metrics
}

// SetDateRange sets the bounds used by the next ApplyDateFilter.
// Empty strings clear a bound.
func (s *Session) SetDateRange(from, to string) error {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(pipeline.DayLayout, d); err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", d, err)
		}
	}
	s.dateRange = model.DateRange{From: from, To: to}
	return nil
}

// ApplyDateFilter recomputes the filtered records and stats for the current range.
// A range missing either bound shows every record.
func (s *Session) ApplyDateFilter() error {
	filtered, err := pipeline.FilterByDate(s.data, s.dateRange, s.pipeline.Location)
	if err != nil {
		return err
	}
	stats := s.pipeline.Aggregate(filtered)
	s.filtered = filtered
	s.stats = &stats
	return nil
}

// SelectMonth narrows the range to one month, e.g. "May 2024", and applies it
func (s *Session) SelectMonth(month string) error {
	dr, err := pipeline.MonthRange(month)
	if err != nil {
		return err
	}
	s.dateRange = dr
	return s.ApplyDateFilter()
}

// ClearDateFilter shows every record again
func (s *Session) ClearDateFilter() error {
	s.dateRange = model.DateRange{}
	return s.ApplyDateFilter()
}

// Loaded reports whether a file has been loaded
func (s *Session) Loaded() bool {
	return s.stats != nil
}

// Data returns every loaded record
func (s *Session) Data() []model.ComplaintRecord { return s.data }

// Filtered returns the records inside the current date range
func (s *Session) Filtered() []model.ComplaintRecord { return s.filtered }

// Stats returns the stats of the filtered records
func (s *Session) Stats() (model.Stats, bool) {
	if s.stats == nil {
		return model.Stats{}, false
	}
	return *s.stats, true
}

// DateRange returns the current date range
func (s *Session) DateRange() model.DateRange { return s.dateRange }

// Bounds returns the earliest and latest registration day of the loaded data
func (s *Session) Bounds() model.DateRange { return s.bounds }

// RunID returns the run that produced the loaded data
func (s *Session) RunID() string { return s.runID }

// Metrics returns the load metrics of the current data
func (s *Session) Metrics() model.RunMetrics { return s.metrics }

// AvailableMonths lists the months present in the loaded data, oldest first
func (s *Session) AvailableMonths() []string {
	return pipeline.AvailableMonths(s.data)
}

// View builds a report view over the filtered records. The mapping view
// works without loaded data.
func (s *Session) View(name string, opts pipeline.ViewOptions) (model.ReportView, error) {
	if !s.Loaded() && name != pipeline.ViewMapping {
		return model.ReportView{}, ErrNoData
	}
	var stats model.Stats
	if s.stats != nil {
		stats = *s.stats
	}
	opts.DateRange = s.dateRange
	return s.pipeline.Builder.Build(name, s.filtered, stats, opts)
}

// Export builds a view and writes it. Failures are reported in the result only.
func (s *Session) Export(ctx context.Context, name, format, file string, opts pipeline.ViewOptions) model.ExportResult {
	view, err := s.View(name, opts)
	if err != nil {
		s.pipeline.Logger.Error("Export failed", zap.String("view", name), zap.Error(err))
		return model.ExportResult{View: name, Type: format, Path: file, Error: err.Error(), Timestamp: time.Now()}
	}
	runID := s.runID
	if runID == "" {
		runID = s.ID
	}
	return s.pipeline.ExportView(ctx, runID, view, format, file)
}

// Run executes a whole job: load the source, apply the date range and write
// every export. Only a load or date range failure is returned as an error.
func (s *Session) Run(ctx context.Context, job model.ReportJobSpec) ([]model.ExportResult, error) {
	if err := s.Upload(ctx, job.Source); err != nil {
		return nil, err
	}
	if job.DateRange.From != "" || job.DateRange.To != "" {
		if err := s.SetDateRange(job.DateRange.From, job.DateRange.To); err != nil {
			return nil, err
		}
		if err := s.ApplyDateFilter(); err != nil {
			return nil, err
		}
	}

	results := make([]model.ExportResult, 0, len(job.Exports))
	for _, exp := range job.Exports {
		opts := pipeline.ViewOptions{Department: job.Department}
		results = append(results, s.Export(ctx, exp.View, exp.Format, exp.File, opts))
	}
	return results, nil
}
