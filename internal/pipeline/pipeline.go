package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go-complaint-report/internal/lookup"
	"go-complaint-report/internal/model"
	"go-complaint-report/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pipeline loads complaint files and exports report views. It holds no
// per-file state; the session owns the loaded data.
type Pipeline struct {
	Filter   *Filter
	Resolver *Resolver
	Builder  *ReportBuilder
	Exporter *Exporter
	RunLog   RunLog // optional
	Output   *utils.OutputManager
	Logger   *zap.Logger
	Location *time.Location
	Now      func() time.Time
}

// New wires a pipeline from its lookup table and filter rules
func New(table *lookup.Table, rules FilterRules, runLog RunLog, output *utils.OutputManager, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	classifier := DefaultClassifier()
	filter := NewFilter(rules)
	return &Pipeline{
		Filter:   filter,
		Resolver: NewResolver(table, classifier),
		Builder:  &ReportBuilder{Table: table, Classifier: classifier, Filter: filter},
		Exporter: NewExporter(logger),
		RunLog:   runLog,
		Output:   output,
		Logger:   logger,
		Location: time.Local,
		Now:      time.Now,
	}
}

// Dataset is the result of loading one complaint file
type Dataset struct {
	RunID   string
	Records []model.ComplaintRecord // filtered and resolved
	Bounds  model.DateRange         // earliest and latest registration day
	Metrics model.RunMetrics
}

// Load reads, filters and resolves a complaint source in one synchronous
// pass. A parse failure returns an error and no partial data.
func (p *Pipeline) Load(ctx context.Context, source model.Source) (*Dataset, error) {
	rc, err := OpenSource(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return p.LoadReader(ctx, source, rc)
}

// LoadReader is Load for an already open reader
func (p *Pipeline) LoadReader(ctx context.Context, source model.Source, r io.Reader) (ds *Dataset, err error) {
	runID := uuid.New().String()
	tracker := NewRunTracker(ctx, runID, p.RunLog, p.Logger, p.now)
	if p.RunLog != nil {
		tracker.warn(p.RunLog.SaveRun(ctx, runID, model.ReportJobSpec{Source: source}))
	}
	defer func() {
		if err != nil {
			tracker.Fail(err)
		}
	}()

	p.Logger.Info("Loading complaint file", zap.String("run_id", runID), zap.String("source", source.URL))

	tracker.StartStage(StageIngest)
	raw, err := ParseCSV(ctx, r, p.Location)
	if err != nil {
		tracker.FailStage(StageIngest, err)
		return nil, fmt.Errorf("failed to parse %s: %w", source.URL, err)
	}
	tracker.EndStage(StageIngest, int64(len(raw)))

	tracker.StartStage(StageFilter)
	kept, fs := p.Filter.ApplyWithStats(raw)
	tracker.EndStage(StageFilter, int64(len(kept)))
	p.Logger.Debug("Filter summary",
		zap.Int("read", fs.Read),
		zap.Int("kept", fs.Kept),
		zap.Int("cleaned", fs.Cleaned),
		zap.Int("subtype_rejected", fs.BadType),
		zap.Int("name_rejected", fs.BadName))

	tracker.StartStage(StageResolve)
	resolved := p.Resolver.ResolveAll(kept)
	tracker.RecordLoad(len(raw), fs, resolved)
	tracker.EndStage(StageResolve, int64(len(resolved)))

	tracker.Complete()
	return &Dataset{
		RunID:   runID,
		Records: resolved,
		Bounds:  BoundsRange(resolved),
		Metrics: tracker.Metrics(),
	}, nil
}

// Aggregate computes stats for records at the pipeline's clock
func (p *Pipeline) Aggregate(records []model.ComplaintRecord) model.Stats {
	return Aggregate(records, p.now())
}

// ExportView writes a view under the run's output directory and records the
// outcome in the run log. file may be empty to derive a name from the view.
func (p *Pipeline) ExportView(ctx context.Context, runID string, view model.ReportView, format, file string) model.ExportResult {
	tracker := NewRunTracker(ctx, runID, p.RunLog, p.Logger, p.now)
	tracker.StartStage(StageExport)

	if f, err := NormalizeFormat(format); err == nil {
		format = f
	}
	if file == "" {
		file = fmt.Sprintf("%s_%s.%s", view.ID, p.now().Format("2006-01-02"), format)
	}

	path := file
	if p.Output != nil && !filepath.IsAbs(file) {
		var err error
		path, err = p.Output.GetOutputFilePath(runID, file)
		if err != nil {
			result := model.ExportResult{View: view.ID, Type: format, Path: file, Error: err.Error(), Timestamp: p.now()}
			p.Logger.Error("Export failed", zap.String("view", view.ID), zap.Error(err))
			tracker.RecordExport(result)
			tracker.EndStage(StageExport, 0)
			return result
		}
	}

	result := p.Exporter.Export(view, format, path)
	tracker.RecordExport(result)
	tracker.EndStage(StageExport, int64(result.RecordCount))
	return result
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
