package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"go-complaint-report/internal/config"
	"go-complaint-report/internal/lookup"
	"go-complaint-report/internal/model"
	"go-complaint-report/internal/pipeline"
	"go-complaint-report/internal/session"
	"go-complaint-report/internal/store"
	"go-complaint-report/pkg/logger"
	"go-complaint-report/pkg/utils"

	"go.uber.org/zap"
)

type options struct {
	configPath string
	input      string
	from       string
	to         string
	month      string
	department string
	view       string
	format     string
	out        string
	search     string
	sortBy     string
	desc       bool
	listMonths bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "", "config file (default config.yaml or $CONFIG_PATH)")
	flag.StringVar(&o.input, "input", "", "complaint CSV: file path, - for stdin, or http(s) URL")
	flag.StringVar(&o.from, "from", "", "start date YYYY-MM-DD")
	flag.StringVar(&o.to, "to", "", "end date YYYY-MM-DD")
	flag.StringVar(&o.month, "month", "", `restrict to one month, e.g. "May 2024"`)
	flag.StringVar(&o.department, "department", "", "department for officer and supervisor views: sanitation, civil, cnd")
	flag.StringVar(&o.view, "view", pipeline.ViewDashboard, "report view: "+strings.Join(pipeline.ViewNames, ", "))
	flag.StringVar(&o.format, "format", "", "export format: "+strings.Join(pipeline.Formats, ", ")+" (print only when empty)")
	flag.StringVar(&o.out, "out", "", "export file name; relative names go under the run's output directory")
	flag.StringVar(&o.search, "search", "", "filter the mapping view by officer, supervisor, ward or zone")
	flag.StringVar(&o.sortBy, "sort", "", "column to sort the view by")
	flag.BoolVar(&o.desc, "desc", false, "sort descending")
	flag.BoolVar(&o.listMonths, "months", false, "list the months present in the input and exit")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, "complaint-report")
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	runLog, err := store.Open(ctx, cfg.DBDSN, log)
	if err != nil {
		return err
	}
	defer runLog.Close()

	table := lookup.Default()
	if cfg.MappingPath != "" {
		if table, err = lookup.LoadYAML(cfg.MappingPath); err != nil {
			return err
		}
	}
	log.Info("Mapping table ready", zap.Int("entries", table.Len()), zap.String("path", cfg.MappingPath))

	p := pipeline.New(table, cfg.FilterRules(), runLog, utils.NewOutputManager(cfg.OutputDir), log)
	p.Location = cfg.Location
	p.Exporter.Scale = cfg.ImageScale
	p.Exporter.JPEGQuality = cfg.JPEGQuality
	s := session.New(p)

	viewOpts := pipeline.ViewOptions{Search: opts.search, SortBy: opts.sortBy, Descending: opts.desc}
	if opts.department != "" {
		dept, ok := model.ParseDepartment(opts.department)
		if !ok {
			return fmt.Errorf("unknown department %q", opts.department)
		}
		viewOpts.Department = dept
	}

	if opts.input != "" {
		if err := s.Upload(ctx, model.Source{Type: "csv", URL: opts.input}); err != nil {
			return err
		}
		if err := applyDates(s, opts); err != nil {
			return err
		}
	}

	if opts.listMonths {
		for _, m := range s.AvailableMonths() {
			fmt.Fprintln(stdout, m)
		}
		return nil
	}

	view, err := s.View(opts.view, viewOpts)
	if err != nil {
		return err
	}
	printView(stdout, view)

	if opts.format == "" {
		return nil
	}
	result := s.Export(ctx, opts.view, opts.format, opts.out, viewOpts)
	if !result.Success {
		return fmt.Errorf("export failed: %s", result.Error)
	}
	fmt.Fprintf(stdout, "\nExported %d rows to %s\n", result.RecordCount, result.Path)
	return reportRun(ctx, runLog, s, stdout)
}

func applyDates(s *session.Session, opts options) error {
	switch {
	case opts.month != "":
		return s.SelectMonth(opts.month)
	case opts.from != "" || opts.to != "":
		if err := s.SetDateRange(opts.from, opts.to); err != nil {
			return err
		}
		return s.ApplyDateFilter()
	}
	return nil
}

// printView writes a view as an aligned text table
func printView(w io.Writer, view model.ReportView) {
	fmt.Fprintln(w, view.Title)
	if view.Subtitle != "" {
		fmt.Fprintln(w, view.Subtitle)
	}
	fmt.Fprintln(w)

	headers := model.Headers(view.Rows)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range view.Rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := row.Get(h); ok {
				cells[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

// reportRun prints what the run log holds for the current run
func reportRun(ctx context.Context, runLog *store.Store, s *session.Session, w io.Writer) error {
	runID := s.RunID()
	if runID == "" {
		runID = s.ID
	}
	exports, err := runLog.GetExportResults(ctx, runID)
	if err != nil {
		return err
	}
	errCount, err := runLog.CountRunErrors(ctx, runID)
	if err != nil {
		return err
	}
	m := s.Metrics()
	fmt.Fprintf(w, "Run %s: %d rows read, %d kept, %d unassigned, %d exports, %d errors\n",
		runID, m.RowsRead, m.RowsKept, m.Unassigned, len(exports), errCount)
	return nil
}
