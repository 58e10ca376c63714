package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"go-complaint-report/internal/lookup"
	"go-complaint-report/internal/model"
	"go-complaint-report/pkg/utils"
)

// Report view identifiers
const (
	ViewDashboard    = "dashboard"
	ViewOfficers     = "officers"
	ViewSupervisors  = "supervisors"
	ViewDepartments  = "departments"
	ViewCnD          = "cnd"
	ViewComplainants = "complainants"
	ViewSubtypes     = "subtypes"
	ViewMapping      = "mapping"
)

// ViewNames lists every report view
var ViewNames = []string{
	ViewDashboard, ViewOfficers, ViewSupervisors, ViewDepartments,
	ViewCnD, ViewComplainants, ViewSubtypes, ViewMapping,
}

// Pending age labels, youngest first
var ageLabels = []string{"< 24 Hours", "1-3 Days", "3-7 Days", "> 7 Days"}

// ViewOptions selects and orders a report view
type ViewOptions struct {
	Department model.Department // officers and supervisors views; defaults to Civil / Sanitation
	Search     string           // mapping view
	SortBy     string           // column to sort rows by
	Descending bool
	TopN       int // dashboard rankings; 0 means 5
	DateRange  model.DateRange
}

// ReportBuilder turns a record set into named report views
type ReportBuilder struct {
	Table      *lookup.Table
	Classifier *Classifier
	Filter     *Filter
}

// Build renders one view. records should already be resolved and date
// filtered; stats must be the aggregate of the same records.
func (b *ReportBuilder) Build(view string, records []model.ComplaintRecord, stats model.Stats, opts ViewOptions) (model.ReportView, error) {
	var rv model.ReportView
	switch view {
	case ViewDashboard:
		rv = b.dashboard(stats, opts)
	case ViewOfficers:
		dept := opts.Department
		if dept == "" || dept == model.DeptCnDWaste {
			dept = model.DeptCivil
		}
		rv = b.officers(view, fmt.Sprintf("Officer Report (%s)", dept), records, dept)
	case ViewCnD:
		rv = b.officers(view, "C&D Waste Performance Report", records, model.DeptCnDWaste)
	case ViewSupervisors:
		rv = b.supervisors(records, opts)
	case ViewDepartments:
		rv = b.departments(records)
	case ViewComplainants:
		rv = trendView(view, "Complainant Trends", "Complainant Name", ComplainantTrends(b.Filter, records))
	case ViewSubtypes:
		rv = trendView(view, "Complaint Subtype Trends", "Complaint Subtype", SubtypeTrends(b.Filter, records))
	case ViewMapping:
		rv = b.mapping(opts.Search)
	default:
		return model.ReportView{}, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}

	rv.Subtitle = rangeSubtitle(opts.DateRange)
	if opts.SortBy != "" {
		SortRows(rv.Rows, opts.SortBy, opts.Descending)
	}
	return rv, nil
}

func rangeSubtitle(dr model.DateRange) string {
	if dr.From == "" || dr.To == "" {
		return "All dates"
	}
	return fmt.Sprintf("From %s to %s", dr.From, dr.To)
}

func (b *ReportBuilder) dashboard(stats model.Stats, opts ViewOptions) model.ReportView {
	n := opts.TopN
	if n <= 0 {
		n = 5
	}
	var rows []model.ReportRow
	add := func(section, label string, value interface{}) {
		row := model.ReportRow{}
		row.Set("Section", section).Set("Label", label).Set("Value", value)
		rows = append(rows, row)
	}

	add("Summary", "Total Complaints", stats.Total)
	add("Summary", "Open", stats.Open)
	add("Summary", "Closed", stats.Closed)
	add("Summary", "Closure Rate", utils.FormatPercent(utils.Percent(stats.Closed, stats.Total), 1))

	ages := []int{
		stats.PendingByAge.LessThan24h, stats.PendingByAge.OneToThreeDays,
		stats.PendingByAge.ThreeToSevenDays, stats.PendingByAge.MoreThanSevenDays,
	}
	var chart []model.ChartBar
	for i, label := range ageLabels {
		add("Pending Age", label, ages[i])
		chart = append(chart, model.ChartBar{Label: label, Value: ages[i]})
	}

	for _, kv := range sortedCounts(stats.PendingByZone) {
		add("Pending by Zone", kv.Label, kv.Value)
	}
	for _, kv := range sortedCounts(stats.Zones) {
		add("Zone", kv.Label, kv.Value)
	}
	for _, kv := range sortedCounts(stats.StatusDistribution) {
		add("Status", kv.Label, kv.Value)
	}
	for _, sr := range TopSupervisors(stats, n) {
		add("Top Supervisors", sr.Name, utils.FormatPercent(sr.ClosureRate, 1))
	}
	for _, sr := range BottomSupervisors(stats, n) {
		add("Needs Attention", sr.Name, utils.FormatPercent(sr.ClosureRate, 1))
	}

	return model.ReportView{ID: ViewDashboard, Title: "Complaint Dashboard", Rows: rows, Chart: chart}
}

// sortedCounts orders a histogram by count descending, then label
func sortedCounts(m map[string]int) []model.ChartBar {
	bars := make([]model.ChartBar, 0, len(m))
	for k, v := range m {
		bars = append(bars, model.ChartBar{Label: k, Value: v})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Value != bars[j].Value {
			return bars[i].Value > bars[j].Value
		}
		return bars[i].Label < bars[j].Label
	})
	return bars
}

func (b *ReportBuilder) officers(id, title string, records []model.ComplaintRecord, dept model.Department) model.ReportView {
	stats, statuses := OfficerReport(b.Table, records, dept)
	rows := make([]model.ReportRow, 0, len(stats))
	var chart []model.ChartBar
	for i, o := range stats {
		row := model.ReportRow{}
		row.Set("Sr No", i+1).
			Set("Officer Name", o.Officer).
			Set("Supervisor", o.Supervisor).
			Set("Zones", strings.Join(o.Zones, ", ")).
			Set("Wards", strings.Join(o.Wards, ", ")).
			Set("Total Complaints", o.Total).
			Set("Closed", o.Closed)
		for _, s := range statuses {
			col := s
			if _, taken := row.Get(col); taken {
				col = "Status " + s
			}
			row.Set(col, o.StatusCounts[s])
		}
		row.Set("Closure Rate", utils.FormatPercent(o.ClosureRate, 2))
		rows = append(rows, row)
		if o.Total > 0 {
			chart = append(chart, model.ChartBar{Label: o.Officer, Value: o.Total})
		}
	}
	return model.ReportView{ID: id, Title: title, Rows: rows, Chart: chart}
}

func (b *ReportBuilder) supervisors(records []model.ComplaintRecord, opts ViewOptions) model.ReportView {
	dept := opts.Department
	if dept == "" {
		dept = model.DeptSanitation
	}
	stats := SupervisorReport(b.Table, records, dept)
	rows := make([]model.ReportRow, 0, len(stats))
	var chart []model.ChartBar
	for i, s := range stats {
		row := model.ReportRow{}
		row.Set("Sr No", i+1).
			Set("Supervisor Name", s.Supervisor).
			Set("Total Complaints", s.Total).
			Set("Closed", s.Closed).
			Set("Open", s.Open).
			Set("Pending", s.Pending).
			Set("Closure Rate", utils.FormatPercent(s.ClosureRate, 1))
		rows = append(rows, row)
		if s.Total > 0 {
			chart = append(chart, model.ChartBar{Label: s.Supervisor, Value: s.Total})
		}
	}
	title := fmt.Sprintf("%s Supervisor Performance Report", dept.Partition())
	return model.ReportView{ID: ViewSupervisors, Title: title, Rows: rows, Chart: chart}
}

func (b *ReportBuilder) departments(records []model.ComplaintRecord) model.ReportView {
	stats := DepartmentSummary(b.Classifier, records)
	rows := make([]model.ReportRow, 0, len(stats))
	chart := make([]model.ChartBar, 0, len(stats))
	for _, d := range stats {
		row := model.ReportRow{}
		row.Set("Department", string(d.Department)).
			Set("Total Complaints", d.Total).
			Set("Closed", d.Closed).
			Set("Open", d.Open).
			Set("Pending", d.Pending).
			Set("Closure Rate", utils.FormatPercent(d.ClosureRate, 1)).
			Set("Officers", d.Officers)
		rows = append(rows, row)
		chart = append(chart, model.ChartBar{Label: string(d.Department), Value: d.Total})
	}
	return model.ReportView{ID: ViewDepartments, Title: "Department Report", Rows: rows, Chart: chart}
}

func trendView(id, title, keyColumn string, tr TrendReport) model.ReportView {
	rows := make([]model.ReportRow, 0, len(tr.Trends))
	chart := make([]model.ChartBar, 0, len(tr.Trends))
	for i, t := range tr.Trends {
		row := model.ReportRow{}
		row.Set("Sr. No", i+1).Set(keyColumn, t.Key).Set("Total Complaints", t.Total)
		for _, m := range tr.Months {
			row.Set(m, t.Monthly[m])
		}
		rows = append(rows, row)
		chart = append(chart, model.ChartBar{Label: t.Key, Value: t.Total})
	}
	return model.ReportView{ID: id, Title: title, Rows: rows, Chart: chart}
}

func (b *ReportBuilder) mapping(search string) model.ReportView {
	entries := b.Table.Search(search)
	rows := make([]model.ReportRow, 0, len(entries))
	for _, e := range entries {
		row := model.ReportRow{}
		row.Set("Zone", e.Zone).
			Set("Ward", e.Ward).
			Set("Department", string(e.Department)).
			Set("Supervisor", e.Supervisor).
			Set("Officer", e.Officer)
		rows = append(rows, row)
	}
	title := "Officer Mapping"
	if search != "" {
		title = fmt.Sprintf("Officer Mapping (search: %s)", search)
	}
	return model.ReportView{ID: ViewMapping, Title: title, Rows: rows}
}

// SortRows orders rows by a column. Numeric values, including percentages,
// compare as numbers; other values compare as text. Missing values sort last.
// Serial number columns are renumbered afterwards.
func SortRows(rows []model.ReportRow, column string, descending bool) {
	less := func(a, b interface{}) bool {
		fa, okA := utils.Numeric(a)
		fb, okB := utils.Numeric(b)
		if okA && okB {
			return fa < fb
		}
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, okA := rows[i].Get(column)
		b, okB := rows[j].Get(column)
		if !okA || !okB {
			return okA && !okB
		}
		if descending {
			return less(b, a)
		}
		return less(a, b)
	})
	for i := range rows {
		for _, serial := range []string{"Sr No", "Sr. No"} {
			if _, ok := rows[i].Get(serial); ok {
				rows[i].Set(serial, i+1)
			}
		}
	}
}
