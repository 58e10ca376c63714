package pipeline

import (
	"sort"
	"strings"

	"go-complaint-report/internal/lookup"
	"go-complaint-report/internal/model"
	"go-complaint-report/pkg/utils"
)

// CnDSubtype is the subtype reported on its own in the C&D report
const CnDSubtype = "Illegal Dumping of C&D waste"

func isCnD(rec model.ComplaintRecord) bool {
	return strings.Contains(rec.Subtype, CnDSubtype)
}

// rawStatus is the status as uploaded, trimmed
func rawStatus(rec model.ComplaintRecord) string {
	s := strings.TrimSpace(rec.Status)
	if s == "" {
		return "Unknown"
	}
	return s
}

// statusBucket sorts a raw status into closed, open or pending.
// Anything unrecognised is treated as open.
func statusBucket(status string) string {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "close"):
		return "closed"
	case strings.Contains(s, "open"):
		return "open"
	case strings.Contains(s, "pending"):
		return "pending"
	default:
		return "open"
	}
}

// UniqueStatuses returns the distinct raw statuses in records, sorted
func UniqueStatuses(records []model.ComplaintRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		s := rawStatus(r)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// ------------------- Officer Report -------------------

// OfficerStats is one officer's row in the officer and C&D reports
type OfficerStats struct {
	Officer      string
	Supervisor   string
	Zones        []string
	Wards        []string
	Total        int
	Closed       int
	StatusCounts map[string]int
	ClosureRate  float64
}

// OfficerReport builds per-officer statistics for a department. Every officer
// in the department's partition gets a row, even with no complaints.
// C&D complaints are excluded unless the department is C&D Waste, in which
// case only C&D complaints count.
func OfficerReport(table *lookup.Table, records []model.ComplaintRecord, dept model.Department) ([]OfficerStats, []string) {
	cnd := dept == model.DeptCnDWaste
	var relevant []model.ComplaintRecord
	for _, r := range records {
		if isCnD(r) == cnd {
			relevant = append(relevant, r)
		}
	}
	statuses := UniqueStatuses(relevant)

	idx := make(map[string]int)
	var rows []OfficerStats
	zoneSeen := make(map[string]map[string]bool)
	wardSeen := make(map[string]map[string]bool)
	for _, e := range table.Partition(dept) {
		i, ok := idx[e.Officer]
		if !ok {
			i = len(rows)
			idx[e.Officer] = i
			counts := make(map[string]int, len(statuses))
			for _, s := range statuses {
				counts[s] = 0
			}
			rows = append(rows, OfficerStats{
				Officer:      e.Officer,
				Supervisor:   NormalizeSupervisor(e.Supervisor),
				StatusCounts: counts,
			})
			zoneSeen[e.Officer] = make(map[string]bool)
			wardSeen[e.Officer] = make(map[string]bool)
		}
		if !zoneSeen[e.Officer][e.Zone] {
			zoneSeen[e.Officer][e.Zone] = true
			rows[i].Zones = append(rows[i].Zones, e.Zone)
		}
		if !wardSeen[e.Officer][e.Ward] {
			wardSeen[e.Officer][e.Ward] = true
			rows[i].Wards = append(rows[i].Wards, e.Ward)
		}
	}

	for _, r := range relevant {
		i, ok := idx[r.AssignedOfficer]
		if r.AssignedOfficer == "" || !ok {
			continue
		}
		s := rawStatus(r)
		rows[i].Total++
		rows[i].StatusCounts[s]++
		if statusBucket(s) == "closed" {
			rows[i].Closed++
		}
	}

	for i := range rows {
		rows[i].ClosureRate = utils.Percent(rows[i].Closed, rows[i].Total)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows, statuses
}

// ------------------- Supervisor Report -------------------

// SupervisorStats is one supervisor's row in the supervisor report
type SupervisorStats struct {
	Supervisor  string
	Total       int
	Closed      int
	Open        int
	Pending     int
	ClosureRate float64
}

// SupervisorReport builds per-supervisor statistics for a department's
// supervisors. Role codes are normalized, so one person covering several
// wards has a single row.
func SupervisorReport(table *lookup.Table, records []model.ComplaintRecord, dept model.Department) []SupervisorStats {
	idx := make(map[string]int)
	var rows []SupervisorStats
	for _, name := range table.Supervisors(dept) {
		n := NormalizeSupervisor(name)
		if _, ok := idx[n]; ok {
			continue
		}
		idx[n] = len(rows)
		rows = append(rows, SupervisorStats{Supervisor: n})
	}

	for _, r := range records {
		if r.AssignedSupervisor == "" {
			continue
		}
		i, ok := idx[NormalizeSupervisor(r.AssignedSupervisor)]
		if !ok {
			continue
		}
		rows[i].Total++
		switch statusBucket(rawStatus(r)) {
		case "closed":
			rows[i].Closed++
		case "pending":
			rows[i].Pending++
		default:
			rows[i].Open++
		}
	}

	for i := range rows {
		rows[i].ClosureRate = utils.Percent(rows[i].Closed, rows[i].Total)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

// ------------------- Department Summary -------------------

// DepartmentStats summarizes one department
type DepartmentStats struct {
	Department  model.Department
	Total       int
	Closed      int
	Open        int
	Pending     int
	ClosureRate float64
	Officers    int // distinct assigned officers
}

// DepartmentSummary summarizes records per classified department, in report order
func DepartmentSummary(classifier *Classifier, records []model.ComplaintRecord) []DepartmentStats {
	rows := make([]DepartmentStats, len(model.Departments))
	idx := make(map[model.Department]int, len(model.Departments))
	officers := make([]map[string]bool, len(model.Departments))
	for i, d := range model.Departments {
		rows[i].Department = d
		idx[d] = i
		officers[i] = make(map[string]bool)
	}

	for _, r := range records {
		i := idx[classifier.Classify(r.Subtype)]
		rows[i].Total++
		switch statusBucket(rawStatus(r)) {
		case "closed":
			rows[i].Closed++
		case "pending":
			rows[i].Pending++
		default:
			rows[i].Open++
		}
		if r.AssignedOfficer != "" {
			officers[i][r.AssignedOfficer] = true
		}
	}

	for i := range rows {
		rows[i].ClosureRate = utils.Percent(rows[i].Closed, rows[i].Total)
		rows[i].Officers = len(officers[i])
	}
	return rows
}
