package pipeline

import (
	"testing"

	"go-complaint-report/internal/lookup"
	"go-complaint-report/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvedRecords(t *testing.T) []model.ComplaintRecord {
	t.Helper()
	r := newTestResolver()
	return r.ResolveAll([]model.ComplaintRecord{
		{ID: "1", Zone: "Mathura", Ward: "02-Ambedkar Nagar", Subtype: "Potholes", Status: "Close"},
		{ID: "2", Zone: "Mathura", Ward: "04-Ishapur Yamunapar", Subtype: "Potholes", Status: "Open"},
		{ID: "3", Zone: "Mathura", Ward: "02-Ambedkar Nagar", Subtype: "Illegal Dumping of C&D waste", Status: "Pending"},
		{ID: "4", Zone: "Mathura", Ward: "02-Ambedkar Nagar", Subtype: "Burning of Garbage", Status: "Closed"},
		{ID: "5", Zone: "Mathura", Ward: "Qqqq", Subtype: "Potholes", Status: "Open"},
	})
}

func findOfficer(t *testing.T, rows []OfficerStats, name string) OfficerStats {
	t.Helper()
	for _, r := range rows {
		if r.Officer == name {
			return r
		}
	}
	require.Failf(t, "officer not found", "%s", name)
	return OfficerStats{}
}

func TestOfficerReportCivil(t *testing.T) {
	tbl := lookup.Default()
	rows, statuses := OfficerReport(tbl, resolvedRecords(t), model.DeptCivil)

	assert.Len(t, rows, len(tbl.Officers(model.DeptCivil)))
	assert.Equal(t, "Shri Umesh Kumar", rows[0].Officer)
	// the C&D complaint is left out of the Civil report
	assert.Equal(t, []string{"Close", "Closed", "Open"}, statuses)

	umesh := findOfficer(t, rows, "Shri Umesh Kumar")
	assert.Equal(t, 2, umesh.Total)
	assert.Equal(t, 1, umesh.Closed)
	assert.Equal(t, 1, umesh.StatusCounts["Open"])
	assert.InDelta(t, 50.0, umesh.ClosureRate, 0.001)
	assert.Equal(t, "Amrish NS", umesh.Supervisor)
	assert.Contains(t, umesh.Wards, "02-Ambedkar Nagar")
	assert.Contains(t, umesh.Zones, "Mathura")

	for _, r := range rows[1:] {
		assert.Zero(t, r.Total, r.Officer)
	}
}

func TestOfficerReportCnD(t *testing.T) {
	rows, statuses := OfficerReport(lookup.Default(), resolvedRecords(t), model.DeptCnDWaste)

	assert.Equal(t, []string{"Pending"}, statuses)
	umesh := findOfficer(t, rows, "Shri Umesh Kumar")
	assert.Equal(t, 1, umesh.Total)
	assert.Zero(t, umesh.Closed)
	assert.Zero(t, umesh.ClosureRate)
}

func TestSupervisorReport(t *testing.T) {
	tbl := lookup.Default()
	rows := SupervisorReport(tbl, resolvedRecords(t), model.DeptCivil)

	require.NotEmpty(t, rows)
	amrish := rows[0]
	assert.Equal(t, "Amrish NS", amrish.Supervisor)
	assert.Equal(t, 3, amrish.Total)
	assert.Equal(t, 1, amrish.Closed)
	assert.Equal(t, 1, amrish.Open)
	assert.Equal(t, 1, amrish.Pending)

	names := make(map[string]bool)
	for _, r := range rows {
		assert.False(t, names[r.Supervisor], "duplicate row for %s", r.Supervisor)
		names[r.Supervisor] = true
	}
}

func TestDepartmentSummary(t *testing.T) {
	rows := DepartmentSummary(DefaultClassifier(), resolvedRecords(t))
	require.Len(t, rows, 3)

	byDept := make(map[model.Department]DepartmentStats)
	for _, r := range rows {
		byDept[r.Department] = r
	}
	assert.Equal(t, 3, byDept[model.DeptCivil].Total)
	assert.Equal(t, 1, byDept[model.DeptCivil].Officers)
	assert.Equal(t, 1, byDept[model.DeptSanitation].Closed)
	assert.InDelta(t, 100.0, byDept[model.DeptSanitation].ClosureRate, 0.001)
	assert.Equal(t, 1, byDept[model.DeptCnDWaste].Pending)
}

func TestStatusBucket(t *testing.T) {
	assert.Equal(t, "closed", statusBucket("Closed"))
	assert.Equal(t, "closed", statusBucket("Close"))
	assert.Equal(t, "open", statusBucket("Re-open"))
	assert.Equal(t, "pending", statusBucket("Pending with dept"))
	assert.Equal(t, "open", statusBucket("In Progress"))
}

func TestTrends(t *testing.T) {
	f := NewFilter(DefaultFilterRules())
	records := []model.ComplaintRecord{
		{Name: "Vishal", Subtype: "Potholes", RegisteredAt: daysAgo(40)},
		{Name: "vishal", Subtype: "Potholes", RegisteredAt: daysAgo(1)},
		{Name: "Anil Gupta", Subtype: "Road Sweeping", RegisteredAt: daysAgo(1)},
		{Name: "Vishal", Subtype: "Potholes"},
	}

	ct := ComplainantTrends(f, records)
	assert.Equal(t, []string{"Apr 2024", "May 2024"}, ct.Months)
	require.Len(t, ct.Trends, len(f.Rules().AllowedNames))
	for _, tr := range ct.Trends {
		switch tr.Key {
		case "Vishal":
			assert.Equal(t, 2, tr.Total)
			assert.Equal(t, 1, tr.Monthly["Apr 2024"])
			assert.Equal(t, 1, tr.Daily["19/05/2024"])
		case "Anil Gupta":
			assert.Equal(t, 1, tr.Total)
		default:
			assert.Zero(t, tr.Total, tr.Key)
		}
	}

	st := SubtypeTrends(f, records)
	for _, tr := range st.Trends {
		if tr.Key == "Potholes" {
			assert.Equal(t, 2, tr.Total)
		}
	}
}
