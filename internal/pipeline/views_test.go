package pipeline

import (
	"testing"

	"go-complaint-report/internal/lookup"
	"go-complaint-report/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *ReportBuilder {
	return &ReportBuilder{
		Table:      lookup.Default(),
		Classifier: DefaultClassifier(),
		Filter:     NewFilter(DefaultFilterRules()),
	}
}

func TestBuildEveryView(t *testing.T) {
	b := newTestBuilder()
	records := resolvedRecords(t)
	stats := Aggregate(records, testNow)

	for _, name := range ViewNames {
		view, err := b.Build(name, records, stats, ViewOptions{})
		require.NoError(t, err, name)
		assert.Equal(t, name, view.ID)
		assert.NotEmpty(t, view.Title, name)
		assert.NotEmpty(t, view.Rows, name)
		assert.Equal(t, "All dates", view.Subtitle)
	}
}

func TestBuildUnknownView(t *testing.T) {
	_, err := newTestBuilder().Build("heatmap", nil, model.Stats{}, ViewOptions{})
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestBuildDashboard(t *testing.T) {
	b := newTestBuilder()
	records := resolvedRecords(t)
	view, err := b.Build(ViewDashboard, records, Aggregate(records, testNow), ViewOptions{
		DateRange: model.DateRange{From: "2024-05-01", To: "2024-05-31"},
	})
	require.NoError(t, err)

	assert.Equal(t, "From 2024-05-01 to 2024-05-31", view.Subtitle)
	first := view.Rows[0]
	label, _ := first.Get("Label")
	value, _ := first.Get("Value")
	assert.Equal(t, "Total Complaints", label)
	assert.Equal(t, 5, value)
	assert.Len(t, view.Chart, 4)
	assert.Equal(t, "1-3 Days", view.Chart[1].Label)
}

func TestBuildOfficersColumns(t *testing.T) {
	b := newTestBuilder()
	records := resolvedRecords(t)
	view, err := b.Build(ViewOfficers, records, Aggregate(records, testNow), ViewOptions{Department: model.DeptCivil})
	require.NoError(t, err)

	// a raw "Closed" status must not overwrite the closed count
	assert.Equal(t, []string{
		"Sr No", "Officer Name", "Supervisor", "Zones", "Wards",
		"Total Complaints", "Closed", "Close", "Status Closed", "Open", "Closure Rate",
	}, model.Headers(view.Rows))
	top := view.Rows[0]
	closed, _ := top.Get("Closed")
	assert.Equal(t, 1, closed)
	rate, ok := top.Get("Closure Rate")
	require.True(t, ok)
	assert.Equal(t, "50.00%", rate)
}

func TestBuildMappingSearch(t *testing.T) {
	view, err := newTestBuilder().Build(ViewMapping, nil, model.Stats{}, ViewOptions{Search: "ambedkar"})
	require.NoError(t, err)
	assert.Len(t, view.Rows, 2)
	assert.Equal(t, []string{"Zone", "Ward", "Department", "Supervisor", "Officer"}, model.Headers(view.Rows))
}

func TestSortRows(t *testing.T) {
	mk := func(sr int, name string, rate interface{}) model.ReportRow {
		row := model.ReportRow{}
		row.Set("Sr No", sr).Set("Name", name)
		if rate != nil {
			row.Set("Closure Rate", rate)
		}
		return row
	}
	rows := []model.ReportRow{
		mk(1, "a", "50.0%"),
		mk(2, "b", nil),
		mk(3, "c", "100.0%"),
		mk(4, "d", "9.5%"),
	}

	SortRows(rows, "Closure Rate", true)

	var names []string
	for i, r := range rows {
		n, _ := r.Get("Name")
		names = append(names, n.(string))
		sr, _ := r.Get("Sr No")
		assert.Equal(t, i+1, sr)
	}
	assert.Equal(t, []string{"c", "a", "d", "b"}, names)

	SortRows(rows, "Name", false)
	first, _ := rows[0].Get("Name")
	assert.Equal(t, "a", first)
}
