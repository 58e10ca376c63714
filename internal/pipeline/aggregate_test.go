package pipeline

import (
	"testing"
	"time"

	"go-complaint-report/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func daysAgo(d float64) time.Time {
	return testNow.Add(-time.Duration(d * 24 * float64(time.Hour)))
}

func TestAggregateCounts(t *testing.T) {
	records := []model.ComplaintRecord{
		{Zone: "Mathura", Status: "OPEN", AssignedSupervisor: "Jitendra SS8", AssignedOfficer: "A"},
		{Zone: "Mathura", Status: "Re-open", AssignedSupervisor: "Jitendra SS9", AssignedOfficer: "A"},
		{Zone: "Vrindavan", Status: "close", AssignedSupervisor: "Jitendra SS8", AssignedOfficer: "B"},
		{Zone: "Vrindavan", Status: "Pending"},
		{Zone: "Vrindavan", Status: ""},
		{Zone: "", Status: "Open"},
	}

	stats := Aggregate(records, testNow)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Open)
	assert.Equal(t, 1, stats.Closed)
	assert.Equal(t, map[string]int{"Mathura": 2, "Vrindavan": 3}, stats.Zones)
	assert.Equal(t, map[string]int{"Open": 1, "Re-open": 1, "Close": 1, "Pending": 1, "Unknown": 1}, stats.StatusDistribution)
	assert.Equal(t, map[string]int{"Mathura": 2}, stats.PendingByZone)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, stats.Officers)
	assert.Equal(t, map[string]int{"Jitendra SS": 3}, stats.Supervisors)

	sum := 0
	for _, n := range stats.StatusDistribution {
		sum += n
	}
	assert.Equal(t, stats.Total, sum)
	assert.LessOrEqual(t, stats.Open+stats.Closed, stats.Total)

	require.Len(t, stats.SupervisorRates, 1)
	assert.Equal(t, "Jitendra SS", stats.SupervisorRates[0].Name)
	assert.Equal(t, 3, stats.SupervisorRates[0].Total)
	assert.Equal(t, 1, stats.SupervisorRates[0].Closed)
	assert.InDelta(t, 33.33, stats.SupervisorRates[0].ClosureRate, 0.01)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, testNow)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.Zones)
	assert.Empty(t, stats.SupervisorRates)
	assert.Zero(t, stats.PendingByAge.Total())
}

func TestAggregatePendingAge(t *testing.T) {
	records := []model.ComplaintRecord{
		{Zone: "Z", Status: "Open", RegisteredAt: daysAgo(0.5)},
		{Zone: "Z", Status: "Open", RegisteredAt: daysAgo(-2)}, // future date counts as fresh
		{Zone: "Z", Status: "Open", RegisteredAt: daysAgo(2)},
		{Zone: "Z", Status: "Re-open", RegisteredAt: daysAgo(3)},
		{Zone: "Z", Status: "Open", RegisteredAt: daysAgo(5)},
		{Zone: "Z", Status: "Open", RegisteredAt: daysAgo(7)},
		{Zone: "Z", Status: "Open", RegisteredAt: daysAgo(10)},
		{Zone: "Z", Status: "Open"},                             // undated
		{Zone: "Z", Status: "Close", RegisteredAt: daysAgo(30)}, // not pending
	}

	stats := Aggregate(records, testNow)

	assert.Equal(t, model.PendingAge{
		LessThan24h:       2,
		OneToThreeDays:    2,
		ThreeToSevenDays:  2,
		MoreThanSevenDays: 1,
	}, stats.PendingByAge)
	assert.Equal(t, 8, stats.Open)
}

func TestAggregateIsPure(t *testing.T) {
	records := []model.ComplaintRecord{
		{Zone: "Mathura", Status: "open", AssignedSupervisor: "Gopal SS2", RegisteredAt: daysAgo(4)},
		{Zone: "Mathura", Status: "Close", AssignedSupervisor: "Amrish NS2"},
	}
	before := append([]model.ComplaintRecord(nil), records...)

	first := Aggregate(records, testNow)
	second := Aggregate(records, testNow)

	assert.Equal(t, first, second)
	assert.Equal(t, before, records)
}

func TestSupervisorRankings(t *testing.T) {
	stats := model.Stats{SupervisorRates: []model.SupervisorRate{
		{Name: "A", Total: 4, Closed: 2, ClosureRate: 50},
		{Name: "B", Total: 2, Closed: 2, ClosureRate: 100},
		{Name: "C", Total: 0, Closed: 0, ClosureRate: 0},
		{Name: "D", Total: 5, Closed: 1, ClosureRate: 20},
		{Name: "E", Total: 2, Closed: 1, ClosureRate: 50},
	}}

	top := TopSupervisors(stats, 3)
	assert.Equal(t, []string{"B", "A", "E"}, rateNames(top))

	bottom := BottomSupervisors(stats, 2)
	assert.Equal(t, []string{"D", "A"}, rateNames(bottom))

	assert.Len(t, TopSupervisors(stats, 10), 5)
	assert.Len(t, BottomSupervisors(stats, 10), 4)
}

func rateNames(rates []model.SupervisorRate) []string {
	out := make([]string, 0, len(rates))
	for _, r := range rates {
		out = append(out, r.Name)
	}
	return out
}
