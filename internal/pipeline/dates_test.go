package pipeline

import (
	"testing"
	"time"

	"go-complaint-report/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedRecords() []model.ComplaintRecord {
	return []model.ComplaintRecord{
		{ID: "a", RegisteredAt: time.Date(2024, 4, 30, 23, 59, 0, 0, time.UTC)},
		{ID: "b", RegisteredAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c", RegisteredAt: time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)},
		{ID: "d", RegisteredAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "e"},
	}
}

func ids(records []model.ComplaintRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterByDateInclusive(t *testing.T) {
	out, err := FilterByDate(datedRecords(), model.DateRange{From: "2024-05-01", To: "2024-05-31"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(out))
}

func TestFilterByDateOpenRangeKeepsEverything(t *testing.T) {
	for _, dr := range []model.DateRange{{}, {From: "2024-05-01"}, {To: "2024-05-31"}} {
		out, err := FilterByDate(datedRecords(), dr, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(out))
	}
}

func TestFilterByDateInvalid(t *testing.T) {
	_, err := FilterByDate(datedRecords(), model.DateRange{From: "01/05/2024", To: "2024-05-31"}, time.UTC)
	assert.Error(t, err)
}

func TestMonthRange(t *testing.T) {
	dr, err := MonthRange("Feb 2024")
	require.NoError(t, err)
	assert.Equal(t, model.DateRange{From: "2024-02-01", To: "2024-02-29"}, dr)

	_, err = MonthRange("February")
	assert.Error(t, err)
}

func TestAvailableMonthsAndBounds(t *testing.T) {
	records := datedRecords()
	assert.Equal(t, []string{"Apr 2024", "May 2024", "Jun 2024"}, AvailableMonths(records))
	assert.Equal(t, model.DateRange{From: "2024-04-30", To: "2024-06-01"}, BoundsRange(records))
	assert.Equal(t, model.DateRange{}, BoundsRange([]model.ComplaintRecord{{ID: "undated"}}))
}
