package pipeline

import (
	"fmt"
	"sort"
	"time"

	"go-complaint-report/internal/model"
)

const (
	// DayLayout is the layout of date range bounds
	DayLayout = "2006-01-02"
	// MonthLayout is the layout of month keys in trend reports
	MonthLayout = "Jan 2006"
	// DailyLayout is the layout of day keys in trend reports
	DailyLayout = "02/01/2006"
)

// DateBounds returns the earliest and latest parsed registration dates
func DateBounds(records []model.ComplaintRecord) (minDate, maxDate time.Time, ok bool) {
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		if !ok || r.RegisteredAt.Before(minDate) {
			minDate = r.RegisteredAt
		}
		if !ok || r.RegisteredAt.After(maxDate) {
			maxDate = r.RegisteredAt
		}
		ok = true
	}
	return minDate, maxDate, ok
}

// BoundsRange returns the range spanning every dated record, or an empty range
func BoundsRange(records []model.ComplaintRecord) model.DateRange {
	minDate, maxDate, ok := DateBounds(records)
	if !ok {
		return model.DateRange{}
	}
	return model.DateRange{From: minDate.Format(DayLayout), To: maxDate.Format(DayLayout)}
}

// FilterByDate keeps records registered within the range, from the start of
// From to the last instant of To. A range missing either bound keeps every
// record; when it applies, records without a parsed date are dropped.
func FilterByDate(records []model.ComplaintRecord, dr model.DateRange, loc *time.Location) ([]model.ComplaintRecord, error) {
	if dr.From == "" || dr.To == "" {
		out := make([]model.ComplaintRecord, len(records))
		copy(out, records)
		return out, nil
	}
	if loc == nil {
		loc = time.Local
	}
	from, err := time.ParseInLocation(DayLayout, dr.From, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", dr.From, err)
	}
	to, err := time.ParseInLocation(DayLayout, dr.To, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", dr.To, err)
	}
	end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)

	out := make([]model.ComplaintRecord, 0, len(records))
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		if r.RegisteredAt.Before(from) || r.RegisteredAt.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// MonthRange returns the first-to-last-day range of a month key such as "May 2024"
func MonthRange(month string) (model.DateRange, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	last := t.AddDate(0, 1, -1)
	return model.DateRange{From: t.Format(DayLayout), To: last.Format(DayLayout)}, nil
}

// AvailableMonths lists the month keys present in records, oldest first
func AvailableMonths(records []model.ComplaintRecord) []string {
	seen := make(map[string]time.Time)
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		key := r.RegisteredAt.Format(MonthLayout)
		if _, ok := seen[key]; !ok {
			seen[key] = time.Date(r.RegisteredAt.Year(), r.RegisteredAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
	}
	return sortedMonthKeys(seen)
}

func sortedMonthKeys(months map[string]time.Time) []string {
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return months[keys[i]].Before(months[keys[j]]) })
	return keys
}
