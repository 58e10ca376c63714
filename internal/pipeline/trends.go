package pipeline

import (
	"time"

	"go-complaint-report/internal/model"
)

// Trend counts one tracked name or subtype over time
type Trend struct {
	Key     string
	Total   int
	Monthly map[string]int // "Jan 2006"
	Daily   map[string]int // "02/01/2006"
}

// TrendReport is a set of trends plus the months any of them touch, oldest first
type TrendReport struct {
	Trends []Trend
	Months []string
}

func newTrendReport(keys []string) (*TrendReport, map[string]int) {
	tr := &TrendReport{Trends: make([]Trend, len(keys))}
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		tr.Trends[i] = Trend{Key: k, Monthly: make(map[string]int), Daily: make(map[string]int)}
		idx[k] = i
	}
	return tr, idx
}

func (tr *TrendReport) add(i int, at time.Time, months map[string]time.Time) {
	month := at.Format(MonthLayout)
	tr.Trends[i].Total++
	tr.Trends[i].Monthly[month]++
	tr.Trends[i].Daily[at.Format(DailyLayout)]++
	if _, ok := months[month]; !ok {
		months[month] = time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// ComplainantTrends counts dated complaints per allow-listed complainant
func ComplainantTrends(filter *Filter, records []model.ComplaintRecord) TrendReport {
	tr, idx := newTrendReport(filter.Rules().AllowedNames)
	months := make(map[string]time.Time)
	for _, r := range records {
		name, ok := filter.MatchName(r.Name)
		if !ok || !r.HasDate() {
			continue
		}
		tr.add(idx[name], r.RegisteredAt, months)
	}
	tr.Months = sortedMonthKeys(months)
	return *tr
}

// SubtypeTrends counts dated complaints per allow-listed subtype
func SubtypeTrends(filter *Filter, records []model.ComplaintRecord) TrendReport {
	tr, idx := newTrendReport(filter.Rules().AllowedSubtypes)
	months := make(map[string]time.Time)
	for _, r := range records {
		subtype, ok := filter.MatchSubtype(r.Subtype)
		if !ok || !r.HasDate() {
			continue
		}
		tr.add(idx[subtype], r.RegisteredAt, months)
	}
	tr.Months = sortedMonthKeys(months)
	return *tr
}
