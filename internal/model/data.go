package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// PendingAge buckets open/re-open complaints by days since registration
type PendingAge struct {
	LessThan24h       int `json:"less_than_24h"`        // <= 1 day
	OneToThreeDays    int `json:"one_to_three_days"`    // 2-3 days
	ThreeToSevenDays  int `json:"three_to_seven_days"`  // 4-7 days
	MoreThanSevenDays int `json:"more_than_seven_days"` // > 7 days
}

// Total returns the number of bucketed complaints
func (p PendingAge) Total() int {
	return p.LessThan24h + p.OneToThreeDays + p.ThreeToSevenDays + p.MoreThanSevenDays
}

// SupervisorRate is a supervisor's closure record
type SupervisorRate struct {
	Name        string  `json:"name"`
	Total       int     `json:"total"`
	Closed      int     `json:"closed"`
	ClosureRate float64 `json:"closure_rate"` // percent
}

// Stats is the aggregate view of a record set. It is always recomputed wholesale.
type Stats struct {
	Total              int              `json:"total"`
	Open               int              `json:"open"`
	Closed             int              `json:"closed"`
	Zones              map[string]int   `json:"zones"`
	StatusDistribution map[string]int   `json:"status_distribution"`
	Officers           map[string]int   `json:"officers"`
	Supervisors        map[string]int   `json:"supervisors"`
	PendingByZone      map[string]int   `json:"pending_by_zone"`
	PendingByAge       PendingAge       `json:"pending_by_age"`
	SupervisorRates    []SupervisorRate `json:"supervisor_rates"` // first-seen order
}

// ExportResult represents the result of an export operation
type ExportResult struct {
	View        string    `json:"view"`
	Type        string    `json:"type"` // "xlsx", "png", "jpeg", "pdf", "csv", "json"
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReportRow is a flat key/value row that keeps its column order
type ReportRow struct {
	keys   []string
	values map[string]interface{}
}

// Set assigns a column value, appending the column on first use
func (r *ReportRow) Set(key string, value interface{}) *ReportRow {
	if r.values == nil {
		r.values = make(map[string]interface{})
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Get returns a column value
func (r ReportRow) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the columns in insertion order
func (r ReportRow) Keys() []string {
	return r.keys
}

// MarshalJSON writes the row as an object with columns in insertion order
func (r ReportRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Headers returns the union of row columns in order of first appearance
func Headers(rows []ReportRow) []string {
	seen := make(map[string]bool)
	var headers []string
	for _, row := range rows {
		for _, k := range row.keys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}
	return headers
}

// ChartBar is one bar of a report chart
type ChartBar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ReportView is a named, exportable report: the unit that image, PDF and
// spreadsheet exports are produced from.
type ReportView struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`
	Rows     []ReportRow `json:"rows"`
	Chart    []ChartBar  `json:"chart,omitempty"`
}
