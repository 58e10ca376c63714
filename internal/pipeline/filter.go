package pipeline

import (
	"strings"

	"go-complaint-report/internal/model"
)

// FilterRules holds the cleaning maps and the two allow-lists
type FilterRules struct {
	AllowedSubtypes    []string          `yaml:"allowed_subtypes"`
	AllowedNames       []string          `yaml:"allowed_complainants"`
	SubtypeCorrections map[string]string `yaml:"subtype_fixes"`
	WardCorrections    map[string]string `yaml:"ward_fixes"`
}

// DefaultFilterRules returns the monitored subtypes and complainants
func DefaultFilterRules() FilterRules {
	return FilterRules{
		AllowedSubtypes: []string{
			"Burning of Garbage",
			"Potholes",
			"Illegal Dumping of C&D waste",
			"Garbage Vulnerable Point",
			"Door To Door Collection",
			"Road Sweeping",
			"Drain Cleaning",
			"Dead Animals",
			"STREET LIGHT",
			"Water Logging",
		},
		AllowedNames: []string{
			"Chandraveer Singh",
			"Vishal",
			"Rahul Sharma",
			"Deepak Kumar",
			"Anil Gupta",
		},
		SubtypeCorrections: map[string]string{
			"Illegal Dumping of C&D Waste": "Illegal Dumping of C&D waste",
			"Illegal dumping of C&D waste": "Illegal Dumping of C&D waste",
			"Pot Holes":                    "Potholes",
		},
		WardCorrections: map[string]string{
			"18-General Ganj": "18-General ganj",
			"38-Civil Lines":  "38-Civil lines",
		},
	}
}

// FilterStats counts what a filter pass kept and dropped
type FilterStats struct {
	Read    int
	Kept    int
	Dropped int
	Cleaned int // records changed by a correction
	BadName int
	BadType int
}

// Filter cleans records and keeps only allow-listed subtypes from allow-listed complainants
type Filter struct {
	rules FilterRules
	names map[string]string // lower-case -> canonical
}

// NewFilter creates a filter from rules
func NewFilter(rules FilterRules) *Filter {
	f := &Filter{rules: rules, names: make(map[string]string, len(rules.AllowedNames))}
	for _, n := range rules.AllowedNames {
		f.names[foldCase(strings.TrimSpace(n))] = n
	}
	return f
}

// Rules returns the filter's rules
func (f *Filter) Rules() FilterRules {
	return f.rules
}

// Clean applies the subtype and ward corrections to a record
func (f *Filter) Clean(rec model.ComplaintRecord) (model.ComplaintRecord, bool) {
	changed := false
	if fixed, ok := f.rules.SubtypeCorrections[strings.TrimSpace(rec.Subtype)]; ok {
		rec.Subtype = fixed
		changed = true
	}
	if fixed, ok := f.rules.WardCorrections[strings.TrimSpace(rec.Ward)]; ok {
		rec.Ward = fixed
		changed = true
	}
	return rec, changed
}

// MatchSubtype returns the first allow-listed subtype contained in subtype
func (f *Filter) MatchSubtype(subtype string) (string, bool) {
	for _, allowed := range f.rules.AllowedSubtypes {
		if strings.Contains(subtype, allowed) {
			return allowed, true
		}
	}
	return "", false
}

// MatchName returns the canonical allow-listed name equal to name, ignoring case
func (f *Filter) MatchName(name string) (string, bool) {
	canonical, ok := f.names[foldCase(strings.TrimSpace(name))]
	return canonical, ok
}

// Apply cleans records, then keeps those passing both allow-lists.
// Dropped records are not errors.
func (f *Filter) Apply(records []model.ComplaintRecord) []model.ComplaintRecord {
	kept, _ := f.ApplyWithStats(records)
	return kept
}

// ApplyWithStats is Apply plus counters for run metrics
func (f *Filter) ApplyWithStats(records []model.ComplaintRecord) ([]model.ComplaintRecord, FilterStats) {
	stats := FilterStats{Read: len(records)}
	kept := make([]model.ComplaintRecord, 0, len(records))
	for _, rec := range records {
		rec, changed := f.Clean(rec)
		if changed {
			stats.Cleaned++
		}
		_, typeOK := f.MatchSubtype(rec.Subtype)
		_, nameOK := f.MatchName(rec.Name)
		if !typeOK {
			stats.BadType++
		}
		if !nameOK {
			stats.BadName++
		}
		if typeOK && nameOK {
			kept = append(kept, rec)
		}
	}
	stats.Kept = len(kept)
	stats.Dropped = stats.Read - stats.Kept
	return kept, stats
}
