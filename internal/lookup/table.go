package lookup

import (
	"fmt"
	"os"
	"strings"

	"go-complaint-report/internal/model"

	"gopkg.in/yaml.v3"
)

// Table is a read-only, department-partitioned officer mapping table.
// It is built once and shared; nothing mutates it after construction.
type Table struct {
	entries []model.MappingEntry
	byDept  map[model.Department][]model.MappingEntry
}

// New builds a table from entries. The slice is copied.
func New(entries []model.MappingEntry) *Table {
	t := &Table{
		entries: make([]model.MappingEntry, len(entries)),
		byDept:  make(map[model.Department][]model.MappingEntry),
	}
	copy(t.entries, entries)
	for _, e := range t.entries {
		t.byDept[e.Department] = append(t.byDept[e.Department], e)
	}
	return t
}

// Default returns the built-in mapping table
func Default() *Table {
	return New(defaultEntries)
}

// LoadYAML reads a mapping table from a YAML list of entries
func LoadYAML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}
	var entries []model.MappingEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}
	for i, e := range entries {
		if e.Zone == "" || e.Ward == "" || e.Department == "" {
			return nil, fmt.Errorf("mapping entry %d: zone, ward and department are required", i+1)
		}
	}
	return New(entries), nil
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries in table order
func (t *Table) Entries() []model.MappingEntry {
	out := make([]model.MappingEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Partition returns the entries serving a department, in table order.
// The returned slice is shared and must not be modified.
func (t *Table) Partition(d model.Department) []model.MappingEntry {
	return t.byDept[d.Partition()]
}

// Officers returns the distinct officers of a department in table order
func (t *Table) Officers(d model.Department) []string {
	return distinct(t.Partition(d), func(e model.MappingEntry) string { return e.Officer })
}

// Supervisors returns the distinct supervisors of a department in table order.
// Names are returned as stored; callers aggregating by person normalize them.
func (t *Table) Supervisors(d model.Department) []string {
	return distinct(t.Partition(d), func(e model.MappingEntry) string { return e.Supervisor })
}

// Search returns entries whose officer, supervisor, ward or zone contains term (case-insensitive)
func (t *Table) Search(term string) []model.MappingEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return t.Entries()
	}
	var out []model.MappingEntry
	for _, e := range t.entries {
		if strings.Contains(strings.ToLower(e.Officer), term) ||
			strings.Contains(strings.ToLower(e.Supervisor), term) ||
			strings.Contains(strings.ToLower(e.Ward), term) ||
			strings.Contains(strings.ToLower(e.Zone), term) {
			out = append(out, e)
		}
	}
	return out
}

func distinct(entries []model.MappingEntry, field func(model.MappingEntry) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		v := field(e)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
