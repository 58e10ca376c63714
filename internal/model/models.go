package model

import "time"

// Department is the municipal unit responsible for a complaint
type Department string

const (
	DeptSanitation Department = "Sanitation"
	DeptCivil      Department = "Civil"
	DeptCnDWaste   Department = "C&D Waste"
)

// Departments lists every department label in report order
var Departments = []Department{DeptSanitation, DeptCivil, DeptCnDWaste}

// Partition returns the department whose lookup-table rows serve this department.
// C&D waste complaints are handled by Civil officers.
func (d Department) Partition() Department {
	if d == DeptCnDWaste {
		return DeptCivil
	}
	return d
}

// ParseDepartment maps a user supplied label to a Department
func ParseDepartment(s string) (Department, bool) {
	switch s {
	case "sanitation", "Sanitation":
		return DeptSanitation, true
	case "civil", "Civil":
		return DeptCivil, true
	case "cnd", "c&d", "C&D", "C&D Waste", "c&d waste":
		return DeptCnDWaste, true
	}
	return "", false
}

// MatchTier names the resolver strategy that produced an assignment
type MatchTier string

const (
	TierNone       MatchTier = ""
	TierExact      MatchTier = "exact"
	TierWardNumber MatchTier = "ward_number"
	TierFuzzyName  MatchTier = "fuzzy_name"
)

// ComplaintRecord is one row of an uploaded complaint file
type ComplaintRecord struct {
	SerialNo      string    `json:"sr_no"`
	ID            string    `json:"comp_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Zone          string    `json:"zone"`
	Ward          string    `json:"ward"`
	Status        string    `json:"status"`
	ComplaintType string    `json:"complaint_type"`
	Subtype       string    `json:"complaint_subtype"`
	RegisteredRaw string    `json:"registered_raw"`          // free text as uploaded
	RegisteredAt  time.Time `json:"registered_at,omitempty"` // zero when unparseable

	// Set once by the assignment resolver
	AssignedOfficer    string    `json:"assigned_officer,omitempty"`
	AssignedSupervisor string    `json:"assigned_supervisor,omitempty"`
	MatchTier          MatchTier `json:"match_tier,omitempty"`

	Extra map[string]string `json:"extra,omitempty"` // unrecognised columns
}

// HasDate reports whether the registration date parsed
func (r ComplaintRecord) HasDate() bool {
	return !r.RegisteredAt.IsZero()
}

// Assigned reports whether the resolver found a mapping entry
func (r ComplaintRecord) Assigned() bool {
	return r.AssignedOfficer != "" || r.AssignedSupervisor != ""
}

// MappingEntry is a static (zone, ward, department) -> (supervisor, officer) fact
type MappingEntry struct {
	Zone       string     `json:"zone" yaml:"zone"`
	Ward       string     `json:"ward" yaml:"ward"`
	Department Department `json:"department" yaml:"department"`
	Supervisor string     `json:"supervisor" yaml:"supervisor"`
	Officer    string     `json:"officer" yaml:"officer"`
}
