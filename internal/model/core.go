package model

// Source represents the complaint file for a run
type Source struct {
	Type string `json:"type"` // csv
	URL  string `json:"url"`  // file path, "-" for stdin, or http(s) URL
}

// DateRange restricts a run to complaints registered between From and To (inclusive days).
// Empty strings mean "no bound"; both must be set for the filter to apply.
type DateRange struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`   // YYYY-MM-DD
}

// Export defines one export target
type Export struct {
	View   string `json:"view"`   // dashboard, officers, supervisors, departments, cnd, complainants, subtypes, mapping
	Format string `json:"format"` // xlsx, png, jpeg, pdf, csv, json
	File   string `json:"file"`   // optional file name; derived from view+format when empty
}

// ReportJobSpec defines a single report run
type ReportJobSpec struct {
	Source     Source     `json:"source"`
	DateRange  DateRange  `json:"date_range"`
	Department Department `json:"department,omitempty"` // department for officer/supervisor views
	Exports    []Export   `json:"exports,omitempty"`
}
