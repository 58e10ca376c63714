package pipeline

import (
	"strings"

	"go-complaint-report/internal/model"
)

// ClassRule maps subtype keywords to a department
type ClassRule struct {
	Department model.Department
	Keywords   []string
}

// Classifier assigns a department to a complaint subtype. Rules are tried in
// order and the first rule with a matching keyword wins.
type Classifier struct {
	Rules   []ClassRule
	Default model.Department
}

// DefaultClassifier returns the classifier used for the municipal data set.
// C&D rules come first because C&D subtypes also mention garbage and dumping.
func DefaultClassifier() *Classifier {
	return &Classifier{
		Rules: []ClassRule{
			{Department: model.DeptCnDWaste, Keywords: []string{"C&D", "Construction and Demolition", "Debris"}},
			{Department: model.DeptSanitation, Keywords: []string{
				"Garbage", "Door To Door", "Road Sweeping", "Drain Cleaning",
				"Sanitation", "Dead Animals", "Dustbin", "Public Toilet",
			}},
			{Department: model.DeptCivil, Keywords: []string{
				"Pothole", "Street Light", "Civil", "Water Logging",
				"Manhole", "Road Repair", "Sewer",
			}},
		},
		Default: model.DeptSanitation,
	}
}

// Classify returns the department for a subtype. It never fails: subtypes
// that match no rule get the default department.
func (c *Classifier) Classify(subtype string) model.Department {
	s := foldCase(subtype)
	for _, rule := range c.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(s, foldCase(kw)) {
				return rule.Department
			}
		}
	}
	if c.Default == "" {
		return model.DeptSanitation
	}
	return c.Default
}
