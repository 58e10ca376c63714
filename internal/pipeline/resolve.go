package pipeline

import (
	"regexp"
	"strings"

	"go-complaint-report/internal/lookup"
	"go-complaint-report/internal/model"
	"go-complaint-report/pkg/utils"
)

// Query is the normalized input to a match strategy
type Query struct {
	Zone       string // zone with any "N-" prefix stripped
	Ward       string
	Department model.Department
}

// MatchFunc looks for an entry among the department's candidates
type MatchFunc func(q Query, candidates []model.MappingEntry) (model.MappingEntry, bool)

// Strategy is one tier of the resolver's fallback chain
type Strategy struct {
	Tier  model.MatchTier
	Match MatchFunc
}

// DefaultStrategies returns exact, ward-number and fuzzy-name matching, in that order
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Tier: model.TierExact, Match: ExactMatch},
		{Tier: model.TierWardNumber, Match: WardNumberMatch},
		{Tier: model.TierFuzzyName, Match: FuzzyNameMatch},
	}
}

// ExactMatch matches the zone case-insensitively and the ward exactly
func ExactMatch(q Query, candidates []model.MappingEntry) (model.MappingEntry, bool) {
	for _, e := range candidates {
		if strings.EqualFold(e.Zone, q.Zone) && e.Ward == q.Ward {
			return e, true
		}
	}
	return model.MappingEntry{}, false
}

// WardNumberMatch matches on the ward's leading number, so "2-Ambedkar Ngr" finds "02-Ambedkar Nagar"
func WardNumberMatch(q Query, candidates []model.MappingEntry) (model.MappingEntry, bool) {
	n, ok := utils.LeadingNumber(q.Ward)
	if !ok {
		return model.MappingEntry{}, false
	}
	for _, e := range candidates {
		if m, ok := utils.LeadingNumber(e.Ward); ok && m == n {
			return e, true
		}
	}
	return model.MappingEntry{}, false
}

// FuzzyNameMatch compares ward names without their numbers and accepts
// containment in either direction. Short names can match unrelated wards.
func FuzzyNameMatch(q Query, candidates []model.MappingEntry) (model.MappingEntry, bool) {
	name := strings.ToLower(utils.StripWardNumber(q.Ward))
	if name == "" {
		return model.MappingEntry{}, false
	}
	for _, e := range candidates {
		cand := strings.ToLower(utils.StripWardNumber(e.Ward))
		if cand == "" {
			continue
		}
		if strings.Contains(cand, name) || strings.Contains(name, cand) {
			return e, true
		}
	}
	return model.MappingEntry{}, false
}

var roleCodeRe = regexp.MustCompile(`^(.*\S)\s+([A-Za-z]+)\d+$`)

// NormalizeSupervisor drops the ward number from a role code:
// "Jitendra SS8" -> "Jitendra SS". Different codes (SS, NS) stay distinct.
func NormalizeSupervisor(name string) string {
	name = strings.TrimSpace(name)
	return roleCodeRe.ReplaceAllString(name, "$1 $2")
}

// Resolver assigns officers and supervisors to complaints
type Resolver struct {
	Table      *lookup.Table
	Classifier *Classifier
	Strategies []Strategy
}

// NewResolver creates a resolver with the default strategy chain
func NewResolver(table *lookup.Table, classifier *Classifier) *Resolver {
	return &Resolver{
		Table:      table,
		Classifier: classifier,
		Strategies: DefaultStrategies(),
	}
}

// Resolve finds the mapping entry for a complaint. The first strategy that
// matches wins; no match is a valid unassigned outcome.
func (r *Resolver) Resolve(zone, ward, subtype string) (model.MappingEntry, model.MatchTier, bool) {
	q := Query{
		Zone:       utils.StripZonePrefix(zone),
		Ward:       strings.TrimSpace(ward),
		Department: r.Classifier.Classify(subtype),
	}
	candidates := r.Table.Partition(q.Department)
	for _, s := range r.Strategies {
		if e, ok := s.Match(q, candidates); ok {
			return e, s.Tier, true
		}
	}
	return model.MappingEntry{}, model.TierNone, false
}

// ResolveAll returns a copy of records with assignment fields populated.
// The stored supervisor is normalized.
func (r *Resolver) ResolveAll(records []model.ComplaintRecord) []model.ComplaintRecord {
	out := make([]model.ComplaintRecord, len(records))
	for i, rec := range records {
		if e, tier, ok := r.Resolve(rec.Zone, rec.Ward, rec.Subtype); ok {
			rec.AssignedOfficer = e.Officer
			rec.AssignedSupervisor = NormalizeSupervisor(e.Supervisor)
			rec.MatchTier = tier
		}
		out[i] = rec
	}
	return out
}
