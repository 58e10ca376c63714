package pipeline

import (
	"math"
	"sort"
	"time"

	"go-complaint-report/internal/model"
	"go-complaint-report/pkg/utils"
)

// Normalized status labels the aggregator treats specially
const (
	StatusOpen   = "Open"
	StatusReopen = "Re-open"
	StatusClose  = "Close"
)

// IsPending reports whether a normalized status counts as open
func IsPending(status string) bool {
	return status == StatusOpen || status == StatusReopen
}

// AgeInDays returns whole days since registration, rounded up
func AgeInDays(registered, now time.Time) int {
	return int(math.Ceil(now.Sub(registered).Hours() / 24))
}

// addAge puts one pending complaint into its age bucket. Future dates count as fresh.
func addAge(p *model.PendingAge, days int) {
	switch {
	case days <= 1:
		p.LessThan24h++
	case days <= 3:
		p.OneToThreeDays++
	case days <= 7:
		p.ThreeToSevenDays++
	default:
		p.MoreThanSevenDays++
	}
}

// Aggregate folds a record set into Stats. It has no side effects and the
// result depends only on records and now. Records without a zone are skipped
// entirely, so the status histogram always sums to Total.
func Aggregate(records []model.ComplaintRecord, now time.Time) model.Stats {
	stats := model.Stats{
		Zones:              make(map[string]int),
		StatusDistribution: make(map[string]int),
		Officers:           make(map[string]int),
		Supervisors:        make(map[string]int),
		PendingByZone:      make(map[string]int),
		SupervisorRates:    []model.SupervisorRate{},
	}
	rateIdx := make(map[string]int)

	for _, r := range records {
		if r.Zone == "" {
			continue
		}
		stats.Total++
		stats.Zones[r.Zone]++

		status := NormalizeStatus(r.Status)
		stats.StatusDistribution[status]++

		pending := IsPending(status)
		closed := status == StatusClose
		if pending {
			stats.Open++
			stats.PendingByZone[r.Zone]++
			if r.HasDate() {
				addAge(&stats.PendingByAge, AgeInDays(r.RegisteredAt, now))
			}
		} else if closed {
			stats.Closed++
		}

		if r.AssignedOfficer != "" {
			stats.Officers[r.AssignedOfficer]++
		}
		if r.AssignedSupervisor != "" {
			name := NormalizeSupervisor(r.AssignedSupervisor)
			stats.Supervisors[name]++

			i, ok := rateIdx[name]
			if !ok {
				i = len(stats.SupervisorRates)
				rateIdx[name] = i
				stats.SupervisorRates = append(stats.SupervisorRates, model.SupervisorRate{Name: name})
			}
			stats.SupervisorRates[i].Total++
			if closed {
				stats.SupervisorRates[i].Closed++
			}
		}
	}

	for i := range stats.SupervisorRates {
		sr := &stats.SupervisorRates[i]
		sr.ClosureRate = utils.Percent(sr.Closed, sr.Total)
	}
	return stats
}

// TopSupervisors returns up to n supervisors with the highest closure rate.
// Ties keep first-seen order.
func TopSupervisors(stats model.Stats, n int) []model.SupervisorRate {
	ranked := make([]model.SupervisorRate, len(stats.SupervisorRates))
	copy(ranked, stats.SupervisorRates)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ClosureRate > ranked[j].ClosureRate })
	return head(ranked, n)
}

// BottomSupervisors returns up to n supervisors with the lowest closure rate,
// considering only supervisors with at least one complaint.
func BottomSupervisors(stats model.Stats, n int) []model.SupervisorRate {
	var ranked []model.SupervisorRate
	for _, sr := range stats.SupervisorRates {
		if sr.Total > 0 {
			ranked = append(ranked, sr)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ClosureRate < ranked[j].ClosureRate })
	return head(ranked, n)
}

func head(rates []model.SupervisorRate, n int) []model.SupervisorRate {
	if n >= 0 && n < len(rates) {
		return rates[:n]
	}
	return rates
}
