package model

import "sort"

// ProjectAggregate holds per-project severity tallies. Keyed by display
// name, not ID: two IDs resolving to the same name merge into one
// aggregate. Total == Critical+High+Medium is maintained on every
// increment.
type ProjectAggregate struct {
	Name     string `json:"name"`
	Critical int    `json:"critical"`
	High     int    `json:"high"`
	Medium   int    `json:"medium"`
	Total    int    `json:"total"`
}

// Score returns the severity-weighted ranking score
func (a ProjectAggregate) Score() int {
	return weightCritical*a.Critical + weightHigh*a.High + weightMedium*a.Medium
}

func (a *ProjectAggregate) add(sev Severity) {
	switch sev {
	case SeverityCritical:
		a.Critical++
	case SeverityHigh:
		a.High++
	case SeverityMedium:
		a.Medium++
	default:
		// SeverityOther correlates to the project but is never counted
		return
	}
	a.Total++
}

// Aggregate folds the issue sequence into per-project severity tallies.
// It is a single pure pass over the issues: the returned map is built
// fresh and not mutated afterward.
//
//   - Issues without a scan_item relationship are dropped entirely.
//   - Issues whose project ID is not in the catalog still aggregate,
//     under a synthesized name embedding the unresolved ID.
//   - Severities outside {critical, high, medium} keep the project entry
//     alive but never increment any tally.
func Aggregate(issues []Issue, catalog Catalog) map[string]*ProjectAggregate {
	aggregates := make(map[string]*ProjectAggregate)
	for _, issue := range issues {
		if !issue.Attributable() {
			continue
		}
		name := catalog.Resolve(issue.ScanItemID)
		agg, ok := aggregates[name]
		if !ok {
			agg = &ProjectAggregate{Name: name}
			aggregates[name] = agg
		}
		agg.add(issue.Severity)
	}
	return aggregates
}

// Rank orders aggregates descending by score. Equal scores sort by name
// ascending so output is reproducible across runs on identical input.
func Rank(aggregates map[string]*ProjectAggregate) []ProjectAggregate {
	ranked := make([]ProjectAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		ranked = append(ranked, *agg)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := ranked[i].Score(), ranked[j].Score()
		if si != sj {
			return si > sj
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
