package model

import (
	"time"

	"github.com/secmon-lab/vulnreport/pkg/domain/types"
)

// Summary holds run-level totals. TotalProjects counts distinct project
// names that received at least one correlated issue record, including
// ones whose issues all fell outside the counted severities; it is NOT
// the size of the fetched project list.
type Summary struct {
	TotalProjects      int `json:"total_projects"`
	ProjectsWithIssues int `json:"projects_with_issues"`
	TotalCritical      int `json:"total_critical"`
	TotalHigh          int `json:"total_high"`
	TotalMedium        int `json:"total_medium"`
	TotalIssues        int `json:"total_issues"`
}

// Report is the immutable result of one run. Projects contains only
// aggregates with Total > 0, ranked descending by score.
type Report struct {
	GeneratedAt    time.Time          `json:"generated_at"`
	OrganizationID types.OrgID        `json:"organization_id"`
	Summary        Summary            `json:"summary"`
	Projects       []ProjectAggregate `json:"projects"`
}

// BuildReport constructs a report from aggregated tallies. Severity totals
// sum over all aggregates; the ranked project list is then filtered to
// entries with at least one counted issue.
func BuildReport(orgID types.OrgID, aggregates map[string]*ProjectAggregate, now time.Time) *Report {
	var summary Summary
	summary.TotalProjects = len(aggregates)
	for _, agg := range aggregates {
		summary.TotalCritical += agg.Critical
		summary.TotalHigh += agg.High
		summary.TotalMedium += agg.Medium
		summary.TotalIssues += agg.Total
	}

	ranked := Rank(aggregates)
	projects := make([]ProjectAggregate, 0, len(ranked))
	for _, agg := range ranked {
		if agg.Total > 0 {
			projects = append(projects, agg)
		}
	}
	summary.ProjectsWithIssues = len(projects)

	return &Report{
		GeneratedAt:    now,
		OrganizationID: orgID,
		Summary:        summary,
		Projects:       projects,
	}
}

// HasIssues returns true if any counted issue was aggregated
func (r *Report) HasIssues() bool {
	return r.Summary.TotalIssues > 0
}

// TopProjects returns up to n ranked projects
func (r *Report) TopProjects(n int) []ProjectAggregate {
	if len(r.Projects) < n {
		n = len(r.Projects)
	}
	return r.Projects[:n]
}

// ProjectsWith returns the names of projects with at least one issue of
// the given severity, in rank order
func (r *Report) ProjectsWith(sev Severity) []string {
	var names []string
	for _, p := range r.Projects {
		var count int
		switch sev {
		case SeverityCritical:
			count = p.Critical
		case SeverityHigh:
			count = p.High
		case SeverityMedium:
			count = p.Medium
		}
		if count > 0 {
			names = append(names, p.Name)
		}
	}
	return names
}
