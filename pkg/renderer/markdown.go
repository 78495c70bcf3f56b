package renderer

import (
	"fmt"
	"io"

	"github.com/secmon-lab/vulnreport/pkg/domain/model"
)

// Markdown writes the report as a Markdown document: a summary list
// followed by a table of all ranked projects. Cell content is emitted
// verbatim; a project name containing "|" will corrupt the table.
func Markdown(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "# Vulnerability Report\n\n")
	fmt.Fprintf(w, "Organization: `%s`\n\n", report.OrganizationID)
	fmt.Fprintf(w, "Generated at: %s\n\n", report.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))

	s := report.Summary
	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "- Projects with correlated issues: %d\n", s.TotalProjects)
	fmt.Fprintf(w, "- Projects with open issues: %d\n", s.ProjectsWithIssues)
	fmt.Fprintf(w, "- Critical issues: %d\n", s.TotalCritical)
	fmt.Fprintf(w, "- High issues: %d\n", s.TotalHigh)
	fmt.Fprintf(w, "- Medium issues: %d\n", s.TotalMedium)
	fmt.Fprintf(w, "- Total issues: %d\n\n", s.TotalIssues)

	fmt.Fprintf(w, "## Projects\n\n")
	if len(report.Projects) == 0 {
		fmt.Fprintln(w, "No open critical, high or medium issues.")
		return
	}

	fmt.Fprintln(w, "| Project | Critical | High | Medium | Total |")
	fmt.Fprintln(w, "|---------|----------|------|--------|-------|")
	for _, p := range report.Projects {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d |\n",
			p.Name, p.Critical, p.High, p.Medium, p.Total)
	}
}
