package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/secmon-lab/vulnreport/pkg/domain/model"
)

const namedProjectLimit = 3
const rankedProjectLimit = 5

// Console writes a human-readable run summary to w. Output is
// deterministic for a given report; no side effect beyond the writer.
func Console(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "Vulnerability Report — org %s\n", report.OrganizationID)
	fmt.Fprintf(w, "Generated at: %s\n\n", report.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))

	s := report.Summary
	fmt.Fprintf(w, "Projects with correlated issues: %d\n", s.TotalProjects)
	fmt.Fprintf(w, "Projects with open issues:       %d\n", s.ProjectsWithIssues)
	fmt.Fprintf(w, "Critical: %d  High: %d  Medium: %d  Total: %d\n\n",
		s.TotalCritical, s.TotalHigh, s.TotalMedium, s.TotalIssues)

	if !report.HasIssues() {
		fmt.Fprintln(w, "No open critical, high or medium issues. Nothing to report.")
		return
	}

	writeNamedProjects(w, "Critical issues in", report.ProjectsWith(model.SeverityCritical))
	writeNamedProjects(w, "High issues in", report.ProjectsWith(model.SeverityHigh))

	fmt.Fprintln(w, "Top projects by risk score:")
	for i, p := range report.TopProjects(rankedProjectLimit) {
		fmt.Fprintf(w, "  %d. %s  [C:%d H:%d M:%d] (score %d)\n",
			i+1, p.Name, p.Critical, p.High, p.Medium, p.Score())
	}
}

func writeNamedProjects(w io.Writer, label string, names []string) {
	if len(names) == 0 {
		return
	}
	shown := names
	if len(shown) > namedProjectLimit {
		shown = shown[:namedProjectLimit]
	}
	line := fmt.Sprintf("%s: %s", label, strings.Join(shown, ", "))
	if overflow := len(names) - len(shown); overflow > 0 {
		line += fmt.Sprintf(" and %d more", overflow)
	}
	fmt.Fprintln(w, line)
	fmt.Fprintln(w)
}
