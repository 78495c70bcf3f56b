package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/vulnreport/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Action ID constants for report notification links
const (
	ActionIDOpenDashboard = "open_dashboard"
	ActionIDOpenRun       = "open_run"
)

const (
	breakdownLimit = 3
	defaultTopN    = 10
)

// headerText returns the notification header for the report's overall
// status tier
func headerText(s model.Summary) string {
	switch {
	case s.TotalCritical > 0:
		return "🚨 Critical vulnerabilities need attention"
	case s.TotalHigh > 0:
		return "⚠️ High severity vulnerabilities found"
	case s.TotalMedium > 0:
		return "🟡 Medium severity vulnerabilities found"
	default:
		return "✅ No open vulnerabilities"
	}
}

// BuildReportBlocks renders the report as Slack Block Kit blocks:
// status header, count fields, severity breakdown, ranked project list
// and action links to the dashboard and the triggering automation run.
func BuildReportBlocks(report *model.Report, dashboardURL, runURL string, topN int) []slack.Block {
	if topN <= 0 {
		topN = defaultTopN
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, headerText(report.Summary), true, false),
		),
		buildSummaryFields(report.Summary),
	}

	if breakdown := buildBreakdown(report, dashboardURL); breakdown != nil {
		blocks = append(blocks, breakdown)
	}

	if ranked := buildRankedList(report, topN); ranked != nil {
		blocks = append(blocks, slack.NewDividerBlock(), ranked)
	}

	blocks = append(blocks, buildActions(dashboardURL, runURL))
	return blocks
}

func buildSummaryFields(s model.Summary) *slack.SectionBlock {
	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Critical:* %d", s.TotalCritical), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*High:* %d", s.TotalHigh), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Medium:* %d", s.TotalMedium), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Projects affected:* %d", s.ProjectsWithIssues), false, false),
	}
	return slack.NewSectionBlock(nil, fields, nil)
}

// buildBreakdown names up to 3 projects with critical issues and up to 3
// projects with high issues but no critical ones. Overflow becomes a
// dashboard link rather than a longer list.
func buildBreakdown(report *model.Report, dashboardURL string) *slack.SectionBlock {
	criticalNames := report.ProjectsWith(model.SeverityCritical)

	var highOnlyNames []string
	for _, p := range report.Projects {
		if p.Critical == 0 && p.High > 0 {
			highOnlyNames = append(highOnlyNames, p.Name)
		}
	}

	var lines []string
	if line := breakdownLine("🚨 Critical", criticalNames, dashboardURL); line != "" {
		lines = append(lines, line)
	}
	if line := breakdownLine("⚠️ High", highOnlyNames, dashboardURL); line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}

	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false),
		nil, nil,
	)
}

func breakdownLine(label string, names []string, dashboardURL string) string {
	if len(names) == 0 {
		return ""
	}
	shown := names
	if len(shown) > breakdownLimit {
		shown = shown[:breakdownLimit]
	}
	line := fmt.Sprintf("%s: %s", label, strings.Join(shown, ", "))
	if overflow := len(names) - len(shown); overflow > 0 {
		line += fmt.Sprintf(" and %d more (<%s|click here for more>)", overflow, dashboardURL)
	}
	return line
}

func buildRankedList(report *model.Report, topN int) *slack.SectionBlock {
	top := report.TopProjects(topN)
	if len(top) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("*Top projects by risk score*\n")
	for i, p := range top {
		fmt.Fprintf(&sb, "%d. *%s* — C:%d H:%d M:%d\n",
			i+1, p.Name, p.Critical, p.High, p.Medium)
	}

	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, sb.String(), false, false),
		nil, nil,
	)
}

func buildActions(dashboardURL, runURL string) *slack.ActionBlock {
	var elements []slack.BlockElement

	dashboard := slack.NewButtonBlockElement(
		ActionIDOpenDashboard,
		"dashboard",
		slack.NewTextBlockObject(slack.PlainTextType, "Open Snyk Dashboard", false, false),
	)
	dashboard.URL = dashboardURL
	elements = append(elements, dashboard)

	if runURL != "" {
		run := slack.NewButtonBlockElement(
			ActionIDOpenRun,
			"run",
			slack.NewTextBlockObject(slack.PlainTextType, "View Automation Run", false, false),
		)
		run.URL = runURL
		elements = append(elements, run)
	}

	return slack.NewActionBlock("report_links", elements...)
}
