package slack_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vulnreport/pkg/domain/model"
	slackblocks "github.com/secmon-lab/vulnreport/pkg/service/slack"
	"github.com/slack-go/slack"
)

func buildReport(aggregates map[string]*model.ProjectAggregate) *model.Report {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return model.BuildReport("org-1", aggregates, now)
}

func headerOf(t *testing.T, blocks []slack.Block) string {
	t.Helper()
	header, ok := blocks[0].(*slack.HeaderBlock)
	gt.True(t, ok)
	return header.Text.Text
}

func sectionTexts(blocks []slack.Block) []string {
	var texts []string
	for _, b := range blocks {
		if section, ok := b.(*slack.SectionBlock); ok && section.Text != nil {
			texts = append(texts, section.Text.Text)
		}
	}
	return texts
}

func TestReportBlocksHeaderTiers(t *testing.T) {
	testCases := []struct {
		name      string
		aggregate *model.ProjectAggregate
		emoji     string
	}{
		{
			name:      "critical is urgent",
			aggregate: &model.ProjectAggregate{Name: "svc", Critical: 1, High: 2, Medium: 3, Total: 6},
			emoji:     "🚨",
		},
		{
			name:      "high without critical is warning",
			aggregate: &model.ProjectAggregate{Name: "svc", High: 1, Medium: 2, Total: 3},
			emoji:     "⚠️",
		},
		{
			name:      "medium only is caution",
			aggregate: &model.ProjectAggregate{Name: "svc", Medium: 1, Total: 1},
			emoji:     "🟡",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := buildReport(map[string]*model.ProjectAggregate{"svc": tc.aggregate})
			blocks := slackblocks.BuildReportBlocks(report, "https://app.snyk.io/org/org-1", "", 0)
			gt.S(t, headerOf(t, blocks)).Contains(tc.emoji)
		})
	}
}

func TestReportBlocksCleanTier(t *testing.T) {
	report := buildReport(nil)
	blocks := slackblocks.BuildReportBlocks(report, "https://app.snyk.io/org/org-1", "", 0)
	gt.S(t, headerOf(t, blocks)).Contains("✅")
}

func TestReportBlocksBreakdownOverflow(t *testing.T) {
	aggregates := map[string]*model.ProjectAggregate{}
	for i := range 5 {
		name := fmt.Sprintf("svc-%d", i)
		aggregates[name] = &model.ProjectAggregate{Name: name, Critical: 1, Total: 1}
	}

	report := buildReport(aggregates)
	blocks := slackblocks.BuildReportBlocks(report, "https://app.snyk.io/org/org-1", "", 0)

	var breakdown string
	for _, text := range sectionTexts(blocks) {
		if strings.Contains(text, "🚨 Critical:") {
			breakdown = text
		}
	}
	gt.S(t, breakdown).Contains("svc-0, svc-1, svc-2")
	gt.S(t, breakdown).Contains("and 2 more")
	gt.S(t, breakdown).Contains("click here for more")
	gt.S(t, breakdown).NotContains("svc-3")
}

func TestReportBlocksHighExcludesCriticalProjects(t *testing.T) {
	aggregates := map[string]*model.ProjectAggregate{
		"svc-both": {Name: "svc-both", Critical: 1, High: 2, Total: 3},
		"svc-high": {Name: "svc-high", High: 1, Total: 1},
	}

	report := buildReport(aggregates)
	blocks := slackblocks.BuildReportBlocks(report, "https://app.snyk.io/org/org-1", "", 0)

	var breakdown string
	for _, text := range sectionTexts(blocks) {
		if strings.Contains(text, "⚠️ High:") {
			breakdown = text
		}
	}
	// A project already listed as critical is not repeated under high
	gt.S(t, breakdown).Contains("svc-high")
	gt.S(t, breakdown).NotContains("⚠️ High: svc-both")
}

func TestReportBlocksTopNTruncation(t *testing.T) {
	aggregates := map[string]*model.ProjectAggregate{}
	for i := range 15 {
		name := fmt.Sprintf("svc-%02d", i)
		aggregates[name] = &model.ProjectAggregate{Name: name, Medium: 15 - i, Total: 15 - i}
	}

	report := buildReport(aggregates)
	blocks := slackblocks.BuildReportBlocks(report, "https://app.snyk.io/org/org-1", "", 0)

	var ranked string
	for _, text := range sectionTexts(blocks) {
		if strings.Contains(text, "Top projects by risk score") {
			ranked = text
		}
	}
	gt.S(t, ranked).Contains("10. ")
	gt.S(t, ranked).NotContains("11. ")

	// Explicit top-N overrides the default
	blocks = slackblocks.BuildReportBlocks(report, "https://app.snyk.io/org/org-1", "", 3)
	for _, text := range sectionTexts(blocks) {
		if strings.Contains(text, "Top projects by risk score") {
			ranked = text
		}
	}
	gt.S(t, ranked).Contains("3. ")
	gt.S(t, ranked).NotContains("4. ")
}

func TestReportBlocksActions(t *testing.T) {
	report := buildReport(nil)

	blocks := slackblocks.BuildReportBlocks(report,
		"https://app.snyk.io/org/org-1", "https://ci.example.com/runs/42", 0)
	actions, ok := blocks[len(blocks)-1].(*slack.ActionBlock)
	gt.True(t, ok)
	gt.Equal(t, len(actions.Elements.ElementSet), 2)

	// Without a run URL only the dashboard button remains
	blocks = slackblocks.BuildReportBlocks(report, "https://app.snyk.io/org/org-1", "", 0)
	actions, ok = blocks[len(blocks)-1].(*slack.ActionBlock)
	gt.True(t, ok)
	gt.Equal(t, len(actions.Elements.ElementSet), 1)
}
