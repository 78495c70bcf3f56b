package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/vulnreport/pkg/domain/model"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
	slackSvc "github.com/secmon-lab/vulnreport/pkg/service/slack"
)

// Report runs the fetch, aggregate, rank and build pipeline for one
// organization. All state is local to one Generate call.
type Report struct {
	source IssueSource
	now    func() time.Time
}

// ReportOption configures the Report use case
type ReportOption func(*Report)

// WithClock overrides the report timestamp source
func WithClock(now func() time.Time) ReportOption {
	return func(uc *Report) {
		uc.now = now
	}
}

// NewReport creates a new Report use case
func NewReport(source IssueSource, opts ...ReportOption) *Report {
	uc := &Report{
		source: source,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate fetches all project and issue pages, correlates issues to
// projects and builds the ranked report. Any fetch failure aborts with
// no partial result.
func (uc *Report) Generate(ctx context.Context, orgID types.OrgID) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	projects, err := uc.source.FetchProjects(ctx, orgID)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched projects", slog.Int("count", len(projects)))

	issues, err := uc.source.FetchIssues(ctx, orgID)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched issues", slog.Int("count", len(issues)))

	catalog := model.BuildCatalog(projects)
	aggregates := model.Aggregate(issues, catalog)
	report := model.BuildReport(orgID, aggregates, uc.now())

	logger.Info("report built",
		slog.Int("catalog_size", len(catalog)),
		slog.Int("total_projects", report.Summary.TotalProjects),
		slog.Int("projects_with_issues", report.Summary.ProjectsWithIssues),
		slog.Int("total_issues", report.Summary.TotalIssues),
	)
	return report, nil
}

// NotifyParams controls the Slack notification of one run
type NotifyParams struct {
	Channel types.ChannelID
	RunURL  string
	TopN    int
}

// DashboardURL returns the Snyk dashboard link for the organization
func DashboardURL(orgID types.OrgID) string {
	return fmt.Sprintf("https://app.snyk.io/org/%s", orgID)
}

// Notify renders the report as Slack blocks and posts it. Callers treat
// a returned error as non-fatal: the run already produced its console
// and file output.
func Notify(ctx context.Context, notifier Notifier, report *model.Report, params NotifyParams) error {
	blocks := slackSvc.BuildReportBlocks(report,
		DashboardURL(report.OrganizationID), params.RunURL, params.TopN)
	return notifier.PostReport(ctx, params.Channel, blocks)
}
