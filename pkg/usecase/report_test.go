package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vulnreport/pkg/domain/model"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
	"github.com/secmon-lab/vulnreport/pkg/usecase"
	"github.com/slack-go/slack"
)

type stubSource struct {
	projects    []model.Project
	issues      []model.Issue
	projectsErr error
	issuesErr   error
}

func (s *stubSource) FetchProjects(ctx context.Context, orgID types.OrgID) ([]model.Project, error) {
	return s.projects, s.projectsErr
}

func (s *stubSource) FetchIssues(ctx context.Context, orgID types.OrgID) ([]model.Issue, error) {
	return s.issues, s.issuesErr
}

type stubNotifier struct {
	channel types.ChannelID
	blocks  []slack.Block
	err     error
	calls   int
}

func (n *stubNotifier) PostReport(ctx context.Context, channelID types.ChannelID, blocks []slack.Block) error {
	n.calls++
	n.channel = channelID
	n.blocks = blocks
	return n.err
}

func TestReportGenerate(t *testing.T) {
	source := &stubSource{
		projects: []model.Project{
			{ID: "a", Name: "svc-a"},
			{ID: "b", Name: "svc-b"},
		},
		issues: []model.Issue{
			{ScanItemID: "a", Severity: model.SeverityCritical},
			{ScanItemID: "a", Severity: model.SeverityMedium},
			{ScanItemID: "b", Severity: model.SeverityHigh},
			{ScanItemID: "c", Severity: model.SeverityCritical},
		},
	}

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	uc := usecase.NewReport(source, usecase.WithClock(func() time.Time { return now }))

	report, err := uc.Generate(context.Background(), "org-1")
	gt.NoError(t, err)
	gt.Equal(t, report.GeneratedAt, now)
	gt.Equal(t, report.Summary.TotalProjects, 3)
	gt.Equal(t, report.Summary.TotalCritical, 2)
	gt.Equal(t, report.Projects[0].Name, "svc-a")
}

func TestReportGenerateFetchFailure(t *testing.T) {
	source := &stubSource{
		issuesErr: goerr.New("boom", goerr.T(types.ErrTagFetch)),
	}
	uc := usecase.NewReport(source)

	report, err := uc.Generate(context.Background(), "org-1")
	gt.Error(t, err)

	// No partial report on any fetch failure
	gt.Nil(t, report)
}

func TestNotifyPostsToChannel(t *testing.T) {
	source := &stubSource{
		projects: []model.Project{{ID: "a", Name: "svc-a"}},
		issues:   []model.Issue{{ScanItemID: "a", Severity: model.SeverityCritical}},
	}
	uc := usecase.NewReport(source)
	report, err := uc.Generate(context.Background(), "org-1")
	gt.NoError(t, err)

	notifier := &stubNotifier{}
	err = usecase.Notify(context.Background(), notifier, report, usecase.NotifyParams{
		Channel: "C123456",
		RunURL:  "https://ci.example.com/runs/42",
	})
	gt.NoError(t, err)
	gt.Equal(t, notifier.calls, 1)
	gt.Equal(t, notifier.channel, types.ChannelID("C123456"))
	gt.A(t, notifier.blocks).Longer(0)
}

func TestNotifyFailurePropagatesTag(t *testing.T) {
	notifier := &stubNotifier{
		err: goerr.New("slack down", goerr.T(types.ErrTagNotify)),
	}
	report := model.BuildReport("org-1", map[string]*model.ProjectAggregate{}, time.Now())

	err := usecase.Notify(context.Background(), notifier, report, usecase.NotifyParams{
		Channel: "C123456",
	})
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagNotify))
}

func TestDashboardURL(t *testing.T) {
	gt.Equal(t, usecase.DashboardURL("org-1"), "https://app.snyk.io/org/org-1")
}
