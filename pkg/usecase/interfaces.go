package usecase

import (
	"context"

	"github.com/secmon-lab/vulnreport/pkg/domain/model"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
	"github.com/slack-go/slack"
)

// IssueSource fetches projects and open issues from the vulnerability
// management API
type IssueSource interface {
	FetchProjects(ctx context.Context, orgID types.OrgID) ([]model.Project, error)
	FetchIssues(ctx context.Context, orgID types.OrgID) ([]model.Issue, error)
}

// Notifier delivers the rendered report notification
type Notifier interface {
	PostReport(ctx context.Context, channelID types.ChannelID, blocks []slack.Block) error
}
