package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
	"github.com/slack-go/slack"
)

// Service provides Slack messaging capabilities
type Service struct {
	client *slack.Client
}

// New creates a new Slack service
func New(token string) *Service {
	return &Service{
		client: slack.New(token),
	}
}

// PostReport sends the rendered report blocks to a channel. Failures are
// tagged non-fatal for the run; the caller decides whether to continue.
func (s *Service) PostReport(ctx context.Context, channelID types.ChannelID, blocks []slack.Block) error {
	_, _, err := s.client.PostMessageContext(ctx, channelID.String(),
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText("Vulnerability report", false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post report to Slack",
			goerr.T(types.ErrTagNotify),
			goerr.V("channel", channelID))
	}
	return nil
}
