package config

import (
	"log/slog"

	"github.com/secmon-lab/vulnreport/pkg/domain/types"
	slackSvc "github.com/secmon-lab/vulnreport/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds notification transport configuration. Missing credentials
// are a no-op, not an error: the run skips the notification.
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting the report",
			Category:    "Slack",
			Sources:     cli.EnvVars("VULNREPORT_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID or name to notify",
			Category:    "Slack",
			Sources:     cli.EnvVars("VULNREPORT_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// IsConfigured checks if Slack notification can be sent
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// ConfigureOptional creates a Slack service if configured, nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slackSvc.Service {
	if !s.IsConfigured() {
		logger.Warn("Slack not configured - notification will be skipped")
		return nil
	}
	return slackSvc.New(s.OAuthToken)
}

// ChannelID returns the configured channel as a typed ID
func (s *Slack) ChannelID() types.ChannelID {
	return types.ChannelID(s.Channel)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
