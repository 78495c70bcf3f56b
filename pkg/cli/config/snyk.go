package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
	"github.com/secmon-lab/vulnreport/pkg/service/snyk"
	"github.com/urfave/cli/v3"
)

// Snyk holds source API configuration
type Snyk struct {
	OrgID  string
	Token  string
	APIURL string
}

// Flags returns CLI flags for Snyk configuration
func (s *Snyk) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "org-id",
			Usage:       "Snyk organization ID",
			Category:    "Snyk",
			Sources:     cli.EnvVars("VULNREPORT_ORG_ID", "SNYK_ORG_ID"),
			Destination: &s.OrgID,
		},
		&cli.StringFlag{
			Name:        "snyk-token",
			Usage:       "Snyk API token",
			Category:    "Snyk",
			Sources:     cli.EnvVars("VULNREPORT_SNYK_TOKEN", "SNYK_TOKEN"),
			Destination: &s.Token,
		},
		&cli.StringFlag{
			Name:        "snyk-api-url",
			Usage:       "Snyk REST API base URL",
			Category:    "Snyk",
			Value:       "https://api.snyk.io",
			Sources:     cli.EnvVars("VULNREPORT_SNYK_API_URL"),
			Destination: &s.APIURL,
		},
	}
}

// Validate checks that required credentials are present. Called before
// any network call; a failure here is fatal.
func (s *Snyk) Validate() error {
	if s.OrgID == "" {
		return goerr.New("Snyk organization ID is required",
			goerr.T(types.ErrTagConfig))
	}
	if s.Token == "" {
		return goerr.New("Snyk API token is required",
			goerr.T(types.ErrTagConfig))
	}
	return nil
}

// Configure creates the Snyk API client
func (s *Snyk) Configure() *snyk.Client {
	var opts []snyk.Option
	if s.APIURL != "" {
		opts = append(opts, snyk.WithBaseURL(s.APIURL))
	}
	return snyk.New(s.Token, opts...)
}

// OrganizationID returns the configured organization as a typed ID
func (s *Snyk) OrganizationID() types.OrgID {
	return types.OrgID(s.OrgID)
}

// LogValue returns structured log value
func (s Snyk) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("org_id", s.OrgID),
		slog.Bool("has_token", s.Token != ""),
		slog.String("api_url", s.APIURL),
	)
}
