package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Report holds optional per-run tuning loaded from a YAML file.
// Everything in it has a default; the flag itself is optional.
type Report struct {
	Path string
}

// Tuning is the YAML schema of the report config file
type Tuning struct {
	// SlackChannel overrides the --slack-channel flag when set
	SlackChannel string `yaml:"slack_channel"`
	// TopProjects caps the ranked list in the Slack notification
	TopProjects int `yaml:"top_projects"`
}

// Flags returns CLI flags for Report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "report-config",
			Usage:       "Optional YAML file tuning the notification (channel, top projects)",
			Category:    "Output",
			Sources:     cli.EnvVars("VULNREPORT_REPORT_CONFIG"),
			Destination: &r.Path,
		},
	}
}

// Load reads the tuning file. A missing flag returns zero-value tuning;
// a configured but unreadable or invalid file is a configuration error.
func (r *Report) Load() (*Tuning, error) {
	var tuning Tuning
	if r.Path == "" {
		return &tuning, nil
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read report config",
			goerr.T(types.ErrTagConfig),
			goerr.V("path", r.Path))
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return nil, goerr.Wrap(err, "failed to parse report config",
			goerr.T(types.ErrTagConfig),
			goerr.V("path", r.Path))
	}
	return &tuning, nil
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", r.Path),
	)
}
