package config

import (
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

// Output holds artifact and link configuration
type Output struct {
	Dir     string
	RepoRef string
	RunURL  string
}

// Flags returns CLI flags for Output configuration
func (o *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory for the JSON and Markdown report artifacts",
			Category:    "Output",
			Value:       ".",
			Sources:     cli.EnvVars("VULNREPORT_OUTPUT_DIR"),
			Destination: &o.Dir,
		},
		&cli.StringFlag{
			Name:        "repo-ref",
			Usage:       "Repository reference (org/repo) labelling the triggering automation",
			Category:    "Output",
			Sources:     cli.EnvVars("VULNREPORT_REPO_REF", "GITHUB_REPOSITORY"),
			Destination: &o.RepoRef,
		},
		&cli.StringFlag{
			Name:        "run-url",
			Usage:       "Link to the triggering automation run (e.g. CI job URL)",
			Category:    "Output",
			Sources:     cli.EnvVars("VULNREPORT_RUN_URL"),
			Destination: &o.RunURL,
		},
	}
}

// RunLink returns the link to the triggering automation run. An explicit
// run URL wins; otherwise the repository reference builds an actions link.
func (o *Output) RunLink() string {
	if o.RunURL != "" {
		return o.RunURL
	}
	if o.RepoRef != "" {
		return "https://github.com/" + o.RepoRef + "/actions"
	}
	return ""
}

// JSONPath returns the JSON artifact path
func (o *Output) JSONPath() string {
	return filepath.Join(o.Dir, "vulnreport.json")
}

// MarkdownPath returns the Markdown artifact path
func (o *Output) MarkdownPath() string {
	return filepath.Join(o.Dir, "vulnreport.md")
}

// LogValue returns structured log value
func (o Output) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", o.Dir),
		slog.String("repo_ref", o.RepoRef),
		slog.String("run_url", o.RunURL),
	)
}
