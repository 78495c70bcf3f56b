package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vulnreport/pkg/cli/config"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
)

func TestReportLoad(t *testing.T) {
	t.Run("no file configured", func(t *testing.T) {
		cfg := config.Report{}
		tuning, err := cfg.Load()
		gt.NoError(t, err)
		gt.Equal(t, tuning.SlackChannel, "")
		gt.Equal(t, tuning.TopProjects, 0)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.yml")
		gt.NoError(t, os.WriteFile(path, []byte("slack_channel: C999\ntop_projects: 5\n"), 0o644))

		cfg := config.Report{Path: path}
		tuning, err := cfg.Load()
		gt.NoError(t, err)
		gt.Equal(t, tuning.SlackChannel, "C999")
		gt.Equal(t, tuning.TopProjects, 5)
	})

	t.Run("missing file is a config error", func(t *testing.T) {
		cfg := config.Report{Path: filepath.Join(t.TempDir(), "absent.yml")}
		_, err := cfg.Load()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagConfig))
	})

	t.Run("invalid yaml is a config error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yml")
		gt.NoError(t, os.WriteFile(path, []byte(":\n\t- oops"), 0o644))

		cfg := config.Report{Path: path}
		_, err := cfg.Load()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagConfig))
	})
}
