package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/vulnreport/pkg/cli/config"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
	"github.com/secmon-lab/vulnreport/pkg/renderer"
	"github.com/secmon-lab/vulnreport/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		snykCfg   config.Snyk
		slackCfg  config.Slack
		outputCfg config.Output
		reportCfg config.Report
	)

	flags := joinFlags(
		snykCfg.Flags(),
		slackCfg.Flags(),
		outputCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Fetch open issues, build the report and emit all outputs",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			// All configuration errors must surface before any
			// network call
			if err := snykCfg.Validate(); err != nil {
				return err
			}
			tuning, err := reportCfg.Load()
			if err != nil {
				return err
			}
			if tuning.SlackChannel != "" {
				slackCfg.Channel = tuning.SlackChannel
			}

			logger.Info("Starting vulnerability report run",
				slog.String("run_id", types.NewRunID().String()),
				slog.Any("snyk", snykCfg),
				slog.Any("slack", slackCfg),
				slog.Any("output", outputCfg),
			)

			reportUC := usecase.NewReport(snykCfg.Configure())
			report, err := reportUC.Generate(ctx, snykCfg.OrganizationID())
			if err != nil {
				return err
			}

			renderer.Console(os.Stdout, report)

			if err := renderer.WriteJSON(outputCfg.JSONPath(), report); err != nil {
				return err
			}
			mdFile, err := os.Create(outputCfg.MarkdownPath())
			if err != nil {
				return err
			}
			renderer.Markdown(mdFile, report)
			if err := mdFile.Close(); err != nil {
				return err
			}
			logger.Info("report artifacts written",
				slog.String("json", outputCfg.JSONPath()),
				slog.String("markdown", outputCfg.MarkdownPath()),
			)

			notifier := slackCfg.ConfigureOptional(logger)
			if notifier == nil {
				return nil
			}

			params := usecase.NotifyParams{
				Channel: slackCfg.ChannelID(),
				RunURL:  outputCfg.RunLink(),
				TopN:    tuning.TopProjects,
			}
			if err := usecase.Notify(ctx, notifier, report, params); err != nil {
				// Notification failure does not fail the run; the
				// console and file outputs are already complete
				logger.Warn("completed with notification failure",
					slog.Any("error", err))
				return nil
			}
			logger.Info("notification sent",
				slog.String("channel", slackCfg.Channel))
			return nil
		},
	}
}
