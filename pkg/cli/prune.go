package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"ghsweep/pkg/cli/config"
	"ghsweep/pkg/domain/model"
	"ghsweep/pkg/usecase"
	"ghsweep/pkg/utils/logging"
)

func keepFlag(keep *int64) cli.Flag {
	return &cli.Int64Flag{
		Name:        "keep",
		Aliases:     []string{"k"},
		Usage:       "Number of most recent workflow runs to retain per repository",
		Sources:     cli.EnvVars("GHSWEEP_KEEP"),
		Destination: keep,
		Value:       usecase.DefaultKeepRuns,
	}
}

func pruneCommand() *cli.Command {
	var (
		cred      config.Credential
		sentryCfg config.Sentry
		keep      int64
	)

	return &cli.Command{
		Name:    "prune",
		Aliases: []string{"pr"},
		Usage:   "Delete workflow run history beyond the retention count",
		Flags:   slice.Flatten(cred.Flags(), sentryCfg.Flags(), []cli.Flag{keepFlag(&keep)}),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}
			return runPrune(ctx, &cred, keep)
		},
	}
}

func runPrune(ctx context.Context, cred *config.Credential, keep int64) error {
	ctx, uc, err := newSweep(ctx, cred)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("Starting workflow run pruning sweep",
		slog.Any("credential", cred),
		slog.Int64("keep", keep),
	)

	if _, err := uc.PruneWorkflowRuns(ctx, &model.PruneWorkflowRunsInput{Owner: cred.Owner(), Keep: int(keep)}); err != nil {
		return goerr.Wrap(err, "failed to prune workflow runs")
	}

	return nil
}
