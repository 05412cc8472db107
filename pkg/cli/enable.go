package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"ghsweep/pkg/cli/config"
	"ghsweep/pkg/domain/model"
	"ghsweep/pkg/utils/logging"
)

func enableCommand() *cli.Command {
	var (
		cred      config.Credential
		sentryCfg config.Sentry
	)

	return &cli.Command{
		Name:    "enable",
		Aliases: []string{"en"},
		Usage:   "Re-enable all auto-disabled workflows for the owner",
		Flags:   slice.Flatten(cred.Flags(), sentryCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}
			return runEnable(ctx, &cred)
		},
	}
}

func runEnable(ctx context.Context, cred *config.Credential) error {
	ctx, uc, err := newSweep(ctx, cred)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("Starting workflow activation sweep", slog.Any("credential", cred))

	if _, err := uc.EnableAllWorkflows(ctx, &model.EnableAllWorkflowsInput{Owner: cred.Owner()}); err != nil {
		return goerr.Wrap(err, "failed to enable workflows")
	}

	return nil
}
