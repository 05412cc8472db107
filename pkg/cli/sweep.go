package cli

import (
	"context"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"ghsweep/pkg/cli/config"
)

// sweepCommand runs both maintenance passes: activation first, then pruning.
// Each pass re-discovers repositories on its own.
func sweepCommand() *cli.Command {
	var (
		cred      config.Credential
		sentryCfg config.Sentry
		keep      int64
	)

	return &cli.Command{
		Name:  "sweep",
		Usage: "Re-enable workflows and prune old run history in one pass",
		Flags: slice.Flatten(cred.Flags(), sentryCfg.Flags(), []cli.Flag{keepFlag(&keep)}),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}
			if err := runEnable(ctx, &cred); err != nil {
				return err
			}
			return runPrune(ctx, &cred, keep)
		},
	}
}
