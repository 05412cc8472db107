package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"ghsweep/pkg/cli/config"
	"ghsweep/pkg/domain/types"
	"ghsweep/pkg/infra"
	"ghsweep/pkg/infra/credential"
	"ghsweep/pkg/infra/githubapi"
	"ghsweep/pkg/usecase"
	"ghsweep/pkg/utils/logging"
)

// resolveCredential fills unset credential fields from the provider chain
// (environment, then .env files), and for the owner finally from the local
// git checkout. A token that cannot be found anywhere is fatal before any
// network call.
func resolveCredential(ctx context.Context, cred *config.Credential) error {
	chain := credential.DefaultChain()

	if cred.Owner() == "" {
		if value, ok := chain.Lookup(credential.KeyOwner); ok {
			cred.SetOwner(value)
		} else if owner, err := DetectOwnerFromGit(); err == nil {
			logging.From(ctx).Debug("Using owner from git remote", slog.String("owner", owner))
			cred.SetOwner(owner)
		} else {
			return goerr.Wrap(types.ErrMissingConfig, "owner is not configured",
				goerr.V("key", credential.KeyOwner))
		}
	}

	if cred.Token() == "" {
		value, err := credential.Resolve(chain, credential.KeyToken)
		if err != nil {
			return err
		}
		cred.SetToken(types.GitHubToken(value))
	}

	return nil
}

// newSweep prepares the usecase and a context carrying a per-sweep ID.
func newSweep(ctx context.Context, cred *config.Credential) (context.Context, *usecase.UseCase, error) {
	if err := resolveCredential(ctx, cred); err != nil {
		return ctx, nil, err
	}

	ghClient, err := githubapi.New(cred.Token())
	if err != nil {
		return ctx, nil, err
	}

	sweepID, ctx := logging.CtxRequestID(ctx)
	ctx = logging.With(ctx, logging.Default().With(slog.String("sweep_id", sweepID.String())))

	clients := infra.New(infra.WithGitHubActions(ghClient))
	return ctx, usecase.New(clients), nil
}
