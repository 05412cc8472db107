package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"ghsweep/pkg/domain/model"
	"ghsweep/pkg/domain/types"
	"ghsweep/pkg/utils/errutil"
	"ghsweep/pkg/utils/logging"
)

// Skip prefixes, checked in order. Matching workflows never reach the API.
const (
	pagesWorkflowPrefix      = "pages-build-deployment"
	dependabotWorkflowPrefix = "dependabot"
)

// skipReason returns why a workflow must not be enabled, or "" when it is
// activatable.
func skipReason(filename string) string {
	switch {
	case strings.HasPrefix(filename, pagesWorkflowPrefix):
		return "cannot be enabled"
	case strings.HasPrefix(filename, dependabotWorkflowPrefix):
		return "managed by Dependabot"
	default:
		return ""
	}
}

// EnableAllWorkflows re-enables every activatable workflow in every
// repository of the owner. Repository and workflow discovery failures abort
// the sweep; a workflow that fails to enable is recorded and the sweep moves
// on. Nothing is remembered between sweeps, so re-running enables
// already-enabled workflows again.
func (x *UseCase) EnableAllWorkflows(ctx context.Context, input *model.EnableAllWorkflowsInput) ([]model.ActivationOutcome, error) {
	logger := logging.From(ctx)

	if x.clients.GitHubActions() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}
	if input.Owner == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "owner is required")
	}

	logger.Info("Activating and maintaining all workflows",
		slog.String("owner", input.Owner),
	)

	repos, err := x.clients.GitHubActions().ListRepositories(ctx, input.Owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read repositories for owner",
			goerr.V("owner", input.Owner),
		)
	}

	var outcomes []model.ActivationOutcome
	var enabled, skipped, failed int

	for _, repo := range repos {
		workflows, err := x.clients.GitHubActions().ListWorkflows(ctx, input.Owner, repo)
		if err != nil {
			// A repository whose workflows cannot be read aborts the whole
			// sweep; there is no partial-success at discovery level.
			return nil, goerr.Wrap(err, "failed to read workflows",
				goerr.V("owner", input.Owner),
				goerr.V("repo", repo),
			)
		}

		for _, filename := range workflows {
			outcome := model.ActivationOutcome{Repo: repo, Workflow: filename}

			if reason := skipReason(filename); reason != "" {
				outcome.Status = types.ActivationSkipped
				outcome.Reason = reason
				skipped++
				logger.Info("Skipped workflow",
					slog.String("repo", repo),
					slog.String("workflow", filename),
					slog.String("reason", reason),
				)
			} else if err := x.clients.GitHubActions().EnableWorkflow(ctx, input.Owner, repo, filename); err != nil {
				outcome.Status = types.ActivationFailed
				outcome.Reason = err.Error()
				failed++
				errutil.HandleError(ctx, "failed to enable workflow", goerr.Wrap(err,
					"failed to enable workflow",
					goerr.V("owner", input.Owner),
					goerr.V("repo", repo),
					goerr.V("workflow", filename),
				))
			} else {
				outcome.Status = types.ActivationEnabled
				enabled++
				logger.Info("Enabled workflow",
					slog.String("repo", repo),
					slog.String("workflow", filename),
				)
			}

			outcomes = append(outcomes, outcome)
		}
	}

	logger.Info("Completed workflow activation sweep",
		slog.String("owner", input.Owner),
		slog.Int("repos", len(repos)),
		slog.Int("enabled", enabled),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
	)

	return outcomes, nil
}
