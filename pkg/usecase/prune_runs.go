package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"ghsweep/pkg/domain/model"
	"ghsweep/pkg/domain/types"
	"ghsweep/pkg/utils/errutil"
	"ghsweep/pkg/utils/logging"
)

// DefaultKeepRuns is the number of most recent workflow runs retained per
// repository when the caller does not override it.
const DefaultKeepRuns = 50

// PruneWorkflowRuns deletes historical workflow runs beyond the retention
// count in every repository of the owner. Run IDs are monotonically
// increasing, so magnitude stands in for recency: the Keep highest IDs stay,
// the rest go, newest first. Discovery failures abort the sweep; a run that
// fails to delete is recorded and the sweep moves on.
func (x *UseCase) PruneWorkflowRuns(ctx context.Context, input *model.PruneWorkflowRunsInput) ([]model.DeletionOutcome, error) {
	logger := logging.From(ctx)

	if x.clients.GitHubActions() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}
	if input.Owner == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "owner is required")
	}
	if input.Keep < 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "keep must not be negative", goerr.V("keep", input.Keep))
	}

	logger.Info("Removing outdated workflow runs",
		slog.String("owner", input.Owner),
		slog.Int("keep", input.Keep),
	)

	repos, err := x.clients.GitHubActions().ListRepositories(ctx, input.Owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read repositories for owner",
			goerr.V("owner", input.Owner),
		)
	}

	var outcomes []model.DeletionOutcome
	var deleted, failed int

	for _, repo := range repos {
		runIDs, err := x.clients.GitHubActions().ListRunIDs(ctx, input.Owner, repo)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read workflow runs",
				goerr.V("owner", input.Owner),
				goerr.V("repo", repo),
			)
		}

		// Highest (most recent) first.
		sort.Slice(runIDs, func(i, j int) bool { return runIDs[i] > runIDs[j] })

		var toDelete []types.RunID
		if len(runIDs) > input.Keep {
			toDelete = runIDs[input.Keep:]
		}

		logger.Info("Pruning repository",
			slog.String("repo", repo),
			slog.Int("found", len(runIDs)),
			slog.Int("to_delete", len(toDelete)),
		)

		for _, runID := range toDelete {
			outcome := model.DeletionOutcome{Repo: repo, RunID: runID}

			if err := x.clients.GitHubActions().DeleteRun(ctx, input.Owner, repo, runID); err != nil {
				outcome.Status = types.DeletionFailed
				outcome.Reason = err.Error()
				failed++
				errutil.HandleError(ctx, "failed to delete workflow run", goerr.Wrap(err,
					"failed to delete workflow run",
					goerr.V("owner", input.Owner),
					goerr.V("repo", repo),
					goerr.V("run_id", runID),
				))
			} else {
				outcome.Status = types.DeletionDeleted
				deleted++
				logger.Info("Deleted workflow run",
					slog.String("repo", repo),
					slog.Int64("run_id", int64(runID)),
				)
			}

			outcomes = append(outcomes, outcome)
		}
	}

	logger.Info("Completed workflow run pruning sweep",
		slog.String("owner", input.Owner),
		slog.Int("repos", len(repos)),
		slog.Int("deleted", deleted),
		slog.Int("failed", failed),
	)

	return outcomes, nil
}
