package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"ghsweep/pkg/domain/mock"
	"ghsweep/pkg/domain/model"
	"ghsweep/pkg/domain/types"
	"ghsweep/pkg/infra"
	"ghsweep/pkg/usecase"
)

func TestPruneWorkflowRuns_RetainsNewest(t *testing.T) {
	ctx := context.Background()

	// 73 runs with IDs 1..73 and keep=50: IDs 1..23 go, newest first.
	runIDs := make([]types.RunID, 0, 73)
	for id := types.RunID(1); id <= 73; id++ {
		runIDs = append(runIDs, id)
	}

	mockGH := &mock.GitHubActionsMock{
		ListRepositoriesFunc: func(ctx context.Context, owner string) ([]string, error) {
			return []string{"lib_x"}, nil
		},
		ListRunIDsFunc: func(ctx context.Context, owner, repo string) ([]types.RunID, error) {
			return runIDs, nil
		},
		DeleteRunFunc: func(ctx context.Context, owner, repo string, runID types.RunID) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubActions(mockGH)))

	outcomes := gt.R1(uc.PruneWorkflowRuns(ctx, &model.PruneWorkflowRunsInput{Owner: "octocat", Keep: 50})).NoError(t)

	gt.A(t, outcomes).Length(23)

	calls := mockGH.DeleteRunCalls()
	gt.A(t, calls).Length(23)
	for i, call := range calls {
		gt.V(t, call.RunID).Equal(types.RunID(23 - i))
	}
}

func TestPruneWorkflowRuns_KeepZeroDeletesAll(t *testing.T) {
	ctx := context.Background()

	mockGH := &mock.GitHubActionsMock{
		ListRepositoriesFunc: func(ctx context.Context, owner string) ([]string, error) {
			return []string{"lib_x"}, nil
		},
		ListRunIDsFunc: func(ctx context.Context, owner, repo string) ([]types.RunID, error) {
			return []types.RunID{5, 9, 2}, nil
		},
		DeleteRunFunc: func(ctx context.Context, owner, repo string, runID types.RunID) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubActions(mockGH)))

	outcomes := gt.R1(uc.PruneWorkflowRuns(ctx, &model.PruneWorkflowRunsInput{Owner: "octocat", Keep: 0})).NoError(t)

	gt.A(t, outcomes).Length(3)

	calls := mockGH.DeleteRunCalls()
	gt.A(t, calls).Length(3)
	gt.V(t, calls[0].RunID).Equal(types.RunID(9))
	gt.V(t, calls[1].RunID).Equal(types.RunID(5))
	gt.V(t, calls[2].RunID).Equal(types.RunID(2))
}

func TestPruneWorkflowRuns_FewerThanKeep(t *testing.T) {
	ctx := context.Background()

	mockGH := &mock.GitHubActionsMock{
		ListRepositoriesFunc: func(ctx context.Context, owner string) ([]string, error) {
			return []string{"lib_x"}, nil
		},
		ListRunIDsFunc: func(ctx context.Context, owner, repo string) ([]types.RunID, error) {
			return []types.RunID{1, 2, 3}, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubActions(mockGH)))

	outcomes := gt.R1(uc.PruneWorkflowRuns(ctx, &model.PruneWorkflowRunsInput{Owner: "octocat", Keep: 50})).NoError(t)

	gt.A(t, outcomes).Length(0)
	gt.A(t, mockGH.DeleteRunCalls()).Length(0)
}

func TestPruneWorkflowRuns_ItemFailureContinues(t *testing.T) {
	ctx := context.Background()

	mockGH := &mock.GitHubActionsMock{
		ListRepositoriesFunc: func(ctx context.Context, owner string) ([]string, error) {
			return []string{"lib_x"}, nil
		},
		ListRunIDsFunc: func(ctx context.Context, owner, repo string) ([]types.RunID, error) {
			return []types.RunID{1, 2, 3}, nil
		},
		DeleteRunFunc: func(ctx context.Context, owner, repo string, runID types.RunID) error {
			if runID == 2 {
				return &model.StatusError{StatusCode: 404, Message: "Not Found"}
			}
			return nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubActions(mockGH)))

	outcomes := gt.R1(uc.PruneWorkflowRuns(ctx, &model.PruneWorkflowRunsInput{Owner: "octocat", Keep: 0})).NoError(t)

	gt.A(t, outcomes).Length(3)
	gt.V(t, outcomes[0].Status).Equal(types.DeletionDeleted)
	gt.V(t, outcomes[1].Status).Equal(types.DeletionFailed)
	gt.S(t, outcomes[1].Reason).Contains("Not Found")
	gt.V(t, outcomes[2].Status).Equal(types.DeletionDeleted)
	gt.A(t, mockGH.DeleteRunCalls()).Length(3)
}

func TestPruneWorkflowRuns_RunListFailureAbortsSweep(t *testing.T) {
	ctx := context.Background()

	mockGH := &mock.GitHubActionsMock{
		ListRepositoriesFunc: func(ctx context.Context, owner string) ([]string, error) {
			return []string{"broken", "healthy"}, nil
		},
		ListRunIDsFunc: func(ctx context.Context, owner, repo string) ([]types.RunID, error) {
			return nil, &model.StatusError{StatusCode: 500, Message: "boom"}
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHubActions(mockGH)))

	_, err := uc.PruneWorkflowRuns(ctx, &model.PruneWorkflowRunsInput{Owner: "octocat", Keep: 50})
	gt.Error(t, err)
	gt.A(t, mockGH.ListRunIDsCalls()).Length(1)
	gt.A(t, mockGH.DeleteRunCalls()).Length(0)
}

func TestPruneWorkflowRuns_NegativeKeep(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(infra.New(infra.WithGitHubActions(&mock.GitHubActionsMock{})))

	_, err := uc.PruneWorkflowRuns(ctx, &model.PruneWorkflowRunsInput{Owner: "octocat", Keep: -1})
	gt.Error(t, err)
}
