package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubActions

import (
	"context"

	"ghsweep/pkg/domain/types"
)

// GitHubActions covers the five GitHub REST calls the sweeps need. List
// operations return the full result set across all pages.
type GitHubActions interface {
	ListRepositories(ctx context.Context, owner string) ([]string, error)
	ListWorkflows(ctx context.Context, owner, repo string) ([]string, error)
	ListRunIDs(ctx context.Context, owner, repo string) ([]types.RunID, error)
	EnableWorkflow(ctx context.Context, owner, repo, filename string) error
	DeleteRun(ctx context.Context, owner, repo string, runID types.RunID) error
}
