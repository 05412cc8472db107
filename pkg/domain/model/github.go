package model

import (
	"fmt"

	"ghsweep/pkg/domain/types"
)

// StatusError is a non-2xx reply from the GitHub API. Message carries the
// server-provided "message" field when the body had one, otherwise the raw
// body or status text.
type StatusError struct {
	StatusCode int
	Message    string
}

func (x *StatusError) Error() string {
	return fmt.Sprintf("github api returned %d: %s", x.StatusCode, x.Message)
}

// ActivationOutcome is the per-workflow result of an activate-all sweep.
type ActivationOutcome struct {
	Repo     string
	Workflow string
	Status   types.ActivationStatus

	// Reason holds the skip reason or the server error message. Empty when
	// the workflow was enabled.
	Reason string
}

// DeletionOutcome is the per-run result of a prune sweep.
type DeletionOutcome struct {
	Repo   string
	RunID  types.RunID
	Status types.DeletionStatus
	Reason string
}

type EnableAllWorkflowsInput struct {
	Owner string
}

type PruneWorkflowRunsInput struct {
	Owner string

	// Keep is the number of most recent runs retained per repository.
	Keep int
}
