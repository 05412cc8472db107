package types

import "log/slog"

type (
	GitHubToken      string
	RunID            int64
	ActivationStatus string
	DeletionStatus   string
)

const (
	ActivationEnabled ActivationStatus = "enabled"
	ActivationSkipped ActivationStatus = "skipped"
	ActivationFailed  ActivationStatus = "failed"
)

const (
	DeletionDeleted DeletionStatus = "deleted"
	DeletionFailed  DeletionStatus = "failed"
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
