package infra

import (
	"ghsweep/pkg/domain/interfaces"
)

type Clients struct {
	githubActions interfaces.GitHubActions
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubActions() interfaces.GitHubActions {
	return x.githubActions
}

func WithGitHubActions(client interfaces.GitHubActions) Option {
	return func(x *Clients) {
		x.githubActions = client
	}
}
