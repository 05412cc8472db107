package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"ghsweep/pkg/domain/types"
	"ghsweep/pkg/infra/credential"
)

// Credential is the (owner, token) pair a sweep runs with. Values come from
// flags or environment variables; anything still unset is filled from the
// credential provider chain before the first network call.
type Credential struct {
	owner string
	token types.GitHubToken `masq:"secret"`
}

func (x *Credential) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "GitHub account that owns the repositories",
			Category:    "GitHub",
			Destination: &x.owner,
			Sources:     cli.EnvVars(credential.KeyOwner),
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars(credential.KeyToken),
		},
	}
}

func (x *Credential) Owner() string {
	return x.owner
}

func (x *Credential) SetOwner(owner string) {
	x.owner = owner
}

func (x *Credential) Token() types.GitHubToken {
	return x.token
}

func (x *Credential) SetToken(token types.GitHubToken) {
	x.token = token
}

func (x Credential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("owner", x.owner),
		slog.Int("token.len", len(x.token)),
	)
}
