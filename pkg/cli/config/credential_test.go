package config_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"ghsweep/pkg/cli/config"
	"ghsweep/pkg/domain/types"
)

func TestCredentialFlags(t *testing.T) {
	cred := &config.Credential{}
	flags := cred.Flags()

	gt.V(t, len(flags)).Equal(2)

	// Verify flag names
	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["owner"])
	gt.True(t, flagNames["token"])
}

func TestCredentialLogValue(t *testing.T) {
	cred := &config.Credential{}
	cred.SetOwner("octocat")
	cred.SetToken(types.GitHubToken("ghp_secret"))

	// The token never appears in log output, only its length.
	value := cred.LogValue()
	gt.S(t, value.String()).Contains("octocat")
	gt.False(t, strings.Contains(value.String(), "ghp_secret"))
}
