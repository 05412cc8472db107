package credential_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"ghsweep/pkg/infra/credential"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestEnvProvider(t *testing.T) {
	t.Run("resolves set variable", func(t *testing.T) {
		t.Setenv("GHSWEEP_TEST_KEY", "from-env")

		value, ok := credential.Env().Lookup("GHSWEEP_TEST_KEY")
		gt.True(t, ok)
		gt.V(t, value).Equal("from-env")
	})

	t.Run("empty variable resolves nothing", func(t *testing.T) {
		t.Setenv("GHSWEEP_TEST_EMPTY", "")

		_, ok := credential.Env().Lookup("GHSWEEP_TEST_EMPTY")
		gt.False(t, ok)
	})
}

func TestEnvFileProvider(t *testing.T) {
	t.Run("reads key=value pairs with comments", func(t *testing.T) {
		path := writeEnvFile(t, "# comment\nFOO=bar\nBAZ=\"quoted\"\n")
		p := credential.EnvFile(path)

		value, ok := p.Lookup("FOO")
		gt.True(t, ok)
		gt.V(t, value).Equal("bar")

		value, ok = p.Lookup("BAZ")
		gt.True(t, ok)
		gt.V(t, value).Equal("quoted")
	})

	t.Run("unknown key resolves nothing", func(t *testing.T) {
		path := writeEnvFile(t, "FOO=bar\n")
		_, ok := credential.EnvFile(path).Lookup("MISSING")
		gt.False(t, ok)
	})

	t.Run("missing file resolves nothing", func(t *testing.T) {
		_, ok := credential.EnvFile("/nonexistent/.env").Lookup("FOO")
		gt.False(t, ok)
	})
}

func TestChain(t *testing.T) {
	t.Run("environment takes precedence over file", func(t *testing.T) {
		t.Setenv("GHSWEEP_CHAIN_KEY", "from-env")
		path := writeEnvFile(t, "GHSWEEP_CHAIN_KEY=from-file\n")

		p := credential.Chain(credential.Env(), credential.EnvFile(path))
		value, ok := p.Lookup("GHSWEEP_CHAIN_KEY")
		gt.True(t, ok)
		gt.V(t, value).Equal("from-env")
	})

	t.Run("falls back to file when env is unset", func(t *testing.T) {
		path := writeEnvFile(t, "GHSWEEP_FALLBACK_KEY=from-file\n")

		p := credential.Chain(credential.Env(), credential.EnvFile(path))
		value, ok := p.Lookup("GHSWEEP_FALLBACK_KEY")
		gt.True(t, ok)
		gt.V(t, value).Equal("from-file")
	})
}

func TestResolve(t *testing.T) {
	t.Run("missing key fails with the key name", func(t *testing.T) {
		_, err := credential.Resolve(credential.Chain(), "SECRET_GITHUB_TOKEN")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("missing required configuration")
	})

	t.Run("resolved key returns value", func(t *testing.T) {
		path := writeEnvFile(t, "SECRET_GITHUB_OWNER=octocat\n")
		value := gt.R1(credential.Resolve(credential.EnvFile(path), "SECRET_GITHUB_OWNER")).NoError(t)
		gt.V(t, value).Equal("octocat")
	})
}
