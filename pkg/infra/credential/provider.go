package credential

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/subosito/gotenv"

	"ghsweep/pkg/domain/types"
)

// Keys resolved for a sweep. The names match the secrets GitHub Actions
// injects, so CI and local runs share one configuration.
const (
	KeyOwner = "SECRET_GITHUB_OWNER"
	KeyToken = "SECRET_GITHUB_TOKEN"
)

// Provider looks up one configuration value. Implementations are read-only
// for the duration of a sweep.
type Provider interface {
	Lookup(key string) (string, bool)
}

// Env returns a provider backed by process environment variables.
func Env() Provider {
	return envProvider{}
}

type envProvider struct{}

func (envProvider) Lookup(key string) (string, bool) {
	value := os.Getenv(key)
	return value, value != ""
}

// EnvFile returns a provider backed by a key=value dotenv file. A missing or
// unreadable file resolves nothing.
func EnvFile(path string) Provider {
	return fileProvider{path: path}
}

type fileProvider struct {
	path string
}

func (x fileProvider) Lookup(key string) (string, bool) {
	values, err := gotenv.Read(filepath.Clean(x.path))
	if err != nil {
		return "", false
	}
	value, ok := values[key]
	return value, ok && value != ""
}

// Chain tries each provider in order and returns the first hit.
func Chain(providers ...Provider) Provider {
	return chainProvider(providers)
}

type chainProvider []Provider

func (x chainProvider) Lookup(key string) (string, bool) {
	for _, p := range x {
		if value, ok := p.Lookup(key); ok {
			return value, ok
		}
	}
	return "", false
}

// DefaultChain resolves from the process environment first, then .env files
// in the working directory, next to the executable, and in the home
// directory, in that order.
func DefaultChain() Provider {
	providers := []Provider{Env()}
	if wd, err := os.Getwd(); err == nil {
		providers = append(providers, EnvFile(filepath.Join(wd, ".env")))
	}
	if exe, err := os.Executable(); err == nil {
		providers = append(providers, EnvFile(filepath.Join(filepath.Dir(exe), ".env")))
	}
	if home, err := os.UserHomeDir(); err == nil {
		providers = append(providers, EnvFile(filepath.Join(home, ".env")))
	}
	return Chain(providers...)
}

// Resolve returns the value for key, or an error naming the missing key.
func Resolve(p Provider, key string) (string, error) {
	if value, ok := p.Lookup(key); ok {
		return value, nil
	}
	return "", goerr.Wrap(types.ErrMissingConfig, "configuration value not found", goerr.V("key", key))
}
