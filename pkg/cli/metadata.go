package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// DetectOwnerFromGit returns the owner of the origin remote of the current
// git checkout. Used as a last resort when no owner is configured.
func DetectOwnerFromGit() (string, error) {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository")
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	// Parse git remote URL (e.g., git@github.com:owner/repo.git or https://github.com/owner/repo.git)
	url := remote.Config().URLs[0]
	var owner string

	if strings.HasPrefix(url, "git@github.com:") {
		// SSH format: git@github.com:owner/repo.git
		parts := strings.TrimPrefix(url, "git@github.com:")
		ownerRepo := strings.Split(strings.TrimSuffix(parts, ".git"), "/")
		if len(ownerRepo) == 2 {
			owner = ownerRepo[0]
		}
	} else if strings.Contains(url, "github.com/") {
		// HTTPS format: https://github.com/owner/repo.git
		parts := strings.Split(url, "github.com/")
		if len(parts) == 2 {
			ownerRepo := strings.Split(strings.TrimSuffix(parts[1], ".git"), "/")
			if len(ownerRepo) == 2 {
				owner = ownerRepo[0]
			}
		}
	}

	if owner == "" {
		return "", goerr.New("failed to parse GitHub owner from git remote URL", goerr.V("url", url))
	}

	return owner, nil
}
