package cli_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"ghsweep/pkg/cli"
)

func TestDetectOwnerFromGit(t *testing.T) {
	owner, err := cli.DetectOwnerFromGit()
	if err != nil {
		t.Skipf("Not in a git repository with GitHub origin: %v", err)
	}

	gt.V(t, owner).NotEqual("")
}
