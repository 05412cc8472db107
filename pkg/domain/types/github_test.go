package types_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"ghsweep/pkg/domain/types"
)

func TestGitHubTokenMasked(t *testing.T) {
	token := types.GitHubToken("ghp_supersecret")

	gt.V(t, token.String()).Equal("***********")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("test", slog.Any("token", token))

	gt.False(t, strings.Contains(buf.String(), "ghp_supersecret"))
	gt.S(t, buf.String()).Contains("***********")
}
