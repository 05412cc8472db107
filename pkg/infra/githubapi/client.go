package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"ghsweep/pkg/domain/interfaces"
	"ghsweep/pkg/domain/model"
	"ghsweep/pkg/domain/types"
	"ghsweep/pkg/utils/logging"
	"ghsweep/pkg/utils/safe"
)

const (
	defaultBaseURL = "https://api.github.com"
	acceptHeader   = "application/vnd.github.v3+json"

	// GitHub caps per_page at 100; the maximum keeps the request count low.
	perPage = 100

	requestTimeout = 30 * time.Second
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	token      types.GitHubToken
	baseURL    string
	httpClient HTTPClient
}

var _ interfaces.GitHubActions = (*Client)(nil)

type Option func(*Client)

// WithBaseURL overrides the API origin, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	client := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) newRequest(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", url))
	}
	req.Header.Set("Authorization", "Bearer "+string(x.token))
	req.Header.Set("Accept", acceptHeader)
	return req, nil
}

// do issues one request and returns the status code with the raw body.
// Transport failures (including the 30s timeout) are wrapped as-is so the
// caller can tell them apart from API rejections.
func (x *Client) do(ctx context.Context, method, url string) (int, []byte, error) {
	req, err := x.newRequest(ctx, method, url)
	if err != nil {
		return 0, nil, err
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "request failed", goerr.V("method", method), goerr.V("url", url))
	}
	defer safe.Close(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to read response body", goerr.V("url", url))
	}

	return resp.StatusCode, body, nil
}

// statusError converts a non-2xx reply into a StatusError carrying the
// server-provided message, falling back to "Error" when the JSON body has no
// message field, and to the raw body or status text when it is not JSON.
func statusError(statusCode int, body []byte) *model.StatusError {
	var payload struct {
		Message string `json:"message"`
	}

	var message string
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Message
		if message == "" {
			message = "Error"
		}
	} else {
		message = strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(statusCode)
		}
	}

	return &model.StatusError{StatusCode: statusCode, Message: message}
}

type repoListItem struct {
	Name string `json:"name"`
}

func (x *Client) ListRepositories(ctx context.Context, owner string) ([]string, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=%d", x.baseURL, owner, perPage)

	names, err := fetchPages(ctx, x, url, func(body []byte) ([]string, error) {
		var items []repoListItem
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, goerr.Wrap(types.ErrBadResponse, "repository list is not an array", goerr.V("cause", err.Error()))
		}

		names := make([]string, 0, len(items))
		for _, item := range items {
			if item.Name == "" {
				return nil, goerr.Wrap(types.ErrBadResponse, "repository entry has no name")
			}
			names = append(names, item.Name)
		}
		return names, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read repositories", goerr.V("owner", owner))
	}

	logging.From(ctx).Info("Found repositories",
		slog.String("owner", owner),
		slog.Int("count", len(names)),
	)

	return names, nil
}

type workflowListPage struct {
	Workflows []struct {
		Path string `json:"path"`
	} `json:"workflows"`
}

func (x *Client) ListWorkflows(ctx context.Context, owner, repo string) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/workflows?per_page=%d", x.baseURL, owner, repo, perPage)

	filenames, err := fetchPages(ctx, x, url, func(body []byte) ([]string, error) {
		var page workflowListPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, goerr.Wrap(types.ErrBadResponse, "workflow list is malformed", goerr.V("cause", err.Error()))
		}

		filenames := make([]string, 0, len(page.Workflows))
		for _, item := range page.Workflows {
			if item.Path == "" {
				return nil, goerr.Wrap(types.ErrBadResponse, "workflow entry has no path")
			}
			filenames = append(filenames, path.Base(item.Path))
		}
		return filenames, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read workflows", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	logging.From(ctx).Info("Found workflows",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.Int("count", len(filenames)),
	)

	return filenames, nil
}

type runListPage struct {
	WorkflowRuns []struct {
		ID types.RunID `json:"id"`
	} `json:"workflow_runs"`
}

func (x *Client) ListRunIDs(ctx context.Context, owner, repo string) ([]types.RunID, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/runs?per_page=%d", x.baseURL, owner, repo, perPage)

	runIDs, err := fetchPages(ctx, x, url, func(body []byte) ([]types.RunID, error) {
		var page runListPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, goerr.Wrap(types.ErrBadResponse, "workflow run list is malformed", goerr.V("cause", err.Error()))
		}

		runIDs := make([]types.RunID, 0, len(page.WorkflowRuns))
		for _, item := range page.WorkflowRuns {
			if item.ID == 0 {
				return nil, goerr.Wrap(types.ErrBadResponse, "workflow run entry has no id")
			}
			runIDs = append(runIDs, item.ID)
		}
		return runIDs, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read workflow runs", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	logging.From(ctx).Info("Found workflow runs",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.Int("count", len(runIDs)),
	)

	return runIDs, nil
}

// EnableWorkflow re-enables one workflow. The PUT is idempotent; enabling an
// already-enabled workflow succeeds.
func (x *Client) EnableWorkflow(ctx context.Context, owner, repo, filename string) error {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/workflows/%s/enable", x.baseURL, owner, repo, filename)

	statusCode, body, err := x.do(ctx, http.MethodPut, url)
	if err != nil {
		return goerr.Wrap(err, "failed to enable workflow",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("workflow", filename))
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return goerr.Wrap(statusError(statusCode, body), "failed to enable workflow",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("workflow", filename))
	}

	return nil
}

// DeleteRun removes one historical workflow run. Only 204 counts as success;
// a run deleted by an earlier sweep comes back as 404.
func (x *Client) DeleteRun(ctx context.Context, owner, repo string, runID types.RunID) error {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/runs/%d", x.baseURL, owner, repo, runID)

	statusCode, body, err := x.do(ctx, http.MethodDelete, url)
	if err != nil {
		return goerr.Wrap(err, "failed to delete workflow run",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("run_id", runID))
	}
	if statusCode != http.StatusNoContent {
		return goerr.Wrap(statusError(statusCode, body), "failed to delete workflow run",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("run_id", runID))
	}

	return nil
}
