package githubapi

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"ghsweep/pkg/utils/safe"
)

// fetchPages walks a Link-header paginated list endpoint and concatenates the
// items of every page in server order. extract decodes one page body. Any
// page failure discards what was accumulated so far and returns the error;
// callers never see a partial list.
func fetchPages[T any](ctx context.Context, x *Client, url string, extract func(body []byte) ([]T, error)) ([]T, error) {
	var items []T

	for url != "" {
		body, next, err := x.getPage(ctx, url)
		if err != nil {
			return nil, err
		}

		pageItems, err := extract(body)
		if err != nil {
			return nil, goerr.Wrap(err, "unexpected response shape", goerr.V("url", url))
		}

		items = append(items, pageItems...)
		url = next
	}

	return items, nil
}

// getPage fetches one page and returns its body together with the rel="next"
// target, empty when this was the last page.
func (x *Client) getPage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := x.newRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, "", err
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, "", goerr.Wrap(err, "request failed", goerr.V("url", url))
	}
	defer safe.Close(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to read response body", goerr.V("url", url))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", statusError(resp.StatusCode, body)
	}

	return body, nextPageURL(resp.Header), nil
}

// nextPageURL extracts the rel="next" target from a Link header as GitHub
// emits it (RFC 5988), e.g.
//
//	<https://api.github.com/user/repos?page=3>; rel="next", <...>; rel="last"
func nextPageURL(header http.Header) string {
	for _, link := range header.Values("Link") {
		for _, part := range strings.Split(link, ",") {
			segments := strings.Split(strings.TrimSpace(part), ";")
			if len(segments) < 2 {
				continue
			}

			target := strings.Trim(strings.TrimSpace(segments[0]), "<>")
			for _, param := range segments[1:] {
				if strings.TrimSpace(param) == `rel="next"` {
					return target
				}
			}
		}
	}
	return ""
}
