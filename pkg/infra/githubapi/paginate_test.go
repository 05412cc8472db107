package githubapi_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"

	"ghsweep/pkg/infra/githubapi"
)

func TestNextPageURL(t *testing.T) {
	testCases := map[string]struct {
		link string
		want string
	}{
		"next and last": {
			link: `<https://api.github.com/user/repos?page=2>; rel="next", <https://api.github.com/user/repos?page=5>; rel="last"`,
			want: "https://api.github.com/user/repos?page=2",
		},
		"next only": {
			link: `<https://api.github.com/user/repos?page=4>; rel="next"`,
			want: "https://api.github.com/user/repos?page=4",
		},
		"prev and last without next": {
			link: `<https://api.github.com/user/repos?page=1>; rel="prev", <https://api.github.com/user/repos?page=5>; rel="last"`,
			want: "",
		},
		"empty header": {
			link: "",
			want: "",
		},
		"garbage header": {
			link: "not a link header",
			want: "",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			header := http.Header{}
			if tc.link != "" {
				header.Set("Link", tc.link)
			}
			gt.V(t, githubapi.NextPageURL(header)).Equal(tc.want)
		})
	}
}

func TestStatusError(t *testing.T) {
	t.Run("uses the message field", func(t *testing.T) {
		err := githubapi.StatusError(404, []byte(`{"message":"Not Found"}`))
		gt.V(t, err.StatusCode).Equal(404)
		gt.V(t, err.Message).Equal("Not Found")
	})

	t.Run("json without message falls back to Error", func(t *testing.T) {
		err := githubapi.StatusError(403, []byte(`{}`))
		gt.V(t, err.Message).Equal("Error")
	})

	t.Run("non-json body falls back to raw text", func(t *testing.T) {
		err := githubapi.StatusError(502, []byte("bad gateway"))
		gt.V(t, err.Message).Equal("bad gateway")
	})

	t.Run("empty body falls back to status text", func(t *testing.T) {
		err := githubapi.StatusError(503, nil)
		gt.V(t, err.Message).Equal("Service Unavailable")
	})
}
