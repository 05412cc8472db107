package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrMissingConfig = goerr.New("missing required configuration")
	ErrBadResponse   = goerr.New("unexpected response from GitHub API")
)
