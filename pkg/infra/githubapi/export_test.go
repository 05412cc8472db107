package githubapi

// Export internals for white-box tests.
var (
	NextPageURL = nextPageURL
	StatusError = statusError
)
