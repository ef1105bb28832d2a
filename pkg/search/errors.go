package search

import "errors"

// ErrMissingAPIKey is returned before any network call when no credential
// is configured.
var ErrMissingAPIKey = errors.New("SERPER_API_KEY environment variable is not set")

// RequestError wraps transport-level failures: connection errors,
// timeouts, and non-2xx statuses from the search API.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

// ParseError wraps a malformed JSON response from the search API.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }
