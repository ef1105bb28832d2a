package search

import "context"

// Provider performs web searches for a given backend.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) (*Response, error)
}
