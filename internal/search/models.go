// Package search provides location-based activity discovery via a web
// search provider.
package search

import (
	"context"
	"errors"
)

// Search errors.
var (
	ErrProviderUnavailable = errors.New("search provider unavailable")
)

// Result is one search hit.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

// Provider defines the interface for search providers.
type Provider interface {
	// Search runs a query and returns up to maxResults hits, plus the
	// provider's own synthesized answer when available.
	Search(ctx context.Context, query string, maxResults int) (answer string, results []Result, err error)

	// Name returns the provider name for logging.
	Name() string
}
