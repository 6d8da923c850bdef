// Package generation defines the text-generation provider abstraction used
// to produce itinerary text, suggestions, and tweak revisions.
package generation

import (
	"context"
	"errors"
)

// Generation errors.
var (
	ErrProviderUnavailable = errors.New("generation provider unavailable")
	ErrEmptyCompletion     = errors.New("generation provider returned an empty completion")
)

// Request describes a single chat completion.
type Request struct {
	// System is the system message framing the model's role.
	System string

	// Prompt is the user message.
	Prompt string

	// Temperature controls sampling randomness. Zero means provider default.
	Temperature float64
}

// Provider is implemented by text-generation backends.
type Provider interface {
	// Complete returns the model's text for the request.
	Complete(ctx context.Context, req Request) (string, error)

	// Name returns the provider name for logging.
	Name() string
}
