package ai

import "context"

// Generator is the single boundary the pipeline uses to talk to a
// text-generation service. Implementations absorb all transport and
// service-shape errors and return an empty string when no text could be
// extracted; the caller decides whether that is fatal.
type Generator interface {
	// Generate sends the prompt and returns the best-effort extracted text,
	// or "" on any failure.
	Generate(ctx context.Context, prompt string) string

	// Name returns the provider's name
	Name() string
}
