package service

import "context"

// ChatCompleter relays a single-turn chat exchange to a large-language-model
// provider. Implementations classify provider failures into the domain error
// taxonomy (auth failure, model not found, generic unavailability).
type ChatCompleter interface {
	// Complete sends the system and user messages and returns the reply text.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)

	// Configured reports whether the provider credentials are present.
	Configured() bool
}
