package llm

import "context"

// Provider defines the interface for chat-completion providers
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// DefaultModel returns the model used for completions
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete sends a single user message and returns the reply text.
	// Exactly one blocking call, no retries, no prior turns included.
	Complete(ctx context.Context, question string) (string, error)
}
