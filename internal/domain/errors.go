package domain

import "errors"

var (
	// ErrAPIKeyMissing is returned before any network call when no
	// completion credential is configured.
	ErrAPIKeyMissing = errors.New("GROQ_API_KEY not found. Please add it to your .env file.")

	// ErrProviderUnavailable is returned when no completion provider has
	// been registered with the router.
	ErrProviderUnavailable = errors.New("completion provider is not available")

	// ErrSessionNotFound is returned for unknown session IDs.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyQuestion is returned when a submission contains only whitespace.
	ErrEmptyQuestion = errors.New("question must not be empty")
)
