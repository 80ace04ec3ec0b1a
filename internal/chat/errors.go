package chat

import "errors"

var (
	// ErrEmptyMessage rejects a chat request before any provider call is made.
	ErrEmptyMessage = errors.New("Message is required")

	// ErrProviderUnavailable wraps completion backend failures. The session
	// keeps the user's turn; no assistant turn is recorded.
	ErrProviderUnavailable = errors.New("completion provider unavailable")
)
