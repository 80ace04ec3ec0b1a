package chat

import "context"

// UseCase orchestrates one conversational request: session append, completion,
// intent routing, matching, and envelope assembly.
type UseCase interface {
	// Chat handles one user message and returns exactly one result envelope.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// Reset clears the conversation history for the given session. Idempotent.
	Reset(ctx context.Context, sessionID string)
}
