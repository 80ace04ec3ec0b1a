package chat

import (
	"dwed-assistant/internal/planner"
	"dwed-assistant/internal/venue"
)

// Role tags the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. Immutable once created:
// turns are appended to a session, never mutated or reordered.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ResultType discriminates the outward result envelope.
type ResultType string

const (
	ResultVenues        ResultType = "venues"
	ResultEventPlanners ResultType = "event_planners"
	ResultText          ResultType = "text"
)

// --- UseCase Inputs ---

type ChatInput struct {
	SessionID string
	Message   string
}

// --- UseCase Outputs ---

// ChatOutput carries exactly one result shape, selected by Type.
type ChatOutput struct {
	Type     ResultType
	Venues   []venue.Result
	Planners []planner.Planner
	Text     string
}
