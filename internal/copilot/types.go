package copilot

import "nurse-manager/internal/model"

const (
	// TitleLength is how much of the first prompt names a new conversation.
	TitleLength = 50
	// HistoryLimit caps the previous messages sent to the model.
	HistoryLimit = 10
	// ConversationListLimit caps GET /copilot/conversations.
	ConversationListLimit = 20
)

// --- UseCase Inputs ---

type AskInput struct {
	UserID int64
	Prompt string
	// ConversationID continues an existing conversation; nil starts a new one.
	ConversationID *int64
}

// --- UseCase Outputs ---

type AskOutput struct {
	Response       string
	ConversationID int64
	// Source records which branch answered: "task", "canned", "llm" or "default".
	Source       string
	TaskID       *int64
	EventCreated bool
}

type ConversationOutput struct {
	Conversation model.Conversation
	Messages     []model.Message
}
