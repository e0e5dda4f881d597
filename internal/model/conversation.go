package model

import "time"

// MessageRole identifies who authored a copilot message.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Conversation groups copilot messages.
type Conversation struct {
	ID        int64
	UserID    int64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one turn of a copilot conversation.
type Message struct {
	ID             int64
	ConversationID int64
	Role           MessageRole
	Content        string
	CreatedAt      time.Time
}

// PromptLog is the flat prompt/response history kept alongside conversations.
type PromptLog struct {
	ID        int64
	UserID    int64
	Prompt    string
	Response  string
	Timestamp time.Time
}
