package repository

import (
	"context"

	"nurse-manager/internal/model"
)

// Repository is the composed interface for copilot history.
type Repository interface {
	ConversationRepository
	MessageRepository
	PromptLogRepository
}

// ConversationRepository returns a zero-value Conversation (ID == 0) when nothing matches.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, opt CreateConversationOptions) (model.Conversation, error)
	GetConversation(ctx context.Context, id int64) (model.Conversation, error)
	// ListConversations orders by updated_at descending.
	ListConversations(ctx context.Context, opt ListConversationsOptions) ([]model.Conversation, error)
	TouchConversation(ctx context.Context, id int64) error
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.Message, error)
	// ListMessages orders by created_at ascending.
	ListMessages(ctx context.Context, conversationID int64) ([]model.Message, error)
}

type PromptLogRepository interface {
	CreatePromptLog(ctx context.Context, opt CreatePromptLogOptions) (model.PromptLog, error)
}
