package repository

import "nurse-manager/internal/model"

type CreateConversationOptions struct {
	UserID int64
	Title  string
}

type ListConversationsOptions struct {
	UserID int64
	Limit  int
}

type CreateMessageOptions struct {
	ConversationID int64
	Role           model.MessageRole
	Content        string
}

type CreatePromptLogOptions struct {
	UserID   int64
	Prompt   string
	Response string
}
