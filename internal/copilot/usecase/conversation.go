package usecase

import (
	"context"

	"nurse-manager/internal/copilot"
	"nurse-manager/internal/copilot/repository"
	"nurse-manager/internal/model"
)

// Conversations returns the user's most recently active conversations.
func (uc *implUseCase) Conversations(ctx context.Context, userID int64) ([]model.Conversation, error) {
	convs, err := uc.repo.ListConversations(ctx, repository.ListConversationsOptions{
		UserID: userID,
		Limit:  copilot.ConversationListLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Conversations: %v", err)
		return nil, err
	}
	return convs, nil
}

// Conversation returns one of the user's conversations with its messages in order.
func (uc *implUseCase) Conversation(ctx context.Context, userID, conversationID int64) (copilot.ConversationOutput, error) {
	conv, err := uc.ownedConversation(ctx, userID, conversationID)
	if err != nil {
		return copilot.ConversationOutput{}, err
	}

	msgs, err := uc.repo.ListMessages(ctx, conv.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Conversation.ListMessages: %v", err)
		return copilot.ConversationOutput{}, err
	}
	return copilot.ConversationOutput{Conversation: conv, Messages: msgs}, nil
}

// ownedConversation hides other users' conversations behind ErrConversationNotFound.
func (uc *implUseCase) ownedConversation(ctx context.Context, userID, conversationID int64) (model.Conversation, error) {
	conv, err := uc.repo.GetConversation(ctx, conversationID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ownedConversation: %v", err)
		return model.Conversation{}, err
	}
	if conv.ID == 0 || conv.UserID != userID {
		return model.Conversation{}, copilot.ErrConversationNotFound
	}
	return conv, nil
}
