package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "nurse-manager/internal/copilot/repository"
	"nurse-manager/internal/model"
)

func (r *implRepository) CreateConversation(ctx context.Context, opt repo.CreateConversationOptions) (model.Conversation, error) {
	const query = `
		INSERT INTO copilot_conversations (user_id, title)
		VALUES ($1, $2)
		RETURNING ` + conversationColumns

	var row conversationRow
	if err := r.db.GetContext(ctx, &row, query, opt.UserID, opt.Title); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return model.Conversation{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetConversation returns zero-value Conversation when not found.
func (r *implRepository) GetConversation(ctx context.Context, id int64) (model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM copilot_conversations WHERE id = $1`

	var row conversationRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetConversation"), err)
		return model.Conversation{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

func (r *implRepository) ListConversations(ctx context.Context, opt repo.ListConversationsOptions) ([]model.Conversation, error) {
	query, args := buildListConversationsQuery(opt)

	var rows []conversationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListConversations"), err)
		return nil, repo.ErrFailedToList
	}

	out := make([]model.Conversation, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

// TouchConversation bumps updated_at so the conversation sorts first.
func (r *implRepository) TouchConversation(ctx context.Context, id int64) error {
	const query = `UPDATE copilot_conversations SET updated_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchConversation"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
