package postgre

import (
	"context"

	repo "nurse-manager/internal/copilot/repository"
	"nurse-manager/internal/model"
)

func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (model.Message, error) {
	const query = `
		INSERT INTO copilot_messages (conversation_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING ` + messageColumns

	var row messageRow
	if err := r.db.GetContext(ctx, &row, query, opt.ConversationID, string(opt.Role), opt.Content); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

func (r *implRepository) ListMessages(ctx context.Context, conversationID int64) ([]model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM copilot_messages WHERE conversation_id = $1 ORDER BY created_at ASC, id ASC`

	var rows []messageRow
	if err := r.db.SelectContext(ctx, &rows, query, conversationID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}

	out := make([]model.Message, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (r *implRepository) CreatePromptLog(ctx context.Context, opt repo.CreatePromptLogOptions) (model.PromptLog, error) {
	const query = `
		INSERT INTO copilot_prompts (user_id, prompt, response)
		VALUES ($1, $2, $3)
		RETURNING ` + promptColumns

	var row promptRow
	if err := r.db.GetContext(ctx, &row, query, nullUserID(opt.UserID), opt.Prompt, opt.Response); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePromptLog"), err)
		return model.PromptLog{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}
