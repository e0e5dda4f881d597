package postgre

import (
	"database/sql"
	"time"

	"nurse-manager/internal/model"
)

const (
	conversationColumns = `id, user_id, title, created_at, updated_at`
	messageColumns      = `id, conversation_id, role, content, created_at`
	promptColumns       = `id, user_id, prompt, response, timestamp`
)

type conversationRow struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row conversationRow) toModel() model.Conversation {
	return model.Conversation{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type messageRow struct {
	ID             int64     `db:"id"`
	ConversationID int64     `db:"conversation_id"`
	Role           string    `db:"role"`
	Content        string    `db:"content"`
	CreatedAt      time.Time `db:"created_at"`
}

func (row messageRow) toModel() model.Message {
	return model.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		Role:           model.MessageRole(row.Role),
		Content:        row.Content,
		CreatedAt:      row.CreatedAt,
	}
}

type promptRow struct {
	ID        int64         `db:"id"`
	UserID    sql.NullInt64 `db:"user_id"`
	Prompt    string        `db:"prompt"`
	Response  string        `db:"response"`
	Timestamp time.Time     `db:"timestamp"`
}

func (row promptRow) toModel() model.PromptLog {
	return model.PromptLog{
		ID:        row.ID,
		UserID:    row.UserID.Int64,
		Prompt:    row.Prompt,
		Response:  row.Response,
		Timestamp: row.Timestamp,
	}
}

func nullUserID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}
