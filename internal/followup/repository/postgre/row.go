package postgre

import (
	"database/sql"
	"time"

	"nurse-manager/internal/model"
)

const taskColumns = `id, description, date_created, status, priority, assigned_to,
	completed_at, completed_by, completion_notes`

type taskRow struct {
	ID              int64          `db:"id"`
	Description     string         `db:"description"`
	DateCreated     time.Time      `db:"date_created"`
	Status          string         `db:"status"`
	Priority        string         `db:"priority"`
	AssignedTo      sql.NullInt64  `db:"assigned_to"`
	CompletedAt     sql.NullTime   `db:"completed_at"`
	CompletedBy     sql.NullInt64  `db:"completed_by"`
	CompletionNotes sql.NullString `db:"completion_notes"`
}

func (row taskRow) toModel() model.Task {
	t := model.Task{
		ID:              row.ID,
		Description:     row.Description,
		CreatedAt:       row.DateCreated,
		Status:          model.TaskStatus(row.Status),
		Priority:        model.Priority(row.Priority),
		CompletionNotes: row.CompletionNotes.String,
	}
	if row.AssignedTo.Valid {
		v := row.AssignedTo.Int64
		t.AssigneeID = &v
	}
	if row.CompletedAt.Valid {
		v := row.CompletedAt.Time
		t.CompletedAt = &v
	}
	if row.CompletedBy.Valid {
		v := row.CompletedBy.Int64
		t.CompletedBy = &v
	}
	return t
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
