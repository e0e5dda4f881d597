package postgre

import (
	"database/sql"
	"time"

	"nurse-manager/internal/model"
)

const eventColumns = `id, user_id, title, description, event_date, reminder, reminder_sent,
	priority, related_to, created_at, updated_at`

type eventRow struct {
	ID           int64          `db:"id"`
	UserID       int64          `db:"user_id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	EventDate    time.Time      `db:"event_date"`
	Reminder     bool           `db:"reminder"`
	ReminderSent bool           `db:"reminder_sent"`
	Priority     string         `db:"priority"`
	RelatedTo    sql.NullString `db:"related_to"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r eventRow) toModel() model.CalendarEvent {
	return model.CalendarEvent{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		Description:  r.Description.String,
		EventDate:    r.EventDate,
		Reminder:     r.Reminder,
		ReminderSent: r.ReminderSent,
		Priority:     model.Priority(r.Priority),
		RelatedTo:    r.RelatedTo.String,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
