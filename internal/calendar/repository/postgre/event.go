package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "nurse-manager/internal/calendar/repository"
	"nurse-manager/internal/model"
)

// CreateEvent inserts an event and returns the stored row.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.CalendarEvent, error) {
	const query = `
		INSERT INTO calendar_events (user_id, title, description, event_date, reminder, priority, related_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + eventColumns

	var row eventRow
	err := r.db.GetContext(ctx, &row, query,
		opt.UserID, opt.Title, nullString(opt.Description), opt.EventDate,
		opt.Reminder, string(opt.Priority), nullString(opt.RelatedTo))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.CalendarEvent{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetEvent returns a zero-value event when not found.
func (r *implRepository) GetEvent(ctx context.Context, id int64) (model.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE id = $1`

	var row eventRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CalendarEvent{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEvent"), err)
		return model.CalendarEvent{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.CalendarEvent, error) {
	mods, args := buildListQuery(opt)
	query := `SELECT ` + eventColumns + ` FROM calendar_events ` + mods

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}

	events := make([]model.CalendarEvent, len(rows))
	for i, row := range rows {
		events[i] = row.toModel()
	}
	return events, nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s.RowsAffected: %v", r.dsn("DeleteEvent"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
