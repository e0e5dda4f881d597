package repository

import (
	"context"

	"nurse-manager/internal/model"
)

// Repository is the composed interface for calendar storage.
type Repository interface {
	EventRepository
}

// EventRepository defines data access for calendar events.
// GetEvent returns a zero-value event (ID == 0) when nothing matches.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.CalendarEvent, error)
	GetEvent(ctx context.Context, id int64) (model.CalendarEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.CalendarEvent, error)
	// DeleteEvent reports whether a row was removed.
	DeleteEvent(ctx context.Context, id int64) (bool, error)
}
