package repository

import (
	"time"

	"nurse-manager/internal/model"
)

// CreateEventOptions contains the fields for inserting a calendar event.
type CreateEventOptions struct {
	UserID      int64
	Title       string
	Description string
	EventDate   time.Time
	Reminder    bool
	Priority    model.Priority
	RelatedTo   string
}

// ListEventsOptions filters and orders the event listing.
type ListEventsOptions struct {
	// From keeps events whose date is at or after it.
	From *time.Time
	// Ascending orders by event date ascending; the default is newest first.
	Ascending bool
	Limit     int
}
