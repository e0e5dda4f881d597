package model

import "time"

// CalendarEvent is a reminder or appointment, usually synthesized from a copilot exchange.
type CalendarEvent struct {
	ID           int64
	UserID       int64
	Title        string
	Description  string
	EventDate    time.Time
	Reminder     bool
	ReminderSent bool
	Priority     Priority
	RelatedTo    string // comma-joined names, not validated against the roster
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
