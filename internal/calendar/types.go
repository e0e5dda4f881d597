package calendar

import (
	"time"

	"nurse-manager/internal/model"
)

// MirrorDuration is the length of the slot booked on the external calendar.
const MirrorDuration = 30 * time.Minute

// --- UseCase Inputs ---

// CreateEventInput needs either EventDate or When. When is a relative phrase
// such as "tomorrow" or "in 2 weeks" resolved against the current time.
type CreateEventInput struct {
	UserID      int64
	Title       string
	Description string
	EventDate   *time.Time
	When        string
	Priority    model.Priority
	RelatedTo   string
	Reminder    *bool
}

// ProcessConversationInput is one finished copilot exchange.
type ProcessConversationInput struct {
	UserID   int64
	Prompt   string
	Response string
}

// --- UseCase Outputs ---

type ProcessConversationOutput struct {
	Created bool
	Event   model.CalendarEvent
	// Mirrored is true when the event was also written to Google Calendar; Link is its URL.
	Mirrored bool
	Link     string
}
