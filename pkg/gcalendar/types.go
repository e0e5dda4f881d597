package gcalendar

import "time"

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// Config selects the credentials and target calendar.
type Config struct {
	CredentialsPath string
	// TokenPath holds the OAuth token when CredentialsPath points at
	// desktop-app credentials instead of a service account.
	TokenPath  string
	CalendarID string
}

// InsertRequest is the input for creating a Google Calendar event.
type InsertRequest struct {
	CalendarID  string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string // IANA name, e.g. "America/Chicago"
	// ReminderMinutes adds a popup reminder this many minutes before Start. Zero keeps the calendar default.
	ReminderMinutes int64
}

// Event is the subset of a Google Calendar event the service uses.
type Event struct {
	ID          string
	Title       string
	Description string
	Link        string
	Start       time.Time
	End         time.Time
}

// ListRequest bounds a listing of events.
type ListRequest struct {
	CalendarID string
	From       time.Time
	To         time.Time
	MaxResults int64
}
