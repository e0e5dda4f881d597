package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar day. It renders in the zone it carries, so a roster day
// stored at UTC midnight stays the same day for every client.
type Date time.Time

// MarshalJSON renders DateFormat, or null for the zero time.
func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(DateFormat))
}

// ParseDate parses a DateFormat day as UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, raw, time.UTC)
}

// DateTime is an instant rendered as RFC 3339 in UTC.
type DateTime time.Time

// MarshalJSON renders DateTimeFormat, or null for the zero time.
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(DateTimeFormat))
}
