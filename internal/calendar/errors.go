package calendar

import "errors"

var (
	ErrEventNotFound   = errors.New("calendar event not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrDateRequired    = errors.New("event_date or when is required")
	ErrInvalidWhen     = errors.New("when is not a recognised relative date")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
)
