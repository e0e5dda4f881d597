package calendar

import (
	"context"

	"nurse-manager/internal/model"
	"nurse-manager/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) ([]model.CalendarEvent, error)
	Upcoming(ctx context.Context) ([]model.CalendarEvent, error)
	Detail(ctx context.Context, id int64) (model.CalendarEvent, error)
	Create(ctx context.Context, input CreateEventInput) (model.CalendarEvent, error)
	Delete(ctx context.Context, id int64) error

	// ProcessConversation creates a reminder when the exchange asks for one.
	// Created is false when the exchange carries no calendar intent.
	ProcessConversation(ctx context.Context, input ProcessConversationInput) (ProcessConversationOutput, error)
}

// Detector is the subset of the intent heuristics calendar processing needs.
type Detector interface {
	IsCalendarIntent(prompt, response string) bool
	BuildEvent(prompt, response string) model.CalendarEvent
}

// Mirror copies events to an external calendar.
type Mirror interface {
	InsertEvent(ctx context.Context, req gcalendar.InsertRequest) (gcalendar.Event, error)
}
