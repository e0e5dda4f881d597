package usecase

import (
	"context"
	"strings"
	"time"

	"nurse-manager/internal/calendar"
	"nurse-manager/internal/calendar/repository"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/gcalendar"
)

func (uc *implUseCase) List(ctx context.Context) ([]model.CalendarEvent, error) {
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List.ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}

func (uc *implUseCase) Upcoming(ctx context.Context) ([]model.CalendarEvent, error) {
	now := uc.now()
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{From: &now, Ascending: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upcoming.ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.CalendarEvent, error) {
	ev, err := uc.repo.GetEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail.GetEvent: %v", err)
		return model.CalendarEvent{}, err
	}
	if ev.ID == 0 {
		return model.CalendarEvent{}, calendar.ErrEventNotFound
	}
	return ev, nil
}

func (uc *implUseCase) Create(ctx context.Context, input calendar.CreateEventInput) (model.CalendarEvent, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.CalendarEvent{}, calendar.ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.IsValid() {
		return model.CalendarEvent{}, calendar.ErrInvalidPriority
	}

	date, err := uc.resolveDate(input)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	reminder := true
	if input.Reminder != nil {
		reminder = *input.Reminder
	}

	ev, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		UserID:      input.UserID,
		Title:       title,
		Description: input.Description,
		EventDate:   date,
		Reminder:    reminder,
		Priority:    priority,
		RelatedTo:   input.RelatedTo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create.CreateEvent: %v", err)
		return model.CalendarEvent{}, err
	}

	uc.mirrorEvent(ctx, ev)
	return ev, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	removed, err := uc.repo.DeleteEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete.DeleteEvent: %v", err)
		return err
	}
	if !removed {
		return calendar.ErrEventNotFound
	}
	return nil
}

// resolveDate prefers the explicit date over the relative phrase.
func (uc *implUseCase) resolveDate(input calendar.CreateEventInput) (time.Time, error) {
	if input.EventDate != nil {
		return *input.EventDate, nil
	}
	if strings.TrimSpace(input.When) == "" {
		return time.Time{}, calendar.ErrDateRequired
	}
	d, err := uc.parser.Parse(input.When, uc.now())
	if err != nil {
		return time.Time{}, calendar.ErrInvalidWhen
	}
	return d, nil
}

// mirrorEvent copies ev to the external calendar and reports the link.
// Failures are logged and never surface to the caller.
func (uc *implUseCase) mirrorEvent(ctx context.Context, ev model.CalendarEvent) (gcalendar.Event, bool) {
	if uc.mirror == nil {
		return gcalendar.Event{}, false
	}

	req := gcalendar.InsertRequest{
		CalendarID:  uc.mcfg.CalendarID,
		Title:       ev.Title,
		Description: ev.Description,
		Start:       ev.EventDate,
		End:         ev.EventDate.Add(calendar.MirrorDuration),
		Timezone:    uc.mcfg.Timezone,
	}
	if ev.Reminder {
		req.ReminderMinutes = uc.mcfg.ReminderMinutes
	}

	out, err := uc.mirror.InsertEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirrorEvent.InsertEvent (non-fatal): %v", err)
		return gcalendar.Event{}, false
	}
	return out, true
}
