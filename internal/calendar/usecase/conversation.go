package usecase

import (
	"context"

	"nurse-manager/internal/calendar"
	"nurse-manager/internal/calendar/repository"
)

// ProcessConversation stores the reminder synthesized from a copilot exchange.
func (uc *implUseCase) ProcessConversation(ctx context.Context, input calendar.ProcessConversationInput) (calendar.ProcessConversationOutput, error) {
	if !uc.detector.IsCalendarIntent(input.Prompt, input.Response) {
		return calendar.ProcessConversationOutput{}, nil
	}

	draft := uc.detector.BuildEvent(input.Prompt, input.Response)
	ev, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		UserID:      input.UserID,
		Title:       draft.Title,
		Description: draft.Description,
		EventDate:   draft.EventDate,
		Reminder:    draft.Reminder,
		Priority:    draft.Priority,
		RelatedTo:   draft.RelatedTo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessConversation.CreateEvent: %v", err)
		return calendar.ProcessConversationOutput{}, err
	}
	uc.l.Infof(ctx, "uc.ProcessConversation: created event %d %q for %s", ev.ID, ev.Title, ev.EventDate.Format("2006-01-02"))

	out := calendar.ProcessConversationOutput{Created: true, Event: ev}
	if mirrored, ok := uc.mirrorEvent(ctx, ev); ok {
		out.Mirrored = true
		out.Link = mirrored.Link
	}
	return out, nil
}
