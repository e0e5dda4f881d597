package http

import (
	"time"

	"nurse-manager/internal/calendar"
	"nurse-manager/internal/model"
)

type createReq struct {
	Title       string     `json:"title"        binding:"required,max=200"`
	Description string     `json:"description"  binding:"max=2000"`
	EventDate   *time.Time `json:"event_date"`
	When        string     `json:"when"         binding:"max=50"`
	Priority    string     `json:"priority"     binding:"omitempty,oneof=low medium high"`
	RelatedTo   string     `json:"related_to"   binding:"max=500"`
	Reminder    *bool      `json:"reminder"`
}

func (r createReq) toInput(userID int64) calendar.CreateEventInput {
	return calendar.CreateEventInput{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		EventDate:   r.EventDate,
		When:        r.When,
		Priority:    model.Priority(r.Priority),
		RelatedTo:   r.RelatedTo,
		Reminder:    r.Reminder,
	}
}

type eventResp struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	EventDate    time.Time `json:"event_date"`
	Reminder     bool      `json:"reminder"`
	ReminderSent bool      `json:"reminder_sent"`
	Priority     string    `json:"priority"`
	RelatedTo    string    `json:"related_to,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newEventResp(ev model.CalendarEvent) eventResp {
	return eventResp{
		ID:           ev.ID,
		UserID:       ev.UserID,
		Title:        ev.Title,
		Description:  ev.Description,
		EventDate:    ev.EventDate,
		Reminder:     ev.Reminder,
		ReminderSent: ev.ReminderSent,
		Priority:     string(ev.Priority),
		RelatedTo:    ev.RelatedTo,
		CreatedAt:    ev.CreatedAt,
	}
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(events []model.CalendarEvent) listResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev)
	}
	return listResp{Events: out}
}

type detailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newDetailResp(ev model.CalendarEvent) detailResp {
	return detailResp{Event: newEventResp(ev)}
}
