package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"nurse-manager/internal/calendar"
	"nurse-manager/internal/calendar/repository"
	"nurse-manager/internal/intent"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/datemath"
	"nurse-manager/pkg/gcalendar"
	"nurse-manager/pkg/log"
)

var fixedNow = time.Date(2025, 5, 17, 10, 0, 0, 0, time.UTC)

type fakeRepo struct {
	mu     sync.RWMutex
	events map[int64]model.CalendarEvent
	nextID int64
	fail   bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: map[int64]model.CalendarEvent{}}
}

func (f *fakeRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.CalendarEvent, error) {
	if f.fail {
		return model.CalendarEvent{}, repository.ErrFailedToInsert
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ev := model.CalendarEvent{
		ID: f.nextID, UserID: opt.UserID, Title: opt.Title, Description: opt.Description,
		EventDate: opt.EventDate, Reminder: opt.Reminder, Priority: opt.Priority, RelatedTo: opt.RelatedTo,
	}
	f.events[ev.ID] = ev
	return ev, nil
}

func (f *fakeRepo) GetEvent(ctx context.Context, id int64) (model.CalendarEvent, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.events[id], nil
}

func (f *fakeRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	if f.fail {
		return nil, repository.ErrFailedToList
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []model.CalendarEvent
	for _, ev := range f.events {
		if opt.From != nil && ev.EventDate.Before(*opt.From) {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		if opt.Ascending {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[i].EventDate.After(out[j].EventDate)
	})
	return out, nil
}

func (f *fakeRepo) DeleteEvent(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return false, nil
	}
	delete(f.events, id)
	return true, nil
}

type fakeMirror struct {
	calls []gcalendar.InsertRequest
	err   error
}

func (m *fakeMirror) InsertEvent(ctx context.Context, req gcalendar.InsertRequest) (gcalendar.Event, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return gcalendar.Event{}, m.err
	}
	return gcalendar.Event{ID: "g-1", Link: "https://calendar.google.com/e/g-1"}, nil
}

func newUseCase(t *testing.T, repo *fakeRepo, mirror calendar.Mirror) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	detector := intent.New(intent.WithClock(func() time.Time { return fixedNow }))
	uc := New(log.NewNop(), repo, detector, parser, mirror, MirrorConfig{CalendarID: "primary", Timezone: "UTC", ReminderMinutes: 30})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestProcessConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("no intent", func(t *testing.T) {
		repo := newFakeRepo()
		out, err := newUseCase(t, repo, nil).ProcessConversation(ctx, calendar.ProcessConversationInput{
			UserID: 1, Prompt: "who is on nights?", Response: "Twelve nurses.",
		})
		if err != nil || out.Created {
			t.Fatalf("out = %+v, err = %v", out, err)
		}
		if len(repo.events) != 0 {
			t.Error("no event should be stored")
		}
	})

	t.Run("check in reminder", func(t *testing.T) {
		repo := newFakeRepo()
		mirror := &fakeMirror{}
		out, err := newUseCase(t, repo, mirror).ProcessConversation(ctx, calendar.ProcessConversationInput{
			UserID:   3,
			Prompt:   "remind me to check in with Sarah Chen in 2 weeks",
			Response: "I've added this to your calendar.",
		})
		if err != nil {
			t.Fatal(err)
		}
		if !out.Created || out.Event.Title != "Check in with Sarah Chen" || out.Event.UserID != 3 {
			t.Errorf("event = %+v", out.Event)
		}
		if !out.Event.EventDate.Equal(fixedNow.AddDate(0, 0, 14)) {
			t.Errorf("date = %v", out.Event.EventDate)
		}
		if !out.Mirrored || out.Link == "" {
			t.Errorf("mirror result = %+v", out)
		}
		if len(mirror.calls) != 1 || mirror.calls[0].End.Sub(mirror.calls[0].Start) != calendar.MirrorDuration || mirror.calls[0].ReminderMinutes != 30 {
			t.Errorf("mirror calls = %+v", mirror.calls)
		}
	})

	t.Run("mirror failure is ignored", func(t *testing.T) {
		repo := newFakeRepo()
		out, err := newUseCase(t, repo, &fakeMirror{err: errors.New("quota")}).ProcessConversation(ctx, calendar.ProcessConversationInput{
			UserID: 1, Prompt: "schedule a huddle tomorrow",
		})
		if err != nil || !out.Created || out.Mirrored {
			t.Fatalf("out = %+v, err = %v", out, err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		repo := newFakeRepo()
		repo.fail = true
		if _, err := newUseCase(t, repo, nil).ProcessConversation(ctx, calendar.ProcessConversationInput{Prompt: "remind me"}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	explicit := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	off := false

	tests := []struct {
		name     string
		input    calendar.CreateEventInput
		wantErr  error
		wantDate time.Time
	}{
		{name: "explicit date", input: calendar.CreateEventInput{Title: "Audit", EventDate: &explicit, When: "tomorrow"}, wantDate: explicit},
		{name: "relative when", input: calendar.CreateEventInput{Title: "Audit", When: "in 3 days"}, wantDate: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)},
		{name: "next weekday", input: calendar.CreateEventInput{Title: "Audit", When: "next monday", Reminder: &off}, wantDate: time.Date(2025, 5, 19, 0, 0, 0, 0, time.UTC)},
		{name: "missing title", input: calendar.CreateEventInput{When: "today"}, wantErr: calendar.ErrTitleRequired},
		{name: "missing date", input: calendar.CreateEventInput{Title: "Audit"}, wantErr: calendar.ErrDateRequired},
		{name: "bad when", input: calendar.CreateEventInput{Title: "Audit", When: "in many days"}, wantErr: calendar.ErrInvalidWhen},
		{name: "bad priority", input: calendar.CreateEventInput{Title: "Audit", When: "today", Priority: "asap"}, wantErr: calendar.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := newUseCase(t, newFakeRepo(), nil).Create(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if !ev.EventDate.Equal(tt.wantDate) {
				t.Errorf("date = %v, want %v", ev.EventDate, tt.wantDate)
			}
			if ev.Priority != model.PriorityMedium {
				t.Errorf("priority = %q", ev.Priority)
			}
			if ev.Reminder != (tt.input.Reminder == nil) {
				t.Errorf("reminder = %v", ev.Reminder)
			}
		})
	}
}

func TestListUpcomingDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := newUseCase(t, repo, nil)

	for _, d := range []time.Time{fixedNow.AddDate(0, 0, -1), fixedNow.AddDate(0, 0, 2), fixedNow.AddDate(0, 0, 1)} {
		date := d
		if _, err := uc.Create(ctx, calendar.CreateEventInput{Title: "x", EventDate: &date}); err != nil {
			t.Fatal(err)
		}
	}

	all, _ := uc.List(ctx)
	if len(all) != 3 || !all[0].EventDate.After(all[1].EventDate) {
		t.Errorf("List not newest first: %+v", all)
	}

	upcoming, _ := uc.Upcoming(ctx)
	if len(upcoming) != 2 || !upcoming[0].EventDate.Before(upcoming[1].EventDate) {
		t.Errorf("Upcoming = %+v", upcoming)
	}

	if ev, err := uc.Detail(ctx, 2); err != nil || ev.ID != 2 {
		t.Errorf("Detail = %+v, %v", ev, err)
	}
	if err := uc.Delete(ctx, 1); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, 1); !errors.Is(err, calendar.ErrEventNotFound) {
		t.Errorf("second Delete err = %v", err)
	}
	if _, err := uc.Detail(ctx, 1); !errors.Is(err, calendar.ErrEventNotFound) {
		t.Errorf("Detail after delete err = %v", err)
	}
}
