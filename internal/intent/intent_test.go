package intent_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"nurse-manager/internal/intent"
	"nurse-manager/internal/model"
)

var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newDetector() *intent.Detector {
	return intent.New(intent.WithClock(func() time.Time { return fixedNow }))
}

func TestIsCompletionIntent(t *testing.T) {
	d := newDetector()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"mark task as complete", "Please mark task as complete", true},
		{"upper case", "MARK TASK AS COMPLETE now", true},
		{"task completed", "the staffing review task completed yesterday", true},
		{"finished task", "I finished task 3", true},
		{"done with task", "I'm done with task #2", true},
		{"take care of", "I'll take care of the supply order", true},
		{"fixed the issue", "we fixed the issue with the pump", true},
		{"embedded substring", "remarkable: mark as completely settled", true},
		{"mark phrase with object", "mark equipment request as complete", true},
		{"mark phrase with id", "mark task #5 as completed", true},
		{"mark as done", "Mark the PTO review as done.", true},
		{"unrelated", "How is the ICU staffed tonight?", false},
		{"show tasks", "show me the tasks", false},
		{"create task", "create a new task", false},
		{"update task", "update task description", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsCompletionIntent(tt.text); got != tt.want {
				t.Errorf("IsCompletionIntent(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractReference(t *testing.T) {
	d := newDetector()

	tests := []struct {
		name     string
		text     string
		wantID   *int64
		wantDesc string
	}{
		{name: "hash id", text: "mark task #5 as complete", wantID: ptr(5)},
		{name: "id beats description", text: "mark task #5 equipment request as complete", wantID: ptr(5)},
		{name: "bare hash", text: "close #12 please, it is done with task", wantID: ptr(12)},
		{name: "bare task number", text: "finished task 42", wantID: ptr(42)},
		{name: "task id", text: "mark task id 7 as done", wantID: ptr(7)},
		{name: "task number", text: "Task number 9 is complete", wantID: ptr(9)},
		{name: "zero id", text: "mark task #0 as complete", wantID: ptr(0)},
		{name: "malformed hash", text: "mark task #abc as complete"},
		{name: "description", text: "mark equipment request as complete", wantDesc: "equipment request"},
		{name: "completed phrase", text: "I completed the incident report review.", wantDesc: "the incident report review"},
		{name: "done with phrase", text: "done with staff meeting notes? yes", wantDesc: "staff meeting notes"},
		{name: "taken care of", text: "I have taken care of  the supply order ", wantDesc: "the supply order"},
		{name: "non numeric task word", text: "mark task xyz as finished", wantDesc: "task xyz"},
		{name: "nothing", text: "how are we doing today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.ExtractReference(tt.text)

			switch {
			case tt.wantID == nil && got.ID != nil:
				t.Fatalf("ID = %d, want none", *got.ID)
			case tt.wantID != nil && got.ID == nil:
				t.Fatalf("ID = none, want %d", *tt.wantID)
			case tt.wantID != nil && *got.ID != *tt.wantID:
				t.Fatalf("ID = %d, want %d", *got.ID, *tt.wantID)
			}
			if got.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDesc)
			}
			if tt.wantID == nil && tt.wantDesc == "" && !got.IsEmpty() {
				t.Errorf("expected empty reference, got %+v", got)
			}
		})
	}
}

func TestIsCalendarIntent(t *testing.T) {
	d := newDetector()

	tests := []struct {
		name     string
		prompt   string
		response string
		want     bool
	}{
		{"request keyword only", "remind me to call the vendor", "Sure, I'll help.", true},
		{"confirmation only", "thanks", "Done. Reminder has been set for Friday.", true},
		{"both", "add to my calendar: audit prep", "I've added this to your calendar", true},
		{"case insensitive", "PLEASE SCHEDULE a huddle", "", true},
		{"neither", "who is on nights?", "Twelve nurses are on nights.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsCalendarIntent(tt.prompt, tt.response); got != tt.want {
				t.Errorf("IsCalendarIntent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractSchedule(t *testing.T) {
	d := newDetector()

	tests := []struct {
		name         string
		prompt       string
		response     string
		want         time.Time
		wantInferred bool
	}{
		{name: "weeks", prompt: "Let's check in in 2 weeks", want: fixedNow.AddDate(0, 0, 14)},
		{name: "days", prompt: "check in in 3 days", want: fixedNow.AddDate(0, 0, 3)},
		{name: "months", prompt: "follow up after 1 month", want: fixedNow.AddDate(0, 1, 0)},
		{name: "months beat days", prompt: "in 3 days or in 2 months", want: fixedNow.AddDate(0, 2, 0)},
		{name: "from response", prompt: "remind me", response: "I'll remind you in 5 days.", want: fixedNow.AddDate(0, 0, 5)},
		{name: "prompt before response", prompt: "next 2 weeks", response: "following 3 weeks", want: fixedNow.AddDate(0, 0, 14)},
		{name: "no date", prompt: "remind me to call", want: fixedNow, wantInferred: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.ExtractSchedule(tt.prompt, tt.response)
			if !got.Date.Equal(tt.want) {
				t.Errorf("Date = %v, want %v", got.Date, tt.want)
			}
			if got.DateInferred != tt.wantInferred {
				t.Errorf("DateInferred = %v, want %v", got.DateInferred, tt.wantInferred)
			}
		})
	}
}

func TestExtractScheduleNames(t *testing.T) {
	d := newDetector()

	got := d.ExtractSchedule("can you check in with Sarah Chen and Michael", "Sure. I will ask Sarah Chen first.")
	want := []string{"Sarah Chen", "Michael", "Sure"}

	if len(got.Names) != len(want) {
		t.Fatalf("Names = %v, want %v", got.Names, want)
	}
	for i := range want {
		if got.Names[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, got.Names[i], want[i])
		}
	}
}

func TestBuildEvent(t *testing.T) {
	d := intent.New(
		intent.WithClock(func() time.Time { return fixedNow }),
		intent.WithSystemName("Nuvanta"),
	)

	tests := []struct {
		name         string
		prompt       string
		response     string
		wantTitle    string
		wantPriority model.Priority
		wantRelated  string
	}{
		{
			name:         "check in",
			prompt:       "please check in with Sarah Chen in 2 weeks",
			wantTitle:    "Check in with Sarah Chen",
			wantPriority: model.PriorityMedium,
			wantRelated:  "Sarah Chen",
		},
		{
			name:         "follow up",
			prompt:       "follow-up with Michael Johnson, it's urgent",
			wantTitle:    "Follow up with Michael Johnson",
			wantPriority: model.PriorityHigh,
			wantRelated:  "Michael Johnson",
		},
		{
			name:         "remind me about",
			prompt:       "remind me about the supply audit.",
			wantTitle:    "Reminder: the supply audit",
			wantPriority: model.PriorityMedium,
		},
		{
			name:         "remind you from response",
			prompt:       "can you remind me",
			response:     "of course, i'll remind you to review the schedule?",
			wantTitle:    "Reminder: review the schedule",
			wantPriority: model.PriorityMedium,
		},
		{
			name:         "remind without object",
			prompt:       "remind me later, low priority",
			wantTitle:    "Reminder from Nuvanta",
			wantPriority: model.PriorityLow,
		},
		{
			name:         "generic",
			prompt:       "put in the budget review whenever",
			wantTitle:    "AI-created reminder",
			wantPriority: model.PriorityLow,
		},
		{
			name:         "high beats low",
			prompt:       "schedule the urgent review whenever works",
			wantTitle:    "AI-created reminder",
			wantPriority: model.PriorityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := d.BuildEvent(tt.prompt, tt.response)
			if ev.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", ev.Title, tt.wantTitle)
			}
			if ev.Priority != tt.wantPriority {
				t.Errorf("Priority = %q, want %q", ev.Priority, tt.wantPriority)
			}
			if ev.RelatedTo != tt.wantRelated {
				t.Errorf("RelatedTo = %q, want %q", ev.RelatedTo, tt.wantRelated)
			}
			if ev.Description != tt.prompt {
				t.Errorf("Description = %q, want prompt", ev.Description)
			}
			if !ev.Reminder || ev.ReminderSent {
				t.Errorf("Reminder = %v, ReminderSent = %v, want true/false", ev.Reminder, ev.ReminderSent)
			}
		})
	}
}

func TestLoadCatalogue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := []byte("completion_phrases:\n  - all sorted\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := intent.LoadCatalogue(path)
	if err != nil {
		t.Fatalf("LoadCatalogue: %v", err)
	}
	if len(cat.CompletionPhrases) != 1 || cat.CompletionPhrases[0] != "all sorted" {
		t.Fatalf("CompletionPhrases = %v", cat.CompletionPhrases)
	}
	if len(cat.CalendarKeywords) == 0 {
		t.Fatal("calendar keywords should fall back to defaults")
	}

	d := intent.New(intent.WithCatalogue(cat))
	if !d.IsCompletionIntent("ALL SORTED with the float pool") {
		t.Error("override phrase not applied")
	}
	if d.IsCompletionIntent("the review task completed") {
		t.Error("default completion phrases should be replaced")
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := intent.LoadCatalogue(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		_ = os.WriteFile(bad, []byte("completion_phrases: [unterminated"), 0o600)
		if _, err := intent.LoadCatalogue(bad); err == nil {
			t.Error("expected error")
		}
	})
}

func ptr(v int64) *int64 { return &v }
