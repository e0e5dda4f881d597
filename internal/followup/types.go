package followup

import "nurse-manager/internal/model"

// DefaultDaysOverdue is reported with the pending list; the store does not track due dates.
const DefaultDaysOverdue = 3

// DefaultDashboardNotes is used when a dashboard completion carries no notes.
const DefaultDashboardNotes = "Marked as complete via dashboard"

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Description string
	Priority    model.Priority
	AssigneeID  *int64
}

type UpdateTaskInput struct {
	ID         int64
	Priority   model.Priority
	Status     model.TaskStatus
	AssigneeID *int64
}

type CompleteTaskInput struct {
	ID          int64
	Notes       string
	CompletedBy int64
}

// CompletionInput is one natural-language completion request.
type CompletionInput struct {
	Prompt      string
	CompletedBy int64
}

// --- UseCase Outputs ---

type PendingOutput struct {
	Count       int
	Items       []model.Task
	DaysOverdue int
	// FromRoster is true when the items come from the roster's sample data.
	FromRoster bool
}

// CompletionResult is the structured outcome of a completion request.
// Task is set only on success.
type CompletionResult struct {
	Success bool
	Message string
	Task    *model.Task
}
