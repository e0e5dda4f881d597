package repository

import (
	"time"

	"nurse-manager/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	Description string
	Priority    model.Priority
	AssigneeID  *int64
}

// ListTasksOptions holds filter parameters for listing tasks.
type ListTasksOptions struct {
	Status model.TaskStatus
}

// UpdateTaskOptions holds the full new state of the mutable task fields.
type UpdateTaskOptions struct {
	ID         int64
	Priority   model.Priority
	Status     model.TaskStatus
	AssigneeID *int64
}

// CompleteTaskOptions holds the completion stamp.
type CompleteTaskOptions struct {
	ID          int64
	CompletedAt time.Time
	CompletedBy int64
	Notes       string
}
