package repository

import (
	"context"

	"nurse-manager/internal/model"
)

// Repository is the composed interface for the follow-up data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for follow-up tasks.
// Lookups return a zero-value Task (ID == 0) when nothing matches.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	// CompleteTask moves a not-yet-completed task to completed in a single
	// conditional write. It returns a zero-value Task when no row changed.
	CompleteTask(ctx context.Context, opt CompleteTaskOptions) (model.Task, error)
}
