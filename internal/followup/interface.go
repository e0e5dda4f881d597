package followup

import (
	"context"

	"nurse-manager/internal/intent"
	"nurse-manager/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (model.Task, error)
	Pending(ctx context.Context) (PendingOutput, error)
	Detail(ctx context.Context, id int64) (model.Task, error)
	Update(ctx context.Context, input UpdateTaskInput) (model.Task, error)
	Complete(ctx context.Context, input CompleteTaskInput) (model.Task, error)

	// ProcessCompletionRequest resolves a prompt to at most one task and completes it.
	// Storage failures are returned as errors; every other outcome is a CompletionResult.
	ProcessCompletionRequest(ctx context.Context, input CompletionInput) (CompletionResult, error)
}

// Detector is the subset of the intent heuristics the completion flow needs.
type Detector interface {
	IsCompletionIntent(text string) bool
	ExtractReference(text string) intent.Reference
}

// SampleSource supplies fallback tasks when the store has none pending.
type SampleSource interface {
	SampleTasks() []model.Task
}
