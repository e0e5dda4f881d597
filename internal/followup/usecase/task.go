package usecase

import (
	"context"
	"strings"

	"nurse-manager/internal/followup"
	repo "nurse-manager/internal/followup/repository"
	"nurse-manager/internal/model"
)

// Create stores a new pending task.
func (uc *implUseCase) Create(ctx context.Context, input followup.CreateTaskInput) (model.Task, error) {
	desc := strings.TrimSpace(input.Description)
	if desc == "" {
		return model.Task{}, followup.ErrDescriptionRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.IsValid() {
		return model.Task{}, followup.ErrInvalidPriority
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Description: desc,
		Priority:    priority,
		AssigneeID:  input.AssigneeID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}
	return task, nil
}

// Pending lists pending tasks. When the store has none, or cannot be read,
// the roster's sample tasks are returned instead.
func (uc *implUseCase) Pending(ctx context.Context) (followup.PendingOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Status: model.TaskStatusPending})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Pending ListTasks (falling back to sample tasks): %v", err)
	}

	if len(tasks) > 0 || uc.samples == nil {
		return followup.PendingOutput{
			Count:       len(tasks),
			Items:       tasks,
			DaysOverdue: followup.DefaultDaysOverdue,
		}, nil
	}

	samples := uc.samples.SampleTasks()
	return followup.PendingOutput{
		Count:       len(samples),
		Items:       samples,
		DaysOverdue: followup.DefaultDaysOverdue,
		FromRoster:  true,
	}, nil
}

// Detail retrieves a single task by id. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	task, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return model.Task{}, err
	}
	if task.ID == 0 {
		return model.Task{}, followup.ErrTaskNotFound
	}
	return task, nil
}

// Update changes priority, status or assignee. Completion has its own path
// and cannot be reached through Update.
func (uc *implUseCase) Update(ctx context.Context, input followup.UpdateTaskInput) (model.Task, error) {
	if input.Priority != "" && !input.Priority.IsValid() {
		return model.Task{}, followup.ErrInvalidPriority
	}
	if input.Status != "" && (!input.Status.IsValid() || input.Status == model.TaskStatusCompleted) {
		return model.Task{}, followup.ErrInvalidStatus
	}

	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return model.Task{}, err
	}
	if existing.ID == 0 {
		return model.Task{}, followup.ErrTaskNotFound
	}
	if existing.IsCompleted() {
		return model.Task{}, followup.ErrTaskAlreadyCompleted
	}

	assignee := existing.AssigneeID
	if input.AssigneeID != nil {
		assignee = input.AssigneeID
	}

	task, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:         input.ID,
		Priority:   coalescePriority(input.Priority, existing.Priority),
		Status:     coalesceStatus(input.Status, existing.Status),
		AssigneeID: assignee,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return model.Task{}, err
	}
	if task.ID == 0 {
		return model.Task{}, followup.ErrTaskNotFound
	}
	return task, nil
}

// Complete marks a task as completed from the dashboard.
func (uc *implUseCase) Complete(ctx context.Context, input followup.CompleteTaskInput) (model.Task, error) {
	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetTask: %v", err)
		return model.Task{}, err
	}
	if existing.ID == 0 {
		return model.Task{}, followup.ErrTaskNotFound
	}
	if existing.IsCompleted() {
		return model.Task{}, followup.ErrTaskAlreadyCompleted
	}

	notes := strings.TrimSpace(input.Notes)
	if notes == "" {
		notes = followup.DefaultDashboardNotes
	}

	task, err := uc.complete(ctx, input.ID, input.CompletedBy, notes)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CompleteTask: %v", err)
		return model.Task{}, err
	}
	if task.ID == 0 {
		return model.Task{}, followup.ErrTaskAlreadyCompleted
	}
	return task, nil
}

// complete issues the conditional completion write.
func (uc *implUseCase) complete(ctx context.Context, id, completedBy int64, notes string) (model.Task, error) {
	return uc.repo.CompleteTask(ctx, repo.CompleteTaskOptions{
		ID:          id,
		CompletedAt: uc.now(),
		CompletedBy: completedBy,
		Notes:       notes,
	})
}

func coalescePriority(newVal, existing model.Priority) model.Priority {
	if newVal != "" {
		return newVal
	}
	return existing
}

func coalesceStatus(newVal, existing model.TaskStatus) model.TaskStatus {
	if newVal != "" {
		return newVal
	}
	return existing
}
