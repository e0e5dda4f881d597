package usecase

import (
	"context"
	"fmt"
	"strings"

	"nurse-manager/internal/followup"
	repo "nurse-manager/internal/followup/repository"
	"nurse-manager/internal/model"
)

// Result messages shown to the copilot user.
const (
	msgNotCompletionRequest = "Not a task completion request"
	msgTaskNotFound         = "Task #%d not found."
	msgAlreadyComplete      = "Task #%d is already marked as complete."
	msgCompletedByID        = "Successfully marked task #%d as complete."
	msgNoMatch              = `No pending tasks found matching "%s".`
	msgCompletedByDesc      = `Successfully marked task "%s" as complete.`
	msgMultipleMatches      = `Multiple tasks match "%s". Please specify which task to complete by its ID.`
	msgInsufficientInfo     = "Could not identify which task to complete. Please provide more information."

	copilotNotesFormat = `Completed via AI copilot request: "%s"`
)

// ProcessCompletionRequest resolves the prompt to a task and completes it.
// At most one task is written per call, and only on the single-match paths.
func (uc *implUseCase) ProcessCompletionRequest(ctx context.Context, input followup.CompletionInput) (followup.CompletionResult, error) {
	if !uc.detector.IsCompletionIntent(input.Prompt) {
		return failure(msgNotCompletionRequest), nil
	}

	ref := uc.detector.ExtractReference(input.Prompt)
	switch {
	case ref.HasID():
		return uc.completeByID(ctx, *ref.ID, input)
	case ref.HasDescription():
		return uc.completeByDescription(ctx, ref.Description, input)
	default:
		return failure(msgInsufficientInfo), nil
	}
}

func (uc *implUseCase) completeByID(ctx context.Context, id int64, input followup.CompletionInput) (followup.CompletionResult, error) {
	task, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCompletionRequest GetTask: %v", err)
		return followup.CompletionResult{}, err
	}
	if task.ID == 0 {
		return failure(fmt.Sprintf(msgTaskNotFound, id)), nil
	}
	if task.IsCompleted() {
		return failure(fmt.Sprintf(msgAlreadyComplete, id)), nil
	}

	done, err := uc.complete(ctx, id, input.CompletedBy, fmt.Sprintf(copilotNotesFormat, input.Prompt))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCompletionRequest CompleteTask: %v", err)
		return followup.CompletionResult{}, err
	}
	if done.ID == 0 {
		// Another request completed it between the read and the write.
		return failure(fmt.Sprintf(msgAlreadyComplete, id)), nil
	}

	return success(fmt.Sprintf(msgCompletedByID, id), done), nil
}

func (uc *implUseCase) completeByDescription(ctx context.Context, desc string, input followup.CompletionInput) (followup.CompletionResult, error) {
	pending, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Status: model.TaskStatusPending})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCompletionRequest ListTasks: %v", err)
		return followup.CompletionResult{}, err
	}

	matches := matchByDescription(pending, desc)
	switch len(matches) {
	case 0:
		return failure(fmt.Sprintf(msgNoMatch, desc)), nil
	case 1:
	default:
		return failure(fmt.Sprintf(msgMultipleMatches, desc)), nil
	}

	target := matches[0]
	done, err := uc.complete(ctx, target.ID, input.CompletedBy, fmt.Sprintf(copilotNotesFormat, input.Prompt))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCompletionRequest CompleteTask: %v", err)
		return followup.CompletionResult{}, err
	}
	if done.ID == 0 {
		return failure(fmt.Sprintf(msgAlreadyComplete, target.ID)), nil
	}

	return success(fmt.Sprintf(msgCompletedByDesc, target.Description), done), nil
}

// matchByDescription keeps tasks whose description contains the phrase or
// is contained by it, ignoring case.
func matchByDescription(tasks []model.Task, phrase string) []model.Task {
	needle := strings.ToLower(phrase)
	var out []model.Task
	for _, t := range tasks {
		hay := strings.ToLower(t.Description)
		if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
			out = append(out, t)
		}
	}
	return out
}

func failure(msg string) followup.CompletionResult {
	return followup.CompletionResult{Success: false, Message: msg}
}

func success(msg string, task model.Task) followup.CompletionResult {
	return followup.CompletionResult{Success: true, Message: msg, Task: &task}
}
