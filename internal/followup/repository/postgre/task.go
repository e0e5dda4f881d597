package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "nurse-manager/internal/followup/repository"
	"nurse-manager/internal/model"
)

// CreateTask inserts a new pending task and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO follow_up_tasks (description, status, priority, assigned_to, date_created)
		VALUES ($1, 'pending', $2, $3, NOW())
		RETURNING ` + taskColumns

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, opt.Description, string(opt.Priority), nullInt64(opt.AssigneeID)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetTask retrieves a task by id.
// Returns zero-value Task (ID == 0) when not found, not an error.
func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM follow_up_tasks WHERE id = $1`

	var row taskRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListTasks returns tasks ordered by creation date, optionally filtered by status.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := `SELECT ` + taskColumns + ` FROM follow_up_tasks ` + mods

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

// UpdateTask writes priority, status and assignee. Returns zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE follow_up_tasks
		SET priority = $1, status = $2, assigned_to = $3
		WHERE id = $4
		RETURNING ` + taskColumns

	var row taskRow
	err := r.db.GetContext(ctx, &row, query, string(opt.Priority), string(opt.Status), nullInt64(opt.AssigneeID), opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// CompleteTask stamps a task as completed unless it already is.
// Returns zero-value Task when the row is missing or was already completed.
func (r *implRepository) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
	const query = `
		UPDATE follow_up_tasks
		SET status = 'completed', completed_at = $1, completed_by = $2, completion_notes = $3
		WHERE id = $4 AND status <> 'completed'
		RETURNING ` + taskColumns

	var row taskRow
	err := r.db.GetContext(ctx, &row, query, opt.CompletedAt, opt.CompletedBy, opt.Notes, opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}
