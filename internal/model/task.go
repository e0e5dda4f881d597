package model

import "time"

// TaskStatus is the lifecycle state of a follow-up task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusOverdue   TaskStatus = "overdue"
)

// IsValid reports whether s is a known status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted, TaskStatusOverdue:
		return true
	}
	return false
}

// Priority is shared by tasks and calendar events.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is an administrative follow-up item for a nurse manager.
type Task struct {
	ID              int64
	Description     string
	CreatedAt       time.Time
	Status          TaskStatus
	Priority        Priority
	AssigneeID      *int64
	CompletedAt     *time.Time
	CompletedBy     *int64
	CompletionNotes string
}

// IsCompleted reports whether the task already reached its terminal state.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}
