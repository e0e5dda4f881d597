package followup

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAlreadyCompleted = errors.New("task is already completed")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrDescriptionRequired  = errors.New("description is required")
)
