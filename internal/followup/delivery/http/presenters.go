package http

import (
	"time"

	"nurse-manager/internal/followup"
	"nurse-manager/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description" binding:"required,max=1000"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high"`
	AssigneeID  *int64 `json:"assignee_id"`
}

func (r createReq) toInput() followup.CreateTaskInput {
	return followup.CreateTaskInput{
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		AssigneeID:  r.AssigneeID,
	}
}

type updateReq struct {
	ID         int64  `json:"-"` // populated from URI param
	Priority   string `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Status     string `json:"status"      binding:"omitempty,oneof=pending overdue"`
	AssigneeID *int64 `json:"assignee_id"`
}

func (r updateReq) toInput() followup.UpdateTaskInput {
	return followup.UpdateTaskInput{
		ID:         r.ID,
		Priority:   model.Priority(r.Priority),
		Status:     model.TaskStatus(r.Status),
		AssigneeID: r.AssigneeID,
	}
}

type completeReq struct {
	ID    int64  `json:"-"`
	Notes string `json:"notes" binding:"max=1000"`
}

// --- Response DTOs ---

type taskResp struct {
	ID              int64      `json:"id"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	AssigneeID      *int64     `json:"assignee_id,omitempty"`
	DateCreated     time.Time  `json:"date_created"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CompletedBy     *int64     `json:"completed_by,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Description:     t.Description,
		Status:          string(t.Status),
		Priority:        string(t.Priority),
		AssigneeID:      t.AssigneeID,
		DateCreated:     t.CreatedAt,
		CompletedAt:     t.CompletedAt,
		CompletedBy:     t.CompletedBy,
		CompletionNotes: t.CompletionNotes,
	}
}

type pendingItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type pendingResp struct {
	Count       int           `json:"count"`
	Items       []pendingItem `json:"items"`
	DaysOverdue int           `json:"days_overdue"`
	FromRoster  bool          `json:"from_roster"`
}

func (h *handler) newPendingResp(out followup.PendingOutput) pendingResp {
	items := make([]pendingItem, len(out.Items))
	for i, t := range out.Items {
		items[i] = pendingItem{ID: t.ID, Description: t.Description, Priority: string(t.Priority)}
	}
	return pendingResp{
		Count:       out.Count,
		Items:       items,
		DaysOverdue: out.DaysOverdue,
		FromRoster:  out.FromRoster,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type completeResp struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Task    taskResp `json:"task"`
}

func (h *handler) newCompleteResp(t model.Task) completeResp {
	return completeResp{
		Success: true,
		Message: "Successfully marked task #" + formatID(t.ID) + " as complete.",
		Task:    newTaskResp(t),
	}
}
