package postgre

import (
	"testing"

	repo "nurse-manager/internal/followup/repository"
	"nurse-manager/internal/model"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantMods string
		wantArgs int
	}{
		{name: "no filter", opt: repo.ListTasksOptions{}, wantMods: "ORDER BY date_created ASC, id ASC"},
		{
			name:     "status",
			opt:      repo.ListTasksOptions{Status: model.TaskStatusPending},
			wantMods: "WHERE status = $1 ORDER BY date_created ASC, id ASC",
			wantArgs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildListQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods = %q, want %q", mods, tt.wantMods)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %v", args)
			}
		})
	}
}

func TestTaskRowToModel(t *testing.T) {
	row := taskRow{ID: 4, Description: "Equipment request", Status: "pending", Priority: "high"}
	row.AssignedTo.Int64, row.AssignedTo.Valid = 9, true

	got := row.toModel()
	if got.ID != 4 || got.Status != model.TaskStatusPending || got.Priority != model.PriorityHigh {
		t.Fatalf("unexpected task %+v", got)
	}
	if got.AssigneeID == nil || *got.AssigneeID != 9 {
		t.Errorf("AssigneeID = %v", got.AssigneeID)
	}
	if got.CompletedAt != nil || got.CompletedBy != nil {
		t.Errorf("completion fields should be nil: %+v", got)
	}
}
