package postgre

import (
	"fmt"
	"strings"

	repo "nurse-manager/internal/followup/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(opt.Status))
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY date_created ASC, id ASC")

	return strings.Join(parts, " "), args
}
