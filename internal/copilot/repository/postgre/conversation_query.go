package postgre

import (
	"fmt"

	repo "nurse-manager/internal/copilot/repository"
)

func buildListConversationsQuery(opt repo.ListConversationsOptions) (string, []any) {
	query := `SELECT ` + conversationColumns + ` FROM copilot_conversations WHERE user_id = $1 ORDER BY updated_at DESC, id DESC`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query, args
}
