package postgre

import (
	"fmt"
	"strings"

	repo "nurse-manager/internal/calendar/repository"
)

// buildListQuery returns the WHERE/ORDER/LIMIT tail and its positional args.
func buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if opt.From != nil {
		args = append(args, *opt.From)
		conds = append(conds, fmt.Sprintf("event_date >= $%d", len(args)))
	}

	var b strings.Builder
	if len(conds) > 0 {
		b.WriteString("WHERE " + strings.Join(conds, " AND ") + " ")
	}
	if opt.Ascending {
		b.WriteString("ORDER BY event_date ASC, id ASC")
	} else {
		b.WriteString("ORDER BY event_date DESC, id DESC")
	}
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	return b.String(), args
}
