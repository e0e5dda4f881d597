package postgre

import (
	"strings"
	"testing"

	repo "nurse-manager/internal/copilot/repository"
)

func TestBuildListConversationsQuery(t *testing.T) {
	tests := []struct {
		name      string
		opt       repo.ListConversationsOptions
		wantLimit bool
		wantArgs  int
	}{
		{"with limit", repo.ListConversationsOptions{UserID: 1, Limit: 20}, true, 2},
		{"no limit", repo.ListConversationsOptions{UserID: 1}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListConversationsQuery(tt.opt)
			if !strings.Contains(query, "WHERE user_id = $1 ORDER BY updated_at DESC") {
				t.Errorf("query = %s", query)
			}
			if strings.Contains(query, "LIMIT $2") != tt.wantLimit {
				t.Errorf("LIMIT present = %v, want %v", !tt.wantLimit, tt.wantLimit)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %v", args)
			}
		})
	}
}
