package postgre

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"foreign key", &pgconn.PgError{Code: "23503"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserRowToModel(t *testing.T) {
	row := userRow{ID: 3, Username: "sarah.chen", Password: "hash", FullName: "Sarah Chen", Role: "nurse"}
	row.Unit.String, row.Unit.Valid = "ICU", true

	u := row.toModel()
	if u.ID != 3 || u.PasswordHash != "hash" || u.Unit != "ICU" || u.Shift != "" || u.Role != "nurse" {
		t.Errorf("toModel() = %+v", u)
	}
}
