package postgre

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"nurse-manager/internal/model"
)

const userColumns = `id, username, password, full_name, role, unit, shift, created_at`

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type userRow struct {
	ID        int64          `db:"id"`
	Username  string         `db:"username"`
	Password  string         `db:"password"`
	FullName  string         `db:"full_name"`
	Role      string         `db:"role"`
	Unit      sql.NullString `db:"unit"`
	Shift     sql.NullString `db:"shift"`
	CreatedAt time.Time      `db:"created_at"`
}

func (row userRow) toModel() model.User {
	return model.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.Password,
		FullName:     row.FullName,
		Role:         model.Role(row.Role),
		Unit:         row.Unit.String,
		Shift:        row.Shift.String,
		CreatedAt:    row.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
