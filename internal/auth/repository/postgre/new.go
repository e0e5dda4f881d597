package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"nurse-manager/internal/auth/repository"
	"nurse-manager/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for users.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/postgre.%s", method)
}
