package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"nurse-manager/internal/followup/repository"
	"nurse-manager/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for follow-up tasks.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("followup/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("followup/repository/postgre.%s", method)
}
