package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"nurse-manager/internal/copilot/repository"
	"nurse-manager/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for copilot history.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("copilot/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("copilot/repository/postgre.%s", method)
}
