package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"nurse-manager/internal/calendar/repository"
	"nurse-manager/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed calendar repository.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("calendar/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/postgre.%s", method)
}
