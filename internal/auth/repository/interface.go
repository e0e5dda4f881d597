package repository

import (
	"context"

	"nurse-manager/internal/model"
)

// Repository is the composed interface for the account store.
type Repository interface {
	UserRepository
}

// UserRepository defines data access for users.
// Lookups return a zero-value User (ID == 0) when nothing matches.
type UserRepository interface {
	// CreateUser returns ErrDuplicate when the username is taken.
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	CountUsers(ctx context.Context) (int64, error)
}
