package auth

import (
	"context"

	"nurse-manager/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (AuthOutput, error)
	Me(ctx context.Context, userID int64) (model.User, error)
	Register(ctx context.Context, input RegisterInput) (model.User, error)
}
