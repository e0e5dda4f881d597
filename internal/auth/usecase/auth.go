package usecase

import (
	"context"
	"errors"
	"strings"

	"nurse-manager/internal/auth"
	"nurse-manager/internal/auth/repository"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/encrypter"
	"nurse-manager/pkg/scope"
)

// Login checks the password and issues a token pair.
// Unknown usernames and wrong passwords produce the same error.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.AuthOutput, error) {
	user, err := uc.repo.GetUserByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login: %v", err)
		return auth.AuthOutput{}, err
	}
	if user.ID == 0 {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	if err := uc.enc.ComparePassword(user.PasswordHash, input.Password); err != nil {
		if !errors.Is(err, encrypter.ErrMismatch) {
			uc.l.Warnf(ctx, "uc.Login: compare password for user %d: %v", user.ID, err)
		}
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	return uc.issue(ctx, user)
}

// Refresh exchanges a refresh token for a new pair. The user is reloaded so
// role changes take effect.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (auth.AuthOutput, error) {
	sc, err := uc.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return auth.AuthOutput{}, auth.ErrInvalidRefreshToken
	}

	user, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh: %v", err)
		return auth.AuthOutput{}, err
	}
	if user.ID == 0 {
		return auth.AuthOutput{}, auth.ErrInvalidRefreshToken
	}

	return uc.issue(ctx, user)
}

// Me returns the account behind userID.
func (uc *implUseCase) Me(ctx context.Context, userID int64) (model.User, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me: %v", err)
		return model.User{}, err
	}
	if user.ID == 0 {
		return model.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

// Register creates an account. An empty role defaults to nurse.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (model.User, error) {
	if input.Role == "" {
		input.Role = model.RoleNurse
	}
	if !input.Role.IsValid() {
		return model.User{}, auth.ErrInvalidRole
	}
	if len(input.Password) < auth.MinPasswordLength {
		return model.User{}, auth.ErrWeakPassword
	}

	hash, err := uc.enc.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register: hash password: %v", err)
		return model.User{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(input.FullName),
		Role:         input.Role,
		Unit:         input.Unit,
		Shift:        input.Shift,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return model.User{}, auth.ErrUsernameTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register: %v", err)
		return model.User{}, err
	}

	uc.l.Infof(ctx, "uc.Register: created user %d (%s, %s)", user.ID, user.Username, user.Role)
	return user, nil
}

func (uc *implUseCase) issue(ctx context.Context, user model.User) (auth.AuthOutput, error) {
	tokens, err := uc.tokens.CreateTokens(scope.Scope{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue: create tokens: %v", err)
		return auth.AuthOutput{}, err
	}
	return auth.AuthOutput{Tokens: tokens, User: user}, nil
}
