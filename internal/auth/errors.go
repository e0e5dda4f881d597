package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidRole         = errors.New("role must be one of: nurse, manager, admin")
	ErrWeakPassword        = errors.New("password must be at least 8 characters")
)
