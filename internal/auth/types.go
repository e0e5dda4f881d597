package auth

import (
	"nurse-manager/internal/model"
	"nurse-manager/pkg/scope"
)

// MinPasswordLength is enforced on registration.
const MinPasswordLength = 8

// --- UseCase Inputs ---

type LoginInput struct {
	Username string
	Password string
}

type RegisterInput struct {
	Username string
	Password string
	FullName string
	Role     model.Role
	Unit     string
	Shift    string
}

// --- UseCase Outputs ---

// AuthOutput is returned by Login and Refresh.
type AuthOutput struct {
	Tokens scope.Tokens
	User   model.User
}
