package repository

import "nurse-manager/internal/model"

// CreateUserOptions carries a new account. PasswordHash must already be hashed.
type CreateUserOptions struct {
	Username     string
	PasswordHash string
	FullName     string
	Role         model.Role
	Unit         string
	Shift        string
}
