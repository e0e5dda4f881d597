package model

import "time"

// Role controls which endpoints a user may call.
type Role string

const (
	RoleNurse   Role = "nurse"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleNurse, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User is an account holder. PasswordHash is a bcrypt hash and never leaves the service.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	Role         Role
	Unit         string
	Shift        string
	CreatedAt    time.Time
}
