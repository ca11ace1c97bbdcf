package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleBlogger = "blogger"
)

var ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
var ErrUserExists = errors.New("USER_ALREADY_EXISTS")
var ErrUserNotFound = errors.New("USER_NOT_FOUND")

// User models an account in the system. Role is fixed at registration time;
// there is no role-change operation.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleBlogger
}

// Restricted reports whether the caller is subject to visibility filtering.
// A nil user (anonymous caller) is always restricted.
func (u *User) Restricted() bool {
	return u == nil || u.Role != RoleAdmin
}
