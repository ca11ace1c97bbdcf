package domain

import "errors"

// Authentication failures. All of them surface as 401 to the caller.
var ErrMissingToken = errors.New("MISSING_TOKEN")
var ErrTokenInvalid = errors.New("INVALID_TOKEN")

// ErrAuthUserUnknown is raised when a valid token references a user that no
// longer exists. Same code as ErrUserNotFound, but authentication context
// (401, not 404).
var ErrAuthUserUnknown = errors.New("USER_NOT_FOUND")
