package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrRoleNotSelected      = errors.New("select role first")
	ErrWorkerRoleRequired   = errors.New("worker role required")
	ErrWorkerProfileMissing = errors.New("create worker profile first")
	ErrForbiddenRole        = errors.New("action not allowed for role")

	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound also covers rows the caller does not own.
	ErrNotFound = errors.New("not found")

	ErrPhoneInUse    = errors.New("phone already in use")
	ErrProfileExists = errors.New("profile already exists")
	ErrConflict      = errors.New("conflict")
)
