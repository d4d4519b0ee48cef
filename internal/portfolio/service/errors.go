package service

import "errors"

var (
	// ErrValidation marks missing or malformed required input. Wrapped
	// errors carry the field-level detail.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers both unknown identities and wrong
	// passwords; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated marks a missing, unknown, or expired session.
	ErrUnauthenticated = errors.New("unauthenticated")
)
