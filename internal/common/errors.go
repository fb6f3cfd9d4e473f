// Package common defines shared sentinel errors used across the service and
// repository layers of Gradekeeper. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors. Unknown username and wrong password are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Registration uniqueness violations.
	ErrDuplicateUsername   = errors.New("username already taken")
	ErrDuplicateIdentifier = errors.New("identifier already assigned")

	// Grade validation.
	ErrInvalidScore = errors.New("score must be between 0 and 10")

	// Role gate: the session's role does not permit the operation.
	ErrUnauthorized = errors.New("unauthorized")

	// Service-level catch-all for unexpected storage faults surfaced to the
	// presentation layer.
	ErrInternal = errors.New("internal error")
)
