package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidCredentials covers both unknown identifier and password
	// mismatch so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateIdentity signals a unique-constraint hit on registration
	// (email or mobile already taken).
	ErrDuplicateIdentity = errors.New("identity already registered")
	// ErrAccessDenied signals an authenticated caller touching a resource
	// it does not own.
	ErrAccessDenied = errors.New("access denied")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
)
