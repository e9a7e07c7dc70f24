package service

import "errors"

// Failure categories surfaced by the services. Handlers map each category to
// exactly one HTTP status at the request boundary.
var (
	// ErrNotFound means the target document or sub-document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the caller is authenticated but does not own the
	// target resource.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict covers duplicate email and already-present set members.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials is returned on a password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation covers missing required fields and malformed input.
	ErrValidation = errors.New("invalid input")
)
