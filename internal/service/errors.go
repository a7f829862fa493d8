package service

import "errors"

var (
	// ErrValidation wraps [validators.ValidationErrors] describing every
	// rejected field of a request.
	ErrValidation = errors.New("validation failed")

	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrAccessDenied = errors.New("access denied")
	ErrInvalidToken = errors.New("invalid token")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrNoteNotFound = errors.New("note not found")
	ErrNotAllowed   = errors.New("not allowed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
