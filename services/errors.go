package services

import "errors"

// Error taxonomy shared by every service. Controllers map these to status
// codes in one place; nothing else in the request path builds HTTP errors.
var (
	ErrValidation         = errors.New("missing required field")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUpstream           = errors.New("upstream provider error")
)
