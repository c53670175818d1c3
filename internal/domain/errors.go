package domain

import "errors"

var (
	ErrNotFound           = errors.New("order not found")
	ErrDuplicateUser      = errors.New("username already taken")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("unauthenticated")
)
