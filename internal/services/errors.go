package services

import "errors"

// Terminal error taxonomy for the auth and note use-cases. Handlers map
// these to HTTP status codes with errors.Is; nothing is retried.
var (
	ErrValidation         = errors.New("missing required fields")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
