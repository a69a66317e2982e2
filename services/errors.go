package services

import "errors"

// Domain errors. Controllers match these with errors.Is and pick the HTTP code.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
