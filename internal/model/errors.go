package model

import "errors"

// Error kinds. Every domain sentinel wraps exactly one of them, delivery maps
// kinds to status codes.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInsufficientData   = errors.New("insufficient data")
	ErrExternalDependency = errors.New("external dependency failure")
	ErrInternal           = errors.New("internal error")
)

var ErrResourceNotFound = errors.New("no such resource")
