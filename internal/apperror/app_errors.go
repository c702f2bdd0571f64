package apperror

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownGame     = errors.New("unknown game")
)
