package model

import "errors"

var (
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = errors.New("match not found")
	// ErrInvalidClockCommand indicates an unknown clock control command.
	ErrInvalidClockCommand = errors.New("unknown clock command")
)
