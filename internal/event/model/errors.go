package model

import "errors"

var (
	// ErrEventNotFound indicates that the requested event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrRegistrationExists indicates the player is already registered in the event.
	ErrRegistrationExists = errors.New("player already registered in event")
	// ErrRegistrationNotFound indicates the registration does not exist.
	ErrRegistrationNotFound = errors.New("registration not found")
)
