package model

import "errors"

var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrEmailExists indicates that a player with the given email already exists.
	ErrEmailExists = errors.New("email already registered")
	// ErrPlayerInactive indicates that the player has been deactivated.
	ErrPlayerInactive = errors.New("player is inactive")
)
