package model

import "errors"

var (
	// ErrGoalNotFound indicates that the requested goal does not exist.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrInvalidTeam indicates a team side other than 'A' or 'B'.
	ErrInvalidTeam = errors.New("team must be 'A' or 'B'")
)
