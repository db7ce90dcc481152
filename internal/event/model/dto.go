// Package model provides domain models and DTOs for the event module.
package model

import "time"

// CreateEventRequest represents the request to create an event.
type CreateEventRequest struct {
	Name          string    `json:"name"            binding:"required,max=100"`
	Description   *string   `json:"description"`
	Date          time.Time `json:"date"            binding:"required"`
	Location      string    `json:"location"        binding:"required,max=200"`
	MaxPlayers    *int      `json:"max_players"     binding:"omitempty,min=2"`
	CostPerPlayer *int      `json:"cost_per_player" binding:"omitempty,min=0"`
}

// UpdateEventRequest represents a partial event update.
// Only non-nil fields are applied; status changes are not transition-checked.
type UpdateEventRequest struct {
	Name          *string    `json:"name"            binding:"omitempty,max=100"`
	Description   *string    `json:"description"`
	Date          *time.Time `json:"date"`
	Location      *string    `json:"location"        binding:"omitempty,max=200"`
	MaxPlayers    *int       `json:"max_players"     binding:"omitempty,min=2"`
	CostPerPlayer *int       `json:"cost_per_player" binding:"omitempty,min=0"`
	Status        *string    `json:"status"          binding:"omitempty,oneof=planned confirmed in_progress finished cancelled"`
}

// ListEventsQuery represents event listing query parameters.
type ListEventsQuery struct {
	Skip  int `form:"skip"  binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CreateRegistrationRequest represents the request to register a player in an event.
type CreateRegistrationRequest struct {
	PlayerID uint `json:"player_id" binding:"required"`
}

// UpdateRegistrationRequest represents a presence confirmation or team assignment.
type UpdateRegistrationRequest struct {
	Confirmed *bool   `json:"confirmed"`
	Team      *string `json:"team" binding:"omitempty,oneof=A B"`
}
