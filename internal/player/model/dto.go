// Package model provides domain models and DTOs for the player module.
package model

// DefaultSkillLevel is assigned when a new player does not declare one.
const DefaultSkillLevel = 5

// CreatePlayerRequest represents the request to register a player.
type CreatePlayerRequest struct {
	Name              string  `json:"name"               binding:"required,max=100"`
	Email             string  `json:"email"              binding:"required,email,max=255"`
	Phone             *string `json:"phone"              binding:"omitempty,max=20"`
	PreferredPosition *string `json:"preferred_position" binding:"omitempty,max=50"`
	SkillLevel        *int    `json:"skill_level"        binding:"omitempty,min=1,max=10"`
}

// UpdatePlayerRequest represents a partial player update.
// Only non-nil fields are applied.
type UpdatePlayerRequest struct {
	Name              *string `json:"name"               binding:"omitempty,max=100"`
	Email             *string `json:"email"              binding:"omitempty,email,max=255"`
	Phone             *string `json:"phone"              binding:"omitempty,max=20"`
	PreferredPosition *string `json:"preferred_position" binding:"omitempty,max=50"`
	SkillLevel        *int    `json:"skill_level"        binding:"omitempty,min=1,max=10"`
	Active            *bool   `json:"active"`
}

// ListPlayersQuery represents player listing query parameters.
// Active defaults to true: the default listing shows active players only,
// passing active=false disables the filter.
type ListPlayersQuery struct {
	Skip   int   `form:"skip"   binding:"omitempty,min=0"`
	Limit  int   `form:"limit"  binding:"omitempty,min=1,max=100"`
	Active *bool `form:"active"`
}

// ListFilter carries listing options into the repository.
type ListFilter struct {
	Skip       int
	Limit      int
	ActiveOnly bool
}
