// Package model provides domain models and DTOs for the goal module.
package model

// CreateGoalRequest represents the request to record a goal.
type CreateGoalRequest struct {
	MatchID     uint    `json:"match_id"    binding:"required"`
	PlayerID    uint    `json:"player_id"   binding:"required"`
	Minute      int     `json:"minute"      binding:"required,min=1"`
	Team        string  `json:"team"        binding:"required,oneof=A B"`
	Description *string `json:"description" binding:"omitempty,max=200"`
}

// UpdateGoalRequest represents a partial goal update.
// Only non-nil fields are applied; a team change moves the goal between
// the match's score counters.
type UpdateGoalRequest struct {
	PlayerID    *uint   `json:"player_id"`
	Minute      *int    `json:"minute"      binding:"omitempty,min=1"`
	Team        *string `json:"team"        binding:"omitempty,oneof=A B"`
	Description *string `json:"description" binding:"omitempty,max=200"`
}

// ListGoalsQuery represents goal listing query parameters.
type ListGoalsQuery struct {
	MatchID  *uint `form:"match_id"`
	PlayerID *uint `form:"player_id"`
	Skip     int   `form:"skip"  binding:"omitempty,min=0"`
	Limit    int   `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ListFilter carries listing options into the repository.
type ListFilter struct {
	MatchID  *uint
	PlayerID *uint
	Skip     int
	Limit    int
}
