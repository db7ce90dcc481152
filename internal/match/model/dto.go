// Package model provides domain models and DTOs for the match module.
package model

import (
	"time"

	eventModel "github.com/peladasmanager/backend/internal/event/model"
	goalModel "github.com/peladasmanager/backend/internal/goal/model"
)

// Clock control commands.
const (
	ClockResume = "resume"
	ClockPause  = "pause"
	ClockReset  = "reset"
)

// CreateMatchRequest represents the request to create a match.
type CreateMatchRequest struct {
	EventID       uint      `json:"event_id"       binding:"required"`
	Name          *string   `json:"name"           binding:"omitempty,max=100"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
	TeamAName     *string   `json:"team_a_name"    binding:"omitempty,max=50"`
	TeamBName     *string   `json:"team_b_name"    binding:"omitempty,max=50"`
	Notes         *string   `json:"notes"`
}

// UpdateMatchRequest represents a partial match update.
// Only non-nil fields are applied; status changes are not transition-checked.
type UpdateMatchRequest struct {
	Name          *string    `json:"name"           binding:"omitempty,max=100"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	StartedAt     *time.Time `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at"`
	TeamAName     *string    `json:"team_a_name"    binding:"omitempty,max=50"`
	TeamBName     *string    `json:"team_b_name"    binding:"omitempty,max=50"`
	Notes         *string    `json:"notes"`
	Status        *string    `json:"status"         binding:"omitempty,oneof=scheduled in_progress finished cancelled"`
}

// ListMatchesQuery represents match listing query parameters.
type ListMatchesQuery struct {
	EventID *uint `form:"event_id"`
	Skip    int   `form:"skip"  binding:"omitempty,min=0"`
	Limit   int   `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ClockRequest carries a clock control command.
type ClockRequest struct {
	Command string `json:"command" binding:"required,oneof=resume pause reset"`
}

// QuickGoalRequest represents the low-ceremony live goal shortcut:
// the minute is derived from the match clock and the description is
// generated from the scorer's name.
type QuickGoalRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	Team     string `json:"team"      binding:"required,oneof=A B"`
}

// MatchDetails aggregates a match with its goals (ordered by minute),
// the event roster, and the derived duration and score.
type MatchDetails struct {
	Match           *Match                        `json:"match"`
	Goals           []goalModel.Goal              `json:"goals"`
	Roster          []eventModel.RegistrationInfo `json:"roster"`
	DurationMinutes int                           `json:"duration_minutes"`
	Score           string                        `json:"score"`
}
