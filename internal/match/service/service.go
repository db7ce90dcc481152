// Package service provides business logic layer for the match module.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	eventModel "github.com/peladasmanager/backend/internal/event/model"
	goalModel "github.com/peladasmanager/backend/internal/goal/model"
	goalRepository "github.com/peladasmanager/backend/internal/goal/repository"
	"github.com/peladasmanager/backend/internal/match/model"
	"github.com/peladasmanager/backend/internal/match/repository"
)

// Service defines the interface for match business logic operations.
type Service interface {
	// Create creates a new match under an existing event.
	Create(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error)

	// List returns matches, optionally filtered by event.
	List(ctx context.Context, q *model.ListMatchesQuery) ([]model.Match, error)

	// GetByID returns a single match.
	GetByID(ctx context.Context, id uint) (*model.Match, error)

	// Update applies the provided fields to an existing match.
	Update(ctx context.Context, id uint, req *model.UpdateMatchRequest) (*model.Match, error)

	// Delete removes a match, cascading to its goals.
	Delete(ctx context.Context, id uint) error

	// Start stamps the start time and moves the match in progress.
	Start(ctx context.Context, id uint) (*model.Match, error)

	// Finish stamps the end time and finishes the match.
	Finish(ctx context.Context, id uint) (*model.Match, error)

	// Clock applies a clock control command (resume, pause, reset).
	Clock(ctx context.Context, id uint, command string) (*model.Match, error)

	// Details returns the match aggregated with its goals, the event roster,
	// the derived duration and the formatted score.
	Details(ctx context.Context, id uint) (*model.MatchDetails, error)

	// QuickGoal records a live goal: the minute is derived from the match
	// clock and the description is generated from the scorer's name.
	QuickGoal(ctx context.Context, matchID uint, req *model.QuickGoalRequest) (*goalModel.Goal, error)
}

type service struct {
	repo   repository.Repository
	goals  goalRepository.Repository
	logger *zap.SugaredLogger
}

// New creates a new match service instance.
func New(repo repository.Repository, goals goalRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		goals:  goals,
		logger: logger,
	}
}

// Create creates a new match under an existing event.
func (s *service) Create(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error) {
	exists, err := s.repo.EventExists(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, eventModel.ErrEventNotFound
	}

	teamA := model.DefaultTeamAName
	if req.TeamAName != nil {
		teamA = *req.TeamAName
	}
	teamB := model.DefaultTeamBName
	if req.TeamBName != nil {
		teamB = *req.TeamBName
	}

	match := &model.Match{
		EventID:       req.EventID,
		Name:          req.Name,
		ScheduledTime: req.ScheduledTime,
		TeamAName:     teamA,
		TeamBName:     teamB,
		Notes:         req.Notes,
		Status:        model.StatusScheduled,
	}

	created, err := s.repo.Create(ctx, match)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match created", "match_id", created.ID, "event_id", created.EventID)
	return created, nil
}

// List returns matches, optionally filtered by event.
func (s *service) List(ctx context.Context, q *model.ListMatchesQuery) ([]model.Match, error) {
	filter := *q
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	return s.repo.List(ctx, filter)
}

// GetByID returns a single match.
func (s *service) GetByID(ctx context.Context, id uint) (*model.Match, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the provided fields to an existing match.
func (s *service) Update(ctx context.Context, id uint, req *model.UpdateMatchRequest) (*model.Match, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		match.Name = req.Name
	}
	if req.ScheduledTime != nil {
		match.ScheduledTime = *req.ScheduledTime
	}
	if req.StartedAt != nil {
		match.StartedAt = req.StartedAt
	}
	if req.EndedAt != nil {
		match.EndedAt = req.EndedAt
	}
	if req.TeamAName != nil {
		match.TeamAName = *req.TeamAName
	}
	if req.TeamBName != nil {
		match.TeamBName = *req.TeamBName
	}
	if req.Notes != nil {
		match.Notes = req.Notes
	}
	if req.Status != nil {
		// any status may be set directly, transitions are not validated
		match.Status = *req.Status
	}

	return s.repo.Update(ctx, match)
}

// Delete removes a match, cascading to its goals.
func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("match deleted with cascade", "match_id", id)
	return nil
}

// Start stamps the start time and moves the match in progress.
func (s *service) Start(ctx context.Context, id uint) (*model.Match, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	match.StartedAt = &now
	match.Status = model.StatusInProgress

	return s.repo.Update(ctx, match)
}

// Finish stamps the end time and finishes the match.
func (s *service) Finish(ctx context.Context, id uint) (*model.Match, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	match.EndedAt = &now
	match.Status = model.StatusFinished

	return s.repo.Update(ctx, match)
}

// Clock applies a clock control command.
func (s *service) Clock(ctx context.Context, id uint, command string) (*model.Match, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch command {
	case model.ClockResume:
		if match.StartedAt == nil {
			now := time.Now().UTC()
			match.StartedAt = &now
		}
		match.Status = model.StatusInProgress
	case model.ClockPause:
		// the clock is derived from stored timestamps, so a pause cannot
		// actually halt elapsed-time accounting: the match stays in progress
		match.Status = model.StatusInProgress
	case model.ClockReset:
		match.StartedAt = nil
		match.EndedAt = nil
		match.Status = model.StatusScheduled
	default:
		return nil, model.ErrInvalidClockCommand
	}

	return s.repo.Update(ctx, match)
}

// Details returns the match aggregated with goals, roster, duration and score.
func (s *service) Details(ctx context.Context, id uint) (*model.MatchDetails, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	goals, err := s.repo.ListGoals(ctx, id)
	if err != nil {
		return nil, err
	}

	roster, err := s.repo.ListRoster(ctx, match.EventID)
	if err != nil {
		return nil, err
	}

	return &model.MatchDetails{
		Match:           match,
		Goals:           goals,
		Roster:          roster,
		DurationMinutes: match.DurationMinutes(),
		Score:           match.Score(),
	}, nil
}

// QuickGoal records a live goal against the match clock.
func (s *service) QuickGoal(ctx context.Context, matchID uint, req *model.QuickGoalRequest) (*goalModel.Goal, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	player, err := s.repo.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}

	minute := 1
	if match.StartedAt != nil {
		if elapsed := int(time.Since(*match.StartedAt).Minutes()); elapsed > minute {
			minute = elapsed
		}
	}

	description := fmt.Sprintf("Quick goal by %s at minute %d", player.Name, minute)
	goal := &goalModel.Goal{
		MatchID:     matchID,
		PlayerID:    req.PlayerID,
		Minute:      minute,
		Team:        req.Team,
		Description: &description,
	}

	recorded, err := s.goals.Record(ctx, goal)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("quick goal recorded",
		"match_id", matchID, "player_id", req.PlayerID, "team", req.Team, "minute", minute)
	return recorded, nil
}
