// Package service provides business logic layer for the goal module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/peladasmanager/backend/internal/goal/model"
	"github.com/peladasmanager/backend/internal/goal/repository"
)

// Service defines the interface for goal business logic operations.
type Service interface {
	// Record registers a goal against an existing match and player,
	// incrementing the matching score counter.
	Record(ctx context.Context, req *model.CreateGoalRequest) (*model.Goal, error)

	// List returns goals, optionally filtered by match or player.
	List(ctx context.Context, q *model.ListGoalsQuery) ([]model.Goal, error)

	// GetByID returns a single goal.
	GetByID(ctx context.Context, id uint) (*model.Goal, error)

	// Update applies the provided fields; a team change reassigns the goal
	// between the match's score counters.
	Update(ctx context.Context, id uint, req *model.UpdateGoalRequest) (*model.Goal, error)

	// Remove deletes a goal and decrements the matching score counter.
	Remove(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new goal service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// Record registers a goal against an existing match and player.
func (s *service) Record(ctx context.Context, req *model.CreateGoalRequest) (*model.Goal, error) {
	if _, err := s.repo.GetMatch(ctx, req.MatchID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetPlayer(ctx, req.PlayerID); err != nil {
		return nil, err
	}
	if req.Team != model.TeamA && req.Team != model.TeamB {
		return nil, model.ErrInvalidTeam
	}

	goal := &model.Goal{
		MatchID:     req.MatchID,
		PlayerID:    req.PlayerID,
		Minute:      req.Minute,
		Team:        req.Team,
		Description: req.Description,
	}

	recorded, err := s.repo.Record(ctx, goal)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("goal recorded",
		"goal_id", recorded.ID, "match_id", recorded.MatchID,
		"player_id", recorded.PlayerID, "team", recorded.Team)
	return recorded, nil
}

// List returns goals, optionally filtered by match or player.
func (s *service) List(ctx context.Context, q *model.ListGoalsQuery) ([]model.Goal, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}

	filter := model.ListFilter{
		MatchID:  q.MatchID,
		PlayerID: q.PlayerID,
		Skip:     q.Skip,
		Limit:    limit,
	}

	return s.repo.List(ctx, filter)
}

// GetByID returns a single goal.
func (s *service) GetByID(ctx context.Context, id uint) (*model.Goal, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the provided fields, reassigning counters on a team change.
func (s *service) Update(ctx context.Context, id uint, req *model.UpdateGoalRequest) (*model.Goal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousTeam := goal.Team

	if req.PlayerID != nil {
		if _, err := s.repo.GetPlayer(ctx, *req.PlayerID); err != nil {
			return nil, err
		}
		goal.PlayerID = *req.PlayerID
	}
	if req.Minute != nil {
		goal.Minute = *req.Minute
	}
	if req.Team != nil {
		if *req.Team != model.TeamA && *req.Team != model.TeamB {
			return nil, model.ErrInvalidTeam
		}
		goal.Team = *req.Team
	}
	if req.Description != nil {
		goal.Description = req.Description
	}

	updated, err := s.repo.Update(ctx, goal, previousTeam)
	if err != nil {
		return nil, err
	}

	if updated.Team != previousTeam {
		s.logger.Infow("goal reassigned",
			"goal_id", updated.ID, "match_id", updated.MatchID,
			"from_team", previousTeam, "to_team", updated.Team)
	}
	return updated, nil
}

// Remove deletes a goal and decrements the matching score counter.
func (s *service) Remove(ctx context.Context, id uint) error {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, goal); err != nil {
		return err
	}

	s.logger.Infow("goal removed", "goal_id", id, "match_id", goal.MatchID, "team", goal.Team)
	return nil
}
