// Package service provides business logic layer for the player module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/peladasmanager/backend/internal/player/model"
	"github.com/peladasmanager/backend/internal/player/repository"
)

// Service defines the interface for player business logic operations.
type Service interface {
	// Create registers a new player, rejecting duplicate emails.
	Create(ctx context.Context, req *model.CreatePlayerRequest) (*model.Player, error)

	// List returns players, active-only by default.
	List(ctx context.Context, q *model.ListPlayersQuery) ([]model.Player, error)

	// GetByID returns a single player.
	GetByID(ctx context.Context, id uint) (*model.Player, error)

	// Update applies the provided fields to an existing player.
	Update(ctx context.Context, id uint, req *model.UpdatePlayerRequest) (*model.Player, error)

	// Deactivate soft-deletes a player.
	Deactivate(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// Create registers a new player.
func (s *service) Create(ctx context.Context, req *model.CreatePlayerRequest) (*model.Player, error) {
	skill := model.DefaultSkillLevel
	if req.SkillLevel != nil {
		skill = *req.SkillLevel
	}

	player := &model.Player{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		PreferredPosition: req.PreferredPosition,
		SkillLevel:        skill,
		Active:            true,
	}

	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player created", "player_id", created.ID, "email", created.Email)
	return created, nil
}

// List returns players, active-only by default.
func (s *service) List(ctx context.Context, q *model.ListPlayersQuery) ([]model.Player, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}

	// active defaults to true; active=false lists everyone, soft-deleted included
	filter := model.ListFilter{
		Skip:       q.Skip,
		Limit:      limit,
		ActiveOnly: q.Active == nil || *q.Active,
	}

	return s.repo.List(ctx, filter)
}

// GetByID returns a single player.
func (s *service) GetByID(ctx context.Context, id uint) (*model.Player, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the provided fields to an existing player.
func (s *service) Update(ctx context.Context, id uint, req *model.UpdatePlayerRequest) (*model.Player, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.Email != nil {
		player.Email = *req.Email
	}
	if req.Phone != nil {
		player.Phone = req.Phone
	}
	if req.PreferredPosition != nil {
		player.PreferredPosition = req.PreferredPosition
	}
	if req.SkillLevel != nil {
		player.SkillLevel = *req.SkillLevel
	}
	if req.Active != nil {
		player.Active = *req.Active
	}

	return s.repo.Update(ctx, player)
}

// Deactivate soft-deletes a player.
func (s *service) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("player deactivated", "player_id", id)
	return nil
}
