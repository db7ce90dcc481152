// Package service provides business logic layer for the event module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/peladasmanager/backend/internal/event/model"
	"github.com/peladasmanager/backend/internal/event/repository"
	playerModel "github.com/peladasmanager/backend/internal/player/model"
)

// Service defines the interface for event business logic operations.
type Service interface {
	// Create creates a new event in planned status.
	Create(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error)

	// List returns events, paginated.
	List(ctx context.Context, q *model.ListEventsQuery) ([]model.Event, error)

	// GetByID returns a single event.
	GetByID(ctx context.Context, id uint) (*model.Event, error)

	// Update applies the provided fields to an existing event.
	Update(ctx context.Context, id uint, req *model.UpdateEventRequest) (*model.Event, error)

	// Delete removes an event, cascading to its matches, goals and registrations.
	// Destructive and irreversible.
	Delete(ctx context.Context, id uint) error

	// RegisterPlayer registers an active player in an event.
	RegisterPlayer(ctx context.Context, eventID uint, req *model.CreateRegistrationRequest) (*model.Registration, error)

	// ListRegistrations returns an event's registrations with player names.
	ListRegistrations(ctx context.Context, eventID uint) ([]model.RegistrationInfo, error)

	// UpdateRegistration confirms presence or assigns a team side.
	UpdateRegistration(ctx context.Context, eventID, playerID uint, req *model.UpdateRegistrationRequest) (*model.Registration, error)

	// RemoveRegistration removes a player from an event.
	RemoveRegistration(ctx context.Context, eventID, playerID uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new event service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// Create creates a new event in planned status.
func (s *service) Create(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	maxPlayers := model.DefaultMaxPlayers
	if req.MaxPlayers != nil {
		maxPlayers = *req.MaxPlayers
	}

	cost := 0
	if req.CostPerPlayer != nil {
		cost = *req.CostPerPlayer
	}

	event := &model.Event{
		Name:          req.Name,
		Description:   req.Description,
		Date:          req.Date,
		Location:      req.Location,
		MaxPlayers:    maxPlayers,
		CostPerPlayer: cost,
		Status:        model.StatusPlanned,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("event created", "event_id", created.ID, "name", created.Name)
	return created, nil
}

// List returns events, paginated.
func (s *service) List(ctx context.Context, q *model.ListEventsQuery) ([]model.Event, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}

	return s.repo.List(ctx, q.Skip, limit)
}

// GetByID returns a single event.
func (s *service) GetByID(ctx context.Context, id uint) (*model.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the provided fields to an existing event.
func (s *service) Update(ctx context.Context, id uint, req *model.UpdateEventRequest) (*model.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.MaxPlayers != nil {
		event.MaxPlayers = *req.MaxPlayers
	}
	if req.CostPerPlayer != nil {
		event.CostPerPlayer = *req.CostPerPlayer
	}
	if req.Status != nil {
		// any status may be set directly, transitions are not validated
		event.Status = *req.Status
	}

	return s.repo.Update(ctx, event)
}

// Delete removes an event, cascading to its matches, goals and registrations.
func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("event deleted with cascade", "event_id", id)
	return nil
}

// RegisterPlayer registers an active player in an event.
func (s *service) RegisterPlayer(ctx context.Context, eventID uint, req *model.CreateRegistrationRequest) (*model.Registration, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	player, err := s.repo.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	if !player.Active {
		return nil, playerModel.ErrPlayerInactive
	}

	reg := &model.Registration{
		EventID:  eventID,
		PlayerID: req.PlayerID,
	}

	created, err := s.repo.CreateRegistration(ctx, reg)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player registered in event", "event_id", eventID, "player_id", req.PlayerID)
	return created, nil
}

// ListRegistrations returns an event's registrations with player names.
func (s *service) ListRegistrations(ctx context.Context, eventID uint) ([]model.RegistrationInfo, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	return s.repo.ListRegistrations(ctx, eventID)
}

// UpdateRegistration confirms presence or assigns a team side.
func (s *service) UpdateRegistration(ctx context.Context, eventID, playerID uint, req *model.UpdateRegistrationRequest) (*model.Registration, error) {
	reg, err := s.repo.GetRegistration(ctx, eventID, playerID)
	if err != nil {
		return nil, err
	}

	if req.Confirmed != nil {
		reg.Confirmed = *req.Confirmed
	}
	if req.Team != nil {
		reg.Team = req.Team
	}

	return s.repo.UpdateRegistration(ctx, reg)
}

// RemoveRegistration removes a player from an event.
func (s *service) RemoveRegistration(ctx context.Context, eventID, playerID uint) error {
	return s.repo.DeleteRegistration(ctx, eventID, playerID)
}
