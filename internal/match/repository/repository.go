// Package repository provides data access layer for the match module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	eventModel "github.com/peladasmanager/backend/internal/event/model"
	goalModel "github.com/peladasmanager/backend/internal/goal/model"
	matchModel "github.com/peladasmanager/backend/internal/match/model"
	playerModel "github.com/peladasmanager/backend/internal/player/model"
)

// Repository defines the interface for match data access operations.
type Repository interface {
	// Create persists a new match.
	Create(ctx context.Context, match *matchModel.Match) (*matchModel.Match, error)

	// List returns matches, optionally filtered by event.
	List(ctx context.Context, filter matchModel.ListMatchesQuery) ([]matchModel.Match, error)

	// GetByID finds a match by id.
	GetByID(ctx context.Context, id uint) (*matchModel.Match, error)

	// Update saves all fields of an existing match.
	Update(ctx context.Context, match *matchModel.Match) (*matchModel.Match, error)

	// Delete removes a match together with its goals, in a single transaction.
	Delete(ctx context.Context, id uint) error

	// EventExists reports whether the parent event exists.
	EventExists(ctx context.Context, eventID uint) (bool, error)

	// GetPlayer finds a player by id (for quick goal attribution).
	GetPlayer(ctx context.Context, id uint) (*playerModel.Player, error)

	// ListGoals returns a match's goals ordered by minute.
	ListGoals(ctx context.Context, matchID uint) ([]goalModel.Goal, error)

	// ListRoster returns the registered players of the match's event.
	ListRoster(ctx context.Context, eventID uint) ([]eventModel.RegistrationInfo, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new match repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new match.
func (r *repository) Create(ctx context.Context, match *matchModel.Match) (*matchModel.Match, error) {
	now := time.Now().UTC()
	if match.CreatedAt.IsZero() {
		match.CreatedAt = now
		match.UpdatedAt = now
	}

	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		return nil, err
	}

	return match, nil
}

// List returns matches, optionally filtered by event.
func (r *repository) List(ctx context.Context, filter matchModel.ListMatchesQuery) ([]matchModel.Match, error) {
	query := r.db.WithContext(ctx).Model(&matchModel.Match{})

	if filter.EventID != nil {
		query = query.Where("event_id = ?", *filter.EventID)
	}

	var matches []matchModel.Match
	err := query.
		Order("scheduled_time ASC, id ASC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	if matches == nil {
		matches = []matchModel.Match{}
	}

	return matches, nil
}

// GetByID finds a match by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*matchModel.Match, error) {
	var match matchModel.Match
	err := r.db.WithContext(ctx).First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchModel.ErrMatchNotFound
		}
		return nil, err
	}

	return &match, nil
}

// Update saves all fields of an existing match.
func (r *repository) Update(ctx context.Context, match *matchModel.Match) (*matchModel.Match, error) {
	if err := r.db.WithContext(ctx).Save(match).Error; err != nil {
		return nil, err
	}

	return match, nil
}

// Delete removes a match together with its goals.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).
			Delete(&goalModel.Goal{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&matchModel.Match{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return matchModel.ErrMatchNotFound
		}

		return nil
	})
}

// EventExists reports whether the parent event exists.
func (r *repository) EventExists(ctx context.Context, eventID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&eventModel.Event{}).
		Where("id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetPlayer finds a player by id.
func (r *repository) GetPlayer(ctx context.Context, id uint) (*playerModel.Player, error) {
	var player playerModel.Player
	err := r.db.WithContext(ctx).First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}

	return &player, nil
}

// ListGoals returns a match's goals ordered by minute.
func (r *repository) ListGoals(ctx context.Context, matchID uint) ([]goalModel.Goal, error) {
	var goals []goalModel.Goal
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("minute ASC, id ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	if goals == nil {
		goals = []goalModel.Goal{}
	}

	return goals, nil
}

// ListRoster returns the registered players of the match's event.
func (r *repository) ListRoster(ctx context.Context, eventID uint) ([]eventModel.RegistrationInfo, error) {
	var roster []eventModel.RegistrationInfo

	err := r.db.WithContext(ctx).
		Table("registrations").
		Select(`
			registrations.id,
			registrations.event_id,
			registrations.player_id,
			players.name AS player_name,
			registrations.confirmed,
			registrations.team,
			registrations.registered_at
		`).
		Joins("JOIN players ON players.id = registrations.player_id").
		Where("registrations.event_id = ?", eventID).
		Order("registrations.id ASC").
		Scan(&roster).Error
	if err != nil {
		return nil, err
	}

	if roster == nil {
		roster = []eventModel.RegistrationInfo{}
	}

	return roster, nil
}
