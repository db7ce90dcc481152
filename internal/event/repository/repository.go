// Package repository provides data access layer for the event module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	eventModel "github.com/peladasmanager/backend/internal/event/model"
	goalModel "github.com/peladasmanager/backend/internal/goal/model"
	matchModel "github.com/peladasmanager/backend/internal/match/model"
	playerModel "github.com/peladasmanager/backend/internal/player/model"
)

// Repository defines the interface for event data access operations.
type Repository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *eventModel.Event) (*eventModel.Event, error)

	// List returns events ordered by date.
	List(ctx context.Context, skip, limit int) ([]eventModel.Event, error)

	// GetByID finds an event by id.
	GetByID(ctx context.Context, id uint) (*eventModel.Event, error)

	// Update saves all fields of an existing event.
	Update(ctx context.Context, event *eventModel.Event) (*eventModel.Event, error)

	// Delete removes an event together with its matches, their goals and
	// its registrations, in a single transaction.
	Delete(ctx context.Context, id uint) error

	// GetPlayer finds a player by id (for registration checks).
	GetPlayer(ctx context.Context, id uint) (*playerModel.Player, error)

	// CreateRegistration registers a player in an event.
	CreateRegistration(ctx context.Context, reg *eventModel.Registration) (*eventModel.Registration, error)

	// ListRegistrations returns an event's registrations with player names.
	ListRegistrations(ctx context.Context, eventID uint) ([]eventModel.RegistrationInfo, error)

	// GetRegistration finds a registration by event and player.
	GetRegistration(ctx context.Context, eventID, playerID uint) (*eventModel.Registration, error)

	// UpdateRegistration saves a registration.
	UpdateRegistration(ctx context.Context, reg *eventModel.Registration) (*eventModel.Registration, error)

	// DeleteRegistration removes a registration.
	DeleteRegistration(ctx context.Context, eventID, playerID uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new event repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new event.
func (r *repository) Create(ctx context.Context, event *eventModel.Event) (*eventModel.Event, error) {
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
		event.UpdatedAt = now
	}

	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}

	return event, nil
}

// List returns events ordered by date.
func (r *repository) List(ctx context.Context, skip, limit int) ([]eventModel.Event, error) {
	var events []eventModel.Event
	err := r.db.WithContext(ctx).
		Order("date ASC, id ASC").
		Offset(skip).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = []eventModel.Event{}
	}

	return events, nil
}

// GetByID finds an event by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*eventModel.Event, error) {
	var event eventModel.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventModel.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// Update saves all fields of an existing event.
func (r *repository) Update(ctx context.Context, event *eventModel.Event) (*eventModel.Event, error) {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes an event and cascades to matches, goals and registrations.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		matchIDs := tx.Model(&matchModel.Match{}).
			Select("id").
			Where("event_id = ?", id)

		if err := tx.Where("match_id IN (?)", matchIDs).
			Delete(&goalModel.Goal{}).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).
			Delete(&matchModel.Match{}).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).
			Delete(&eventModel.Registration{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&eventModel.Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return eventModel.ErrEventNotFound
		}

		return nil
	})
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

// CreateRegistration registers a player in an event.
func (r *repository) CreateRegistration(ctx context.Context, reg *eventModel.Registration) (*eventModel.Registration, error) {
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Create(reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return nil, eventModel.ErrRegistrationExists
		}
		return nil, err
	}

	return reg, nil
}

// ListRegistrations returns an event's registrations with player names.
func (r *repository) ListRegistrations(ctx context.Context, eventID uint) ([]eventModel.RegistrationInfo, error) {
	var regs []eventModel.RegistrationInfo

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
		Scan(&regs).Error
	if err != nil {
		return nil, err
	}

	if regs == nil {
		regs = []eventModel.RegistrationInfo{}
	}

	return regs, nil
}

// GetRegistration finds a registration by event and player.
func (r *repository) GetRegistration(ctx context.Context, eventID, playerID uint) (*eventModel.Registration, error) {
	var reg eventModel.Registration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND player_id = ?", eventID, playerID).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventModel.ErrRegistrationNotFound
		}
		return nil, err
	}

	return &reg, nil
}

// UpdateRegistration saves a registration.
func (r *repository) UpdateRegistration(ctx context.Context, reg *eventModel.Registration) (*eventModel.Registration, error) {
	if err := r.db.WithContext(ctx).Save(reg).Error; err != nil {
		return nil, err
	}

	return reg, nil
}

// DeleteRegistration removes a registration.
func (r *repository) DeleteRegistration(ctx context.Context, eventID, playerID uint) error {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND player_id = ?", eventID, playerID).
		Delete(&eventModel.Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return eventModel.ErrRegistrationNotFound
	}

	return nil
}
