// Package repository provides data access layer for the player module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/peladasmanager/backend/internal/player/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// Create persists a new player.
	Create(ctx context.Context, player *model.Player) (*model.Player, error)

	// List returns players matching the filter, ordered by id.
	List(ctx context.Context, filter model.ListFilter) ([]model.Player, error)

	// GetByID finds a player by id.
	GetByID(ctx context.Context, id uint) (*model.Player, error)

	// Update saves all fields of an existing player.
	Update(ctx context.Context, player *model.Player) (*model.Player, error)

	// Deactivate flips the active flag off. The row is never removed.
	Deactivate(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new player repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new player.
func (r *repository) Create(ctx context.Context, player *model.Player) (*model.Player, error) {
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Create(player).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, model.ErrEmailExists
		}
		return nil, err
	}

	return player, nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "duplicate key")
}

// List returns players matching the filter, ordered by id.
func (r *repository) List(ctx context.Context, filter model.ListFilter) ([]model.Player, error) {
	query := r.db.WithContext(ctx).Model(&model.Player{})

	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	var players []model.Player
	err := query.
		Order("id ASC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}

	if players == nil {
		players = []model.Player{}
	}

	return players, nil
}

// GetByID finds a player by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*model.Player, error) {
	var player model.Player
	err := r.db.WithContext(ctx).First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return &player, nil
}

// Update saves all fields of an existing player.
func (r *repository) Update(ctx context.Context, player *model.Player) (*model.Player, error) {
	err := r.db.WithContext(ctx).Save(player).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, model.ErrEmailExists
		}
		return nil, err
	}

	return player, nil
}

// Deactivate flips the active flag off.
func (r *repository) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Player{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrPlayerNotFound
	}

	return nil
}
