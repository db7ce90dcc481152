// Package repository provides data access layer for the goal module.
//
// All score counter bookkeeping on matches lives here: Record, Update and
// Remove adjust the counters in the same transaction as the goal write, so
// the counters always equal the per-team goal counts.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	goalModel "github.com/peladasmanager/backend/internal/goal/model"
	matchModel "github.com/peladasmanager/backend/internal/match/model"
	playerModel "github.com/peladasmanager/backend/internal/player/model"
)

// Repository defines the interface for goal data access operations.
type Repository interface {
	// Record inserts a goal and increments the matching score counter.
	Record(ctx context.Context, goal *goalModel.Goal) (*goalModel.Goal, error)

	// List returns goals, optionally filtered by match or player.
	List(ctx context.Context, filter goalModel.ListFilter) ([]goalModel.Goal, error)

	// GetByID finds a goal by id.
	GetByID(ctx context.Context, id uint) (*goalModel.Goal, error)

	// Update saves a goal; when the team side changed from previousTeam the
	// goal is moved between the match's score counters.
	Update(ctx context.Context, goal *goalModel.Goal, previousTeam string) (*goalModel.Goal, error)

	// Remove decrements the matching score counter and deletes the goal.
	Remove(ctx context.Context, goal *goalModel.Goal) error

	// GetMatch finds a match by id (existence check).
	GetMatch(ctx context.Context, id uint) (*matchModel.Match, error)

	// GetPlayer finds a player by id (existence check).
	GetPlayer(ctx context.Context, id uint) (*playerModel.Player, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new goal repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// scoreColumn maps a team side to its match counter column.
func scoreColumn(team string) string {
	if team == goalModel.TeamB {
		return "score_b"
	}
	return "score_a"
}

// adjustScore shifts a match score counter by delta within tx.
func adjustScore(tx *gorm.DB, matchID uint, team string, delta int) error {
	column := scoreColumn(team)
	return tx.Model(&matchModel.Match{}).
		Where("id = ?", matchID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

// Record inserts a goal and increments the matching score counter.
func (r *repository) Record(ctx context.Context, goal *goalModel.Goal) (*goalModel.Goal, error) {
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goal).Error; err != nil {
			return err
		}
		return adjustScore(tx, goal.MatchID, goal.Team, 1)
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// List returns goals, optionally filtered by match or player.
func (r *repository) List(ctx context.Context, filter goalModel.ListFilter) ([]goalModel.Goal, error) {
	query := r.db.WithContext(ctx).Model(&goalModel.Goal{})

	if filter.MatchID != nil {
		query = query.Where("match_id = ?", *filter.MatchID)
	}
	if filter.PlayerID != nil {
		query = query.Where("player_id = ?", *filter.PlayerID)
	}

	var goals []goalModel.Goal
	err := query.
		Order("id ASC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	if goals == nil {
		goals = []goalModel.Goal{}
	}

	return goals, nil
}

// GetByID finds a goal by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*goalModel.Goal, error) {
	var goal goalModel.Goal
	err := r.db.WithContext(ctx).First(&goal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goalModel.ErrGoalNotFound
		}
		return nil, err
	}

	return &goal, nil
}

// Update saves a goal, moving it between score counters on a team change.
func (r *repository) Update(ctx context.Context, goal *goalModel.Goal, previousTeam string) (*goalModel.Goal, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(goal).Error; err != nil {
			return err
		}

		if goal.Team == previousTeam {
			return nil
		}

		if err := adjustScore(tx, goal.MatchID, previousTeam, -1); err != nil {
			return err
		}
		return adjustScore(tx, goal.MatchID, goal.Team, 1)
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Remove decrements the matching score counter and deletes the goal.
func (r *repository) Remove(ctx context.Context, goal *goalModel.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := adjustScore(tx, goal.MatchID, goal.Team, -1); err != nil {
			return err
		}

		result := tx.Delete(&goalModel.Goal{}, goal.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return goalModel.ErrGoalNotFound
		}

		return nil
	})
}

// GetMatch finds a match by id.
func (r *repository) GetMatch(ctx context.Context, id uint) (*matchModel.Match, error) {
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
