package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	eventModel "github.com/peladasmanager/backend/internal/event/model"
	"github.com/peladasmanager/backend/internal/goal/model"
	"github.com/peladasmanager/backend/internal/goal/repository"
	matchModel "github.com/peladasmanager/backend/internal/match/model"
	playerModel "github.com/peladasmanager/backend/internal/player/model"
)

func setupTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&playerModel.Player{},
		&eventModel.Event{},
		&matchModel.Match{},
		&model.Goal{},
	))

	return New(repository.New(db), zap.NewNop().Sugar()), db
}

func seedMatch(t *testing.T, db *gorm.DB) *matchModel.Match {
	t.Helper()

	event := &eventModel.Event{
		Name:       "Pelada",
		Date:       time.Date(2026, 9, 5, 19, 0, 0, 0, time.UTC),
		Location:   "Campo do Bairro",
		MaxPlayers: eventModel.DefaultMaxPlayers,
		Status:     eventModel.StatusPlanned,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, db.Create(event).Error)

	match := &matchModel.Match{
		EventID:       event.ID,
		ScheduledTime: event.Date,
		TeamAName:     matchModel.DefaultTeamAName,
		TeamBName:     matchModel.DefaultTeamBName,
		Status:        matchModel.StatusScheduled,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(match).Error)
	return match
}

func seedPlayer(t *testing.T, db *gorm.DB, email string) *playerModel.Player {
	t.Helper()

	player := &playerModel.Player{
		Name:       "Player " + email,
		Email:      email,
		SkillLevel: playerModel.DefaultSkillLevel,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, db.Create(player).Error)
	return player
}

func TestService_Record(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	match := seedMatch(t, db)
	player := seedPlayer(t, db, "camisa9@example.com")

	t.Run("records goal and increments counter", func(t *testing.T) {
		goal, err := svc.Record(ctx, &model.CreateGoalRequest{
			MatchID:  match.ID,
			PlayerID: player.ID,
			Minute:   25,
			Team:     model.TeamA,
		})

		require.NoError(t, err)
		assert.NotZero(t, goal.ID)

		var updated matchModel.Match
		require.NoError(t, db.First(&updated, match.ID).Error)
		assert.Equal(t, 1, updated.ScoreA)
	})

	t.Run("missing match", func(t *testing.T) {
		_, err := svc.Record(ctx, &model.CreateGoalRequest{
			MatchID:  9999,
			PlayerID: player.ID,
			Minute:   25,
			Team:     model.TeamA,
		})

		assert.ErrorIs(t, err, matchModel.ErrMatchNotFound)
	})

	t.Run("missing player", func(t *testing.T) {
		_, err := svc.Record(ctx, &model.CreateGoalRequest{
			MatchID:  match.ID,
			PlayerID: 9999,
			Minute:   25,
			Team:     model.TeamA,
		})

		assert.ErrorIs(t, err, playerModel.ErrPlayerNotFound)
	})

	t.Run("invalid team", func(t *testing.T) {
		_, err := svc.Record(ctx, &model.CreateGoalRequest{
			MatchID:  match.ID,
			PlayerID: player.ID,
			Minute:   25,
			Team:     "C",
		})

		assert.ErrorIs(t, err, model.ErrInvalidTeam)
	})
}

func TestService_Update(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	match := seedMatch(t, db)
	scorer := seedPlayer(t, db, "scorer@example.com")
	other := seedPlayer(t, db, "other@example.com")

	goal, err := svc.Record(ctx, &model.CreateGoalRequest{
		MatchID:  match.ID,
		PlayerID: scorer.ID,
		Minute:   25,
		Team:     model.TeamA,
	})
	require.NoError(t, err)

	t.Run("reassigns scorer", func(t *testing.T) {
		updated, err := svc.Update(ctx, goal.ID, &model.UpdateGoalRequest{
			PlayerID: &other.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, other.ID, updated.PlayerID)
	})

	t.Run("rejects unknown scorer", func(t *testing.T) {
		missing := uint(9999)

		_, err := svc.Update(ctx, goal.ID, &model.UpdateGoalRequest{PlayerID: &missing})

		assert.ErrorIs(t, err, playerModel.ErrPlayerNotFound)
	})

	t.Run("team change moves counters", func(t *testing.T) {
		team := model.TeamB

		_, err := svc.Update(ctx, goal.ID, &model.UpdateGoalRequest{Team: &team})
		require.NoError(t, err)

		var updated matchModel.Match
		require.NoError(t, db.First(&updated, match.ID).Error)
		assert.Zero(t, updated.ScoreA)
		assert.Equal(t, 1, updated.ScoreB)
	})

	t.Run("missing goal", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, &model.UpdateGoalRequest{})

		assert.ErrorIs(t, err, model.ErrGoalNotFound)
	})
}

func TestService_Remove(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	match := seedMatch(t, db)
	player := seedPlayer(t, db, "volante@example.com")

	goal, err := svc.Record(ctx, &model.CreateGoalRequest{
		MatchID:  match.ID,
		PlayerID: player.ID,
		Minute:   60,
		Team:     model.TeamB,
	})
	require.NoError(t, err)

	t.Run("removes goal and decrements counter", func(t *testing.T) {
		require.NoError(t, svc.Remove(ctx, goal.ID))

		var updated matchModel.Match
		require.NoError(t, db.First(&updated, match.ID).Error)
		assert.Zero(t, updated.ScoreB)

		_, err := svc.GetByID(ctx, goal.ID)
		assert.ErrorIs(t, err, model.ErrGoalNotFound)
	})

	t.Run("missing goal", func(t *testing.T) {
		err := svc.Remove(ctx, 9999)

		assert.ErrorIs(t, err, model.ErrGoalNotFound)
	})
}

func TestService_List(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	match := seedMatch(t, db)
	player := seedPlayer(t, db, "listado@example.com")

	for minute := 10; minute <= 30; minute += 10 {
		_, err := svc.Record(ctx, &model.CreateGoalRequest{
			MatchID:  match.ID,
			PlayerID: player.ID,
			Minute:   minute,
			Team:     model.TeamA,
		})
		require.NoError(t, err)
	}

	t.Run("default limit", func(t *testing.T) {
		goals, err := svc.List(ctx, &model.ListGoalsQuery{})

		require.NoError(t, err)
		assert.Len(t, goals, 3)
	})

	t.Run("filter by match", func(t *testing.T) {
		goals, err := svc.List(ctx, &model.ListGoalsQuery{MatchID: &match.ID})

		require.NoError(t, err)
		assert.Len(t, goals, 3)
	})
}
