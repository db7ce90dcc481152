// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	goalRepository "github.com/peladasmanager/backend/internal/goal/repository"
	"github.com/peladasmanager/backend/internal/match/handler"
	"github.com/peladasmanager/backend/internal/match/repository"
	"github.com/peladasmanager/backend/internal/match/service"
)

// RegisterRoutes registers match module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	goals := goalRepository.New(db)
	svc := service.New(repo, goals, logger)
	h := handler.New(svc, logger)

	api := r.Group("/api")
	api.POST("/matches", h.Create)
	api.GET("/matches", h.List)
	api.GET("/matches/:id", h.Get)
	api.PUT("/matches/:id", h.Update)
	api.DELETE("/matches/:id", h.Delete)

	api.PATCH("/matches/:id/start", h.Start)
	api.PATCH("/matches/:id/finish", h.Finish)
	api.PATCH("/matches/:id/clock", h.Clock)
	api.GET("/matches/:id/details", h.Details)
	api.POST("/matches/:id/goals/quick", h.QuickGoal)
}
