// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/peladasmanager/backend/internal/player/handler"
	"github.com/peladasmanager/backend/internal/player/repository"
	"github.com/peladasmanager/backend/internal/player/service"
)

// RegisterRoutes registers player module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	api := r.Group("/api")
	api.POST("/players", h.Create)
	api.GET("/players", h.List)
	api.GET("/players/:id", h.Get)
	api.PUT("/players/:id", h.Update)
	api.DELETE("/players/:id", h.Delete)
}
