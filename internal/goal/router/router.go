// Package router provides goal module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/peladasmanager/backend/internal/goal/handler"
	"github.com/peladasmanager/backend/internal/goal/repository"
	"github.com/peladasmanager/backend/internal/goal/service"
)

// RegisterRoutes registers goal module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	api := r.Group("/api")
	api.POST("/goals", h.Create)
	api.GET("/goals", h.List)
	api.GET("/goals/:id", h.Get)
	api.PUT("/goals/:id", h.Update)
	api.DELETE("/goals/:id", h.Delete)
}
