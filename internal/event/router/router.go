// Package router provides event module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/peladasmanager/backend/internal/event/handler"
	"github.com/peladasmanager/backend/internal/event/repository"
	"github.com/peladasmanager/backend/internal/event/service"
)

// RegisterRoutes registers event module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	api := r.Group("/api")
	api.POST("/events", h.Create)
	api.GET("/events", h.List)
	api.GET("/events/:id", h.Get)
	api.PUT("/events/:id", h.Update)
	api.DELETE("/events/:id", h.Delete)

	api.POST("/events/:id/registrations", h.RegisterPlayer)
	api.GET("/events/:id/registrations", h.ListRegistrations)
	api.PATCH("/events/:id/registrations/:playerID", h.UpdateRegistration)
	api.DELETE("/events/:id/registrations/:playerID", h.RemoveRegistration)
}
