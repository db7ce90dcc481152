// Package handler provides HTTP handlers for goal endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/peladasmanager/backend/internal/goal/model"
	"github.com/peladasmanager/backend/internal/goal/service"
	matchModel "github.com/peladasmanager/backend/internal/match/model"
	playerModel "github.com/peladasmanager/backend/internal/player/model"
)

// Handler handles HTTP requests for goal endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new goal handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /api/goals.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.service.Record(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, matchModel.ErrMatchNotFound):
			notFoundResponse(c, "match not found")
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found")
		case errors.Is(err, model.ErrInvalidTeam):
			errorResponse(c, "INVALID_TEAM", "team must be 'A' or 'B'", http.StatusBadRequest)
		default:
			h.logger.Errorw("error recording goal", "error", err)
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		}
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// List handles GET /api/goals.
func (h *Handler) List(c *gin.Context) {
	var q model.ListGoalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	goals, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		h.logger.Errorw("error listing goals", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Get handles GET /api/goals/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	goal, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGoalNotFound) {
			notFoundResponse(c, "goal not found")
			return
		}
		h.logger.Errorw("error getting goal", "goal_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Update handles PUT /api/goals/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrGoalNotFound):
			notFoundResponse(c, "goal not found")
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found")
		case errors.Is(err, model.ErrInvalidTeam):
			errorResponse(c, "INVALID_TEAM", "team must be 'A' or 'B'", http.StatusBadRequest)
		default:
			h.logger.Errorw("error updating goal", "goal_id", id, "error", err)
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Delete handles DELETE /api/goals/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGoalNotFound) {
			notFoundResponse(c, "goal not found")
			return
		}
		h.logger.Errorw("error deleting goal", "goal_id", id, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.Status(http.StatusNoContent)
}
