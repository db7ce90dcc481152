// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	eventModel "github.com/peladasmanager/backend/internal/event/model"
	"github.com/peladasmanager/backend/internal/match/model"
	"github.com/peladasmanager/backend/internal/match/service"
	playerModel "github.com/peladasmanager/backend/internal/player/model"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /api/matches.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	match, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, eventModel.ErrEventNotFound) {
			notFoundResponse(c, "event not found")
			return
		}
		h.logger.Errorw("error creating match", "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// List handles GET /api/matches.
func (h *Handler) List(c *gin.Context) {
	var q model.ListMatchesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	matches, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		h.logger.Errorw("error listing matches", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// Get handles GET /api/matches/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	match, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		h.logger.Errorw("error getting match", "match_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, match)
}

// Update handles PUT /api/matches/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	match, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		h.logger.Errorw("error updating match", "match_id", id, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, match)
}

// Delete handles DELETE /api/matches/:id.
// Irreversible: cascades to the match's goals.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		h.logger.Errorw("error deleting match", "match_id", id, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.Status(http.StatusNoContent)
}

// Start handles PATCH /api/matches/:id/start.
func (h *Handler) Start(c *gin.Context) {
	h.transition(c, h.service.Start)
}

// Finish handles PATCH /api/matches/:id/finish.
func (h *Handler) Finish(c *gin.Context) {
	h.transition(c, h.service.Finish)
}

// transition runs a start/finish convenience transition and renders the match.
func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, id uint) (*model.Match, error)) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	match, err := fn(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		h.logger.Errorw("error transitioning match", "match_id", id, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, match)
}

// Clock handles PATCH /api/matches/:id/clock.
func (h *Handler) Clock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	match, err := h.service.Clock(c.Request.Context(), id, req.Command)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMatchNotFound):
			notFoundResponse(c, "match not found")
		case errors.Is(err, model.ErrInvalidClockCommand):
			errorResponse(c, "INVALID_REQUEST", "unknown clock command", http.StatusBadRequest)
		default:
			h.logger.Errorw("error controlling match clock", "match_id", id, "error", err)
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// Details handles GET /api/matches/:id/details.
func (h *Handler) Details(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	details, err := h.service.Details(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		h.logger.Errorw("error getting match details", "match_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, details)
}

// QuickGoal handles POST /api/matches/:id/goals/quick.
func (h *Handler) QuickGoal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.QuickGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.service.QuickGoal(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMatchNotFound):
			notFoundResponse(c, "match not found")
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found")
		default:
			h.logger.Errorw("error recording quick goal", "match_id", id, "error", err)
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		}
		return
	}

	c.JSON(http.StatusCreated, goal)
}
