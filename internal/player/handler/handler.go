// Package handler provides HTTP handlers for player endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/peladasmanager/backend/internal/player/model"
	"github.com/peladasmanager/backend/internal/player/service"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /api/players.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	player, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmailExists) {
			errorResponse(c, "EMAIL_EXISTS", "email already registered", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating player", "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// List handles GET /api/players.
func (h *Handler) List(c *gin.Context) {
	var q model.ListPlayersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	players, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		h.logger.Errorw("error listing players", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, players)
}

// Get handles GET /api/players/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	player, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		h.logger.Errorw("error getting player", "player_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, player)
}

// Update handles PUT /api/players/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	player, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		if errors.Is(err, model.ErrEmailExists) {
			errorResponse(c, "EMAIL_EXISTS", "email already registered", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error updating player", "player_id", id, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, player)
}

// Delete handles DELETE /api/players/:id (soft delete).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		h.logger.Errorw("error deactivating player", "player_id", id, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.Status(http.StatusNoContent)
}
