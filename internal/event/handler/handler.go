// Package handler provides HTTP handlers for event endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/peladasmanager/backend/internal/event/model"
	"github.com/peladasmanager/backend/internal/event/service"
	playerModel "github.com/peladasmanager/backend/internal/player/model"
)

// Handler handles HTTP requests for event endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new event handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /api/events.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	event, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("error creating event", "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// List handles GET /api/events.
func (h *Handler) List(c *gin.Context) {
	var q model.ListEventsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	events, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		h.logger.Errorw("error listing events", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, events)
}

// Get handles GET /api/events/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	event, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			notFoundResponse(c, "event not found")
			return
		}
		h.logger.Errorw("error getting event", "event_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Update handles PUT /api/events/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	event, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			notFoundResponse(c, "event not found")
			return
		}
		h.logger.Errorw("error updating event", "event_id", id, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/events/:id.
// Irreversible: cascades to the event's matches, their goals and registrations.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			notFoundResponse(c, "event not found")
			return
		}
		h.logger.Errorw("error deleting event", "event_id", id, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterPlayer handles POST /api/events/:id/registrations.
func (h *Handler) RegisterPlayer(c *gin.Context) {
	eventID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req model.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	reg, err := h.service.RegisterPlayer(c.Request.Context(), eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEventNotFound):
			notFoundResponse(c, "event not found")
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found")
		case errors.Is(err, playerModel.ErrPlayerInactive):
			errorResponse(c, "PLAYER_INACTIVE", "player is inactive", http.StatusBadRequest)
		case errors.Is(err, model.ErrRegistrationExists):
			errorResponse(c, "ALREADY_REGISTERED", "player already registered in event", http.StatusBadRequest)
		default:
			h.logger.Errorw("error registering player", "event_id", eventID, "error", err)
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		}
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// ListRegistrations handles GET /api/events/:id/registrations.
func (h *Handler) ListRegistrations(c *gin.Context) {
	eventID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	regs, err := h.service.ListRegistrations(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			notFoundResponse(c, "event not found")
			return
		}
		h.logger.Errorw("error listing registrations", "event_id", eventID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, regs)
}

// UpdateRegistration handles PATCH /api/events/:id/registrations/:playerID.
func (h *Handler) UpdateRegistration(c *gin.Context) {
	eventID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := parseUintParam(c, "playerID")
	if !ok {
		return
	}

	var req model.UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	reg, err := h.service.UpdateRegistration(c.Request.Context(), eventID, playerID, &req)
	if err != nil {
		if errors.Is(err, model.ErrRegistrationNotFound) {
			notFoundResponse(c, "registration not found")
			return
		}
		h.logger.Errorw("error updating registration",
			"event_id", eventID, "player_id", playerID, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, reg)
}

// RemoveRegistration handles DELETE /api/events/:id/registrations/:playerID.
func (h *Handler) RemoveRegistration(c *gin.Context) {
	eventID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := parseUintParam(c, "playerID")
	if !ok {
		return
	}

	err := h.service.RemoveRegistration(c.Request.Context(), eventID, playerID)
	if err != nil {
		if errors.Is(err, model.ErrRegistrationNotFound) {
			notFoundResponse(c, "registration not found")
			return
		}
		h.logger.Errorw("error removing registration",
			"event_id", eventID, "player_id", playerID, "error", err)
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	c.Status(http.StatusNoContent)
}
