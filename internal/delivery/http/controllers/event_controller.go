package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventchat/internal/delivery/http/helpers"
	"eventchat/internal/delivery/http/middleware"
	"eventchat/internal/domain"
)

// CreateEventRequest is the request body for POST /event/create
type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// EventController handles event creation, reads, and membership.
type EventController struct {
	Logger *slog.Logger
	Events domain.EventService
}

// NewEventController creates an EventController with the given logger and service.
func NewEventController(logger *slog.Logger, events domain.EventService) *EventController {
	return &EventController{
		Logger: logger,
		Events: events,
	}
}

// Create godoc
// @Summary Create an event
// @Description Create a named event. The authenticated user becomes its creator but not a member.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.MessageResponse "Event already exists"
// @Failure 404 {object} helpers.MessageResponse "User not found"
// @Router /event/create [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteResponse(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.Events.Create(r.Context(), req.Name, req.Description, principal); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteResponse(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrDuplicateEvent):
			helpers.WriteResponse(w, http.StatusBadRequest, "Event already exists")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	helpers.WriteResponse(w, http.StatusOK, "Event created")
}

// All godoc
// @Summary List all events
// @Description Returns every event with its members and messages.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.EventDetails
// @Router /event/all [get]
func (c *EventController) All(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event
// @Description Returns the event with its member names and messages in posting order.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Success 200 {object} domain.EventDetails
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Router /event/{name} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	event, err := c.Events.Get(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteResponse(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Join godoc
// @Summary Join an event
// @Description Adds the authenticated user to the event's members. Joining an event you already belong to is reported, not silently ignored.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Success 200 {object} helpers.MessageResponse
// @Success 202 {object} helpers.MessageResponse "User already in event"
// @Failure 404 {object} helpers.MessageResponse
// @Router /event/join/{name} [post]
func (c *EventController) Join(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteResponse(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	if err := c.Events.Join(r.Context(), r.PathValue("name"), principal); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyMember):
			helpers.WriteResponse(w, http.StatusAccepted, "User already in event")
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteResponse(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteResponse(w, http.StatusNotFound, "User not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	helpers.WriteResponse(w, http.StatusOK, "Joined event")
}

// Leave godoc
// @Summary Leave an event
// @Description Removes the authenticated user from the event's members.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse "Event not found / User not in event"
// @Router /event/leave/{name} [post]
func (c *EventController) Leave(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteResponse(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	if err := c.Events.Leave(r.Context(), r.PathValue("name"), principal); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotMember):
			helpers.WriteResponse(w, http.StatusNotFound, "User not in event")
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteResponse(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteResponse(w, http.StatusNotFound, "User not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	helpers.WriteResponse(w, http.StatusOK, "Left event")
}
