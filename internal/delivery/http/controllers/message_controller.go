package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventchat/internal/delivery/http/helpers"
	"eventchat/internal/delivery/http/middleware"
	"eventchat/internal/domain"
)

// SendMessageRequest is the request body for POST /event/send/{name}
type SendMessageRequest struct {
	Text string `json:"text"`
}

// MessageController handles posting and reading event messages.
type MessageController struct {
	Logger   *slog.Logger
	Messages domain.MessageService
}

// NewMessageController creates a MessageController with the given logger and service.
func NewMessageController(logger *slog.Logger, messages domain.MessageService) *MessageController {
	return &MessageController{
		Logger:   logger,
		Messages: messages,
	}
}

// Send godoc
// @Summary Send a message to an event
// @Description Appends a message to the event. A non-member author is added to the event's members first.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param body body SendMessageRequest true "Message text"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Router /event/send/{name} [post]
func (c *MessageController) Send(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteResponse(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	var req SendMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.Messages.Send(r.Context(), r.PathValue("name"), principal, req.Text); err != nil {
		switch {
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
	helpers.WriteResponse(w, http.StatusOK, "Message sent")
}

// List godoc
// @Summary List an event's messages
// @Description Returns the event's messages in posting order.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Success 200 {array} domain.Message
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Router /event/messages/{name} [get]
func (c *MessageController) List(w http.ResponseWriter, r *http.Request) {
	messages, err := c.Messages.ListByEvent(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteResponse(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, messages)
}

// Get godoc
// @Summary Get a single message
// @Description Returns one message by id. 404 if the event is unknown or the message does not belong to it.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param id path int true "Message id"
// @Success 200 {object} domain.Message
// @Failure 404 {object} helpers.MessageResponse
// @Router /event/message/{name}/{id} [get]
func (c *MessageController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		helpers.WriteResponse(w, http.StatusNotFound, "Message not found")
		return
	}
	msg, err := c.Messages.Get(r.Context(), r.PathValue("name"), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteResponse(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrMessageNotFound):
			helpers.WriteResponse(w, http.StatusNotFound, "Message not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, msg)
}
