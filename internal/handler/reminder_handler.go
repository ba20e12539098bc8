package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventhub/internal/service"
)

// ReminderHandler handles reminder endpoints.
type ReminderHandler struct {
	reminderService service.ReminderService
}

// NewReminderHandler creates a new reminder handler.
func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// ReminderRequest represents a set-reminder request.
type ReminderRequest struct {
	RemindAt string `json:"remind_at" validate:"required"`
	Message  string `json:"message"`
}

// Set godoc
// @Summary Set a reminder for an event
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body ReminderRequest true "Reminder data"
// @Success 201 {object} model.Reminder
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /events/{id}/reminders [post]
func (h *ReminderHandler) Set(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	remindAt, err := parseTimestamp(req.RemindAt)
	if err != nil {
		return domainError(err)
	}

	reminder, err := h.reminderService.Set(c.Request().Context(), eventID, userID, remindAt, req.Message)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, reminder)
}

// ListMine godoc
// @Summary List the caller's reminders
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Reminder
// @Failure 401 {object} errors.ErrorResponse
// @Router /reminders [get]
func (h *ReminderHandler) ListMine(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reminders, err := h.reminderService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, reminders)
}
