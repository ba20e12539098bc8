package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventhub/internal/model"
	"eventhub/internal/service"
)

// UserHandler handles the current-user endpoints, including the dashboard.
type UserHandler struct {
	userService     service.UserService
	eventService    service.EventService
	reminderService service.ReminderService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(
	userService service.UserService,
	eventService service.EventService,
	reminderService service.ReminderService,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		eventService:    eventService,
		reminderService: reminderService,
	}
}

// DashboardResponse bundles a user's created events, registered events and
// reminders.
type DashboardResponse struct {
	CreatedEvents    []model.Event    `json:"created_events"`
	RegisteredEvents []model.Event    `json:"registered_events"`
	Reminders        []model.Reminder `json:"reminders"`
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Dashboard godoc
// @Summary Get the authenticated user's dashboard
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *UserHandler) Dashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	created, err := h.eventService.ListCreatedBy(ctx, userID)
	if err != nil {
		return domainError(err)
	}
	registered, err := h.eventService.ListRegisteredBy(ctx, userID)
	if err != nil {
		return domainError(err)
	}
	reminders, err := h.reminderService.ListForUser(ctx, userID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		CreatedEvents:    created,
		RegisteredEvents: registered,
		Reminders:        reminders,
	})
}

// DeleteMe godoc
// @Summary Delete the authenticated user's account and everything it owns
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), userID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "account deleted"})
}
