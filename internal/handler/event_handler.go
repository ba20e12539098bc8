package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"eventhub/internal/auth"
	"eventhub/internal/model"
	"eventhub/internal/repository"
	"eventhub/internal/service"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	eventService service.EventService
	jwtService   *auth.JWTService
	perPage      int
}

// NewEventHandler creates a new event handler. perPage is the default page
// size for event listings.
func NewEventHandler(eventService service.EventService, jwtService *auth.JWTService, perPage int) *EventHandler {
	return &EventHandler{eventService: eventService, jwtService: jwtService, perPage: perPage}
}

// EventRequest represents an event create or update request.
type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
	CategoryID  *uint  `json:"category_id"`
}

func (h *EventHandler) bindInput(c echo.Context) (service.EventInput, error) {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return service.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return service.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	scheduledAt, err := parseTimestamp(req.ScheduledAt)
	if err != nil {
		return service.EventInput{}, domainError(err)
	}
	return service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: scheduledAt,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}, nil
}

// List godoc
// @Summary List events with optional search, category and status filters
// @Tags events
// @Produce json
// @Param search query string false "Substring match over title and description"
// @Param category query int false "Category ID"
// @Param status query string false "upcoming, ongoing or past"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 5)"
// @Success 200 {object} service.EventPage
// @Failure 500 {object} errors.ErrorResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	filter := repository.EventFilter{
		Search:  c.QueryParam("search"),
		Status:  model.EventStatus(c.QueryParam("status")),
		Page:    1,
		PerPage: h.perPage,
	}
	if v := c.QueryParam("category"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}
	if v := c.QueryParam("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if v := c.QueryParam("per_page"); v != "" {
		if perPage, err := strconv.Atoi(v); err == nil && perPage > 0 {
			filter.PerPage = perPage
		}
	}

	page, err := h.eventService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Get event details with registrations and ratings
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} service.EventDetails
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	viewerID := optionalUserID(c, h.jwtService)
	details, err := h.eventService.Get(c.Request().Context(), id, viewerID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, details)
}

// Create godoc
// @Summary Publish a new event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventRequest true "Event data"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	event, err := h.eventService.Create(c.Request().Context(), userID, input)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

// Update godoc
// @Summary Edit an event (creator only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body EventRequest true "Event data"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	event, err := h.eventService.Update(c.Request().Context(), id, userID, input)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event and its dependents (creator only)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.eventService.Delete(c.Request().Context(), id, userID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event deleted"})
}
