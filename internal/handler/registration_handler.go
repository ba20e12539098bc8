package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventhub/internal/auth"
	"eventhub/internal/service"
)

// RegistrationHandler handles event registration endpoints.
type RegistrationHandler struct {
	registrationService service.RegistrationService
	jwtService          *auth.JWTService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(registrationService service.RegistrationService, jwtService *auth.JWTService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService, jwtService: jwtService}
}

// RegistrationRequest represents the contact fields for joining an event.
type RegistrationRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Others string `json:"others"`
}

// Register godoc
// @Summary Register for an event
// @Description Registers the caller for an event. Works without a bearer
// @Description token too, in which case the registration is a guest record
// @Description keyed by email only.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body RegistrationRequest true "Contact data"
// @Success 201 {object} model.EventRegistration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/{id}/registrations [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID := optionalUserID(c, h.jwtService)
	registration, err := h.registrationService.Register(c.Request().Context(), eventID, userID, service.RegistrationInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Others: req.Others,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, registration)
}
