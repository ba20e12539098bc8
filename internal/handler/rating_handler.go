package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventhub/internal/service"
)

// RatingHandler handles rating endpoints.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler creates a new rating handler.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RatingRequest represents a rating request.
type RatingRequest struct {
	Score   int    `json:"score" validate:"required"`
	Comment string `json:"comment"`
}

// Rate godoc
// @Summary Rate an event
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body RatingRequest true "Rating data"
// @Success 201 {object} model.Rating
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/{id}/ratings [post]
func (h *RatingHandler) Rate(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req RatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.ratingService.Rate(c.Request().Context(), eventID, userID, req.Score, req.Comment)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, rating)
}
