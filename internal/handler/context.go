package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"eventhub/internal/auth"
	"eventhub/internal/errors"
)

// a datetime-local value, the form the original web UI submits
const timeLayout = "2006-01-02T15:04"

// currentUserID extracts the authenticated user's ID placed in the context
// by the JWT middleware. echo-jwt parses with golang-jwt v5 and leaves the
// claims as a MapClaims, so user_id arrives as a JSON number.
func currentUserID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return uint(userID), nil
}

// optionalUserID returns the viewer's user ID when a valid bearer token is
// present and nil otherwise. Used on public read routes where anonymous
// browsing is allowed.
func optionalUserID(c echo.Context, jwtService *auth.JWTService) *uint {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil
	}
	claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, prefix))
	if err != nil {
		return nil
	}
	return &claims.UserID
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// parseTimestamp parses a timestamp from its external representation,
// accepting the datetime-local layout or RFC 3339. Values without an
// explicit zone are taken as UTC.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(timeLayout, value, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errors.NewValidationError("invalid timestamp, use YYYY-MM-DDTHH:MM")
}

// domainError translates a domain error into an echo HTTP error.
func domainError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
