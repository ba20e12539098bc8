package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"eventhub/internal/auth"
	"eventhub/internal/errors"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestCurrentUserID(t *testing.T) {
	t.Run("reads user_id from middleware-parsed token", func(t *testing.T) {
		// Sign with the service, then re-parse the way the JWT middleware
		// does: golang-jwt v5 with MapClaims.
		jwtService := auth.NewJWTService("test-secret")
		signed, err := jwtService.GenerateAccessToken(7, "test@example.com")
		assert.NoError(t, err)

		token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		assert.IsType(t, jwt.MapClaims{}, token.Claims)

		c := newTestContext(t)
		c.Set("user", token)

		userID, err := currentUserID(c)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), userID)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := currentUserID(newTestContext(t))

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("token without user_id claim", func(t *testing.T) {
		c := newTestContext(t)
		c.Set("user", &jwt.Token{Claims: jwt.MapClaims{"email": "test@example.com"}})

		_, err := currentUserID(c)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("datetime-local layout", func(t *testing.T) {
		parsed, err := parseTimestamp("2026-09-12T18:30")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("rfc3339 layout", func(t *testing.T) {
		parsed, err := parseTimestamp("2026-09-12T18:30:00+02:00")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 12, 16, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := parseTimestamp("next tuesday")
		assert.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("date only is rejected", func(t *testing.T) {
		_, err := parseTimestamp("2026-09-12")
		assert.Error(t, err)
	})
}
