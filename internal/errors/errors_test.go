package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"validation error", NewValidationError("title is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"event not found", ErrEventNotFound, http.StatusNotFound, "EVENT_NOT_FOUND"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"category not found", ErrCategoryNotFound, http.StatusNotFound, "CATEGORY_NOT_FOUND"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate registration", ErrDuplicateRegistration, http.StatusConflict, "DUPLICATE_REGISTRATION"},
		{"duplicate rating", ErrDuplicateRating, http.StatusConflict, "DUPLICATE_RATING"},
		{"email taken", ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN"},
		{"duplicate category", ErrDuplicateCategory, http.StatusConflict, "DUPLICATE_CATEGORY"},
		{"reminder after event", ErrReminderAfterEvent, http.StatusUnprocessableEntity, "REMINDER_AFTER_EVENT"},
		{"reminder in past", ErrReminderInPast, http.StatusUnprocessableEntity, "REMINDER_IN_PAST"},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"wrapped sentinel", fmt.Errorf("find event: %w", ErrEventNotFound), http.StatusNotFound, "EVENT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("bad input")))
	assert.True(t, IsValidation(fmt.Errorf("wrap: %w", NewValidationError("bad input"))))
	assert.False(t, IsValidation(ErrEventNotFound))
	assert.False(t, IsValidation(nil))
}
