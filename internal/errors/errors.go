package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEventNotFound is returned when an event id does not resolve.
	ErrEventNotFound = errors.New("event not found")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrForbidden is returned when a user acts on an event they do not own.
	ErrForbidden = errors.New("only the event creator may do this")
	// ErrDuplicateRegistration is returned when a registration already exists
	// for the (event, user) or (event, email) pair.
	ErrDuplicateRegistration = errors.New("already registered for this event")
	// ErrDuplicateRating is returned when the user has already rated the event.
	ErrDuplicateRating = errors.New("event already rated")
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrDuplicateCategory is returned when a category name is already in use.
	ErrDuplicateCategory = errors.New("category name already in use")
	// ErrReminderAfterEvent is returned when a reminder does not strictly
	// precede its event's scheduled time.
	ErrReminderAfterEvent = errors.New("reminder must be before the event starts")
	// ErrReminderInPast is returned when a reminder time is already in the past.
	ErrReminderInPast = errors.New("reminder must be in the future")
)

// ValidationError marks malformed or missing required input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	if IsValidation(err) {
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}
	switch {
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrDuplicateRegistration):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_REGISTRATION")
	case errors.Is(err, ErrDuplicateRating):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_RATING")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrDuplicateCategory):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_CATEGORY")
	case errors.Is(err, ErrReminderAfterEvent):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "REMINDER_AFTER_EVENT")
	case errors.Is(err, ErrReminderInPast):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "REMINDER_IN_PAST")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
