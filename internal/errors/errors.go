package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// ErrUserNotFound is returned when no user has the requested username.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleNotFound is returned when no role has the requested name.
	ErrRoleNotFound = errors.New("role not found")
	// ErrDuplicateUsername is returned when an insert hits the unique username index.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateRole is returned when an insert hits the unique role name index.
	ErrDuplicateRole = errors.New("role already exists")
	// ErrInvalidSession is returned when the session cookie cannot be trusted.
	ErrInvalidSession = errors.New("invalid session")
)

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

// MapErrorToHTTP maps domain and framework errors to HTTP errors.
// Anything unrecognised becomes a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return NewHTTPError(he.Code, http.StatusText(he.Code), "HTTP_"+http.StatusText(he.Code))
	}
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROLE_NOT_FOUND")
	case errors.Is(err, ErrInvalidSession):
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INVALID_SESSION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
