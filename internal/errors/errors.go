package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrLogNotFound is returned when a daily log is not found.
	ErrLogNotFound = errors.New("daily log not found")
	// ErrEntryNotFound is returned when a L.I.O.N. entry is not found.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrForbidden is returned when a caller touches a record they do not own.
	ErrForbidden = errors.New("not the owner of this record")
	// ErrValidation is returned when required report fields are missing or malformed.
	ErrValidation = errors.New("invalid report fields")
	// ErrRenderFailed is returned when PDF rendering fails.
	ErrRenderFailed = errors.New("report rendering failed")
	// ErrDeliveryFailed is returned when the mail transport fails.
	ErrDeliveryFailed = errors.New("report delivery failed")
)

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

// MapErrorToHTTP maps domain errors to HTTP errors. Render and delivery
// failures deliberately surface a generic message; the underlying detail
// belongs in the logs, not the response.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrLogNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LOG_NOT_FOUND")
	case errors.Is(err, ErrEntryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ENTRY_NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrRenderFailed):
		return NewHTTPError(http.StatusInternalServerError, "failed to generate report", "RENDER_FAILED")
	case errors.Is(err, ErrDeliveryFailed):
		return NewHTTPError(http.StatusBadGateway, "failed to send report, please try again later", "DELIVERY_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
