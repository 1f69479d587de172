package flight

import (
	"net/http"

	"github.com/ijalalfrz/flight-selection-service/internal/pkg/exception"
)

// ErrInvalidPayload is returned when a provider payload does not carry the
// itinerary block structure. Normalization never returns a partial result.
var ErrInvalidPayload = exception.ApplicationError{
	Message:    "invalid flight search payload",
	StatusCode: http.StatusUnprocessableEntity,
	Code:       "INVALID_PAYLOAD",
}

var ErrSessionNotFound = exception.ApplicationError{
	Message:    "search session not found or expired",
	StatusCode: http.StatusNotFound,
	Code:       "SESSION_NOT_FOUND",
}
