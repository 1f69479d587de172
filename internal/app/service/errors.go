package service

import (
	"net/http"

	"github.com/ijalalfrz/flight-selection-service/internal/pkg/exception"
)

var ErrStaleResponse = exception.ApplicationError{
	Message:    "search response superseded by a newer search",
	StatusCode: http.StatusConflict,
	Code:       "STALE_RESPONSE",
}

var ErrSelectionIncomplete = exception.ApplicationError{
	Message:    "select an outbound flight, and a return flight for a round trip, before booking",
	StatusCode: http.StatusBadRequest,
	Code:       "SELECTION_INCOMPLETE",
}

var ErrFlightNotSelectable = exception.ApplicationError{
	Message:    "flight is not part of the filtered results for this direction",
	StatusCode: http.StatusBadRequest,
	Code:       "FLIGHT_NOT_SELECTABLE",
}

var ErrProviderNotConfigured = exception.ApplicationError{
	Message:    "flight search provider is not configured",
	StatusCode: http.StatusInternalServerError,
	Code:       "PROVIDER_NOT_CONFIGURED",
}
