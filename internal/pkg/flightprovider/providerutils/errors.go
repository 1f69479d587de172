package providerutils

import (
	"net/http"

	"github.com/ijalalfrz/flight-selection-service/internal/pkg/exception"
)

var ErrProviderInternalError = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Code:       "PROVIDER_ERROR",
	Message:    "provider internal error or temporary unavailable",
}

var ErrProviderUnreachable = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Code:       "PROVIDER_UNREACHABLE",
	Message:    "flight search provider could not be reached",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Code:       "PROVIDER_RATE_LIMITED",
	Message:    "provider rate limit exceeded",
}
