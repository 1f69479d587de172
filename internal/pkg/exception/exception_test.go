package exception

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationError_Is(t *testing.T) {
	sentinel := ApplicationError{
		Message:    "invalid payload",
		StatusCode: http.StatusUnprocessableEntity,
		Code:       "INVALID_PAYLOAD",
	}

	isRequest := func(err error, target error, want bool) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, errors.Is(err, target))
		}
	}

	t.Run("same_value", isRequest(sentinel, sentinel, true))
	t.Run("wrapped", isRequest(fmt.Errorf("normalize: %w", sentinel), sentinel, true))
	t.Run("different_code", isRequest(ApplicationError{
		Message: "invalid payload",
		Code:    "OTHER",
	}, sentinel, false))
	t.Run("plain_error", isRequest(errors.New("invalid payload"), sentinel, false))
}

func TestApplicationError_Error(t *testing.T) {
	err := ApplicationError{Message: "provider failed", Cause: errors.New("timeout")}
	assert.Equal(t, "provider failed: timeout", err.Error())

	var appErr ApplicationError
	assert.True(t, errors.As(fmt.Errorf("search: %w", err), &appErr))
	assert.Equal(t, "provider failed", appErr.Message)
}
