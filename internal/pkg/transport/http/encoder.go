package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/exception"
)

var ErrMalformedRequest = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Code:       "MALFORMED_REQUEST",
	Message:    "request body is not valid JSON",
}

// MakeHandlerFunc serves e over HTTP with the shared error encoder.
func MakeHandlerFunc(e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes the body into a new T and runs its Bind hook, which
// validates it. An empty body leaves T at its zero value before Bind runs.
// *T must implement render.Binder.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	binder, ok := any(&req).(render.Binder)
	if !ok {
		return nil, fmt.Errorf("%T does not implement render.Binder", &req)
	}

	if err := render.DecodeJSON(r.Body, binder); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedRequest, err.Error())
	}

	if err := binder.Bind(r); err != nil {
		return nil, err
	}

	return &req, nil
}

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ErrorResponse encodes the error response to the client. it will check if it's a sentinel error or unknown error.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr  exception.ApplicationError
		status  = http.StatusInternalServerError
		message string
		code    string
	)

	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		message = appErr.Message
		code = appErr.Code

		slog.WarnContext(ctx, "request failed", slog.String("error", err.Error()))
	} else {
		message = err.Error()

		slog.ErrorContext(ctx, message, slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
