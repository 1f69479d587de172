package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ijalalfrz/flight-selection-service/internal/app/config"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-selection-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flight"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRouter(t *testing.T, setupMock func(m *endpoints.MockFlightService)) http.Handler {
	_ = dto.InitValidator()

	m := endpoints.NewMockFlightService(t)
	setupMock(m)

	cfg := &config.Config{HTTP: config.HTTP{AllowedOrigins: []string{"http://localhost:5173"}}}

	return MakeHTTPRouter(cfg, endpoints.Endpoints{
		FlightEndpoint: endpoints.MakeFlightEndpoint(m),
	}, prometheus.NewRegistry())
}

func TestHTTPRouter(t *testing.T) {
	routeRequest := func(
		path string,
		body string,
		setupMock func(m *endpoints.MockFlightService),
		wantStatus int,
		wantBody string,
	) func(t *testing.T) {
		return func(t *testing.T) {
			router := newRouter(t, setupMock)

			r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
			r.Header.Set("Content-Type", "application/json")
			r.Header.Set(dto.HeaderSessionID, "session-1")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, r)

			assert.Equal(t, wantStatus, w.Code)
			assert.Equal(t, "session-1", w.Header().Get(dto.HeaderSessionID))
			assert.JSONEq(t, wantBody, w.Body.String())
		}
	}

	t.Run("search_validation_error", routeRequest("/api/v1/flights/search",
		`{"departure_id":"CDG","arrival_id":"CDG","outbound_date":"2025-05-10","trip_type":"one_way"}`,
		func(m *endpoints.MockFlightService) {},
		http.StatusBadRequest,
		`{"error":"arrival_id must be different from departure_id","code":"INVALID_REQUEST"}`))

	t.Run("select_session_not_found", routeRequest("/api/v1/flights/select",
		`{"direction":"Outbound","flight_id":"flight-0"}`,
		func(m *endpoints.MockFlightService) {
			m.On("SelectFlight", mock.Anything, dto.SelectRequest{
				SessionID: "session-1", Direction: dto.DirectionOutbound, FlightID: "flight-0",
			}).Return(dto.FlightSelectionResponse{}, flight.ErrSessionNotFound)
		},
		http.StatusNotFound,
		`{"error":"search session not found or expired","code":"SESSION_NOT_FOUND"}`))

	t.Run("book", routeRequest("/api/v1/flights/book", ``,
		func(m *endpoints.MockFlightService) {
			m.On("BookFlights", mock.Anything, dto.BookRequest{SessionID: "session-1"}).
				Return(dto.BookingConfirmation{
					Reference: "BK-1",
					Message:   "Booking flight flight-0",
					TripType:  dto.TripTypeOneWay,
				}, nil)
		},
		http.StatusOK,
		`{"reference":"BK-1","message":"Booking flight flight-0","trip_type":"one_way","outbound":null}`))

	t.Run("malformed_body", routeRequest("/api/v1/flights/filter", `{"filter":`,
		func(m *endpoints.MockFlightService) {},
		http.StatusBadRequest,
		`{"error":"request body is not valid JSON","code":"MALFORMED_REQUEST"}`))
}

func TestHTTPRouter_Health(t *testing.T) {
	router := newRouter(t, func(m *endpoints.MockFlightService) {})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHTTPRouter_Metrics(t *testing.T) {
	router := newRouter(t, func(m *endpoints.MockFlightService) {})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
