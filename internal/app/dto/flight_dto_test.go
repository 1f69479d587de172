//go:build unit

package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSearchCriteria_Validate(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator()

	validateRequest := func(req SearchCriteria, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	roundTrip := SearchCriteria{
		DepartureID:  "CGK",
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		ReturnDate:   "2025-05-15",
		TripType:     TripTypeRoundTrip,
	}

	t.Run("valid_round_trip", validateRequest(roundTrip, false, ""))

	t.Run("valid_one_way_without_return_date", validateRequest(SearchCriteria{
		DepartureID:  "CGK",
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		TripType:     TripTypeOneWay,
	}, false, ""))

	t.Run("missing_departure", validateRequest(SearchCriteria{
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		TripType:     TripTypeOneWay,
	}, true, "departure_id is a required field"))

	t.Run("invalid_airport_code", validateRequest(SearchCriteria{
		DepartureID:  "cgk",
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		TripType:     TripTypeOneWay,
	}, true, "departure_id must be a 3-letter IATA airport code"))

	t.Run("same_airports", validateRequest(SearchCriteria{
		DepartureID:  "SIN",
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		TripType:     TripTypeOneWay,
	}, true, "arrival_id must be different from departure_id"))

	t.Run("invalid_outbound_date", validateRequest(SearchCriteria{
		DepartureID:  "CGK",
		ArrivalID:    "SIN",
		OutboundDate: "10/05/2025",
		TripType:     TripTypeOneWay,
	}, true, "outbound_date must use the YYYY-MM-DD format"))

	t.Run("round_trip_missing_return", validateRequest(SearchCriteria{
		DepartureID:  "CGK",
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		TripType:     TripTypeRoundTrip,
	}, true, "return_date is required for a round trip"))

	t.Run("return_before_outbound", validateRequest(SearchCriteria{
		DepartureID:  "CGK",
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		ReturnDate:   "2025-05-09",
		TripType:     TripTypeRoundTrip,
	}, true, "return_date must not be before outbound_date"))

	t.Run("same_day_return", validateRequest(SearchCriteria{
		DepartureID:  "CGK",
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		ReturnDate:   "2025-05-10",
		TripType:     TripTypeRoundTrip,
	}, false, ""))
}

func TestSearchCriteria_Bind(t *testing.T) {
	_ = InitValidator()

	bindRequest := func(req SearchCriteria, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	validCriteria := SearchCriteria{
		DepartureID:  "CGK",
		ArrivalID:    "SIN",
		OutboundDate: "2025-05-10",
		TripType:     TripTypeOneWay,
	}

	t.Run("valid_bind", bindRequest(validCriteria, false))
	t.Run("invalid_bind", bindRequest(SearchCriteria{}, true))

	t.Run("session_from_header", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/v1/flights/search", nil)
		r.Header.Set(HeaderSessionID, "session-1")

		req := validCriteria
		assert.NoError(t, req.Bind(r))
		assert.Equal(t, "session-1", req.SessionID)
	})
}

func TestFilterRequest_Bind(t *testing.T) {
	_ = InitValidator()

	negative := -1.0
	ceiling := 700.0

	bindRequest := func(req FilterRequest, wantErr bool, wantDepart, wantReturn float64) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr {
				return
			}

			assert.Equal(t, wantDepart, *req.Filter.DepartPriceMax)
			assert.Equal(t, wantReturn, *req.Filter.ReturnPriceMax)
		}
	}

	t.Run("defaults_ceilings", bindRequest(FilterRequest{}, false, DefaultPriceMax, DefaultPriceMax))
	t.Run("keeps_given_ceiling", bindRequest(FilterRequest{
		Filter: FilterSpec{ReturnPriceMax: &ceiling},
	}, false, DefaultPriceMax, 700))
	t.Run("negative_ceiling", bindRequest(FilterRequest{
		Filter: FilterSpec{DepartPriceMax: &negative},
	}, true, 0, 0))
	t.Run("invalid_sort_field", bindRequest(FilterRequest{
		SortOption: &SortOption{Field: "airline", Order: "asc"},
	}, true, 0, 0))
}

func TestSelectRequest_Bind(t *testing.T) {
	_ = InitValidator()

	bindRequest := func(req SelectRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("valid", bindRequest(SelectRequest{Direction: DirectionReturn, FlightID: "flight-2"}, false))
	t.Run("unknown_direction", bindRequest(SelectRequest{Direction: "Sideways", FlightID: "flight-2"}, true))
	t.Run("missing_flight", bindRequest(SelectRequest{Direction: DirectionOutbound}, true))
}
