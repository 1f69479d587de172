package flight

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roundTripPayload = `{
	"search_metadata": {"id": "search-1", "status": "Success"},
	"search_parameters": {"departure_id": "CDG", "arrival_id": "AUS", "outbound_date": "2025-05-10", "currency": "USD", "travel_class": 1},
	"best_flights": [
		{
			"price": 500,
			"flights": [
				{
					"airline": "Air France",
					"flight_number": "AF 100",
					"departure_airport": {"id": "CDG", "name": "Paris", "time": "2025-05-10 06:30"},
					"arrival_airport": {"id": "ATL", "name": "Atlanta", "time": "2025-05-10 10:00"},
					"duration": 570,
					"airline_logo": "https://example.com/af.png",
					"extensions": ["Wi-Fi", "In-seat power"]
				},
				{
					"airline": "Delta",
					"flight_number": "DL 200",
					"departure_airport": {"id": "ATL", "name": "Atlanta", "time": "2025-05-10 13:15"},
					"arrival_airport": {"id": "AUS", "name": "Austin", "time": "2025-05-10 15:00"},
					"duration": "1h 45m",
					"stops": [{"airport": "MEM"}],
					"travel_class": "Business"
				}
			]
		},
		{
			"price": "700",
			"flights": [
				{
					"departure_airport": {"id": "AUS", "name": "Austin"},
					"arrival_airport": {"id": "CDG", "name": "Paris", "time": "2025-05-18 09:00"}
				}
			]
		}
	]
}`

func TestNormalize_RoundTripPayload(t *testing.T) {
	raw, err := DecodeRawResponse([]byte(roundTripPayload))
	require.NoError(t, err)

	got, err := NormalizeResponse(context.Background(), raw)
	require.NoError(t, err)

	logo := "https://example.com/af.png"
	want := []dto.FlightRecord{
		{
			ID:               "flight-0",
			Airline:          "Air France",
			FlightNumber:     "AF 100",
			DepartureAirport: "CDG",
			ArrivalAirport:   "ATL",
			DepartureTime:    "2025-05-10 06:30",
			ArrivalTime:      "2025-05-10 10:00",
			Duration:         "9h 30m",
			Price:            500,
			Direction:        dto.DirectionOutbound,
			Stops:            0,
			TravelClass:      DefaultTravelClass,
			AirlineLogo:      &logo,
			Amenities:        []string{"Wi-Fi", "In-seat power"},
		},
		{
			ID:               "flight-1",
			Airline:          "Delta",
			FlightNumber:     "DL 200",
			DepartureAirport: "ATL",
			ArrivalAirport:   "AUS",
			DepartureTime:    "2025-05-10 13:15",
			ArrivalTime:      "2025-05-10 15:00",
			Duration:         "1h 45m",
			Price:            500,
			Direction:        dto.DirectionOutbound,
			Stops:            1,
			TravelClass:      "Business",
			Amenities:        DefaultAmenities,
		},
		{
			ID:               "flight-2",
			Airline:          DefaultAirline,
			FlightNumber:     "FL-3",
			DepartureAirport: "AUS",
			ArrivalAirport:   "CDG",
			DepartureTime:    MissingValue,
			ArrivalTime:      "2025-05-18 09:00",
			Duration:         MissingValue,
			Price:            700,
			Direction:        dto.DirectionReturn,
			Stops:            0,
			TravelClass:      DefaultTravelClass,
			Amenities:        DefaultAmenities,
		},
	}

	if diff := cmp.Diff(want, got.BestFlights); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "search-1", got.SearchMetadata.ID)
	assert.Equal(t, dto.FlexString("1"), got.SearchParameters.TravelClass)
	assert.Equal(t, []dto.City{}, got.Cities)
}

func TestNormalize_CountAndUniqueIDs(t *testing.T) {
	raw := dto.RawSearchResponse{
		BestFlights: []dto.RawItinerary{
			{Price: 100, Flights: []dto.RawLeg{{ID: "dup"}, {ID: "dup"}, {}}},
			{Price: 200, Flights: []dto.RawLeg{}},
			{Price: 300, Flights: []dto.RawLeg{{ID: "flight-2"}, {}}},
		},
	}

	got, err := Normalize(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, got, 5)

	seen := map[string]bool{}
	for _, record := range got {
		assert.False(t, seen[record.ID], "duplicate id %s", record.ID)
		seen[record.ID] = true
	}

	assert.Equal(t, 100.0, got[0].Price)
	assert.Equal(t, 300.0, got[4].Price)
}

func TestNormalize_DirectionTags(t *testing.T) {
	raw := dto.RawSearchResponse{
		BestFlights: []dto.RawItinerary{
			{Direction: dto.DirectionReturn, Flights: []dto.RawLeg{{}}},
			{Direction: dto.DirectionOutbound, Flights: []dto.RawLeg{{}}},
			{Flights: []dto.RawLeg{{}}},
		},
	}

	got, err := Normalize(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, dto.DirectionReturn, got[0].Direction)
	assert.Equal(t, dto.DirectionOutbound, got[1].Direction)
	assert.Equal(t, dto.DirectionReturn, got[2].Direction)
}

func TestNormalize_FallsBackToOtherFlights(t *testing.T) {
	raw := dto.RawSearchResponse{
		BestFlights:  []dto.RawItinerary{},
		OtherFlights: []dto.RawItinerary{{Price: 42, Flights: []dto.RawLeg{{Airline: "KLM"}}}},
	}

	got, err := Normalize(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "KLM", got[0].Airline)
	assert.Equal(t, 42.0, got[0].Price)
}

func TestNormalize_InvalidPayload(t *testing.T) {
	invalidRequest := func(raw dto.RawSearchResponse) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := Normalize(context.Background(), raw)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Nil(t, got)
		}
	}

	t.Run("missing_best_flights", invalidRequest(dto.RawSearchResponse{}))
	t.Run("block_without_flights", invalidRequest(dto.RawSearchResponse{
		BestFlights: []dto.RawItinerary{{Price: 100, Flights: []dto.RawLeg{{}}}, {Price: 200}},
	}))
}

func TestDecodeRawResponse_Invalid(t *testing.T) {
	decodeRequest := func(body string) func(t *testing.T) {
		return func(t *testing.T) {
			_, err := DecodeRawResponse([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidPayload)
		}
	}

	t.Run("not_json", decodeRequest("<html>"))
	t.Run("array", decodeRequest("[]"))
	t.Run("wrong_block_shape", decodeRequest(`{"best_flights": {"price": 1}}`))
}

func TestNormalize_EmptyResponse(t *testing.T) {
	got, err := Normalize(context.Background(), dto.RawSearchResponse{BestFlights: []dto.RawItinerary{}})
	require.NoError(t, err)
	assert.Empty(t, got)
}
