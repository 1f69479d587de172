package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawSearchResponse is the provider payload as returned by the google_flights
// search engine. Itinerary blocks keep the provider nesting; Normalize flattens them.
type RawSearchResponse struct {
	SearchMetadata   SearchMetadata   `json:"search_metadata"`
	SearchParameters SearchParameters `json:"search_parameters"`
	BestFlights      []RawItinerary   `json:"best_flights"`
	OtherFlights     []RawItinerary   `json:"other_flights,omitempty"`
	Cities           []City           `json:"cities,omitempty"`
	Error            string           `json:"error,omitempty"`
}

// RawItinerary is one priced itinerary block. Direction is empty unless the
// provider adapter tagged the block.
type RawItinerary struct {
	Price     Amount    `json:"price"`
	Flights   []RawLeg  `json:"flights"`
	Direction Direction `json:"direction,omitempty"`
}

type RawLeg struct {
	ID               string      `json:"id,omitempty"`
	Airline          string      `json:"airline,omitempty"`
	FlightNumber     string      `json:"flight_number,omitempty"`
	DepartureAirport *RawAirport `json:"departure_airport,omitempty"`
	ArrivalAirport   *RawAirport `json:"arrival_airport,omitempty"`
	DepartureTime    string      `json:"departure_time,omitempty"`
	ArrivalTime      string      `json:"arrival_time,omitempty"`
	Duration         RawDuration `json:"duration,omitzero"`
	Stops            []RawStop   `json:"stops,omitempty"`
	AirlineLogo      string      `json:"airline_logo,omitempty"`
	TravelClass      string      `json:"travel_class,omitempty"`
	Extensions       []string    `json:"extensions,omitempty"`
}

type RawAirport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"`
}

type RawStop struct {
	Airport  string      `json:"airport"`
	Time     string      `json:"time,omitempty"`
	Duration RawDuration `json:"duration,omitzero"`
}

// Amount is a price that accepts a JSON number or a numeric string.
// Anything else, including null, decodes to zero.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*a = Amount(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			*a = Amount(parsed)
			return nil
		}
	}

	*a = 0

	return nil
}

// RawDuration is a leg duration. Providers send either whole minutes or an
// already formatted string.
type RawDuration struct {
	Minutes *int
	Text    string
}

func (d *RawDuration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = RawDuration{}
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		minutes := int(math.Round(number))
		*d = RawDuration{Minutes: &minutes}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	*d = RawDuration{Text: text}

	return nil
}

func (d RawDuration) MarshalJSON() ([]byte, error) {
	if d.Minutes != nil {
		return json.Marshal(*d.Minutes)
	}

	return json.Marshal(d.Text)
}

// IsZero reports an absent duration, used by omitzero.
func (d RawDuration) IsZero() bool {
	return d.Minutes == nil && d.Text == ""
}

// FlexString is a string field that some provider responses send as a number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*f = FlexString(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	*f = FlexString(number.String())

	return nil
}
