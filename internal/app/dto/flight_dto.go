package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/flight-selection-service/internal/pkg/exception"
)

const (
	// HeaderSessionID carries the rendering layer session between calls.
	HeaderSessionID = "X-Session-Id"

	dateLayout = "2006-01-02"
)

type Direction string

const (
	DirectionOutbound Direction = "Outbound"
	DirectionReturn   Direction = "Return"
)

type TripType string

const (
	TripTypeOneWay    TripType = "one_way"
	TripTypeRoundTrip TripType = "round_trip"
)

// FlightRecord is one flattened leg ready for display.
type FlightRecord struct {
	ID               string    `json:"id"`
	Airline          string    `json:"airline"`
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport,omitempty"`
	ArrivalAirport   string    `json:"arrival_airport,omitempty"`
	DepartureTime    string    `json:"departure_time"`
	ArrivalTime      string    `json:"arrival_time"`
	Duration         string    `json:"duration"`
	Price            float64   `json:"price"`
	Direction        Direction `json:"direction,omitempty"`
	Stops            int       `json:"stops"`
	TravelClass      string    `json:"travel_class"`
	AirlineLogo      *string   `json:"airline_logo,omitempty"`
	Amenities        []string  `json:"extensions"`
}

type SearchMetadata struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type SearchParameters struct {
	DepartureID  string     `json:"departure_id"`
	ArrivalID    string     `json:"arrival_id"`
	OutboundDate string     `json:"outbound_date"`
	ReturnDate   string     `json:"return_date,omitempty"`
	Currency     string     `json:"currency"`
	TravelClass  FlexString `json:"travel_class,omitempty"`
	Language     string     `json:"hl,omitempty"`
}

type City struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AirportName string `json:"airport_name,omitempty"`
	Country     string `json:"country,omitempty"`
	Code        string `json:"code,omitempty"`
}

// FlightSearchResponse is the flattened shape handed to the rendering layer.
type FlightSearchResponse struct {
	SearchMetadata   SearchMetadata   `json:"search_metadata"`
	SearchParameters SearchParameters `json:"search_parameters"`
	BestFlights      []FlightRecord   `json:"best_flights"`
	Cities           []City           `json:"cities"`
}

type SearchCriteria struct {
	SessionID    string   `json:"-"`
	DepartureID  string   `json:"departure_id" validate:"required,airport_code"`
	ArrivalID    string   `json:"arrival_id" validate:"required,airport_code"`
	OutboundDate string   `json:"outbound_date" validate:"required"`
	ReturnDate   string   `json:"return_date,omitempty"`
	TripType     TripType `json:"trip_type" validate:"required,oneof=one_way round_trip"`
	Currency     string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	Language     string   `json:"hl,omitempty"`
	TravelClass  string   `json:"travel_class,omitempty" validate:"omitempty,oneof=economy premium_economy business first"`
}

func (s *SearchCriteria) Bind(r *http.Request) error {
	if r != nil && s.SessionID == "" {
		s.SessionID = r.Header.Get(HeaderSessionID)
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchCriteria) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return badRequest(err.Error())
	}

	if s.DepartureID == s.ArrivalID {
		return badRequest("arrival_id must be different from departure_id")
	}

	outbound, err := time.Parse(dateLayout, s.OutboundDate)
	if err != nil {
		return badRequest("outbound_date must use the YYYY-MM-DD format")
	}

	if s.TripType == TripTypeOneWay {
		return nil
	}

	if s.ReturnDate == "" {
		return badRequest("return_date is required for a round trip")
	}

	returnDate, err := time.Parse(dateLayout, s.ReturnDate)
	if err != nil {
		return badRequest("return_date must use the YYYY-MM-DD format")
	}

	if returnDate.Before(outbound) {
		return badRequest("return_date must not be before outbound_date")
	}

	return nil
}

// IsRoundTrip reports whether a return leg is part of the search.
func (s SearchCriteria) IsRoundTrip() bool {
	return s.TripType == TripTypeRoundTrip
}

var AllowedSortField = map[string]bool{
	"price":          true,
	"stops":          true,
	"departure_time": true,
}

type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

func (o *SortOption) validate() error {
	if o == nil {
		return nil
	}

	if !AllowedSortField[o.Field] {
		return badRequest(fmt.Sprintf("Invalid sort field %s", o.Field))
	}

	if o.Order != "" && o.Order != "asc" && o.Order != "desc" {
		return badRequest(fmt.Sprintf("Invalid sort order %s", o.Order))
	}

	return nil
}

func badRequest(message string) error {
	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Code:       "INVALID_REQUEST",
		Message:    message,
	}
}
