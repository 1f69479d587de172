package dto

import (
	"fmt"
	"net/http"
)

// SelectionState holds at most one chosen flight per direction.
type SelectionState struct {
	OutboundID *string `json:"outbound_id"`
	ReturnID   *string `json:"return_id"`
}

// Slot returns the identifier held for direction.
func (s SelectionState) Slot(direction Direction) *string {
	if direction == DirectionReturn {
		return s.ReturnID
	}

	return s.OutboundID
}

type SelectRequest struct {
	SessionID string    `json:"-"`
	Direction Direction `json:"direction" validate:"required,oneof=Outbound Return"`
	FlightID  string    `json:"flight_id" validate:"required"`
}

func (s *SelectRequest) Bind(r *http.Request) error {
	if r != nil && s.SessionID == "" {
		s.SessionID = r.Header.Get(HeaderSessionID)
	}

	if err := ValidateSingleError(s); err != nil {
		return fmt.Errorf("error validate request: %w", badRequest(err.Error()))
	}

	return nil
}

type BookRequest struct {
	SessionID string `json:"-"`
}

func (b *BookRequest) Bind(r *http.Request) error {
	if r != nil && b.SessionID == "" {
		b.SessionID = r.Header.Get(HeaderSessionID)
	}

	return nil
}

// BookingConfirmation is the stub outcome of a booking. No transaction happens.
type BookingConfirmation struct {
	Reference string        `json:"reference"`
	Message   string        `json:"message"`
	TripType  TripType      `json:"trip_type"`
	Outbound  *FlightRecord `json:"outbound"`
	Return    *FlightRecord `json:"return,omitempty"`
}

// SessionState is what one rendering layer session keeps between calls.
// Epoch is the search request epoch that produced SearchResults.
type SessionState struct {
	Epoch         int64                `json:"epoch"`
	TripType      TripType             `json:"trip_type"`
	SearchResults FlightSearchResponse `json:"search_results"`
	Filter        FilterSpec           `json:"filter"`
	SortOption    *SortOption          `json:"sort_option,omitempty"`
	Selection     SelectionState       `json:"selection"`
}

// FlightSelectionResponse is returned by every stateful flight call.
type FlightSelectionResponse struct {
	SessionID     string                `json:"session_id"`
	Epoch         int64                 `json:"epoch"`
	TripType      TripType              `json:"trip_type"`
	SearchResults *FlightSearchResponse `json:"search_results,omitempty"`
	Filter        FilterSpec            `json:"filter"`
	Flights       FilteredFlights       `json:"flights"`
	Selection     SelectionState        `json:"selection"`
	ReadyToBook   bool                  `json:"ready_to_book"`
}
