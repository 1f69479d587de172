package flight

import (
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

// ResetSelection is the state right after a new search response arrives.
func ResetSelection() dto.SelectionState {
	return dto.SelectionState{}
}

// Select sets the slot of direction to id and leaves the other slot untouched.
func Select(state dto.SelectionState, direction dto.Direction, id string) dto.SelectionState {
	if direction == dto.DirectionReturn {
		state.ReturnID = &id
		return state
	}

	state.OutboundID = &id

	return state
}

// Reconcile clears every slot whose flight is no longer in the filtered list
// of its direction.
func Reconcile(state dto.SelectionState,
	filteredOutbound []dto.FlightRecord,
	filteredReturn []dto.FlightRecord,
) dto.SelectionState {
	if state.OutboundID != nil && FindFlight(filteredOutbound, *state.OutboundID) == nil {
		state.OutboundID = nil
	}

	if state.ReturnID != nil && FindFlight(filteredReturn, *state.ReturnID) == nil {
		state.ReturnID = nil
	}

	return state
}

// ReadyToBook reports whether the selection is complete for the trip type.
func ReadyToBook(state dto.SelectionState, tripType dto.TripType) bool {
	if tripType == dto.TripTypeRoundTrip {
		return state.OutboundID != nil && state.ReturnID != nil
	}

	return state.OutboundID != nil
}

// FindFlight returns the record with id, or nil.
func FindFlight(flights []dto.FlightRecord, id string) *dto.FlightRecord {
	for i := range flights {
		if flights[i].ID == id {
			flight := flights[i]
			return &flight
		}
	}

	return nil
}
