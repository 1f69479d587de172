package providerutils

import (
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

// TagDirections sets the direction of every itinerary block that is not tagged
// yet. A one-way search has outbound blocks only. On a round trip the first
// block is the outbound itinerary and every later block a return itinerary,
// which is how the google_flights engine orders a round trip response.
func TagDirections(blocks []dto.RawItinerary, tripType dto.TripType) []dto.RawItinerary {
	for i := range blocks {
		if blocks[i].Direction != "" {
			continue
		}

		if tripType == dto.TripTypeOneWay || i == 0 {
			blocks[i].Direction = dto.DirectionOutbound
			continue
		}

		blocks[i].Direction = dto.DirectionReturn
	}

	return blocks
}
