package providerutils

import (
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

// FilterItineraries keeps the blocks that belong to the searched route and tags
// their direction. A block leaving the departure airport is outbound; on a round
// trip a block leaving the arrival airport is the return. Blocks whose first leg
// has no departure airport are kept untagged.
func FilterItineraries(blocks []dto.RawItinerary, criteria dto.SearchCriteria) []dto.RawItinerary {
	results := make([]dto.RawItinerary, 0, len(blocks))

	for _, block := range blocks {
		origin := firstDepartureAirport(block)

		switch {
		case origin == "":
			results = append(results, block)
		case origin == criteria.DepartureID:
			block.Direction = dto.DirectionOutbound
			results = append(results, block)
		case criteria.IsRoundTrip() && origin == criteria.ArrivalID:
			block.Direction = dto.DirectionReturn
			results = append(results, block)
		}
	}

	return results
}

func firstDepartureAirport(block dto.RawItinerary) string {
	if len(block.Flights) == 0 || block.Flights[0].DepartureAirport == nil {
		return ""
	}

	return block.Flights[0].DepartureAirport.ID
}
