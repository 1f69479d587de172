package flight

import (
	"context"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

// FilterFlights splits records per direction and keeps, for each direction,
// the records that pass both its time-of-day toggles and its price ceiling.
// The input is never modified and the normalized order is preserved.
func FilterFlights(ctx context.Context,
	flights []dto.FlightRecord,
	spec dto.FilterSpec,
	tripType dto.TripType,
) dto.FilteredFlights {
	outbound, inbound := partitionByDirection(flights, tripType)

	return dto.FilteredFlights{
		Outbound: filterDirection(ctx, outbound, spec, dto.DirectionOutbound),
		Return:   filterDirection(ctx, inbound, spec, dto.DirectionReturn),
	}
}

// partitionByDirection follows the direction tags. One-way searches show every
// record as outbound and tagged as such. When no record carries a tag on a
// round trip, the first half (rounded up) is outbound and the rest is the return.
func partitionByDirection(flights []dto.FlightRecord,
	tripType dto.TripType,
) ([]dto.FlightRecord, []dto.FlightRecord) {
	if tripType == dto.TripTypeOneWay {
		outbound := make([]dto.FlightRecord, len(flights))
		for i, flight := range flights {
			flight.Direction = dto.DirectionOutbound
			outbound[i] = flight
		}

		return outbound, nil
	}

	var outbound, inbound []dto.FlightRecord
	for _, flight := range flights {
		switch flight.Direction {
		case dto.DirectionOutbound:
			outbound = append(outbound, flight)
		case dto.DirectionReturn:
			inbound = append(inbound, flight)
		}
	}

	if len(outbound) == 0 && len(inbound) == 0 {
		half := (len(flights) + 1) / 2
		return flights[:half], flights[half:]
	}

	return outbound, inbound
}

func filterDirection(ctx context.Context,
	flights []dto.FlightRecord,
	spec dto.FilterSpec,
	direction dto.Direction,
) []dto.FlightRecord {
	var (
		results   = make([]dto.FlightRecord, 0, len(flights))
		buckets   = activeBuckets(spec, direction)
		priceMax  = spec.PriceMax(direction)
		anyActive = len(buckets) > 0
	)

	for _, flight := range flights {
		if anyActive {
			if !buckets[Categorize(ctx, flight.DepartureTime)] {
				continue
			}
		}

		if priceMax != nil && flight.Price > *priceMax {
			continue
		}

		results = append(results, flight)
	}

	return results
}

// activeBuckets returns the toggled buckets of one direction. Unknown is never
// part of the set.
func activeBuckets(spec dto.FilterSpec, direction dto.Direction) map[dto.TimeBucket]bool {
	active := make(map[dto.TimeBucket]bool, 4)
	for bucket, on := range spec.TimeBuckets(direction) {
		if on {
			active[bucket] = true
		}
	}

	return active
}
