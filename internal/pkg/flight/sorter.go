package flight

import (
	"sort"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

// SortFlights orders flights in place with a stable sort. Without a sort
// option the normalized order is kept.
func SortFlights(flights []dto.FlightRecord, sortOption *dto.SortOption) []dto.FlightRecord {
	if sortOption == nil {
		return flights
	}

	desc := sortOption.Order == "desc"

	switch sortOption.Field {
	case "price":
		sort.SliceStable(flights, func(i, j int) bool {
			if desc {
				return flights[i].Price > flights[j].Price
			}
			return flights[i].Price < flights[j].Price
		})
	case "stops":
		sort.SliceStable(flights, func(i, j int) bool {
			if desc {
				return flights[i].Stops > flights[j].Stops
			}
			return flights[i].Stops < flights[j].Stops
		})
	case "departure_time":
		// unparseable times sort last in both orders
		minutes := make(map[string]int, len(flights))
		for _, flight := range flights {
			minutes[flight.ID] = minuteOfDay(flight.DepartureTime)
		}

		sort.SliceStable(flights, func(i, j int) bool {
			a, b := minutes[flights[i].ID], minutes[flights[j].ID]
			if a < 0 || b < 0 {
				return a >= 0 && b < 0
			}
			if desc {
				return a > b
			}
			return a < b
		})
	}

	return flights
}

// minuteOfDay returns the minutes since midnight of a departure time, or -1.
func minuteOfDay(timeStr string) int {
	hour, ok := parseHour(timeStr)
	if !ok {
		return -1
	}

	match := twentyFourHourPattern.FindStringSubmatch(timeStr)
	if match == nil {
		return hour * 60
	}

	return hour*60 + atoi(match[2])
}
