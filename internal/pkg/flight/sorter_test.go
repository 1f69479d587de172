//go:build unit

package flight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

func TestSortFlights_Closure(t *testing.T) {
	flights := []dto.FlightRecord{
		{ID: "1", Price: 2000, Stops: 1, DepartureTime: "9:00 PM"},
		{ID: "2", Price: 1000, Stops: 0, DepartureTime: "N/A"},
		{ID: "3", Price: 1500, Stops: 1, DepartureTime: "06:30"},
		{ID: "4", Price: 1000, Stops: 2, DepartureTime: "2025-05-10 06:05"},
	}

	sortRequest := func(flights []dto.FlightRecord, opt *dto.SortOption, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			fCopy := make([]dto.FlightRecord, len(flights))
			copy(fCopy, flights)

			got := SortFlights(fCopy, opt)

			diff := cmp.Diff(wantIDs, recordIDs(got))
			if diff != "" {
				t.Fatalf("SortFlights result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("nil_option_keeps_order", sortRequest(flights, nil, []string{"1", "2", "3", "4"}))
	t.Run("price_asc_is_stable", sortRequest(flights, &dto.SortOption{Field: "price", Order: "asc"},
		[]string{"2", "4", "3", "1"}))
	t.Run("price_desc", sortRequest(flights, &dto.SortOption{Field: "price", Order: "desc"},
		[]string{"1", "3", "2", "4"}))
	t.Run("stops_asc", sortRequest(flights, &dto.SortOption{Field: "stops", Order: "asc"},
		[]string{"2", "1", "3", "4"}))
	t.Run("departure_time_asc_unknown_last", sortRequest(flights, &dto.SortOption{Field: "departure_time", Order: "asc"},
		[]string{"4", "3", "1", "2"}))
	t.Run("departure_time_desc_unknown_last", sortRequest(flights, &dto.SortOption{Field: "departure_time", Order: "desc"},
		[]string{"1", "3", "4", "2"}))
}
