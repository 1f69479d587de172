package flight

import (
	"context"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

// PipelineInput is everything one pipeline run depends on.
type PipelineInput struct {
	Raw        dto.RawSearchResponse
	Filter     dto.FilterSpec
	TripType   dto.TripType
	Selection  dto.SelectionState
	SortOption *dto.SortOption
}

// View is the derived, render ready state of one search.
type View struct {
	Flights     dto.FilteredFlights
	Selection   dto.SelectionState
	ReadyToBook bool
}

// RunPipeline normalizes raw and derives the filtered view from it.
// Every call recomputes from its inputs; nothing is cached between calls.
func RunPipeline(ctx context.Context, in PipelineInput) (dto.FlightSearchResponse, View, error) {
	response, err := NormalizeResponse(ctx, in.Raw)
	if err != nil {
		return dto.FlightSearchResponse{}, View{}, err
	}

	return response, Derive(ctx, response.BestFlights, in.Filter, in.TripType, in.Selection, in.SortOption), nil
}

// Derive filters records, optionally sorts each direction and reconciles the
// selection against the result.
func Derive(ctx context.Context,
	records []dto.FlightRecord,
	spec dto.FilterSpec,
	tripType dto.TripType,
	selection dto.SelectionState,
	sortOption *dto.SortOption,
) View {
	flights := FilterFlights(ctx, records, spec, tripType)
	flights.Outbound = SortFlights(flights.Outbound, sortOption)
	flights.Return = SortFlights(flights.Return, sortOption)

	selection = Reconcile(selection, flights.Outbound, flights.Return)

	return View{
		Flights:     flights,
		Selection:   selection,
		ReadyToBook: ReadyToBook(selection, tripType),
	}
}
