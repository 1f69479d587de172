package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

type FlightService interface {
	SearchFlights(ctx context.Context, req dto.SearchCriteria) (dto.FlightSelectionResponse, error)
	FilterFlights(ctx context.Context, req dto.FilterRequest) (dto.FlightSelectionResponse, error)
	SelectFlight(ctx context.Context, req dto.SelectRequest) (dto.FlightSelectionResponse, error)
	BookFlights(ctx context.Context, req dto.BookRequest) (dto.BookingConfirmation, error)
	EvaluatePipeline(ctx context.Context, req dto.PipelineRequest) (dto.PipelineResponse, error)
}

type FlightEndpoint struct {
	SearchFlights    endpoint.Endpoint
	FilterFlights    endpoint.Endpoint
	SelectFlight     endpoint.Endpoint
	BookFlights      endpoint.Endpoint
	EvaluatePipeline endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService) FlightEndpoint {
	return FlightEndpoint{
		SearchFlights:    makeSearchFlightsEndpoint(service),
		FilterFlights:    makeFilterFlightsEndpoint(service),
		SelectFlight:     makeSelectFlightEndpoint(service),
		BookFlights:      makeBookFlightsEndpoint(service),
		EvaluatePipeline: makeEvaluatePipelineEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchCriteria)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return result, nil
	}
}

func makeFilterFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FilterRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.FilterFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return result, nil
	}
}

func makeSelectFlightEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SelectRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.SelectFlight(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return result, nil
	}
}

func makeBookFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.BookRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.BookFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return result, nil
	}
}

func makeEvaluatePipelineEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PipelineRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.EvaluatePipeline(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return result, nil
	}
}
