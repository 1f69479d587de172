package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/idgen"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/metrics"
)

type SessionStorer interface {
	NextEpoch(ctx context.Context, sessionID string, ttl time.Duration) (int64, error)
	GetState(ctx context.Context, sessionID string) (dto.SessionState, error)
	ApplyState(ctx context.Context,
		sessionID string,
		state dto.SessionState,
		ttl time.Duration,
	) (bool, error)
	ReplaceState(ctx context.Context,
		sessionID string,
		state dto.SessionState,
		ttl time.Duration,
	) (bool, error)
}

// Options holds the tunables of FlightService.
type Options struct {
	SessionTTL      time.Duration
	DefaultCurrency string
	DefaultLanguage string
}

type FlightService struct {
	ProviderFactory *flightprovider.FlightProviderFactory
	ProviderName    string
	Sessions        SessionStorer
	IDGenerator     idgen.Generator
	Metrics         *metrics.Metrics
	Options         Options
}

func NewFlightService(providerFactory *flightprovider.FlightProviderFactory,
	providerName string,
	sessions SessionStorer,
	idGenerator idgen.Generator,
	m *metrics.Metrics,
	opts Options,
) *FlightService {
	return &FlightService{
		ProviderFactory: providerFactory,
		ProviderName:    providerName,
		Sessions:        sessions,
		IDGenerator:     idGenerator,
		Metrics:         m,
		Options:         opts,
	}
}

// SearchFlights calls the configured provider and normalizes its response
// into the session. The selection of the session is reset and its filter kept.
// A response that arrives after a newer search of the same session was issued
// is discarded with ErrStaleResponse.
// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Search flights and store the normalized response in the session
// @Param        X-Session-Id  header    string              false  "Session ID"
// @Param        request       body      dto.SearchCriteria  true   "Search Criteria"
// @Success      200           {object}  dto.FlightSelectionResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      409           {object}  dto.ErrorResponse
// @Failure      422           {object}  dto.ErrorResponse
// @Failure      502           {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *FlightService) SearchFlights(
	ctx context.Context,
	req dto.SearchCriteria,
) (dto.FlightSelectionResponse, error) {
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	if req.Currency == "" {
		req.Currency = s.Options.DefaultCurrency
	}

	if req.Language == "" {
		req.Language = s.Options.DefaultLanguage
	}

	provider := s.ProviderFactory.GetProvider(s.ProviderName)
	if provider == nil {
		return dto.FlightSelectionResponse{}, ErrProviderNotConfigured
	}

	epoch, err := s.Sessions.NextEpoch(ctx, req.SessionID, s.Options.SessionTTL)
	if err != nil {
		return dto.FlightSelectionResponse{}, fmt.Errorf("failed to issue search epoch: %w", err)
	}

	raw, err := provider.Search(ctx, req)
	if err != nil {
		s.Metrics.SearchesTotal.WithLabelValues("provider_error").Inc()
		return dto.FlightSelectionResponse{}, fmt.Errorf("failed to search flights: %w", err)
	}

	startTime := time.Now()

	response, err := flight.NormalizeResponse(ctx, raw)
	if err != nil {
		s.Metrics.SearchesTotal.WithLabelValues("invalid_payload").Inc()
		return dto.FlightSelectionResponse{}, err
	}

	state := dto.SessionState{
		Epoch:         epoch,
		TripType:      req.TripType,
		SearchResults: response,
		Filter:        dto.DefaultFilterSpec(),
		Selection:     flight.ResetSelection(),
	}

	previous, err := s.Sessions.GetState(ctx, req.SessionID)
	switch {
	case err == nil:
		state.Filter = previous.Filter
		state.SortOption = previous.SortOption
	case !errors.Is(err, flight.ErrSessionNotFound):
		slog.WarnContext(ctx, "failed to get previous session state", slog.String("error", err.Error()))
	}

	view := s.derive(ctx, state)
	s.Metrics.PipelineDuration.Observe(time.Since(startTime).Seconds())

	applied, err := s.Sessions.ApplyState(ctx, req.SessionID, state, s.Options.SessionTTL)
	if err != nil {
		return dto.FlightSelectionResponse{}, fmt.Errorf("failed to store search response: %w", err)
	}

	if !applied {
		s.Metrics.SearchesTotal.WithLabelValues("stale").Inc()
		s.Metrics.StaleResponses.Inc()

		slog.InfoContext(ctx, "search response discarded, a newer search was issued",
			slog.Int64("epoch", epoch))

		return dto.FlightSelectionResponse{}, ErrStaleResponse
	}

	s.Metrics.SearchesTotal.WithLabelValues("success").Inc()
	s.Metrics.FlightsNormalized.Add(float64(len(response.BestFlights)))

	result := makeResponse(req.SessionID, state, view)
	result.SearchResults = &response

	return result, nil
}

// FilterFlights stores the filter of the session and returns the filtered
// flights. Selected flights hidden by the new filter are unselected.
func (s *FlightService) FilterFlights(ctx context.Context, req dto.FilterRequest) (dto.FlightSelectionResponse, error) {
	state, err := s.Sessions.GetState(ctx, req.SessionID)
	if err != nil {
		return dto.FlightSelectionResponse{}, fmt.Errorf("failed to get session: %w", err)
	}

	state.Filter = req.Filter
	state.SortOption = req.SortOption

	view := s.derive(ctx, state)
	state.Selection = view.Selection

	if err := s.store(ctx, req.SessionID, state); err != nil {
		return dto.FlightSelectionResponse{}, err
	}

	return makeResponse(req.SessionID, state, view), nil
}

// SelectFlight chooses a flight of one direction. Only flights visible under
// the current filter can be chosen.
func (s *FlightService) SelectFlight(ctx context.Context, req dto.SelectRequest) (dto.FlightSelectionResponse, error) {
	state, err := s.Sessions.GetState(ctx, req.SessionID)
	if err != nil {
		return dto.FlightSelectionResponse{}, fmt.Errorf("failed to get session: %w", err)
	}

	view := s.derive(ctx, state)

	visible := view.Flights.Outbound
	if req.Direction == dto.DirectionReturn {
		visible = view.Flights.Return
	}

	if flight.FindFlight(visible, req.FlightID) == nil {
		return dto.FlightSelectionResponse{}, ErrFlightNotSelectable
	}

	state.Selection = flight.Select(view.Selection, req.Direction, req.FlightID)
	view.Selection = state.Selection
	view.ReadyToBook = flight.ReadyToBook(state.Selection, state.TripType)

	if err := s.store(ctx, req.SessionID, state); err != nil {
		return dto.FlightSelectionResponse{}, err
	}

	return makeResponse(req.SessionID, state, view), nil
}

// BookFlights confirms the selection of the session. No transaction is made;
// the confirmation only carries a reference and the booked flights.
func (s *FlightService) BookFlights(ctx context.Context, req dto.BookRequest) (dto.BookingConfirmation, error) {
	state, err := s.Sessions.GetState(ctx, req.SessionID)
	if err != nil {
		return dto.BookingConfirmation{}, fmt.Errorf("failed to get session: %w", err)
	}

	view := s.derive(ctx, state)
	if !view.ReadyToBook {
		return dto.BookingConfirmation{}, ErrSelectionIncomplete
	}

	confirmation := dto.BookingConfirmation{
		Reference: idgen.BookingReference(s.IDGenerator.GenerateID()),
		TripType:  state.TripType,
		Outbound:  flight.FindFlight(view.Flights.Outbound, *view.Selection.OutboundID),
		Message:   fmt.Sprintf("Booking flight %s", *view.Selection.OutboundID),
	}

	if state.TripType == dto.TripTypeRoundTrip {
		confirmation.Return = flight.FindFlight(view.Flights.Return, *view.Selection.ReturnID)
		confirmation.Message = fmt.Sprintf("Booking outbound flight %s and return flight %s",
			*view.Selection.OutboundID, *view.Selection.ReturnID)
	}

	s.Metrics.BookingsTotal.WithLabelValues(string(state.TripType)).Inc()

	slog.InfoContext(ctx, "booking confirmed",
		slog.String("reference", confirmation.Reference),
		slog.String("trip_type", string(state.TripType)))

	return confirmation, nil
}

// EvaluatePipeline runs the pipeline on a raw response given by the caller.
// No session state is read or written.
func (s *FlightService) EvaluatePipeline(ctx context.Context, req dto.PipelineRequest) (dto.PipelineResponse, error) {
	raw, err := flight.DecodeRawResponse(req.Raw)
	if err != nil {
		return dto.PipelineResponse{}, err
	}

	spec := dto.DefaultFilterSpec()
	if req.Filter != nil {
		spec = *req.Filter
	}

	startTime := time.Now()

	response, view, err := flight.RunPipeline(ctx, flight.PipelineInput{
		Raw:        raw,
		Filter:     spec,
		TripType:   req.TripType,
		Selection:  req.Selection,
		SortOption: req.SortOption,
	})
	if err != nil {
		return dto.PipelineResponse{}, err
	}

	s.Metrics.PipelineDuration.Observe(time.Since(startTime).Seconds())

	return dto.PipelineResponse{
		SearchResults: response,
		Flights:       view.Flights,
		Selection:     view.Selection,
		ReadyToBook:   view.ReadyToBook,
	}, nil
}

func (s *FlightService) derive(ctx context.Context, state dto.SessionState) flight.View {
	return flight.Derive(ctx,
		state.SearchResults.BestFlights,
		state.Filter,
		state.TripType,
		state.Selection,
		state.SortOption,
	)
}

// store writes state back over the search result it was read with. It fails
// with ErrStaleResponse when a newer search result was stored in the meantime.
func (s *FlightService) store(ctx context.Context, sessionID string, state dto.SessionState) error {
	applied, err := s.Sessions.ReplaceState(ctx, sessionID, state, s.Options.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	if !applied {
		return ErrStaleResponse
	}

	return nil
}

func makeResponse(sessionID string, state dto.SessionState, view flight.View) dto.FlightSelectionResponse {
	return dto.FlightSelectionResponse{
		SessionID:   sessionID,
		Epoch:       state.Epoch,
		TripType:    state.TripType,
		Filter:      state.Filter,
		Flights:     view.Flights,
		Selection:   view.Selection,
		ReadyToBook: view.ReadyToBook,
	}
}
