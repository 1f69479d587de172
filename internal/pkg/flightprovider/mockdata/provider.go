package mockdata

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider/providerutils"
)

const ProviderName = "mockdata"

// Provider serves a recorded google_flights response from a local file, for
// development without an API key.
type Provider struct {
	Name         string
	FilePath     string
	Limiter      flightprovider.RateLimiter
	RateLimitRPS int
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	return &Provider{
		Name:         ProviderName,
		FilePath:     config.FilePath,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
	}
}

// Search reads the recorded response and keeps the itineraries of the searched
// route. Search parameters of the response are replaced by the criteria.
func (p *Provider) Search(ctx context.Context, criteria dto.SearchCriteria) (dto.RawSearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return dto.RawSearchResponse{}, fmt.Errorf("context cancelled or timeout: %w", err)
	}

	if err := providerutils.CheckRateLimit(ctx, p.Limiter, p.Name, p.RateLimitRPS); err != nil {
		return dto.RawSearchResponse{}, err
	}

	data, err := os.ReadFile(p.FilePath)
	if err != nil {
		return dto.RawSearchResponse{}, fmt.Errorf("failed to read mock file: %w", err)
	}

	raw, err := flight.DecodeRawResponse(data)
	if err != nil {
		return dto.RawSearchResponse{}, err
	}

	if raw.BestFlights != nil {
		raw.BestFlights = providerutils.FilterItineraries(raw.BestFlights, criteria)
	}

	if raw.OtherFlights != nil {
		raw.OtherFlights = providerutils.FilterItineraries(raw.OtherFlights, criteria)
	}

	raw.SearchParameters = dto.SearchParameters{
		DepartureID:  criteria.DepartureID,
		ArrivalID:    criteria.ArrivalID,
		OutboundDate: criteria.OutboundDate,
		ReturnDate:   criteria.ReturnDate,
		Currency:     criteria.Currency,
		TravelClass:  dto.FlexString(criteria.TravelClass),
		Language:     criteria.Language,
	}

	slog.DebugContext(ctx, "mock flight data loaded",
		slog.String("file", p.FilePath),
		slog.Int("blocks", len(raw.BestFlights)))

	return raw, nil
}
