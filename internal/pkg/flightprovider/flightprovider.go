package flightprovider

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
)

// config for flight provider
type FlightProviderConfig struct {
	SearchAPIURL string
	FilePath     string
	APIKey       string
	CORSProxyURL string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      RateLimiter
	Client       *http.Client
}

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// FlightProvider returns the raw search response of one provider. Itinerary
// blocks of the response are tagged with their direction.
type FlightProvider interface {
	Search(ctx context.Context, criteria dto.SearchCriteria) (dto.RawSearchResponse, error)
}

type FlightProviderFactory struct {
	Provider map[string]FlightProvider
}

func NewFlightProviderFactory() *FlightProviderFactory {
	return &FlightProviderFactory{
		Provider: make(map[string]FlightProvider),
	}
}

func (f *FlightProviderFactory) AddProvider(name string, provider FlightProvider) {
	f.Provider[name] = provider
}

func (f *FlightProviderFactory) GetProvider(name string) FlightProvider {
	return f.Provider[name]
}

func (f *FlightProviderFactory) GetAllProviders() map[string]FlightProvider {
	return f.Provider
}
