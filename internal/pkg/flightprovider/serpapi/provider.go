package serpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider/providerutils"
)

const (
	ProviderName = "serpapi"
	Engine       = "google_flights"

	DefaultSearchAPIURL = "https://serpapi.com/search.json"

	// DefaultMaxResponseBytes caps the body read from the engine or its proxy.
	DefaultMaxResponseBytes int64 = 8 << 20

	tripTypeRoundTrip = "1"
	tripTypeOneWay    = "2"
)

// travelClasses maps a travel class to the numeric code of the engine.
var travelClasses = map[string]string{
	"economy":         "1",
	"premium_economy": "2",
	"business":        "3",
	"first":           "4",
}

type Provider struct {
	Name         string
	SearchAPIURL string
	APIKey       string
	CORSProxyURL string
	Timeout      time.Duration
	Limiter      flightprovider.RateLimiter
	RateLimitRPS int
	Client       *http.Client

	MaxResponseBytes int64
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	searchURL := config.SearchAPIURL
	if searchURL == "" {
		searchURL = DefaultSearchAPIURL
	}

	client := config.Client
	if client == nil {
		client = http.DefaultClient
	}

	return &Provider{
		Name:         ProviderName,
		SearchAPIURL: searchURL,
		APIKey:       config.APIKey,
		CORSProxyURL: config.CORSProxyURL,
		Timeout:      config.Timeout,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		Client:       client,

		MaxResponseBytes: DefaultMaxResponseBytes,
	}
}

// Search calls the google_flights engine once. A failed call is returned as is,
// the request is not retried.
func (p *Provider) Search(ctx context.Context, criteria dto.SearchCriteria) (dto.RawSearchResponse, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	if err := providerutils.CheckRateLimit(ctx, p.Limiter, p.Name, p.RateLimitRPS); err != nil {
		return dto.RawSearchResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.RequestURL(criteria), nil)
	if err != nil {
		return dto.RawSearchResponse{}, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to call flight search API",
			slog.String("provider", p.Name),
			slog.String("error", err.Error()))

		return dto.RawSearchResponse{}, fmt.Errorf("%w: %s", providerutils.ErrProviderUnreachable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.MaxResponseBytes+1))
	if err != nil {
		return dto.RawSearchResponse{}, fmt.Errorf("%w: %s", providerutils.ErrProviderUnreachable, err.Error())
	}

	if int64(len(body)) > p.MaxResponseBytes {
		slog.WarnContext(ctx, "flight search API response is too large",
			slog.String("provider", p.Name),
			slog.Int64("limit", p.MaxResponseBytes))

		return dto.RawSearchResponse{}, fmt.Errorf("%w: response exceeds %d bytes",
			providerutils.ErrProviderInternalError, p.MaxResponseBytes)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.WarnContext(ctx, "flight search API returned an error status",
			slog.String("provider", p.Name),
			slog.Int("status", resp.StatusCode))

		return dto.RawSearchResponse{}, fmt.Errorf("%w: status %d", providerutils.ErrProviderInternalError, resp.StatusCode)
	}

	raw, err := flight.DecodeRawResponse(body)
	if err != nil {
		return dto.RawSearchResponse{}, err
	}

	if raw.Error != "" && raw.BestFlights == nil && raw.OtherFlights == nil {
		return dto.RawSearchResponse{}, fmt.Errorf("%w: %s", providerutils.ErrProviderInternalError, raw.Error)
	}

	raw.BestFlights = providerutils.TagDirections(raw.BestFlights, criteria.TripType)
	raw.OtherFlights = providerutils.TagDirections(raw.OtherFlights, criteria.TripType)

	return raw, nil
}

// RequestURL builds the engine URL for criteria, wrapped in the CORS proxy
// when one is configured.
func (p *Provider) RequestURL(criteria dto.SearchCriteria) string {
	params := url.Values{}
	params.Set("engine", Engine)
	params.Set("departure_id", criteria.DepartureID)
	params.Set("arrival_id", criteria.ArrivalID)
	params.Set("outbound_date", criteria.OutboundDate)
	params.Set("currency", criteria.Currency)
	params.Set("hl", criteria.Language)

	if criteria.IsRoundTrip() {
		params.Set("type", tripTypeRoundTrip)
		params.Set("return_date", criteria.ReturnDate)
	} else {
		params.Set("type", tripTypeOneWay)
	}

	if code, ok := travelClasses[criteria.TravelClass]; ok {
		params.Set("travel_class", code)
	}

	params.Set("api_key", p.APIKey)

	target := p.SearchAPIURL + "?" + params.Encode()
	if p.CORSProxyURL == "" {
		return target
	}

	return p.CORSProxyURL + url.QueryEscape(target)
}
