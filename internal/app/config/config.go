package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	ProviderSerpAPI  = "serpapi"
	ProviderMockData = "mockdata"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Provider Provider   `mapstructure:",squash"`
	Session  Session    `mapstructure:",squash"`
	Search   Search     `mapstructure:",squash"`
	Metrics  Metrics    `mapstructure:",squash"`
	Booking  Booking    `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// SerpAPIProvider holds the search API configuration. CORSProxyURL is
// prepended to every request url when set.
type SerpAPIProvider struct {
	SearchAPIURL string        `mapstructure:"SERPAPI_SEARCH_URL"`
	APIKey       string        `mapstructure:"SERPAPI_API_KEY"`
	CORSProxyURL string        `mapstructure:"SERPAPI_CORS_PROXY_URL"`
	Timeout      time.Duration `mapstructure:"SERPAPI_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"SERPAPI_RATE_LIMIT"`
}

type MockDataProvider struct {
	Path string `mapstructure:"MOCK_DATA_PATH"`
}

// Provider selects which flight provider serves the searches.
type Provider struct {
	Name     string           `mapstructure:"FLIGHT_PROVIDER"`
	SerpAPI  SerpAPIProvider  `mapstructure:",squash"`
	MockData MockDataProvider `mapstructure:",squash"`
}

type Session struct {
	TTL time.Duration `mapstructure:"SESSION_TTL"`
}

type Search struct {
	DefaultCurrency string `mapstructure:"SEARCH_DEFAULT_CURRENCY"`
	DefaultLanguage string `mapstructure:"SEARCH_DEFAULT_LANGUAGE"`
}

type Metrics struct {
	Namespace string `mapstructure:"METRICS_NAMESPACE"`
}

type Booking struct {
	NodeID int64 `mapstructure:"BOOKING_NODE_ID"`
}

// Validate reports the first configuration value the service cannot start with.
func (c Config) Validate() error {
	switch c.Provider.Name {
	case ProviderSerpAPI:
		if c.Provider.SerpAPI.APIKey == "" {
			return errors.New("SERPAPI_API_KEY is required when FLIGHT_PROVIDER is serpapi")
		}
	case ProviderMockData:
		if c.Provider.MockData.Path == "" {
			return errors.New("MOCK_DATA_PATH is required when FLIGHT_PROVIDER is mockdata")
		}
	default:
		return fmt.Errorf("unknown FLIGHT_PROVIDER %q", c.Provider.Name)
	}

	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}

	if c.Booking.NodeID < 0 || c.Booking.NodeID > 1023 {
		return errors.New("BOOKING_NODE_ID must be between 0 and 1023")
	}

	return nil
}
