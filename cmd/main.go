package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-selection-service/internal/app/config"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-selection-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-selection-service/internal/app/service"
	"github.com/ijalalfrz/flight-selection-service/internal/app/transport"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider/mockdata"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/flightprovider/serpapi"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/idgen"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/logger"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Selection Service API
// @version         0.1.0
// @description     flight-selection-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)),
		slog.String("provider", cfg.Provider.Name))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis is not reachable yet", slog.String("error", err.Error()))
	}

	endpts := makeEndpoints(ctx, &cfg, redisClient, registry)
	router := transport.MakeHTTPRouter(&cfg, endpts, registry)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context,
	cfg *config.Config,
	redisClient *redis.Client,
	registry *prometheus.Registry,
) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init factory
	flightProviderFactory := initFlightProviderFactory(cfg, redisClient)

	// init service endpoint
	return endpoints.Endpoints{
		FlightEndpoint: makeFlightEndpoint(ctx, flightProviderFactory, redisClient, registry, cfg),
	}
}

// register flight provider
func initFlightProviderFactory(cfg *config.Config, redisClient *redis.Client) *flightprovider.FlightProviderFactory {
	limiter := redis_rate.NewLimiter(redisClient)

	factory := flightprovider.NewFlightProviderFactory()
	factory.AddProvider(serpapi.ProviderName, serpapi.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.Provider.SerpAPI.SearchAPIURL,
		APIKey:       cfg.Provider.SerpAPI.APIKey,
		CORSProxyURL: cfg.Provider.SerpAPI.CORSProxyURL,
		Timeout:      cfg.Provider.SerpAPI.Timeout,
		RateLimitRPS: cfg.Provider.SerpAPI.RateLimitRPS,
		Limiter:      limiter,
	}))
	factory.AddProvider(mockdata.ProviderName, mockdata.NewProvider(flightprovider.FlightProviderConfig{
		FilePath: cfg.Provider.MockData.Path,
	}))

	return factory
}

func makeFlightEndpoint(ctx context.Context,
	factory *flightprovider.FlightProviderFactory,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	cfg *config.Config,
) endpoints.FlightEndpoint {
	// session
	sessions := flight.NewSessionStore(redisClient)

	// booking reference
	idGenerator, err := idgen.NewSnowflakeGenerator(cfg.Booking.NodeID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init id generator", slog.String("error", err.Error()))
		panic(err)
	}

	// service
	flightService := service.NewFlightService(factory, cfg.Provider.Name, sessions, idGenerator,
		metrics.NewMetrics(cfg.Metrics.Namespace, registry),
		service.Options{
			SessionTTL:      cfg.Session.TTL,
			DefaultCurrency: cfg.Search.DefaultCurrency,
			DefaultLanguage: cfg.Search.DefaultLanguage,
		})

	// endpoint
	return endpoints.MakeFlightEndpoint(flightService)
}
