package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-selection-service/internal/app/config"
	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-selection-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-selection-service/internal/pkg/transport/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	gatherer prometheus.Gatherer,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Route("/api/v1/flights", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.SessionID(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.SearchCriteria],
			httptransport.ResponseWithBody,
		))

		router.Post("/filter", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.FilterFlights,
			httptransport.DecodeRequest[dto.FilterRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/select", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SelectFlight,
			httptransport.DecodeRequest[dto.SelectRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/book", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.BookFlights,
			httptransport.DecodeRequest[dto.BookRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/pipeline", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.EvaluatePipeline,
			httptransport.DecodeRequest[dto.PipelineRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
