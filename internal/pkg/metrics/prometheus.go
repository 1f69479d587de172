package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SearchesTotal     *prometheus.CounterVec
	StaleResponses    prometheus.Counter
	FlightsNormalized prometheus.Counter
	BookingsTotal     *prometheus.CounterVec
	PipelineDuration  prometheus.Histogram
}

// NewMetrics creates new prometheus metrics registered on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of flight searches by outcome",
		}, []string{"status"}),
		StaleResponses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_total",
			Help:      "The total number of search responses discarded because a newer search was issued",
		}),
		FlightsNormalized: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_normalized_total",
			Help:      "The total number of flight records produced by normalization",
		}),
		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "The total number of booking confirmations by trip type",
		}, []string{"trip_type"}),
		PipelineDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Time taken to normalize and filter one search response",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
