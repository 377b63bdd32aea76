package pokeapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache layers reported in lookup metrics
const (
	layerMemory = "memory"
	layerStore  = "store"
)

// Metrics counts catalog traffic. A nil *Metrics records nothing.
type Metrics struct {
	// lookups counts cache lookups.
	// Labels: resource, layer (memory, store), result (hit, miss)
	lookups *prometheus.CounterVec

	// requests counts upstream HTTP requests.
	// Labels: resource, code (OK, NOT_FOUND, UNAVAILABLE, ...)
	requests *prometheus.CounterVec

	// latency measures upstream request latency.
	// Labels: resource
	latency *prometheus.HistogramVec

	// shared counts callers that joined an in-flight fetch instead of issuing their own.
	// Labels: resource
	shared *prometheus.CounterVec
}

// NewMetrics registers the catalog metrics with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokedex",
			Subsystem: "catalog",
			Name:      "cache_lookups_total",
			Help:      "Catalog cache lookups by layer and result",
		}, []string{"resource", "layer", "result"}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokedex",
			Subsystem: "catalog",
			Name:      "upstream_requests_total",
			Help:      "Upstream catalog requests by outcome",
		}, []string{"resource", "code"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pokedex",
			Subsystem: "catalog",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream catalog request latency in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"resource"}),
		shared: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokedex",
			Subsystem: "catalog",
			Name:      "shared_fetches_total",
			Help:      "Fetches satisfied by joining an in-flight request",
		}, []string{"resource"}),
	}
}

func (m *Metrics) lookup(resource, layer string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookups.WithLabelValues(resource, layer, result).Inc()
}

func (m *Metrics) request(resource, code string, seconds float64) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(resource, code).Inc()
	m.latency.WithLabelValues(resource).Observe(seconds)
}

func (m *Metrics) sharedFetch(resource string) {
	if m == nil {
		return
	}
	m.shared.WithLabelValues(resource).Inc()
}
