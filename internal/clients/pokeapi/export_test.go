package pokeapi

import "github.com/prometheus/client_golang/prometheus/testutil"

// LookupCount exposes a cache lookup counter to external tests
func (m *Metrics) LookupCount(resource, layer, result string) float64 {
	return testutil.ToFloat64(m.lookups.WithLabelValues(resource, layer, result))
}

// SharedCount exposes the shared fetch counter to external tests
func (m *Metrics) SharedCount(resource string) float64 {
	return testutil.ToFloat64(m.shared.WithLabelValues(resource))
}
