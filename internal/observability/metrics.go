package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

var (
	_ ports.ResolutionMetricsPort = (*ResolutionCollector)(nil)
	_ ports.MetricsExportPort     = (*ResolutionCollector)(nil)
)

// ResolutionCollector exposes resolution outcome metrics.
type ResolutionCollector struct {
	gatherer prometheus.Gatherer

	Resolutions *prometheus.CounterVec
	Errors      prometheus.Counter
	Queries     prometheus.Histogram
}

// NewResolutionCollector registers resolution metrics against the provided registerer.
func NewResolutionCollector(reg prometheus.Registerer) (*ResolutionCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gadm_resolutions_total",
		Help: "Resolved places partitioned by match type.",
	}, []string{"match_type"})
	resolutions, err := registerCounterVec(reg, resolutions, "gadm_resolutions_total")
	if err != nil {
		return nil, err
	}

	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gadm_resolution_errors_total",
		Help: "Places whose resolution failed and were reported as none.",
	})
	failures, err = registerCounter(reg, failures, "gadm_resolution_errors_total")
	if err != nil {
		return nil, err
	}

	queries := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gadm_resolution_queries",
		Help:    "Lookup statements executed per resolved place.",
		Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12, 16, 24, 32},
	})
	queries, err = registerHistogram(reg, queries, "gadm_resolution_queries")
	if err != nil {
		return nil, err
	}

	return &ResolutionCollector{
		gatherer:    gatherer,
		Resolutions: resolutions,
		Errors:      failures,
		Queries:     queries,
	}, nil
}

// ObserveResolution records one place outcome and the number of statements it needed.
func (c *ResolutionCollector) ObserveResolution(matchType types.MatchType, queries int) {
	if c == nil {
		return
	}
	c.Resolutions.WithLabelValues(string(matchType)).Inc()
	c.Queries.Observe(float64(queries))
}

func (c *ResolutionCollector) ObserveFailure() {
	if c == nil {
		return
	}
	c.Errors.Inc()
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *ResolutionCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// WriteTextfile dumps the gathered metrics in the node_exporter textfile format.
func (c *ResolutionCollector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
