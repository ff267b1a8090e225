package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vnykmshr/streamkit/pkg/stream"
)

// Registry holds all metric instances for streamkit components.
type Registry struct {
	// StreamEvaluations counts terminal traversals per instrumented stream.
	StreamEvaluations *prometheus.CounterVec

	// StreamItems counts elements pulled through instrumented streams.
	StreamItems *prometheus.CounterVec

	// StreamErrors counts failed terminal operations.
	StreamErrors *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by streamkit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	cfg := DefaultConfig()
	cfg.Registry = reg
	return NewRegistryWithConfig(cfg)
}

// NewRegistryWithConfig creates a new metrics registry from a Config.
func NewRegistryWithConfig(cfg Config) *Registry {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = defaultNamespace
	}
	factory := promauto.With(cfg.Registry)

	return &Registry{
		StreamEvaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Subsystem:   "stream",
				Name:        "evaluations_total",
				Help:        "Total number of terminal stream traversals",
				ConstLabels: cfg.Labels,
			},
			[]string{"stream_name"},
		),

		StreamItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Subsystem:   "stream",
				Name:        "items_processed_total",
				Help:        "Total number of items processed by streams",
				ConstLabels: cfg.Labels,
			},
			[]string{"stream_name"},
		),

		StreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Subsystem:   "stream",
				Name:        "errors_total",
				Help:        "Total number of failed terminal operations",
				ConstLabels: cfg.Labels,
			},
			[]string{"stream_name"},
		),
	}
}

// ObserveResult records the outcome of a terminal operation under name.
// A nil error records nothing.
func (r *Registry) ObserveResult(name string, err error) {
	if err != nil {
		r.StreamErrors.WithLabelValues(name).Inc()
	}
}

// Instrument wraps s so that every terminal traversal and every element
// pulled through it is counted under name. The wrapped stream keeps lazy
// semantics: counters move only when the stream is actually evaluated.
// Streams carrying a pending precondition error are returned unchanged,
// since they never traverse.
func Instrument[T any](r *Registry, name string, s *stream.Stream[T]) *stream.Stream[T] {
	if s.Err() != nil {
		return s
	}

	evaluations := r.StreamEvaluations.WithLabelValues(name)
	items := r.StreamItems.WithLabelValues(name)
	seq := s.Seq()

	return stream.FromSeq(func(yield func(T) bool) {
		evaluations.Inc()
		for v := range seq {
			items.Inc()
			if !yield(v) {
				return
			}
		}
	})
}
