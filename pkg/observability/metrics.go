package observability

import (
	"context"

	"github.com/aretw0/sofakit/pkg/assembler"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the sofakit collectors.
type Metrics struct {
	operations *prometheus.CounterVec
	objects    *prometheus.CounterVec
	assemblies *prometheus.CounterVec
	duration   prometheus.Histogram
	kinds      *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sofakit_assembly_operations_total",
				Help: "Engine operations issued by the assembler",
			},
			[]string{"op"},
		),
		objects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sofakit_objects_created_total",
				Help: "Objects created, by kind",
			},
			[]string{"kind"},
		),
		assemblies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sofakit_assemblies_total",
				Help: "Finished assemblies, by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sofakit_assembly_duration_seconds",
				Help:    "Duration of scene assemblies",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		kinds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sofakit_registry_kinds",
				Help: "Registered kinds, by class",
			},
			[]string{"class"},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.objects, m.assemblies, m.duration, m.kinds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveRegistry records the size of a loaded registry.
func (m *Metrics) ObserveRegistry(r *registry.Registry) {
	containers := 0
	for _, e := range r.Entries() {
		if e.Container {
			containers++
		}
	}
	m.kinds.WithLabelValues("container").Set(float64(containers))
	m.kinds.WithLabelValues("component").Set(float64(r.Len() - containers))
}

// Hooks returns assembler hooks feeding the collectors.
func (m *Metrics) Hooks() assembler.Hooks {
	return assembler.Hooks{
		OnNodeCreated: func(_ context.Context, e *assembler.Event) {
			m.operations.WithLabelValues(string(e.Op)).Inc()
		},
		OnObjectCreated: func(_ context.Context, e *assembler.Event) {
			m.operations.WithLabelValues(string(e.Op)).Inc()
			m.objects.WithLabelValues(e.Kind).Inc()
		},
		OnNodeSealed: func(_ context.Context, e *assembler.Event) {
			m.operations.WithLabelValues(string(e.Op)).Inc()
		},
		OnAssembled: func(_ context.Context, s *assembler.Summary) {
			result := "ok"
			if s.Err != nil {
				result = "error"
			}
			m.assemblies.WithLabelValues(result).Inc()
			m.duration.Observe(s.Duration.Seconds())
		},
	}
}
