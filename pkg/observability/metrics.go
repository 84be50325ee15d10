package observability

import (
	"github.com/aretw0/knobs/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts registry assignments by kind and outcome.
type Metrics struct {
	Assignments *prometheus.CounterVec
}

// NewMetrics creates the assignment counters and registers them with reg.
// A nil reg skips registration, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Assignments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "knobs",
				Name:      "assignments_total",
				Help:      "Parameter assignments by parameter kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Assignments)
	}
	return m
}

// Hooks returns registry hooks that feed the counters.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnAssign: func(e *domain.AssignEvent) {
			kind := string(e.Kind)
			if kind == "" {
				kind = "none"
			}
			m.Assignments.WithLabelValues(kind, string(e.Outcome)).Inc()
		},
	}
}
