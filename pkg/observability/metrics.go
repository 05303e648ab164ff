package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/statespace/pkg/domain"
)

// Metrics holds the Prometheus collectors fed by search hooks.
type Metrics struct {
	searches    *prometheus.CounterVec
	discovered  *prometheus.CounterVec
	transitions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	planLength  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statespace_searches_total",
				Help: "Total number of finished searches",
			},
			[]string{"puzzle", "outcome"},
		),
		discovered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statespace_states_discovered_total",
				Help: "Total number of distinct states recorded",
			},
			[]string{"puzzle"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statespace_transitions_total",
				Help: "Total number of evaluated transitions, by whether the target was new",
			},
			[]string{"puzzle", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statespace_search_duration_seconds",
				Help:    "Duration of searches",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"puzzle"},
		),
		planLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statespace_plan_steps",
				Help:    "Number of actions in solved plans",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
			[]string{"puzzle"},
		),
	}
	reg.MustRegister(m.searches, m.discovered, m.transitions, m.duration, m.planLength)
	return m
}

// Hooks returns lifecycle hooks that record metrics labeled with puzzle.
func (m *Metrics) Hooks(puzzle string) domain.LifecycleHooks {
	discovered := m.discovered.WithLabelValues(puzzle)
	fresh := m.transitions.WithLabelValues(puzzle, "new")
	known := m.transitions.WithLabelValues(puzzle, "discarded")

	return domain.LifecycleHooks{
		OnDiscover: func(context.Context, *domain.DiscoverEvent) {
			discovered.Inc()
		},
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			if e.Discarded {
				known.Inc()
				return
			}
			fresh.Inc()
		},
		OnFinish: func(_ context.Context, e *domain.FinishEvent) {
			m.searches.WithLabelValues(puzzle, string(e.Outcome)).Inc()
			m.duration.WithLabelValues(puzzle).Observe(e.Duration.Seconds())
			if e.Outcome == domain.OutcomeSolved {
				m.planLength.WithLabelValues(puzzle).Observe(float64(e.Steps))
			}
		},
	}
}
