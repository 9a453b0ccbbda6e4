// Package telemetry wires the engine's counters to Prometheus, grounded on
// AleutianLocal's services/trace/dag/executor.go promauto usage.
package telemetry

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the Prometheus counters one Engine run updates. Each run
// gets its own registry so concurrent runs in the same process (e.g. a test
// suite) never collide on metric registration.
type Metrics struct {
	registry *prometheus.Registry

	Expansions         prometheus.Counter
	SidetracksRecorded prometheus.Counter
	DijkstraPops       prometheus.Counter
	PlansEmitted       prometheus.Counter
	SolutionsFirst     prometheus.Counter
}

// New creates a Metrics with its own private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Expansions: factory.NewCounter(prometheus.CounterOpts{
			Name: "kstar_astar_expansions_total",
			Help: "Number of states closed by the A* search.",
		}),
		SidetracksRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "kstar_sidetracks_recorded_total",
			Help: "Number of sidetrack SAPs recorded into H_in stores.",
		}),
		DijkstraPops: factory.NewCounter(prometheus.CounterOpts{
			Name: "kstar_pathgraph_pops_total",
			Help: "Number of path-graph nodes popped by the Dijkstra search.",
		}),
		PlansEmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "kstar_plans_emitted_total",
			Help: "Number of plans emitted to the configured PlanSink.",
		}),
		SolutionsFirst: factory.NewCounter(prometheus.CounterOpts{
			Name: "kstar_first_solutions_total",
			Help: "Number of times A* closed its first goal state (always 0 or 1 per run).",
		}),
	}
}

// Registry exposes the underlying Prometheus registry, e.g. for mounting
// promhttp.HandlerFor in a long-running service (see cmd/kstar).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// Report logs the run's final counter values, the Go-native analog of
// top_k_eager_search.h's print_statistics.
func (m *Metrics) Report(log *slog.Logger) {
	log.Info("run statistics",
		"expansions", counterValue(m.Expansions),
		"sidetracks_recorded", counterValue(m.SidetracksRecorded),
		"pathgraph_pops", counterValue(m.DijkstraPops),
		"plans_emitted", counterValue(m.PlansEmitted),
	)
}
