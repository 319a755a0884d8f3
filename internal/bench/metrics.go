package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "avlbench"

// Metrics exported while a workload runs.
type Metrics struct {
	Inserts      prometheus.Counter
	Deletes      prometheus.Counter
	DeleteMisses prometheus.Counter
	Rotations    prometheus.Counter
	TreeSize     prometheus.Gauge
	TreeHeight   prometheus.Gauge
}

// NewMetrics creates the runner metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Inserts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserts_total",
			Help:      "Number of insert operations.",
		}),
		Deletes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletes_total",
			Help:      "Number of delete operations.",
		}),
		DeleteMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delete_misses_total",
			Help:      "Number of deletes of keys that were not in the tree.",
		}),
		Rotations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotations_total",
			Help:      "Number of single rotations performed while rebalancing.",
		}),
		TreeSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_size",
			Help:      "Number of nodes in the tree.",
		}),
		TreeHeight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_height",
			Help:      "Height of the tree.",
		}),
	}
}
