package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the collision search. They mirror the shared
// progress counter and the orchestrator's per-partition accounting so a run
// can be observed from the optional /metrics endpoint.
var (
	pairsProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taxicab_pairs_processed_total",
		Help: "The total number of candidate pairs popped from partition heaps",
	})
	solutionsFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taxicab_solutions_found_total",
		Help: "The total number of equal-power-sum solutions reported",
	})
	partitionsCompleted = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "taxicab_partitions_completed",
		Help: "The number of residue partitions fully swept",
	})
	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "taxicab_partition_sweep_duration_seconds",
		Help:    "The duration of individual partition sweeps in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})
)

// ObserveSolution records a reported solution in the metrics.
func ObserveSolution() { solutionsFoundTotal.Inc() }

// ObservePartitionDone records the completion of one partition sweep.
func ObservePartitionDone(seconds float64) {
	partitionsCompleted.Inc()
	sweepDuration.Observe(seconds)
}

// ResetPartitionGauge rewinds the completed-partition gauge at the start of a
// run so repeated runs in one process report sane values.
func ResetPartitionGauge() { partitionsCompleted.Set(0) }
