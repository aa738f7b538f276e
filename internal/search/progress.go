package search

import (
	"sync/atomic"
	"time"
)

// FlushBatch is the number of locally accumulated pairs a worker processes
// before flushing them to the shared Counter. Batching bounds contention on
// the single shared atomic, which is the only hot shared write in the sweep.
const FlushBatch = 20_000

// Counter is the shared pair-progress counter. Workers flush batched local
// tallies into it; the monitor goroutine reads it on a fixed interval. It is
// the only mutable state shared between partitions apart from the solution
// sink.
type Counter struct {
	n atomic.Uint64
}

// Add flushes a batch of processed pairs into the counter.
func (c *Counter) Add(pairs uint64) {
	if pairs == 0 {
		return
	}
	c.n.Add(pairs)
	pairsProcessedTotal.Add(float64(pairs))
}

// Load returns the number of pairs processed so far.
func (c *Counter) Load() uint64 {
	return c.n.Load()
}

// ProgressSnapshot is the DTO the monitor goroutine sends to the display
// layer: how many pairs have been processed out of the total, and the elapsed
// wall time of the sweep so far.
type ProgressSnapshot struct {
	// Done is the number of pairs processed.
	Done uint64
	// Total is the number of pairs the full sweep will process.
	Total uint64
	// Elapsed is the wall time since the sweep started.
	Elapsed time.Duration
}

// Fraction returns the normalized progress in [0,1].
func (s ProgressSnapshot) Fraction() float64 {
	if s.Total == 0 {
		return 1
	}
	f := float64(s.Done) / float64(s.Total)
	if f > 1 {
		f = 1
	}
	return f
}

// Throughput returns the average processing rate in pairs per second.
func (s ProgressSnapshot) Throughput() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.Done) / secs
}
