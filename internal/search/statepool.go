package search

import "sync"

// StatePool hands out partition-private heap/cursor states sized for a given
// parameter set. Workers draw a state per partition and return it afterwards,
// so a pool bounded by the worker count serves any number of partitions
// without reallocating the arena arrays.
type StatePool struct {
	pool sync.Pool
}

// NewStatePool creates a pool producing states sized for p.
//
// Parameters:
//   - p: The search parameters (range size bounds the heap, modulus the
//     cursor array).
//
// Returns:
//   - *StatePool: The pool.
func NewStatePool(p Params) *StatePool {
	return &StatePool{
		pool: sync.Pool{
			New: func() any {
				return newPartitionState(p.RangeSize(), p.Modulus)
			},
		},
	}
}

// Sweep runs SweepPartition for partition p using a pooled state.
//
// Parameters:
//   - ix: The immutable index.
//   - p: The partition to sweep.
//   - counter: The shared progress counter.
//   - emit: The solution callback.
func (sp *StatePool) Sweep(ix *Index, p uint64, counter *Counter, emit func(Solution)) {
	st := sp.pool.Get().(*partitionState)
	defer sp.pool.Put(st)
	SweepPartition(ix, p, st, counter, emit)
}
