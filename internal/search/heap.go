package search

import (
	"github.com/agbru/taxicab/internal/uint192"
)

// candidate is one live pair (a,b) awaiting comparison in a partition's merge,
// keyed by its cached power sum. bucket and pos record where b was found so
// the successor pair (a, b') can be formed in O(1) when this candidate is
// consumed. The fields are kept as two plain words rather than bit-packed;
// packing was only ever a cache-density trick.
type candidate struct {
	sum    uint192.Uint192
	a, b   uint64
	bucket uint64
	pos    int
}

// partitionState is the private mutable state of one partition sweep: an
// array-backed, 1-indexed binary min-heap of candidates ordered by sum, and
// one monotone cursor per residue bucket used during seeding.
//
// The state is owned exclusively by the worker processing the partition. The
// heap array is preallocated to the maximum possible live-candidate count (one
// per distinct a, i.e. the range size) and is reused across partitions by
// resetting the size to zero; it never grows during a sweep.
type partitionState struct {
	heap    []candidate // heap[0] is an unused sentinel slot
	size    int
	cursors []int
}

// newPartitionState allocates state sized for rangeSize candidates and
// modulus buckets.
func newPartitionState(rangeSize, modulus uint64) *partitionState {
	return &partitionState{
		heap:    make([]candidate, rangeSize+1),
		cursors: make([]int, modulus),
	}
}

// reset prepares the state for the next partition: the heap is emptied by
// zeroing its size and every bucket cursor rewinds to the start.
func (st *partitionState) reset() {
	st.size = 0
	for i := range st.cursors {
		st.cursors[i] = 0
	}
}

// push inserts c and restores the heap order by sifting it up.
func (st *partitionState) push(c candidate) {
	st.size++
	st.heap[st.size] = c
	i := st.size
	for i > 1 {
		parent := i / 2
		if !st.heap[i].sum.Less(st.heap[parent].sum) {
			break
		}
		st.heap[i], st.heap[parent] = st.heap[parent], st.heap[i]
		i = parent
	}
}

// pop removes and returns the minimum-sum candidate, swapping the last element
// into the root and sinking it. Calling pop on an empty heap is a programming
// error and panics via the bounds check.
func (st *partitionState) pop() candidate {
	min := st.heap[1]
	st.heap[1] = st.heap[st.size]
	st.size--

	i := 1
	for {
		left := 2 * i
		if left > st.size {
			break
		}
		smallest := left
		if right := left + 1; right <= st.size && st.heap[right].sum.Less(st.heap[left].sum) {
			smallest = right
		}
		if !st.heap[smallest].sum.Less(st.heap[i].sum) {
			break
		}
		st.heap[i], st.heap[smallest] = st.heap[smallest], st.heap[i]
		i = smallest
	}
	return min
}
