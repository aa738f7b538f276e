// Package search implements the equal-power-sum collision search: given a
// range [Lower, Upper] and an exponent K, it finds all distinct pairs (a,b)
// and (c,d), a<b and c<d, with a^K + b^K = c^K + d^K.
//
// The search is structured as a precompute phase that builds an immutable
// power table and residue-partitioned inverted index (Index), followed by an
// embarrassingly parallel sweep in which each residue partition is processed
// independently by a heap-based lazy k-way merge (SweepPartition). Partitions
// share nothing mutable except the progress counter and the solution sink
// supplied by the caller.
package search

import (
	"fmt"

	"github.com/agbru/taxicab/internal/uint192"
)

// Params holds the static inputs of a search run. They are fixed for the
// lifetime of the run; the arithmetic width contract (all true power sums must
// fit in 192 bits) is enforced by the configuration layer before an Index is
// ever built.
type Params struct {
	// Lower is the inclusive lower bound of the search range.
	Lower uint64
	// Upper is the inclusive upper bound of the search range.
	Upper uint64
	// Exponent is the power k applied to every operand.
	Exponent uint64
	// Modulus is the partition count M, a power of two. Power values are
	// partitioned by their low bits modulo M.
	Modulus uint64
}

// RangeSize returns the number of integers in [Lower, Upper].
func (p Params) RangeSize() uint64 {
	return p.Upper - p.Lower + 1
}

// TotalPairs returns the number of pairs (a,b) with Lower <= a < b <= Upper.
// Every pair belongs to exactly one residue partition, so this is also the
// total amount of work the progress counter converges to.
func (p Params) TotalPairs() uint64 {
	n := p.RangeSize()
	return n * (n - 1) / 2
}

// Solution is a reported collision: two distinct pairs whose k-th power sums
// are exactly equal. Invariants: A < B, C < D, (A,B) != (C,D), and (A,B) is
// lexicographically smaller than (C,D) so a solution has a single canonical
// form regardless of which pair the merge happened to pop first.
type Solution struct {
	A, B uint64
	C, D uint64
	// Sum is the shared power sum A^k + B^k (= C^k + D^k).
	Sum uint192.Uint192
}

// newSolution builds a canonical Solution from the two equal-sum pairs in the
// order the merge produced them.
func newSolution(a1, b1, a2, b2 uint64, sum uint192.Uint192) Solution {
	if a1 > a2 || (a1 == a2 && b1 > b2) {
		a1, b1, a2, b2 = a2, b2, a1, b1
	}
	return Solution{A: a1, B: b1, C: a2, D: b2, Sum: sum}
}

// String renders the solution as a single human-readable identity line.
func (s Solution) String() string {
	return fmt.Sprintf("%d^k + %d^k = %d^k + %d^k = %s", s.A, s.B, s.C, s.D, s.Sum)
}

// Less orders solutions by sum, then by operands. The orchestrator sorts the
// aggregated solution list with this order so output is deterministic no
// matter how partitions were scheduled.
func (s Solution) Less(o Solution) bool {
	if c := s.Sum.Cmp(o.Sum); c != 0 {
		return c < 0
	}
	if s.A != o.A {
		return s.A < o.A
	}
	if s.B != o.B {
		return s.B < o.B
	}
	if s.C != o.C {
		return s.C < o.C
	}
	return s.D < o.D
}
