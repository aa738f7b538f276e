package search

import (
	"github.com/agbru/taxicab/internal/uint192"
)

// Index is the immutable precompute product shared read-only by every
// partition worker: the dense power table for [Lower, Upper] and the
// residue-partitioned inverted index over it.
//
// An Index is built once by NewIndex and never mutated afterwards, so
// unsynchronized concurrent reads from any number of workers are safe.
type Index struct {
	params Params
	// powers[i-Lower] is i^k truncated to 192 bits.
	powers []uint192.Uint192
	// buckets[r] lists, in strictly increasing order, every i in
	// [Lower, Upper] whose power value has low bits congruent to r mod M.
	// The buckets are a complete, disjoint partition of the range.
	buckets [][]uint64
}

// NewIndex precomputes the power table and residue buckets for p.
//
// The build makes two sequential passes over the range. The first computes
// every power and tallies the per-residue population; the second allocates
// each bucket at its exact tallied size and appends indices in increasing
// order. Because the scan index grows monotonically, every bucket comes out
// strictly ascending without a sort step.
//
// Parameters:
//   - p: The validated search parameters (Modulus must be a power of two).
//
// Returns:
//   - *Index: The immutable power table and residue index.
func NewIndex(p Params) *Index {
	n := p.RangeSize()
	mask := p.Modulus - 1

	powers := make([]uint192.Uint192, n)
	tallies := make([]uint64, p.Modulus)
	for i := p.Lower; i <= p.Upper; i++ {
		pw := uint192.From64(i).Pow(p.Exponent)
		powers[i-p.Lower] = pw
		tallies[pw.Lo()&mask]++
	}

	buckets := make([][]uint64, p.Modulus)
	for r := range buckets {
		buckets[r] = make([]uint64, 0, tallies[r])
	}
	for i := p.Lower; i <= p.Upper; i++ {
		r := powers[i-p.Lower].Lo() & mask
		buckets[r] = append(buckets[r], i)
	}

	return &Index{params: p, powers: powers, buckets: buckets}
}

// Params returns the parameters the index was built for.
func (ix *Index) Params() Params { return ix.params }

// Power returns the precomputed value i^k. i must lie in [Lower, Upper].
func (ix *Index) Power(i uint64) uint192.Uint192 {
	return ix.powers[i-ix.params.Lower]
}

// Residue returns the partition residue of a power value: its low 64 bits
// masked by M-1.
func (ix *Index) Residue(v uint192.Uint192) uint64 {
	return v.Lo() & (ix.params.Modulus - 1)
}

// Bucket returns the ascending index list for residue r.
func (ix *Index) Bucket(r uint64) []uint64 {
	return ix.buckets[r]
}
