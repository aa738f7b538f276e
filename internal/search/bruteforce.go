package search

import (
	"sort"

	"github.com/agbru/taxicab/internal/uint192"
)

// BruteForce finds every equal-power-sum collision in p's range by
// materializing all O(n²) pairs, sorting them by sum, and reporting adjacent
// equal-sum neighbours. It applies the same adjacency contract as the heap
// merge (a tie group of t pairs yields t-1 solutions), so its output is
// directly comparable with the partitioned search.
//
// The quadratic cost makes this suitable only for tests and for the --verify
// cross-check on small ranges.
//
// Parameters:
//   - p: The search parameters; Modulus is ignored since no partitioning
//     takes place.
//
// Returns:
//   - []Solution: All solutions, sorted by sum then operands.
func BruteForce(p Params) []Solution {
	n := p.RangeSize()
	powers := make([]uint192.Uint192, n)
	for i := p.Lower; i <= p.Upper; i++ {
		powers[i-p.Lower] = uint192.From64(i).Pow(p.Exponent)
	}

	type pairSum struct {
		sum  uint192.Uint192
		a, b uint64
	}
	pairs := make([]pairSum, 0, p.TotalPairs())
	for a := p.Lower; a <= p.Upper; a++ {
		for b := a + 1; b <= p.Upper; b++ {
			pairs = append(pairs, pairSum{
				sum: powers[a-p.Lower].Add(powers[b-p.Lower]),
				a:   a,
				b:   b,
			})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if c := pairs[i].sum.Cmp(pairs[j].sum); c != 0 {
			return c < 0
		}
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	var solutions []Solution
	for i := 1; i < len(pairs); i++ {
		if pairs[i].sum.Equal(pairs[i-1].sum) {
			solutions = append(solutions, newSolution(
				pairs[i-1].a, pairs[i-1].b,
				pairs[i].a, pairs[i].b,
				pairs[i].sum,
			))
		}
	}
	return solutions
}
