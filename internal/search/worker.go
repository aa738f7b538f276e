package search

import "fmt"

// SweepPartition enumerates, in non-decreasing order of sum, every pair (a,b)
// with Lower <= a < b <= Upper whose power sum falls in residue partition p,
// and reports each adjacent equal-sum pair of pairs as a Solution via emit.
//
// The enumeration is a lazy k-way merge: for each a there is at most one live
// candidate (a,b) in the min-heap at any time, so the heap never holds more
// than rangeSize entries even though the partition covers O(rangeSize²) pairs.
//
// Seeding walks a upward through the range. The bucket holding every viable b
// for this a is the one whose residue complements a's residue to p mod M.
// Each bucket has a private monotone cursor: because a only increases across
// the seed loop and buckets are sorted ascending, the cursor is advanced past
// entries <= a and never rewound, so total cursor movement over the whole seed
// pass is bounded by the bucket sizes.
//
// Draining pops the minimum-sum candidate, compares its sum against the
// previous pop, and pushes the successor pair (a, b') from the same bucket if
// one exists. When t>2 pairs tie on one sum, only adjacent pops are compared,
// so the tie group is reported as t-1 solutions rather than all C(t,2)
// combinations; that adjacency contract is deliberate.
//
// Progress is accumulated locally and flushed to counter every FlushBatch
// pairs to bound contention on the shared atomic.
//
// Parameters:
//   - ix: The immutable power table and residue index (read-only, shared).
//   - p: The residue partition to sweep, in [0, Modulus).
//   - st: The partition-private heap and cursor state; reset internally.
//   - counter: The shared progress counter (may be nil in tests).
//   - emit: The callback invoked for every solution found.
func SweepPartition(ix *Index, p uint64, st *partitionState, counter *Counter, emit func(Solution)) {
	params := ix.Params()
	mask := params.Modulus - 1
	st.reset()

	// Seed: one initial candidate per a that still has a partner above it.
	for a := params.Lower; a <= params.Upper; a++ {
		powA := ix.Power(a)
		r := (p - ix.Residue(powA)) & mask
		bucket := ix.Bucket(r)

		cur := st.cursors[r]
		for cur < len(bucket) && bucket[cur] <= a {
			cur++
		}
		st.cursors[r] = cur
		if cur == len(bucket) {
			continue
		}

		b := bucket[cur]
		assert(b > a, "seeded partner not beyond its anchor")
		st.push(candidate{
			sum:    powA.Add(ix.Power(b)),
			a:      a,
			b:      b,
			bucket: r,
			pos:    cur,
		})
	}

	// Drain: pop in sum order, detect adjacent equal sums, push successors.
	var prev candidate
	havePrev := false
	var pending uint64

	for st.size > 0 {
		c := st.pop()

		if havePrev && c.sum.Equal(prev.sum) {
			assert(c.a != prev.a || c.b != prev.b, "duplicate pair popped from heap")
			emit(newSolution(prev.a, prev.b, c.a, c.b, c.sum))
		}
		prev, havePrev = c, true

		pending++
		if pending == FlushBatch {
			if counter != nil {
				counter.Add(pending)
			}
			pending = 0
		}

		bucket := ix.Bucket(c.bucket)
		if next := c.pos + 1; next < len(bucket) {
			b := bucket[next]
			st.push(candidate{
				sum:    ix.Power(c.a).Add(ix.Power(b)),
				a:      c.a,
				b:      b,
				bucket: c.bucket,
				pos:    next,
			})
		}
	}

	if counter != nil {
		counter.Add(pending)
	}
}

// assert panics on internal invariant violations. The search has no recovery
// path: a broken invariant means the index or the merge state is corrupt and
// the run must abort.
func assert(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("search: invariant violated: %s", msg))
	}
}
