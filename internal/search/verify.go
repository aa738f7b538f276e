//go:build !gmp

package search

import (
	"fmt"
	"math/big"
)

// VerifySolutions recomputes each reported solution's two power sums with
// arbitrary-precision arithmetic and confirms that they are exactly equal and
// consistent with the 192-bit sum the search reported. This catches the one
// silent failure mode the fixed-width design admits: a parameter choice whose
// true sums exceeded 192 bits and truncated into a spurious collision.
//
// This is the default math/big implementation; building with -tags=gmp swaps
// in the GMP-backed variant.
//
// Parameters:
//   - p: The search parameters used for the run.
//   - solutions: The solutions to cross-check.
//
// Returns:
//   - error: Nil if every solution verifies; otherwise a description of the
//     first mismatch.
func VerifySolutions(p Params, solutions []Solution) error {
	exp := new(big.Int).SetUint64(p.Exponent)
	powBig := func(v uint64) *big.Int {
		return new(big.Int).Exp(new(big.Int).SetUint64(v), exp, nil)
	}
	mod192 := new(big.Int).Lsh(big.NewInt(1), 192)

	for _, s := range solutions {
		left := new(big.Int).Add(powBig(s.A), powBig(s.B))
		right := new(big.Int).Add(powBig(s.C), powBig(s.D))
		if left.Cmp(right) != 0 {
			return fmt.Errorf("solution %s fails arbitrary-precision check: %s != %s",
				s, left, right)
		}
		if reduced := new(big.Int).Mod(left, mod192); reduced.String() != s.Sum.String() {
			return fmt.Errorf("solution %s reported sum %s, arbitrary-precision value is %s",
				s, s.Sum, left)
		}
	}
	return nil
}

// VerifierName identifies the active verification backend in reports.
func VerifierName() string { return "math/big" }
