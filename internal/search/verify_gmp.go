//go:build gmp

// This file provides a GMP-backed solution verifier, conditionally compiled
// with the "gmp" build tag. The build tag architecture ensures that:
//   - Projects can build without GMP (the default, using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: Requires MinGW or WSL with libgmp
//
// For verification workloads the speed difference against math/big is
// irrelevant (a handful of exponentiations per solution); the tag exists so
// environments that already link GMP for other tooling get one consistent
// bignum backend.

package search

import (
	"fmt"

	"github.com/ncw/gmp"
)

// VerifySolutions recomputes each reported solution's two power sums with
// GMP arbitrary-precision arithmetic and confirms that they are exactly equal
// and consistent with the 192-bit sum the search reported.
//
// Parameters:
//   - p: The search parameters used for the run.
//   - solutions: The solutions to cross-check.
//
// Returns:
//   - error: Nil if every solution verifies; otherwise a description of the
//     first mismatch.
func VerifySolutions(p Params, solutions []Solution) error {
	powGmp := func(v uint64) *gmp.Int {
		base := new(gmp.Int).SetUint64(v)
		exp := new(gmp.Int).SetUint64(p.Exponent)
		return new(gmp.Int).Exp(base, exp, nil)
	}
	mod192 := new(gmp.Int).Lsh(gmp.NewInt(1), 192)

	for _, s := range solutions {
		left := new(gmp.Int).Add(powGmp(s.A), powGmp(s.B))
		right := new(gmp.Int).Add(powGmp(s.C), powGmp(s.D))
		if left.Cmp(right) != 0 {
			return fmt.Errorf("solution %s fails arbitrary-precision check: %s != %s",
				s, left, right)
		}
		if reduced := new(gmp.Int).Mod(left, mod192); reduced.String() != s.Sum.String() {
			return fmt.Errorf("solution %s reported sum %s, arbitrary-precision value is %s",
				s, s.Sum, left)
		}
	}
	return nil
}

// VerifierName identifies the active verification backend in reports.
func VerifierName() string { return "GMP" }
