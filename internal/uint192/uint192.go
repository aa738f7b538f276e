// Package uint192 implements a fixed-width 192-bit unsigned integer type with
// truncating arithmetic.
//
// The type is designed for the equal-power-sum search, where k-th powers and
// their pairwise sums must be compared exactly but are guaranteed by the
// caller's parameter choice (range and exponent) to fit within 192 bits.
//
// Overflow Policy:
// All arithmetic truncates to 192 bits. A carry out of the most significant
// limb is silently discarded; this is the documented contract, not an error
// condition. There is no runtime overflow detection: if the caller selects
// parameters whose true results exceed 2^192, results are silently reduced
// modulo 2^192. The configuration layer is responsible for rejecting such
// parameter combinations up front.
package uint192

import "math/bits"

// Uint192 is an immutable 192-bit unsigned integer stored as three 64-bit
// limbs in little-endian limb order (lo is least significant). The zero value
// represents the number zero. Values are never mutated in place; every
// operation returns a new value.
type Uint192 struct {
	lo, mid, hi uint64
}

// One is the multiplicative identity.
var One = Uint192{lo: 1}

// From64 constructs a Uint192 from a uint64.
//
// Parameters:
//   - v: The value to widen.
//
// Returns:
//   - Uint192: The value v with the upper two limbs zero.
func From64(v uint64) Uint192 {
	return Uint192{lo: v}
}

// FromLimbs constructs a Uint192 directly from its three limbs, most
// significant first. It is primarily useful in tests and for building
// boundary values such as 2^192 - 1.
//
// Parameters:
//   - hi: The most significant limb (bits 128..191).
//   - mid: The middle limb (bits 64..127).
//   - lo: The least significant limb (bits 0..63).
//
// Returns:
//   - Uint192: The assembled value hi·2^128 + mid·2^64 + lo.
func FromLimbs(hi, mid, lo uint64) Uint192 {
	return Uint192{lo: lo, mid: mid, hi: hi}
}

// Lo returns the least significant 64 bits of x. The residue index uses this
// to partition power values by their low bits.
func (x Uint192) Lo() uint64 { return x.lo }

// IsZero reports whether x is zero.
func (x Uint192) IsZero() bool { return x.lo == 0 && x.mid == 0 && x.hi == 0 }

// Add returns x + y truncated to 192 bits.
//
// The addition ripples the carry across the three limbs using
// bits.Add64; a carry out of the top limb is dropped per the package
// overflow policy.
//
// Parameters:
//   - y: The addend.
//
// Returns:
//   - Uint192: The 192-bit truncated sum.
func (x Uint192) Add(y Uint192) Uint192 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	mid, carry := bits.Add64(x.mid, y.mid, carry)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	return Uint192{lo: lo, mid: mid, hi: hi}
}

// Mul returns x * y truncated to 192 bits.
//
// The schoolbook expansion computes only the partial products that can land
// within the three result limbs; products at limb index 3 and above are
// discarded. The result equals the true mathematical product whenever that
// product fits in 192 bits, which the search's parameter contract guarantees.
//
// Parameters:
//   - y: The multiplicand.
//
// Returns:
//   - Uint192: The 192-bit truncated product.
func (x Uint192) Mul(y Uint192) Uint192 {
	// Limb 0 and the carry into limb 1.
	c1, r0 := bits.Mul64(x.lo, y.lo)

	// Limb 1: cross products lo*mid plus the carry from limb 0.
	h1a, l1a := bits.Mul64(x.lo, y.mid)
	h1b, l1b := bits.Mul64(x.mid, y.lo)
	r1, k1 := bits.Add64(c1, l1a, 0)
	r1, k2 := bits.Add64(r1, l1b, 0)

	// Limb 2 is the top limb: every carry and cross product is added with
	// plain wrapping arithmetic since any overflow here is discarded anyway.
	r2 := h1a + h1b + k1 + k2 +
		x.lo*y.hi + x.hi*y.lo + x.mid*y.mid

	return Uint192{lo: r0, mid: r1, hi: r2}
}

// Pow returns x^exp truncated to 192 bits, computed by binary
// (square-and-multiply) exponentiation.
//
// Pow(x, 0) is 1 for every x, including zero; Pow(x, 1) is x.
//
// Parameters:
//   - exp: The non-negative exponent.
//
// Returns:
//   - Uint192: The 192-bit truncated power.
func (x Uint192) Pow(exp uint64) Uint192 {
	result := One
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Cmp compares x and y lexicographically from the most significant limb down.
//
// Returns:
//   - int: -1 if x < y, 0 if x == y, +1 if x > y.
func (x Uint192) Cmp(y Uint192) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.mid != y.mid:
		if x.mid < y.mid {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether x < y under the total order defined by Cmp.
func (x Uint192) Less(y Uint192) bool { return x.Cmp(y) < 0 }

// Equal reports whether x and y are fieldwise equal.
func (x Uint192) Equal(y Uint192) bool {
	return x.lo == y.lo && x.mid == y.mid && x.hi == y.hi
}
