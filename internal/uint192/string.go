// Decimal conversion for Uint192. Rendering is exact and allocation-light but
// is intended for result reporting and tests only; nothing on the search's hot
// path formats numbers.
package uint192

import (
	"fmt"
	"math/bits"
	"strings"
)

// decChunk is the largest power of ten that fits in a uint64 (10^19). The
// decimal conversion peels 19 digits per division step.
const (
	decChunk       uint64 = 1e19
	decChunkDigits        = 19
)

// divmod64 returns (x / d, x % d) using a 192-by-64 long division, one limb at
// a time from the most significant down. d must be non-zero; because the
// remainder carried into each bits.Div64 step is always < d, the division
// cannot trap on quotient overflow.
func (x Uint192) divmod64(d uint64) (Uint192, uint64) {
	var q Uint192
	var r uint64
	q.hi, r = bits.Div64(0, x.hi, d)
	q.mid, r = bits.Div64(r, x.mid, d)
	q.lo, r = bits.Div64(r, x.lo, d)
	return q, r
}

// String renders x in decimal, exactly.
//
// The value is repeatedly divided by 10^19; each non-leading chunk is padded
// to 19 digits. At most ten division rounds are needed for 192 bits.
//
// Returns:
//   - string: The exact base-10 representation, with no leading zeros.
func (x Uint192) String() string {
	if x.IsZero() {
		return "0"
	}
	// Chunks come out least significant first.
	var chunks []uint64
	for !x.IsZero() {
		var rem uint64
		x, rem = x.divmod64(decChunk)
		chunks = append(chunks, rem)
	}
	var b strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		if i == len(chunks)-1 {
			fmt.Fprintf(&b, "%d", chunks[i])
		} else {
			fmt.Fprintf(&b, "%019d", chunks[i])
		}
	}
	return b.String()
}

// Parse converts a base-10 string into a Uint192.
//
// Parsing truncates modulo 2^192 like every other operation in this package;
// strings whose value exceeds the width silently wrap. An empty string or a
// non-digit byte is an error.
//
// Parameters:
//   - s: The decimal string, digits only (no sign, no separators).
//
// Returns:
//   - Uint192: The parsed value.
//   - error: An error if s is empty or contains a non-digit.
func Parse(s string) (Uint192, error) {
	if s == "" {
		return Uint192{}, fmt.Errorf("uint192: empty decimal string")
	}
	var v Uint192
	ten := From64(10)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint192{}, fmt.Errorf("uint192: invalid digit %q at position %d", c, i)
		}
		v = v.Mul(ten).Add(From64(uint64(c - '0')))
	}
	return v, nil
}
