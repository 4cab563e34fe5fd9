// Package bigcheck provides signed 64-bit arithmetic with explicit
// overflow detection, as required by the Ball–Larus path-counting step:
// weights and path counts must never wrap silently.
//
// Int64 is a thin wrapper around the native int64. Unlike math/big.Int it
// does not grow arbitrarily; instead every Add reports whether the
// addition overflowed so the caller can fall back to a sentinel state.
package bigcheck

// Int64 is a checked signed 64-bit integer.
type Int64 int64

// Zero is the additive identity.
const Zero Int64 = 0

// One is the path count of a block with no successors (the sink).
const One Int64 = 1

// Add returns a+b and reports whether the addition overflowed the
// signed 64-bit range. On overflow the returned value is unspecified
// and must not be used.
//
// Overflow occurs iff a and b have the same sign and the result's sign
// differs from theirs (two's complement overflow check).
func (a Int64) Add(b Int64) (sum Int64, overflow bool) {
	sum = a + b
	overflow = (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0)
	return sum, overflow
}

// Int64 returns the underlying value.
func (a Int64) Int64() int64 { return int64(a) }

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func (a Int64) Cmp(b Int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
