package Maths

import (
	"cmp"
	"math/bits"
)

// Abs of x. The minimum int has no positive counterpart and comes back
// unchanged.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp x into [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// NextPow2 is the smallest power of two >= x.
func NextPow2(x uint) uint {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(x-1)
}

// CeilDiv is a/b rounded toward positive infinity. a and b must be positive.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
