package internal

import "math"

const (
	// MantDig is the number of significand bits of a float64, the implicit leading bit included.
	MantDig = 53

	// MaxExp and MinExp bound the exponent e of a normal float64 written as f * 2^e, 0.5 <= f < 1.
	MaxExp = 1024
	MinExp = -1021

	// TwoMantDig is 2^(MantDig-1). Every float64 at least this large in magnitude is integral.
	TwoMantDig = 1 << (MantDig - 1)
)

// Double multiplies x by 2, n times. A non-positive n leaves x as is.
//
// Each step is exact until the result overflows to infinity, so for n >= 0 this equals x * 2^n
// with a single rounding.
func Double(x float64, n int) float64 {
	for i := 0; i < n; i++ {
		x *= 2
	}

	return x
}

// Scale returns x * 2^n for any sign of n.
//
// Non-negative powers go through Double. Negative powers are applied in one step so that results
// landing in the subnormal range are rounded once instead of once per halving.
func Scale(x float64, n int) float64 {
	if n >= 0 {
		return Double(x, n)
	}

	return math.Ldexp(x, n)
}
