// Package loki provides bit reproducible base-2 exponentiation and the base32z rendering of
// hex encoded identifiers, such as service node public keys.
//
// Exp2 does not defer to the math package or any platform libm. The same input yields the same
// float64 on every platform, which is what consensus code computing rewards from it relies on.
package loki

import (
	"math"

	"github.com/loki-project/loki-go/internal"
)

const (
	// Best float64 approximation of ln(2)/256.
	ln2By256 = 0.00270760617406228636491106297444600221904

	// Coefficients of the power series of tanh(z), truncated after z^5. |z| <= ln(2)/1024 < 0.0007,
	// so the relative contribution of the z^7 term is below 0.0007^6 < 2^-60.
	tanhCoeff1 = 1.0
	tanhCoeff3 = -0.333333333333333333333333333333333333334
	tanhCoeff5 = 0.133333333333333333333333333333333333334

	expTableSize = 257
	expTableMid  = 128

	// Above exp2Max the result overflows to +Inf, below exp2Min it underflows to 0.
	exp2Max = internal.MaxExp
	exp2Min = internal.MinExp - 1 - internal.MantDig
)

// Decomposition splits an exponent x into x = N + M/256 + 2Z/ln(2), so that
//
//	2^x = 2^N * 2^(M/256) * exp(2Z)
//
// where the middle factor comes from a table and the last one from a short power series.
type Decomposition struct {
	N int // Power of two the result gets scaled by.
	M int // Table offset, -128 <= M <= 128.

	Z      float64 // Half of the residual. |Z| <= ln(2)/1024.
	Tanh   float64 // tanh(Z), from the truncated series.
	ExpY   float64 // exp(2Z) = (1 + tanh(Z)) / (1 - tanh(Z)).
	Factor float64 // 2^(M/256), from the table.
}

// Decompose returns the Decomposition Exp2 computes x with.
//
// ok is false when x is NaN or outside of the range in which Exp2 neither overflows
// nor underflows, in which case the Decomposition is a zero value.
func Decompose(x float64) (d Decomposition, ok bool) {
	if math.IsNaN(x) || x > exp2Max || x < exp2Min {
		return d, false
	}

	return decompose(x), true
}

func decompose(x float64) (d Decomposition) {
	// The explicit conversions round every product on its own and keep the compiler from fusing
	// it with a following addition. Fused and unfused results differ in the last bit.

	// 256*x is exact, so nm is 256 * n + m and the subtraction below is exact as well.
	nm := Round(float64(x * 256.0))
	d.Z = (float64(x*256.0) - nm) * (ln2By256 * 0.5)

	z2 := d.Z * d.Z
	p := float64(tanhCoeff5*z2) + tanhCoeff3
	p = float64(p*z2) + tanhCoeff1
	d.Tanh = float64(p * d.Z)

	d.ExpY = (1.0 + d.Tanh) / (1.0 - d.Tanh)

	d.N = int(Round(float64(nm * (1.0 / 256.0))))
	d.M = int(nm) - 256*d.N
	d.Factor = expTable[expTableMid+d.M]

	return d
}

// Exp2 returns 2^x.
//
// Results are within a couple of units in the last place of the exact value. x > 1024 returns
// +Inf, x < -1075 returns 0 and NaN is returned as is.
func Exp2(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > exp2Max:
		return math.Inf(1)
	case x < exp2Min:
		return 0
	}

	d := decompose(x)

	return internal.Scale(d.Factor*d.ExpY, d.N)
}

// Exp2Legacy computes 2^x the way historic releases did, for comparisons against results
// computed by them.
//
// Those only ever scaled up, so the integer part N of the Decomposition of x is dropped
// whenever it is negative. Exp2Legacy(-3) is therefore 1. For every x > -127.5/256 the result
// is identical to Exp2.
func Exp2Legacy(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > exp2Max:
		return math.Inf(1)
	case x < exp2Min:
		return 0
	}

	d := decompose(x)

	return internal.Double(d.Factor*d.ExpY, d.N)
}
