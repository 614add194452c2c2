package loki

import (
	"math"

	"github.com/loki-project/loki-go/internal"
)

var negZero = math.Copysign(0, -1)

// Round returns the integer nearest to x, rounding half away from zero.
//
// Zero, infinities, NaN and any x whose magnitude is at least 2^52 are returned as is.
// Results of rounding negative values towards zero are -0.
func Round(x float64) float64 {
	switch {
	case x > 0:
		// 0.5 - 2^-54 would round up to 1 after adding 0.5.
		if x < 0.5 {
			return 0
		}

		if x < internal.TwoMantDig {
			y := x + 0.5

			// Adding and removing 2^52 drops the fraction. The rounding mode of that step does not
			// matter as long as an overshoot gets taken back.
			z := y + internal.TwoMantDig
			z -= internal.TwoMantDig
			if z > y {
				z -= 1.0
			}

			return z
		}
	case x < 0:
		if x > -0.5 {
			return negZero
		}

		if x > -internal.TwoMantDig {
			y := x - 0.5

			z := y - internal.TwoMantDig
			z += internal.TwoMantDig
			if z < y {
				z += 1.0
			}

			return z
		}
	}

	return x
}
