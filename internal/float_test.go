package internal

import (
	"math"
	"testing"
)

func testFloat(t *testing.T) {
	t.Run("constants", testFloatConstants)
	t.Run("double", testFloatDouble)
	t.Run("scale", testFloatScale)
}

func testFloatConstants(t *testing.T) {
	if actual := float64(TwoMantDig); actual != math.Ldexp(1, 52) {
		t.Errorf("expected [%v], got [%v]", math.Ldexp(1, 52), actual)
	}

	// Largest finite float64 is just below 2^MaxExp, smallest normal is 2^(MinExp-1).
	if actual := math.Ldexp(1, MaxExp); !math.IsInf(actual, 1) {
		t.Errorf("expected [+Inf], got [%v]", actual)
	}

	if actual, expected := math.Ldexp(1, MinExp-1), 2.2250738585072014e-308; actual != expected {
		t.Errorf("expected [%v], got [%v]", expected, actual)
	}

	// Next float after TwoMantDig is a whole unit away.
	if actual := math.Nextafter(TwoMantDig, math.Inf(1)) - TwoMantDig; actual != 1 {
		t.Errorf("expected [1], got [%v]", actual)
	}
}

func testFloatDouble(t *testing.T) {
	for _, c := range []struct {
		x        float64
		n        int
		expected float64
	}{
		{1, 0, 1},
		{1, 10, 1024},
		{0.75, 3, 6},
		{-1.5, 2, -6},
		{1, -4, 1}, // Negative counts are no-ops.
		{1, 1023, math.Ldexp(1, 1023)},
		{1, 1024, math.Inf(1)},
		{math.Inf(-1), 5, math.Inf(-1)},
	} {
		if actual := Double(c.x, c.n); actual != c.expected {
			t.Errorf("Double(%v, %d): expected [%v], got [%v]", c.x, c.n, c.expected, actual)
		}
	}
}

func testFloatScale(t *testing.T) {
	for n := -1074; n <= 1023; n++ {
		if actual, expected := Scale(1, n), math.Ldexp(1, n); actual != expected {
			t.Fatalf("Scale(1, %d): expected [%v], got [%v]", n, expected, actual)
		}
	}

	// Below the smallest subnormal: 2^-1075 is a tie and rounds to even, i.e. zero.
	if actual := Scale(1, -1075); actual != 0 {
		t.Errorf("expected [0], got [%v]", actual)
	}

	// A subnormal result must be rounded once. 1.5 * 2^-1074 is a tie between 1 and 2 units,
	// which resolves to 2 units. Repeated halving would round 0.75 * 2^-1073 first.
	x := 1.5 * math.Ldexp(1, 10)
	if actual, expected := Scale(x, -1084), math.Ldexp(1, -1073); actual != expected {
		t.Errorf("expected [%v], got [%v]", expected, actual)
	}
}
