package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds x to the given number of decimal places, half away from zero.
// NaN and infinities are returned unchanged.
func Round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// Finite returns x, or 0 when x is NaN or infinite. Results that overflow
// float64 are reported as the 0 sentinel so they never reach an encoder.
func Finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// yearFraction returns the actual/365.25 year count between two instants.
func yearFraction(hours float64) float64 {
	return hours / 24 / daysPerYear
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
