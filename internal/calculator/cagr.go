package calculator

import (
	"math"
	"time"
)

// minCAGRYears is the shortest span that is annualized; anything shorter yields 0.
const minCAGRYears = 0.01

// CAGR returns the compound annual growth rate in percent between invested
// and currentValue over [start, end]. A zero end means now. It returns 0 when
// either amount is not positive, the span is shorter than minCAGRYears or
// the rate overflows float64.
func CAGR(invested, currentValue float64, start, end time.Time) float64 {
	if invested <= 0 || currentValue <= 0 {
		return 0
	}
	if end.IsZero() {
		end = time.Now()
	}
	years := yearFraction(end.Sub(start).Hours())
	if years < minCAGRYears {
		return 0
	}
	return Finite((math.Pow(currentValue/invested, 1/years) - 1) * 100)
}
