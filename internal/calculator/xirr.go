package calculator

import (
	"math"
	"sort"
	"time"

	"WealthSentinel/internal/model"
)

// Solver defaults, used by XIRR.
const (
	DefaultGuess         = 0.10
	DefaultTolerance     = 1e-7
	DefaultMaxIterations = 100
)

const (
	daysPerYear = 365.25

	minRate = -0.99
	maxRate = 100.0

	// bisection starts on [minRate, bisectHi] and widens to maxRate once.
	bisectHi = 10.0

	// below this |NPV'(r)| Newton-Raphson cannot make progress.
	flatDerivative = 1e-12
)

// XIRR is CalculateXIRR with the default guess, tolerance and iteration cap.
func XIRR(flows []model.CashFlow) (float64, bool) {
	return CalculateXIRR(flows, DefaultGuess, DefaultTolerance, DefaultMaxIterations)
}

// CalculateXIRR returns the annualized rate (as a fraction, 4 decimals) that
// zeroes the net present value of irregular cash flows. Flows need not be
// sorted. ok is false when the set has fewer than two flows, lacks a negative
// and a positive amount, or neither Newton-Raphson nor bisection converges.
func CalculateXIRR(flows []model.CashFlow, guess, tolerance float64, maxIterations int) (float64, bool) {
	if len(flows) < 2 || !signMixed(flows) {
		return 0, false
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	sorted := make([]model.CashFlow, len(flows))
	copy(sorted, flows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	t0 := sorted[0].Date
	amounts := make([]float64, len(sorted))
	years := make([]float64, len(sorted))
	for i, f := range sorted {
		amounts[i] = f.Amount
		years[i] = yearFraction(f.Date.Sub(t0).Hours())
	}

	rate, ok := newtonRaphson(amounts, years, guess, tolerance, maxIterations)
	if !ok {
		rate, ok = bisect(amounts, years, tolerance, 2*maxIterations)
	}
	if !ok {
		return 0, false
	}
	return Round(rate, 4), true
}

// InvestmentXIRR treats every investment as an outflow and currentValue as a
// final inflow on currentDate, and returns the XIRR as a percentage with two
// decimals. A zero currentDate means now.
func InvestmentXIRR(investments []model.CashFlow, currentValue float64, currentDate time.Time) (float64, bool) {
	if len(investments) == 0 || currentValue <= 0 {
		return 0, false
	}
	if currentDate.IsZero() {
		currentDate = time.Now()
	}

	flows := make([]model.CashFlow, 0, len(investments)+1)
	for _, inv := range investments {
		flows = append(flows, model.CashFlow{Date: inv.Date, Amount: -math.Abs(inv.Amount)})
	}
	flows = append(flows, model.CashFlow{Date: currentDate, Amount: currentValue})

	rate, ok := XIRR(flows)
	if !ok {
		return 0, false
	}
	return Round(rate*100, 2), true
}

func signMixed(flows []model.CashFlow) bool {
	var neg, pos bool
	for _, f := range flows {
		switch {
		case f.Amount < 0:
			neg = true
		case f.Amount > 0:
			pos = true
		}
	}
	return neg && pos
}

func npv(amounts, years []float64, rate float64) float64 {
	sum := 0.0
	for i, a := range amounts {
		sum += a / math.Pow(1+rate, years[i])
	}
	return sum
}

// npvDerivative is d/dr of npv.
func npvDerivative(amounts, years []float64, rate float64) float64 {
	sum := 0.0
	for i, a := range amounts {
		sum -= years[i] * a / math.Pow(1+rate, years[i]+1)
	}
	return sum
}

// newtonRaphson is the primary strategy. It reports false instead of
// returning an unconverged or degenerate estimate.
func newtonRaphson(amounts, years []float64, guess, tolerance float64, maxIterations int) (float64, bool) {
	rate := clamp(guess, minRate, maxRate)
	for i := 0; i < maxIterations; i++ {
		d := npvDerivative(amounts, years, rate)
		if math.Abs(d) < flatDerivative || math.IsNaN(d) {
			return 0, false
		}
		next := clamp(rate-npv(amounts, years, rate)/d, minRate, maxRate)
		if math.IsNaN(next) {
			return 0, false
		}
		if math.Abs(next-rate) < tolerance {
			if next == minRate || next == maxRate {
				// pinned against a clamp bound, not a root
				return 0, false
			}
			return next, true
		}
		rate = next
	}
	return 0, false
}

// bisect is the fallback strategy on [minRate, bisectHi], widened to
// [minRate, maxRate] when the first bracket holds no sign change.
func bisect(amounts, years []float64, tolerance float64, maxSteps int) (float64, bool) {
	lo, hi := minRate, bisectHi
	fLo := npv(amounts, years, lo)
	fHi := npv(amounts, years, hi)
	if fLo*fHi > 0 {
		hi = maxRate
		fHi = npv(amounts, years, hi)
		if fLo*fHi > 0 {
			return 0, false
		}
	}
	if math.IsNaN(fLo) || math.IsNaN(fHi) {
		return 0, false
	}
	switch {
	case fLo == 0:
		return lo, true
	case fHi == 0:
		return hi, true
	}

	for i := 0; i < maxSteps; i++ {
		mid := (lo + hi) / 2
		fMid := npv(amounts, years, mid)
		if math.Abs(fMid) < tolerance || (hi-lo)/2 < tolerance {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return 0, false
}
