package calculator

import (
	"math"

	"WealthSentinel/internal/model"
)

// MaxProjectionYears is the longest net-worth horizon accepted from callers
// outside the process (config and API requests).
const MaxProjectionYears = 50

// SIPFutureValue is the future value of a monthly contribution paid at the
// start of each month: P * ((1+r)^n - 1) / r * (1+r) with r the monthly rate
// and n the number of months. A zero rate degrades to P * n. An overflowing
// result is 0.
func SIPFutureValue(monthlyAmount, annualReturnPercent, years float64) float64 {
	r := annualReturnPercent / 100 / 12
	n := years * 12
	if r == 0 {
		return Finite(monthlyAmount * n)
	}
	return Finite(monthlyAmount * ((math.Pow(1+r, n) - 1) / r) * (1 + r))
}

// NetWorthGrowth projects net worth for years 1..years. Invested is the
// no-growth baseline; Projected compounds annual savings at returnPercent.
func NetWorthGrowth(currentNetWorth, monthlySavings, returnPercent float64, years int) []model.GrowthPoint {
	if years <= 0 {
		return []model.GrowthPoint{}
	}
	annualSavings := monthlySavings * 12
	annualReturn := returnPercent / 100

	points := make([]model.GrowthPoint, 0, years)
	compounded := currentNetWorth
	for y := 1; y <= years; y++ {
		compounded = (compounded + annualSavings) * (1 + annualReturn)
		points = append(points, model.GrowthPoint{
			Year:      y,
			Invested:  Finite(currentNetWorth + annualSavings*float64(y)),
			Projected: Finite(compounded),
		})
	}
	return points
}

// ProjectPosition returns the value of a position after the given years: its
// current value compounded annually plus, when it has a monthly contribution,
// the SIP future value of that contribution. An overflowing projection is 0.
func ProjectPosition(p model.InvestmentPosition, years float64) float64 {
	pct := p.ExpectedAnnualReturnPercent
	if pct < -100 {
		pct = -100
	}
	value := p.CurrentValue * math.Pow(1+pct/100, years)
	if p.MonthlyContribution > 0 {
		value += SIPFutureValue(p.MonthlyContribution, pct, years)
	}
	return Finite(value)
}

// InvestmentGrowth projects every position independently at 3, 5 and 10
// years and at the requested horizon.
func InvestmentGrowth(positions []model.InvestmentPosition, years float64) []model.InvestmentProjection {
	out := make([]model.InvestmentProjection, 0, len(positions))
	for _, p := range positions {
		out = append(out, model.InvestmentProjection{
			Name:             p.Name,
			Current:          p.CurrentValue,
			Projected3y:      ProjectPosition(p, 3),
			Projected5y:      ProjectPosition(p, 5),
			Projected10y:     ProjectPosition(p, 10),
			HorizonYears:     years,
			ProjectedHorizon: ProjectPosition(p, years),
		})
	}
	return out
}
