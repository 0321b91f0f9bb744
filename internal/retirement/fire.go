// Package retirement answers whether and when a household reaches financial
// independence.
package retirement

import (
	"math"

	"WealthSentinel/internal/calculator"
	"WealthSentinel/internal/model"
)

const (
	// FIREMultiplier is the 4% withdrawal rule: the target is 25x annual expenses.
	FIREMultiplier = 25

	// MaxYearsToFIRE caps the forward simulation; hitting it means "not reachable".
	MaxYearsToFIRE = 100

	// RequiredSavingsHorizonYears is the fixed horizon MonthlyRequired is solved for.
	RequiredSavingsHorizonYears = 30

	maxSeriesYears  = 50
	seriesTailYears = 5
)

// CalculateFIRE computes the FIRE number, progress, years to reach it under
// annual compounding, the monthly contribution that reaches it within
// RequiredSavingsHorizonYears, and a chart series.
func CalculateFIRE(annualExpenses, currentNetWorth, monthlySavings, expectedReturnPercent float64) model.FIREResult {
	fireNumber := FIREMultiplier * annualExpenses
	annualReturn := expectedReturnPercent / 100
	annualSavings := monthlySavings * 12

	var progress float64
	if fireNumber > 0 {
		progress = calculator.Round(calculator.Finite(currentNetWorth/fireNumber*100), 2)
	}

	years := yearsToTarget(currentNetWorth, fireNumber, annualSavings, annualReturn)

	return model.FIREResult{
		FIRENumber:       fireNumber,
		AnnualExpenses:   annualExpenses,
		CurrentNetWorth:  currentNetWorth,
		ProgressPercent:  progress,
		YearsToFIRE:      years,
		MonthlyRequired:  MonthlyRequired(fireNumber, currentNetWorth, expectedReturnPercent, RequiredSavingsHorizonYears),
		ProjectionSeries: projectionSeries(currentNetWorth, fireNumber, annualSavings, annualReturn, years),
	}
}

// yearsToTarget steps net worth forward one year at a time until it meets
// the target or MaxYearsToFIRE is reached.
func yearsToTarget(netWorth, target, annualSavings, annualReturn float64) int {
	if netWorth >= target {
		return 0
	}
	years := 0
	for netWorth < target && years < MaxYearsToFIRE {
		netWorth = netWorth*(1+annualReturn) + annualSavings
		years++
	}
	return years
}

// MonthlyRequired solves FV = PV(1+r)^n + PMT((1+r)^n - 1)/r for PMT with a
// monthly rate r over the given years. It never returns a negative amount:
// when the lump sum alone compounds past the target the answer is 0.
func MonthlyRequired(target, presentValue, annualReturnPercent float64, years int) float64 {
	if target <= 0 || years <= 0 {
		return 0
	}
	r := annualReturnPercent / 100 / 12
	n := float64(years * 12)

	var pmt float64
	if r == 0 {
		pmt = (target - presentValue) / n
	} else {
		growth := math.Pow(1+r, n)
		pmt = (target - presentValue*growth) * r / (growth - 1)
	}
	if pmt < 0 || math.IsNaN(pmt) || math.IsInf(pmt, 0) {
		return 0
	}
	return calculator.Round(pmt, 2)
}

func projectionSeries(netWorth, target, annualSavings, annualReturn float64, yearsToFIRE int) []model.FIRESeriesPoint {
	last := yearsToFIRE + seriesTailYears
	if last > maxSeriesYears {
		last = maxSeriesYears
	}
	series := make([]model.FIRESeriesPoint, 0, last+1)
	for y := 0; y <= last; y++ {
		if y > 0 {
			netWorth = netWorth*(1+annualReturn) + annualSavings
		}
		series = append(series, model.FIRESeriesPoint{
			Year:       y,
			NetWorth:   calculator.Round(calculator.Finite(netWorth), 2),
			FIRETarget: target,
		})
	}
	return series
}
