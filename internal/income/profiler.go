// Package income measures how much income arrives per month and how steady it is.
package income

import (
	"math"
	"sort"

	"WealthSentinel/internal/calculator"
	"WealthSentinel/internal/model"
)

// VariableThreshold is the stability below which income is considered variable.
const VariableThreshold = 0.7

// DetectIncome profiles completed income transactions by amount magnitude;
// the type tag carries the direction. Stability is
// 1 - coefficient of variation of monthly totals, floored at 0; a single
// month of data is assumed stable. With no income at all it returns a zero
// profile marked variable with an unknown last income date.
func DetectIncome(txs []model.Transaction) model.IncomeProfile {
	monthly := make(map[string]float64)
	var last *model.Transaction
	for i := range txs {
		tx := &txs[i]
		if tx.Type != model.TxIncome || !tx.Completed() {
			continue
		}
		monthly[tx.MonthKey()] += math.Abs(tx.Amount)
		if last == nil || tx.Date.After(last.Date) {
			last = tx
		}
	}
	if len(monthly) == 0 {
		return model.IncomeProfile{IsVariable: true}
	}

	// sum in month order so the result does not depend on map iteration
	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	sums := make([]float64, len(months))
	for i, m := range months {
		sums[i] = monthly[m]
	}

	mean := average(sums)
	stability := stabilityOf(sums, mean)
	lastDate := last.Date.Format("2006-01-02")

	// classify on the raw value; rounding is for display only
	return model.IncomeProfile{
		AvgMonthlyIncome: calculator.Round(mean, 2),
		IncomeStability:  calculator.Round(stability, 2),
		IsVariable:       stability < VariableThreshold,
		LastIncomeDate:   &lastDate,
	}
}

func stabilityOf(sums []float64, mean float64) float64 {
	if len(sums) < 2 {
		return 1
	}
	if mean <= 0 {
		return 0
	}
	variance := 0.0
	for _, s := range sums {
		variance += (s - mean) * (s - mean)
	}
	cv := math.Sqrt(variance/float64(len(sums))) / mean
	return math.Max(0, 1-cv)
}

func average(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
