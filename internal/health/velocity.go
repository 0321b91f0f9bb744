package health

import (
	"sort"

	"WealthSentinel/internal/model"
)

const (
	velocityWindow = 6

	// changes beyond ±trendThreshold percent are a trend.
	trendThreshold = 5.0
)

// ExpenseVelocity splits the last six months into an older and a newer half
// and compares their average expenses. With fewer than two months it returns
// the single value as current with a stable trend.
func ExpenseVelocity(trends []model.MonthlyTrend) model.ExpenseVelocity {
	recent := make([]model.MonthlyTrend, len(trends))
	copy(recent, trends)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Month < recent[j].Month })
	if len(recent) > velocityWindow {
		recent = recent[len(recent)-velocityWindow:]
	}

	if len(recent) < 2 {
		v := model.ExpenseVelocity{Trend: model.TrendStable}
		if len(recent) == 1 {
			v.CurrentAvg = recent[0].Expenses
		}
		return v
	}

	mid := len(recent) / 2
	previous := averageExpenses(recent[:mid])
	current := averageExpenses(recent[mid:])

	var change float64
	if previous != 0 {
		change = (current - previous) / previous * 100
	}

	trend := model.TrendStable
	switch {
	case change > trendThreshold:
		trend = model.TrendIncreasing
	case change < -trendThreshold:
		trend = model.TrendDecreasing
	}

	return model.ExpenseVelocity{
		CurrentAvg:    current,
		PreviousAvg:   previous,
		ChangePercent: change,
		Trend:         trend,
	}
}

func averageExpenses(months []model.MonthlyTrend) float64 {
	sum := 0.0
	for _, m := range months {
		sum += m.Expenses
	}
	return sum / float64(len(months))
}
