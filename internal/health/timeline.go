package health

import (
	"sort"

	"WealthSentinel/internal/model"
)

// NetWorthTimeline merges sparse monthly bank balances and investment values
// into one series over the union of their months, sorted ascending. A month
// missing from either series counts as 0 for that side; nothing is carried
// forward. When a series repeats a month, its last value wins.
func NetWorthTimeline(balances, investments []model.MonthlyValue) []model.NetWorthPoint {
	bank := make(map[string]float64, len(balances))
	for _, b := range balances {
		bank[b.Month] = b.Value
	}
	inv := make(map[string]float64, len(investments))
	for _, v := range investments {
		inv[v.Month] = v.Value
	}

	months := make([]string, 0, len(bank)+len(inv))
	for m := range bank {
		months = append(months, m)
	}
	for m := range inv {
		if _, ok := bank[m]; !ok {
			months = append(months, m)
		}
	}
	// YYYY-MM keys are zero-padded, so lexical order is chronological
	sort.Strings(months)

	points := make([]model.NetWorthPoint, 0, len(months))
	for _, m := range months {
		points = append(points, model.NetWorthPoint{
			Month:           m,
			BankBalance:     bank[m],
			InvestmentValue: inv[m],
			TotalNetWorth:   bank[m] + inv[m],
		})
	}
	return points
}
