package collector

import (
	"math"
	"sort"

	"WealthSentinel/internal/model"
)

// trendWindow is how many trailing months feed the rate inputs.
const trendWindow = 6

// MonthlyTrends sums completed income and expenses per YYYY-MM month,
// oldest month first.
func MonthlyTrends(txs []model.Transaction) []model.MonthlyTrend {
	byMonth := make(map[string]*model.MonthlyTrend)
	for _, tx := range txs {
		if !tx.Completed() {
			continue
		}
		if tx.Type != model.TxIncome && tx.Type != model.TxExpense {
			continue
		}
		key := tx.MonthKey()
		t, ok := byMonth[key]
		if !ok {
			t = &model.MonthlyTrend{Month: key}
			byMonth[key] = t
		}
		if tx.Type == model.TxIncome {
			t.Income += math.Abs(tx.Amount)
		} else {
			t.Expenses += math.Abs(tx.Amount)
		}
	}

	trends := make([]model.MonthlyTrend, 0, len(byMonth))
	for _, t := range byMonth {
		trends = append(trends, *t)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}

// window holds the trailing months used for rate inputs.
type window struct {
	months      map[string]bool
	income      float64
	expenses    float64
	avgIncome   float64
	avgExpenses float64
}

func lastMonths(trends []model.MonthlyTrend, n int) window {
	if len(trends) > n {
		trends = trends[len(trends)-n:]
	}
	w := window{months: make(map[string]bool, len(trends))}
	for _, t := range trends {
		w.months[t.Month] = true
		w.income += t.Income
		w.expenses += t.Expenses
	}
	if len(trends) > 0 {
		w.avgIncome = w.income / float64(len(trends))
		w.avgExpenses = w.expenses / float64(len(trends))
	}
	return w
}

func (w window) savingsRate() float64 {
	if w.income <= 0 {
		return 0
	}
	return (w.income - w.expenses) / w.income * 100
}

func (w window) investmentRate(txs []model.Transaction) float64 {
	if w.income <= 0 {
		return 0
	}
	var invested float64
	for _, tx := range txs {
		if tx.Type == model.TxInvestment && tx.Completed() && w.months[tx.MonthKey()] {
			invested += math.Abs(tx.Amount)
		}
	}
	return invested / w.income * 100
}

// nwiAdherence compares the actual Needs/Wants/Investments split of bucketed
// outflows with the targets. 100 is a perfect match.
func (w window) nwiAdherence(txs []model.Transaction, targets map[model.Bucket]float64) float64 {
	spent := make(map[model.Bucket]float64, 3)
	var total float64
	for _, tx := range txs {
		if !tx.Completed() || tx.Type == model.TxIncome || !w.months[tx.MonthKey()] {
			continue
		}
		b := tx.Bucket
		if b == "" && tx.Type == model.TxInvestment {
			b = model.BucketInvestments
		}
		if b == "" {
			continue
		}
		spent[b] += math.Abs(tx.Amount)
		total += math.Abs(tx.Amount)
	}
	if total == 0 {
		return 0
	}

	var deviation float64
	for _, b := range []model.Bucket{model.BucketNeeds, model.BucketWants, model.BucketInvestments} {
		deviation += math.Abs(spent[b]/total*100 - targets[b])
	}
	return math.Max(0, 100-deviation/2)
}
