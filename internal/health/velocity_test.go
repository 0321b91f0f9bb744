package health

import (
	"fmt"
	"math"
	"testing"

	"WealthSentinel/internal/model"
)

func months(expenses ...float64) []model.MonthlyTrend {
	out := make([]model.MonthlyTrend, len(expenses))
	for i, e := range expenses {
		out[i] = model.MonthlyTrend{Month: monthKey(2024, i+1), Expenses: e}
	}
	return out
}

func monthKey(year, n int) string {
	return fmt.Sprintf("%04d-%02d", year+(n-1)/12, (n-1)%12+1)
}

func TestExpenseVelocity_Trends(t *testing.T) {
	tests := []struct {
		name  string
		in    []model.MonthlyTrend
		trend model.Trend
	}{
		{"increasing", months(1000, 1000, 1000, 1200, 1200, 1200), model.TrendIncreasing},
		{"decreasing", months(1200, 1200, 1200, 1000, 1000, 1000), model.TrendDecreasing},
		{"stable within 5%", months(1000, 1000, 1000, 1040, 1040, 1040), model.TrendStable},
		{"exactly 5% is stable", months(1000, 1050), model.TrendStable},
	}
	for _, tt := range tests {
		v := ExpenseVelocity(tt.in)
		if v.Trend != tt.trend {
			t.Errorf("%s: expected %s, got %s (change %.2f%%)", tt.name, tt.trend, v.Trend, v.ChangePercent)
		}
	}
}

func TestExpenseVelocity_UsesLastSixMonths(t *testing.T) {
	in := months(9000, 9000, 100, 100, 100, 110, 110, 110)
	v := ExpenseVelocity(in)
	if v.PreviousAvg != 100 || v.CurrentAvg != 110 {
		t.Errorf("expected 100 -> 110, got %.2f -> %.2f", v.PreviousAvg, v.CurrentAvg)
	}
	if math.Abs(v.ChangePercent-10) > 1e-9 {
		t.Errorf("expected +10%%, got %.4f", v.ChangePercent)
	}
}

func TestExpenseVelocity_OddCountAndOrder(t *testing.T) {
	in := months(100, 100, 200, 200, 200)
	// shuffle; the function must order by month
	in[0], in[4] = in[4], in[0]
	v := ExpenseVelocity(in)
	if v.PreviousAvg != 100 || v.CurrentAvg != 200 {
		t.Errorf("expected 100 -> 200, got %.2f -> %.2f", v.PreviousAvg, v.CurrentAvg)
	}
}

func TestExpenseVelocity_Degenerate(t *testing.T) {
	v := ExpenseVelocity(nil)
	if v.Trend != model.TrendStable || v.CurrentAvg != 0 || v.PreviousAvg != 0 {
		t.Errorf("expected empty stable result, got %+v", v)
	}

	v = ExpenseVelocity(months(750))
	if v.CurrentAvg != 750 || v.PreviousAvg != 0 || v.ChangePercent != 0 || v.Trend != model.TrendStable {
		t.Errorf("expected single value as current, got %+v", v)
	}

	v = ExpenseVelocity(months(0, 500))
	if v.ChangePercent != 0 || v.Trend != model.TrendStable {
		t.Errorf("expected 0%% change when previous avg is 0, got %+v", v)
	}
}
