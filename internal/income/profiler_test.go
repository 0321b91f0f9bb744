package income

import (
	"testing"
	"time"

	"WealthSentinel/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDetectIncome_Empty(t *testing.T) {
	p := DetectIncome(nil)
	if p.AvgMonthlyIncome != 0 || p.IncomeStability != 0 {
		t.Errorf("expected zero profile, got %+v", p)
	}
	if !p.IsVariable {
		t.Error("expected empty income to be variable")
	}
	if p.LastIncomeDate != nil {
		t.Errorf("expected nil last income date, got %s", *p.LastIncomeDate)
	}
}

func TestDetectIncome_SteadySalary(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TxIncome, Amount: 2000, Date: day("2025-01-01")},
		{Type: model.TxIncome, Amount: 2000, Date: day("2025-02-01")},
		{Type: model.TxIncome, Amount: 2000, Date: day("2025-03-01")},
	}
	p := DetectIncome(txs)
	if p.AvgMonthlyIncome != 2000 {
		t.Errorf("expected avg 2000, got %.2f", p.AvgMonthlyIncome)
	}
	if p.IncomeStability != 1 {
		t.Errorf("expected stability 1, got %.2f", p.IncomeStability)
	}
	if p.IsVariable {
		t.Error("expected steady income not to be variable")
	}
	if p.LastIncomeDate == nil || *p.LastIncomeDate != "2025-03-01" {
		t.Errorf("expected last income 2025-03-01, got %v", p.LastIncomeDate)
	}
}

func TestDetectIncome_SingleMonthIsStable(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TxIncome, Amount: 700, Date: day("2025-05-03")},
		{Type: model.TxIncome, Amount: 300, Date: day("2025-05-20")},
	}
	p := DetectIncome(txs)
	if p.AvgMonthlyIncome != 1000 || p.IncomeStability != 1 || p.IsVariable {
		t.Errorf("expected 1000/1/false, got %+v", p)
	}
	if *p.LastIncomeDate != "2025-05-20" {
		t.Errorf("expected last income 2025-05-20, got %s", *p.LastIncomeDate)
	}
}

func TestDetectIncome_Freelancer(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TxIncome, Amount: 500, Date: day("2025-01-10")},
		{Type: model.TxIncome, Amount: 4000, Date: day("2025-02-10")},
		{Type: model.TxIncome, Amount: 1500, Date: day("2025-03-10")},
	}
	// mean 2000, population stddev ~1472 -> stability ~0.26
	p := DetectIncome(txs)
	if p.AvgMonthlyIncome != 2000 {
		t.Errorf("expected avg 2000, got %.2f", p.AvgMonthlyIncome)
	}
	if p.IncomeStability != 0.26 {
		t.Errorf("expected stability 0.26, got %.2f", p.IncomeStability)
	}
	if !p.IsVariable {
		t.Error("expected variable income")
	}
}

func TestDetectIncome_FiltersTypeAndStatus(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TxIncome, Amount: 1000, Date: day("2025-01-01"), Status: model.StatusCompleted},
		{Type: model.TxIncome, Amount: 9000, Date: day("2025-02-01"), Status: model.StatusPending},
		{Type: model.TxIncome, Amount: 9000, Date: day("2025-02-02"), Status: model.StatusFailed},
		{Type: model.TxExpense, Amount: 400, Date: day("2025-03-01")},
		{Type: model.TxInvestment, Amount: 300, Date: day("2025-03-02")},
	}
	p := DetectIncome(txs)
	if p.AvgMonthlyIncome != 1000 {
		t.Errorf("expected only the completed income to count, got %.2f", p.AvgMonthlyIncome)
	}
	if *p.LastIncomeDate != "2025-01-01" {
		t.Errorf("expected last income 2025-01-01, got %s", *p.LastIncomeDate)
	}
}

func TestDetectIncome_StabilityFloor(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TxIncome, Amount: 10, Date: day("2025-01-01")},
		{Type: model.TxIncome, Amount: 10, Date: day("2025-02-01")},
		{Type: model.TxIncome, Amount: 10, Date: day("2025-03-01")},
		{Type: model.TxIncome, Amount: 10000, Date: day("2025-04-01")},
	}
	p := DetectIncome(txs)
	if p.IncomeStability != 0 {
		t.Errorf("expected stability floored at 0, got %.4f", p.IncomeStability)
	}
}

func TestDetectIncome_NegativeAmountsAreMagnitudes(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TxIncome, Amount: -2000, Date: day("2025-01-01")},
		{Type: model.TxIncome, Amount: -2000, Date: day("2025-02-01")},
	}
	p := DetectIncome(txs)
	if p.AvgMonthlyIncome != 2000 {
		t.Errorf("expected avg 2000, got %.2f", p.AvgMonthlyIncome)
	}
	if p.IncomeStability != 1 || p.IsVariable {
		t.Errorf("expected stable income, got %+v", p)
	}
}

func TestDetectIncome_VariableOnUnroundedStability(t *testing.T) {
	// mean 500, population stddev 151.5 -> stability 0.697, displayed as 0.70
	txs := []model.Transaction{
		{Type: model.TxIncome, Amount: 651.5, Date: day("2025-01-01")},
		{Type: model.TxIncome, Amount: 348.5, Date: day("2025-02-01")},
	}
	p := DetectIncome(txs)
	if p.IncomeStability != 0.7 {
		t.Errorf("expected displayed stability 0.70, got %.4f", p.IncomeStability)
	}
	if !p.IsVariable {
		t.Error("expected income just under the threshold to be variable")
	}
}
