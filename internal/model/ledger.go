package model

import "time"

// TxType tags a transaction as income, expense or investment.
type TxType string

const (
	TxIncome     TxType = "income"
	TxExpense    TxType = "expense"
	TxInvestment TxType = "investment"
)

// TxStatus is the settlement state of a transaction.
type TxStatus string

const (
	StatusCompleted TxStatus = "completed"
	StatusPending   TxStatus = "pending"
	StatusFailed    TxStatus = "failed"
)

// Bucket is the Needs/Wants/Investments allocation a transaction counts against.
type Bucket string

const (
	BucketNeeds       Bucket = "needs"
	BucketWants       Bucket = "wants"
	BucketInvestments Bucket = "investments"
)

// CashFlow is a dated signed amount. Negative is money invested, positive is money returned.
type CashFlow struct {
	Date   time.Time `json:"date" yaml:"date"`
	Amount float64   `json:"amount" yaml:"amount"`
}

// Transaction is a single ledger entry, already deduplicated and type-tagged by the caller.
type Transaction struct {
	ID       string    `json:"id,omitempty" yaml:"id"`
	Date     time.Time `json:"date" yaml:"date"`
	Amount   float64   `json:"amount" yaml:"amount"`
	Type     TxType    `json:"type" yaml:"type"`
	Status   TxStatus  `json:"status,omitempty" yaml:"status"`
	Category string    `json:"category,omitempty" yaml:"category"`
	Bucket   Bucket    `json:"bucket,omitempty" yaml:"bucket"`
}

// Completed reports whether the transaction is settled. Ledgers exported
// without a status are treated as settled.
func (t Transaction) Completed() bool {
	return t.Status == "" || t.Status == StatusCompleted
}

// MonthKey returns the zero-padded YYYY-MM key of the transaction date.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// InvestmentPosition is a snapshot of one holding.
type InvestmentPosition struct {
	Name                        string     `json:"name" yaml:"name"`
	CurrentValue                float64    `json:"current_value" yaml:"current_value"`
	MonthlyContribution         float64    `json:"monthly_contribution" yaml:"monthly_contribution"`
	ExpectedAnnualReturnPercent float64    `json:"expected_annual_return_percent" yaml:"expected_annual_return_percent"`
	Contributions               []CashFlow `json:"contributions,omitempty" yaml:"contributions"`
}

// MonthlyValue is one point of a sparse per-month series.
type MonthlyValue struct {
	Month string  `json:"month" yaml:"month"`
	Value float64 `json:"value" yaml:"value"`
}

// Ledger is everything the engine needs for one report.
type Ledger struct {
	AsOf             time.Time            `json:"as_of" yaml:"as_of"`
	CurrentBalance   float64              `json:"current_balance" yaml:"current_balance"`
	Transactions     []Transaction        `json:"transactions" yaml:"transactions"`
	Positions        []InvestmentPosition `json:"positions" yaml:"positions"`
	Balances         []MonthlyValue       `json:"balances" yaml:"balances"`
	InvestmentValues []MonthlyValue       `json:"investment_values" yaml:"investment_values"`
}
