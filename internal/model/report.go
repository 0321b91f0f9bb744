package model

import "time"

// PerformanceMethod names how a position's annualized return was obtained.
type PerformanceMethod string

const (
	MethodXIRR PerformanceMethod = "xirr"
	MethodCAGR PerformanceMethod = "cagr"
)

// PositionPerformance is the realised annualized return of one holding.
type PositionPerformance struct {
	Name         string            `json:"name"`
	Invested     float64           `json:"invested"`
	CurrentValue float64           `json:"current_value"`
	XIRR         *float64          `json:"xirr"` // percent, nil when the solver found no rate
	CAGR         float64           `json:"cagr"` // percent
	Method       PerformanceMethod `json:"method"`
}

// EmergencyFundStatus compares months of expenses covered against the target.
type EmergencyFundStatus struct {
	Months       float64 `json:"months"`
	TargetMonths float64 `json:"target_months"`
	Funded       bool    `json:"funded"`
}

// Report is the full analytics output for one ledger.
type Report struct {
	ID             string                 `json:"id"`
	GeneratedAt    time.Time              `json:"generated_at"`
	AsOf           time.Time              `json:"as_of"`
	NetWorth       float64                `json:"net_worth"`
	MonthlySavings float64                `json:"monthly_savings"`
	ScoreInputs    ScoreInputs            `json:"score_inputs"`
	Score          FreedomScore           `json:"score"`
	Income         IncomeProfile          `json:"income"`
	Velocity       ExpenseVelocity        `json:"expense_velocity"`
	EmergencyFund  EmergencyFundStatus    `json:"emergency_fund"`
	FIRE           FIREResult             `json:"fire"`
	Growth         []GrowthPoint          `json:"growth"`
	Positions      []PositionPerformance  `json:"positions"`
	Projections    []InvestmentProjection `json:"projections"`
	Timeline       []NetWorthPoint        `json:"timeline"`
	Trends         []MonthlyTrend         `json:"trends"`
}

// AlertKind identifies a condition worth notifying about.
type AlertKind string

const (
	AlertEmergencyFundLow AlertKind = "EMERGENCY_FUND_LOW"
	AlertExpensesRising   AlertKind = "EXPENSES_RISING"
	AlertIncomeVariable   AlertKind = "INCOME_VARIABLE"
	AlertNegativeSavings  AlertKind = "NEGATIVE_SAVINGS"
)

// Alert is a single condition raised by the daily check.
type Alert struct {
	Kind     AlertKind `json:"kind"`
	Message  string    `json:"message"`
	ReportID string    `json:"report_id"`
}

// ScorePoint is one historical report summary.
type ScorePoint struct {
	ReportID        string    `json:"report_id"`
	RecordedAt      time.Time `json:"recorded_at"`
	Score           float64   `json:"score"`
	NetWorth        float64   `json:"net_worth"`
	ProgressPercent float64   `json:"progress_percent"`
}
