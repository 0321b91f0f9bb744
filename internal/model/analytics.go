package model

// Trend classifies the direction of recent expenses.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// MonthlyTrend holds income and expense totals for one YYYY-MM month.
type MonthlyTrend struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// ExpenseVelocity compares the newer half of recent months against the older half.
type ExpenseVelocity struct {
	CurrentAvg    float64 `json:"current_avg"`
	PreviousAvg   float64 `json:"previous_avg"`
	ChangePercent float64 `json:"change_percent"`
	Trend         Trend   `json:"trend"`
}

// GrowthPoint is one year of a net-worth projection.
type GrowthPoint struct {
	Year      int     `json:"year"`
	Invested  float64 `json:"invested"`  // no-growth baseline
	Projected float64 `json:"projected"` // compounded
}

// InvestmentProjection is the projected value of one position at fixed horizons.
type InvestmentProjection struct {
	Name             string  `json:"name"`
	Current          float64 `json:"current"`
	Projected3y      float64 `json:"projected_3y"`
	Projected5y      float64 `json:"projected_5y"`
	Projected10y     float64 `json:"projected_10y"`
	HorizonYears     float64 `json:"horizon_years"`
	ProjectedHorizon float64 `json:"projected_horizon"`
}

// FIRESeriesPoint is one row of the FIRE chart overlay.
type FIRESeriesPoint struct {
	Year       int     `json:"year"`
	NetWorth   float64 `json:"net_worth"`
	FIRETarget float64 `json:"fire_target"`
}

// FIREResult is the financial-independence feasibility of a household.
type FIREResult struct {
	FIRENumber       float64           `json:"fire_number"`
	AnnualExpenses   float64           `json:"annual_expenses"`
	CurrentNetWorth  float64           `json:"current_net_worth"`
	ProgressPercent  float64           `json:"progress_percent"`
	YearsToFIRE      int               `json:"years_to_fire"` // 0 if already met, 100 means not reachable
	MonthlyRequired  float64           `json:"monthly_required"`
	ProjectionSeries []FIRESeriesPoint `json:"projection_series"`
}

// NetWorthPoint is one month of the merged net-worth timeline.
type NetWorthPoint struct {
	Month           string  `json:"month"`
	BankBalance     float64 `json:"bank_balance"`
	InvestmentValue float64 `json:"investment_value"`
	TotalNetWorth   float64 `json:"total_net_worth"`
}

// IncomeProfile describes how much and how regularly income arrives.
type IncomeProfile struct {
	AvgMonthlyIncome float64 `json:"avg_monthly_income"`
	IncomeStability  float64 `json:"income_stability"` // 0..1
	IsVariable       bool    `json:"is_variable"`
	LastIncomeDate   *string `json:"last_income_date"` // YYYY-MM-DD, nil when unknown
}

// ScoreInputs are the four raw measures behind the financial freedom score.
type ScoreInputs struct {
	SavingsRate         float64 `json:"savings_rate"`          // percent
	EmergencyFundMonths float64 `json:"emergency_fund_months"` // months of expenses
	NWIAdherence        float64 `json:"nwi_adherence"`         // 0..100
	InvestmentRate      float64 `json:"investment_rate"`       // percent
}

// HealthScoreBreakdown holds the four sub-scores, each capped at 25.
type HealthScoreBreakdown struct {
	SavingsRate    float64 `json:"savings_rate"`
	EmergencyFund  float64 `json:"emergency_fund"`
	NWIAdherence   float64 `json:"nwi_adherence"`
	InvestmentRate float64 `json:"investment_rate"`
}

// FreedomScore is the 0-100 composite financial freedom score.
type FreedomScore struct {
	Score     float64              `json:"score"`
	Breakdown HealthScoreBreakdown `json:"breakdown"`
}
