package collector

import (
	"math"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"WealthSentinel/internal/calculator"
	"WealthSentinel/internal/health"
	"WealthSentinel/internal/income"
	"WealthSentinel/internal/model"
	"WealthSentinel/internal/retirement"
)

// Settings are the user assumptions a report is computed under.
type Settings struct {
	ExpectedReturnPercent     float64
	ProjectionYears           int
	EmergencyFundTargetMonths float64
	NWITargets                map[model.Bucket]float64
}

// DefaultSettings mirrors the configuration defaults.
func DefaultSettings() Settings {
	return Settings{
		ExpectedReturnPercent:     10,
		ProjectionYears:           10,
		EmergencyFundTargetMonths: 6,
		NWITargets: map[model.Bucket]float64{
			model.BucketNeeds:       50,
			model.BucketWants:       30,
			model.BucketInvestments: 20,
		},
	}
}

// BuildReport runs every analytic over a ledger.
func BuildReport(ledger *model.Ledger, s Settings) *model.Report {
	asOf := ledger.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	trends := MonthlyTrends(ledger.Transactions)
	w := lastMonths(trends, trendWindow)

	netWorth := ledger.CurrentBalance
	for _, p := range ledger.Positions {
		netWorth += p.CurrentValue
	}
	monthlySavings := w.avgIncome - w.avgExpenses

	months := health.EmergencyFundRatio(ledger.CurrentBalance, w.avgExpenses)
	inputs := model.ScoreInputs{
		SavingsRate:         w.savingsRate(),
		EmergencyFundMonths: months,
		NWIAdherence:        w.nwiAdherence(ledger.Transactions, s.NWITargets),
		InvestmentRate:      w.investmentRate(ledger.Transactions),
	}

	return &model.Report{
		ID:             uuid.NewString(),
		GeneratedAt:    time.Now(),
		AsOf:           asOf,
		NetWorth:       netWorth,
		MonthlySavings: monthlySavings,
		ScoreInputs:    inputs,
		Score:          health.FinancialFreedomScore(inputs),
		Income:         income.DetectIncome(ledger.Transactions),
		Velocity:       health.ExpenseVelocity(trends),
		EmergencyFund: model.EmergencyFundStatus{
			Months:       calculator.Round(months, 2),
			TargetMonths: s.EmergencyFundTargetMonths,
			Funded:       months >= s.EmergencyFundTargetMonths,
		},
		FIRE:        retirement.CalculateFIRE(w.avgExpenses*12, netWorth, monthlySavings, s.ExpectedReturnPercent),
		Growth:      calculator.NetWorthGrowth(netWorth, monthlySavings, s.ExpectedReturnPercent, s.ProjectionYears),
		Positions:   positionPerformance(ledger.Positions, asOf),
		Projections: calculator.InvestmentGrowth(ledger.Positions, float64(s.ProjectionYears)),
		Timeline:    health.NetWorthTimeline(ledger.Balances, ledger.InvestmentValues),
		Trends:      trends,
	}
}

// positionPerformance computes each holding's annualized return, falling back
// to CAGR since the first contribution when XIRR has no solution.
func positionPerformance(positions []model.InvestmentPosition, asOf time.Time) []model.PositionPerformance {
	out := make([]model.PositionPerformance, 0, len(positions))
	for _, p := range positions {
		perf := model.PositionPerformance{
			Name:         p.Name,
			CurrentValue: p.CurrentValue,
			Method:       model.MethodXIRR,
		}
		var earliest time.Time
		for _, c := range p.Contributions {
			perf.Invested += math.Abs(c.Amount)
			if earliest.IsZero() || c.Date.Before(earliest) {
				earliest = c.Date
			}
		}
		if len(p.Contributions) > 0 {
			perf.CAGR = calculator.Round(calculator.CAGR(perf.Invested, p.CurrentValue, earliest, asOf), 2)
		}

		if rate, ok := calculator.InvestmentXIRR(p.Contributions, p.CurrentValue, asOf); ok {
			perf.XIRR = &rate
		} else {
			perf.Method = model.MethodCAGR
			if len(p.Contributions) > 0 {
				log.WithField("position", p.Name).Warn("XIRR did not converge, using CAGR")
			}
		}
		out = append(out, perf)
	}
	return out
}
