package notifier

import (
	"fmt"
	"strings"
	"time"

	"WealthSentinel/internal/model"
	"WealthSentinel/internal/retirement"
)

var trendIcon = map[model.Trend]string{
	model.TrendIncreasing: "📈",
	model.TrendDecreasing: "📉",
	model.TrendStable:     "➖",
}

// FormatReport formats a monthly report into a chat message.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>WealthSentinel report</b> | %s\n\n", r.AsOf.Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Net worth: %.2f\n", r.NetWorth))
	b.WriteString(fmt.Sprintf("Monthly savings: %+.2f\n", r.MonthlySavings))
	b.WriteString(fmt.Sprintf("Emergency fund: %.1f / %.1f months", r.EmergencyFund.Months, r.EmergencyFund.TargetMonths))
	if r.EmergencyFund.Funded {
		b.WriteString(" ✅")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Expenses: %s %s (%+.1f%%)\n\n",
		trendIcon[r.Velocity.Trend], r.Velocity.Trend, r.Velocity.ChangePercent))

	// Income
	b.WriteString("💼 <b>Income</b>\n")
	b.WriteString(fmt.Sprintf("  Average: %.2f / month\n", r.Income.AvgMonthlyIncome))
	b.WriteString(fmt.Sprintf("  Stability: %.2f", r.Income.IncomeStability))
	if r.Income.IsVariable {
		b.WriteString(" (variable)")
	}
	b.WriteString("\n\n")

	b.WriteString(FormatScore(r.Score))
	b.WriteString("\n")
	b.WriteString(FormatFIRE(r.FIRE))

	if len(r.Positions) > 0 {
		b.WriteString("\n📦 <b>Positions</b>\n")
		for _, p := range r.Positions {
			rate := p.CAGR
			if p.XIRR != nil {
				rate = *p.XIRR
			}
			b.WriteString(fmt.Sprintf("  %s: %.2f (%s %+.2f%%)\n", p.Name, p.CurrentValue, strings.ToUpper(string(p.Method)), rate))
		}
	}
	return b.String()
}

// FormatScore formats the financial freedom score with its breakdown.
func FormatScore(s model.FreedomScore) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏅 <b>Freedom score: %.0f/100</b>\n", s.Score))
	b.WriteString(fmt.Sprintf("  Savings rate: %.0f/25\n", s.Breakdown.SavingsRate))
	b.WriteString(fmt.Sprintf("  Emergency fund: %.0f/25\n", s.Breakdown.EmergencyFund))
	b.WriteString(fmt.Sprintf("  NWI adherence: %.0f/25\n", s.Breakdown.NWIAdherence))
	b.WriteString(fmt.Sprintf("  Investment rate: %.0f/25\n", s.Breakdown.InvestmentRate))
	return b.String()
}

// FormatFIRE formats financial independence progress.
func FormatFIRE(f model.FIREResult) string {
	var b strings.Builder
	b.WriteString("🔥 <b>FIRE</b>\n")
	b.WriteString(fmt.Sprintf("  Target: %.0f (%.0f × annual expenses)\n", f.FIRENumber, float64(retirement.FIREMultiplier)))
	b.WriteString(fmt.Sprintf("  Progress: %.2f%%\n", f.ProgressPercent))
	switch {
	case f.YearsToFIRE == 0:
		b.WriteString("  Financially independent ✅\n")
	case f.YearsToFIRE >= retirement.MaxYearsToFIRE:
		b.WriteString("  Not reachable at the current savings rate ⚠️\n")
	default:
		b.WriteString(fmt.Sprintf("  Years to go: %d\n", f.YearsToFIRE))
	}
	if f.MonthlyRequired > 0 {
		b.WriteString(fmt.Sprintf("  Needed for %d years: %.2f / month\n", retirement.RequiredSavingsHorizonYears, f.MonthlyRequired))
	}
	return b.String()
}

// FormatAlerts formats the daily check result.
func FormatAlerts(alerts []model.Alert) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🚨 <b>Health check</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, a := range alerts {
		b.WriteString(fmt.Sprintf("• <code>%s</code> %s\n", a.Kind, a.Message))
	}
	return b.String()
}

// FormatHistory formats recorded score history, oldest first.
func FormatHistory(points []model.ScorePoint) string {
	if len(points) == 0 {
		return "No reports recorded yet."
	}
	var b strings.Builder
	b.WriteString("🗂 <b>Score history</b>\n\n")
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%s  %3.0f  NW %.0f  FIRE %.1f%%\n",
			p.RecordedAt.Format("2006-01-02"), p.Score, p.NetWorth, p.ProgressPercent))
	}
	return b.String()
}
