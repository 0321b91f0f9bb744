package collector

import (
	"fmt"

	"WealthSentinel/internal/model"
)

// Alerts derives the conditions worth notifying about from a report.
func Alerts(r *model.Report, s Settings) []model.Alert {
	var alerts []model.Alert
	add := func(kind model.AlertKind, msg string) {
		alerts = append(alerts, model.Alert{Kind: kind, Message: msg, ReportID: r.ID})
	}

	if r.EmergencyFund.Months < s.EmergencyFundTargetMonths {
		add(model.AlertEmergencyFundLow, fmt.Sprintf(
			"Emergency fund covers %.1f months, target is %.1f", r.EmergencyFund.Months, s.EmergencyFundTargetMonths))
	}
	if r.Velocity.Trend == model.TrendIncreasing {
		add(model.AlertExpensesRising, fmt.Sprintf(
			"Expenses up %.1f%% versus the previous months", r.Velocity.ChangePercent))
	}
	if r.Income.IsVariable {
		add(model.AlertIncomeVariable, fmt.Sprintf(
			"Income stability is %.2f, keep a larger buffer", r.Income.IncomeStability))
	}
	if r.MonthlySavings < 0 {
		add(model.AlertNegativeSavings, fmt.Sprintf(
			"Spending exceeds income by %.2f per month", -r.MonthlySavings))
	}
	return alerts
}
