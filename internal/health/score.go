// Package health scores the financial health of a household.
package health

import (
	"math"

	"WealthSentinel/internal/model"
)

// MaxBucketScore caps each of the four sub-scores.
const MaxBucketScore = 25.0

// FinancialFreedomScore sums four independently capped sub-scores into a
// 0-100 composite.
func FinancialFreedomScore(in model.ScoreInputs) model.FreedomScore {
	b := model.HealthScoreBreakdown{
		SavingsRate:    scoreSavingsRate(in.SavingsRate),
		EmergencyFund:  scoreEmergencyFund(in.EmergencyFundMonths),
		NWIAdherence:   scoreNWIAdherence(in.NWIAdherence),
		InvestmentRate: scoreInvestmentRate(in.InvestmentRate),
	}
	return model.FreedomScore{
		Score:     b.SavingsRate + b.EmergencyFund + b.NWIAdherence + b.InvestmentRate,
		Breakdown: b,
	}
}

// scoreSavingsRate scores the share of income kept, in percent.
func scoreSavingsRate(rate float64) float64 {
	switch {
	case rate > 30:
		return 25
	case rate > 20:
		return 20
	case rate > 10:
		return 15
	case rate > 0:
		return 10
	default:
		return 0
	}
}

// scoreEmergencyFund scores months of expenses covered by cash.
func scoreEmergencyFund(months float64) float64 {
	switch {
	case months > 6:
		return 25
	case months > 3:
		return 20
	case months > 1:
		return 10
	default:
		return 0
	}
}

// scoreNWIAdherence scales a 0-100 adherence linearly onto 0-25.
func scoreNWIAdherence(adherence float64) float64 {
	if math.IsNaN(adherence) {
		return 0
	}
	return math.Min(MaxBucketScore, math.Max(0, adherence/4))
}

// scoreInvestmentRate scores the share of income invested, in percent.
func scoreInvestmentRate(rate float64) float64 {
	switch {
	case rate > 20:
		return 25
	case rate > 15:
		return 20
	case rate > 10:
		return 15
	case rate > 5:
		return 10
	case rate > 0:
		return 5
	default:
		return 0
	}
}
