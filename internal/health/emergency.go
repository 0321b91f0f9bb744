package health

// EmergencyFundRatio returns how many months of expenses the balance covers.
// Returns 0 when the average monthly expense is not positive.
func EmergencyFundRatio(balance, avgMonthlyExpense float64) float64 {
	if avgMonthlyExpense <= 0 {
		return 0
	}
	return balance / avgMonthlyExpense
}
