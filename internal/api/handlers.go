package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"WealthSentinel/internal/calculator"
	"WealthSentinel/internal/collector"
	"WealthSentinel/internal/health"
	"WealthSentinel/internal/income"
	"WealthSentinel/internal/model"
	"WealthSentinel/internal/retirement"
)

const (
	defaultHistoryLimit = 12
	maxHistoryLimit     = 120
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.Collector.Collect(r.Context())
	if err != nil {
		log.WithError(err).Error("collect report")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleBuildReport(w http.ResponseWriter, r *http.Request) {
	var ledger model.Ledger
	if !decode(w, r, &ledger) {
		return
	}
	writeJSON(w, http.StatusOK, collector.BuildReport(&ledger, s.Collector.Settings))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	points, err := s.Recorder.ScoreHistory(limit)
	if err != nil {
		log.WithError(err).Error("score history")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if points == nil {
		points = []model.ScorePoint{}
	}
	writeJSON(w, http.StatusOK, points)
}

type xirrRequest struct {
	CashFlows     []model.CashFlow `json:"cash_flows"`
	Guess         *float64         `json:"guess"`
	Tolerance     *float64         `json:"tolerance"`
	MaxIterations *int             `json:"max_iterations"`
}

func (s *Server) handleXIRR(w http.ResponseWriter, r *http.Request) {
	req := xirrRequest{}
	if !decode(w, r, &req) {
		return
	}
	guess, tol, iter := calculator.DefaultGuess, calculator.DefaultTolerance, calculator.DefaultMaxIterations
	if req.Guess != nil {
		guess = *req.Guess
	}
	if req.Tolerance != nil {
		tol = *req.Tolerance
	}
	if req.MaxIterations != nil {
		iter = *req.MaxIterations
	}

	resp := struct {
		Rate *float64 `json:"rate"`
	}{}
	if rate, ok := calculator.CalculateXIRR(req.CashFlows, guess, tol, iter); ok {
		resp.Rate = &rate
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleInvestmentXIRR(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Investments  []model.CashFlow `json:"investments"`
		CurrentValue float64          `json:"current_value"`
		CurrentDate  *time.Time       `json:"current_date"`
	}
	if !decode(w, r, &req) {
		return
	}
	var date time.Time
	if req.CurrentDate != nil {
		date = *req.CurrentDate
	}

	resp := struct {
		Percent *float64 `json:"percent"`
	}{}
	if pct, ok := calculator.InvestmentXIRR(req.Investments, req.CurrentValue, date); ok {
		resp.Percent = &pct
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCAGR(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Invested     float64    `json:"invested"`
		CurrentValue float64    `json:"current_value"`
		StartDate    time.Time  `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
	}
	if !decode(w, r, &req) {
		return
	}
	var end time.Time
	if req.EndDate != nil {
		end = *req.EndDate
	}
	writeJSON(w, http.StatusOK, map[string]float64{
		"percent": calculator.CAGR(req.Invested, req.CurrentValue, req.StartDate, end),
	})
}

func (s *Server) handleSIP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MonthlyAmount       float64 `json:"monthly_amount"`
		AnnualReturnPercent float64 `json:"annual_return_percent"`
		Years               float64 `json:"years"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{
		"future_value": calculator.SIPFutureValue(req.MonthlyAmount, req.AnnualReturnPercent, req.Years),
	})
}

func (s *Server) handleGrowth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentNetWorth float64                    `json:"current_net_worth"`
		MonthlySavings  float64                    `json:"monthly_savings"`
		ReturnPercent   float64                    `json:"return_percent"`
		Years           int                        `json:"years"`
		Positions       []model.InvestmentPosition `json:"positions"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Years > calculator.MaxProjectionYears {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("years must be at most %d", calculator.MaxProjectionYears))
		return
	}
	writeJSON(w, http.StatusOK, struct {
		NetWorth    []model.GrowthPoint          `json:"net_worth"`
		Investments []model.InvestmentProjection `json:"investments"`
	}{
		NetWorth:    calculator.NetWorthGrowth(req.CurrentNetWorth, req.MonthlySavings, req.ReturnPercent, req.Years),
		Investments: calculator.InvestmentGrowth(req.Positions, float64(req.Years)),
	})
}

func (s *Server) handleFIRE(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AnnualExpenses        float64 `json:"annual_expenses"`
		CurrentNetWorth       float64 `json:"current_net_worth"`
		MonthlySavings        float64 `json:"monthly_savings"`
		ExpectedReturnPercent float64 `json:"expected_return_percent"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, retirement.CalculateFIRE(
		req.AnnualExpenses, req.CurrentNetWorth, req.MonthlySavings, req.ExpectedReturnPercent))
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var in model.ScoreInputs
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, health.FinancialFreedomScore(in))
}

func (s *Server) handleEmergency(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Balance           float64 `json:"balance"`
		AvgMonthlyExpense float64 `json:"avg_monthly_expense"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{
		"months": health.EmergencyFundRatio(req.Balance, req.AvgMonthlyExpense),
	})
}

func (s *Server) handleVelocity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Trends []model.MonthlyTrend `json:"trends"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, health.ExpenseVelocity(req.Trends))
}

func (s *Server) handleIncome(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, income.DetectIncome(req.Transactions))
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Balances    []model.MonthlyValue `json:"balances"`
		Investments []model.MonthlyValue `json:"investments"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, health.NetWorthTimeline(req.Balances, req.Investments))
}
