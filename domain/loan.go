package domain

type LoanInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         int     `json:"term_years"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// YearBalance is one year of an amortization schedule.
type YearBalance struct {
	Year           int     `json:"year"`
	InterestPaid   float64 `json:"interest_paid"`
	PrincipalPaid  float64 `json:"principal_paid"`
	ClosingBalance float64 `json:"closing_balance"`
}

type AmortizationResult struct {
	LoanResult
	Schedule []YearBalance `json:"schedule"`
}
