package domain

import "time"

// Scenario is a saved computation, kept for side-by-side comparison.
// Either RequiredGross (salary projection) or MaxPrice (affordability)
// is populated depending on Type.
type Scenario struct {
	Type              string    `json:"type"` // "salary_projection" or "affordability"
	Mode              string    `json:"mode"`
	SavedAt           time.Time `json:"saved_at"`
	Price             float64   `json:"price,omitempty"`
	NetMonthlySalary  float64   `json:"net_monthly_salary,omitempty"`
	DepositPercent    float64   `json:"deposit_percent"`
	DepositAmount     float64   `json:"deposit_amount"`
	AnnualRatePercent float64   `json:"annual_rate_percent"`
	TermYears         int       `json:"term_years"`
	MonthlyPayment    float64   `json:"monthly_payment"`
	RequiredGross     float64   `json:"required_gross,omitempty"`
	MaxPrice          float64   `json:"max_price,omitempty"`
	TransferTax       float64   `json:"transfer_tax,omitempty"`
}
