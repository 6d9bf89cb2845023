package domain

// SalaryProjectionInput asks: given a target price, what gross annual salary
// is needed to afford it?
type SalaryProjectionInput struct {
	Mode                  string  `json:"mode"` // "house" or "car"
	Price                 float64 `json:"price"`
	DepositPercent        float64 `json:"deposit_percent"`
	DepositAmount         float64 `json:"deposit_amount"` // overrides percent when > 0
	AnnualRatePercent     float64 `json:"annual_rate_percent"`
	TermYears             int     `json:"term_years"`
	RecurringMonthlyCosts float64 `json:"recurring_monthly_costs"`
	LTIMultiple           float64 `json:"lti_multiple"`
	IncludeTransferTax    bool    `json:"include_transfer_tax"`
	MaintenancePercent    float64 `json:"maintenance_percent"`
	ArrangementFee        float64 `json:"arrangement_fee"`
	StressRateShift       float64 `json:"stress_rate_shift"`
}

type SalaryProjectionResult struct {
	RequiredGross        float64 `json:"required_gross"`
	GrossByLTI           float64 `json:"gross_by_lti"`
	GrossByAffordability float64 `json:"gross_by_affordability"`
	RequiredNetMonthly   float64 `json:"required_net_monthly"`
	IncomeTax            float64 `json:"income_tax"`
	NIC                  float64 `json:"nic"`
	Deposit              float64 `json:"deposit"`
	LoanAmount           float64 `json:"loan_amount"`
	MonthlyPayment       float64 `json:"monthly_payment"`
	StressedPayment      float64 `json:"stressed_payment"`
	TransferTax          float64 `json:"transfer_tax"`
	AnnualMaintenance    float64 `json:"annual_maintenance"`
	UpfrontCost          float64 `json:"upfront_cost"`
	DisposableMonthly    float64 `json:"disposable_monthly"`
	Saturated            bool    `json:"saturated,omitempty"`
}

// AffordabilityInput asks: given a take-home salary and outgoings, what is
// the maximum affordable price?
type AffordabilityInput struct {
	Mode                  string  `json:"mode"`
	NetMonthlySalary      float64 `json:"net_monthly_salary"`
	RecurringMonthlyCosts float64 `json:"recurring_monthly_costs"`
	DepositPercent        float64 `json:"deposit_percent"`
	DepositAmount         float64 `json:"deposit_amount"` // overrides percent when > 0
	AnnualRatePercent     float64 `json:"annual_rate_percent"`
	TermYears             int     `json:"term_years"`
	LTIMultiple           float64 `json:"lti_multiple"`
	IncludeTransferTax    bool    `json:"include_transfer_tax"`
	MaintenancePercent    float64 `json:"maintenance_percent"`
	ArrangementFee        float64 `json:"arrangement_fee"`
	StressRateShift       float64 `json:"stress_rate_shift"`
}

type AffordabilityResult struct {
	MaxPrice           float64 `json:"max_price"`
	MortgageAffordable float64 `json:"mortgage_affordable"`
	MortgageByLTI      float64 `json:"mortgage_by_lti"`
	MortgageByPayment  float64 `json:"mortgage_by_payment"`
	GrossAnnual        float64 `json:"gross_annual"`
	NetAnnual          float64 `json:"net_annual"`
	IncomeTax          float64 `json:"income_tax"`
	NIC                float64 `json:"nic"`
	AvailableMonthly   float64 `json:"available_monthly"`
	Deposit            float64 `json:"deposit"`
	MonthlyPayment     float64 `json:"monthly_payment"`
	StressedPayment    float64 `json:"stressed_payment"`
	TransferTax        float64 `json:"transfer_tax"`
	AnnualMaintenance  float64 `json:"annual_maintenance"`
	UpfrontCost        float64 `json:"upfront_cost"`
	DisposableMonthly  float64 `json:"disposable_monthly"`
	// DepositOnlyPrice is set when deposit percent is 100 and the price
	// falls back to the mortgage-only value.
	DepositOnlyPrice bool `json:"deposit_only_price,omitempty"`
	Saturated        bool `json:"saturated,omitempty"`
}
