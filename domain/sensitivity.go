package domain

type RateSensitivityInput struct {
	Affordability   AffordabilityInput `json:"affordability"`
	MinRatePercent  float64            `json:"min_rate_percent"`
	MaxRatePercent  float64            `json:"max_rate_percent"`
	RateStepPercent float64            `json:"rate_step_percent"`
}

type RatePoint struct {
	RatePercent        float64 `json:"rate_percent"`
	MaxPrice           float64 `json:"max_price"`
	MortgageAffordable float64 `json:"mortgage_affordable"`
	MonthlyPayment     float64 `json:"monthly_payment"`
}

type RateSensitivityResult struct {
	Points []RatePoint `json:"points"`
}
