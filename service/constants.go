package service

const (
	MaxPrice             = 100_000_000.0 // 100 million
	MaxAnnualRatePercent = 100.0
	MaxTermYears         = 40
	MinTermYears         = 1
	MinLTIMultiple       = 1.0
	MaxLTIMultiple       = 10.0
	MaxMonthlyCosts      = 1_000_000.0
	MaxDepositPercent    = 100.0
	MaxMaintenancePct    = 10.0
	MaxStressRateShift   = 20.0

	// Bisection for the net→gross inversion. 60 halvings over a bound of a
	// few million converge far below a penny.
	BisectionIterations     = 60
	DefaultGrossSearchBound = 2_000_000.0

	// Cap on rate sweep size to avoid costly requests
	MaxRateSweepPoints = 200
)
