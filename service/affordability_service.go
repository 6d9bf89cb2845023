package service

import (
	"errors"
	"fmt"
	"math"

	"afford-agent/domain"
)

// AffordabilityService answers the two top-level queries: the gross salary
// required for a target price, and the maximum price affordable on a given
// take-home salary.
type AffordabilityService struct {
	salary *SalaryService
	loan   *LoanService
	tax    *TaxService
}

func NewAffordabilityService(
	salary *SalaryService,
	loan *LoanService,
	tax *TaxService,
) *AffordabilityService {
	return &AffordabilityService{salary: salary, loan: loan, tax: tax}
}

var validModes = map[string]bool{
	"house": true,
	"car":   true,
}

// validatePurchaseTerms checks the fields shared by both queries.
func validatePurchaseTerms(
	mode string,
	annualRatePercent float64,
	termYears int,
	ltiMultiple float64,
	depositPercent float64,
	depositAmount float64,
	recurringMonthlyCosts float64,
	maintenancePercent float64,
	arrangementFee float64,
	stressRateShift float64,
) error {
	if !validModes[mode] {
		return errors.New("invalid mode")
	}
	if annualRatePercent < 0 {
		return errors.New("invalid rate")
	}
	if annualRatePercent > MaxAnnualRatePercent {
		return fmt.Errorf("rate exceeds the maximum of %.2f%%", float64(MaxAnnualRatePercent))
	}
	if termYears < MinTermYears {
		return errors.New("invalid term")
	}
	if termYears > MaxTermYears {
		return fmt.Errorf("term exceeds the maximum of %d years", MaxTermYears)
	}
	if ltiMultiple < MinLTIMultiple || ltiMultiple > MaxLTIMultiple {
		return fmt.Errorf("LTI multiple must be between %.1f and %.1f", float64(MinLTIMultiple), float64(MaxLTIMultiple))
	}
	if depositPercent < 0 || depositPercent > MaxDepositPercent {
		return errors.New("invalid deposit percent")
	}
	if depositAmount < 0 {
		return errors.New("invalid deposit amount")
	}
	if recurringMonthlyCosts < 0 {
		return errors.New("invalid recurring monthly costs")
	}
	if recurringMonthlyCosts > MaxMonthlyCosts {
		return fmt.Errorf("recurring monthly costs exceed the maximum of %.2f", float64(MaxMonthlyCosts))
	}
	if maintenancePercent < 0 || maintenancePercent > MaxMaintenancePct {
		return errors.New("invalid maintenance percent")
	}
	if arrangementFee < 0 {
		return errors.New("invalid arrangement fee")
	}
	if stressRateShift < 0 || stressRateShift > MaxStressRateShift {
		return errors.New("invalid stress rate shift")
	}
	return nil
}

// RequiredGrossSalary computes the gross annual salary needed to afford a
// target price. Two independent estimates are produced; the binding
// constraint is whichever requires more income, so the maximum is returned.
func (s *AffordabilityService) RequiredGrossSalary(
	input domain.SalaryProjectionInput,
) (domain.SalaryProjectionResult, error) {

	if input.Price <= 0 {
		return domain.SalaryProjectionResult{}, errors.New("invalid price")
	}
	if input.Price > MaxPrice {
		return domain.SalaryProjectionResult{}, fmt.Errorf("price exceeds the maximum of %.2f", float64(MaxPrice))
	}
	if err := validatePurchaseTerms(
		input.Mode,
		input.AnnualRatePercent,
		input.TermYears,
		input.LTIMultiple,
		input.DepositPercent,
		input.DepositAmount,
		input.RecurringMonthlyCosts,
		input.MaintenancePercent,
		input.ArrangementFee,
		input.StressRateShift,
	); err != nil {
		return domain.SalaryProjectionResult{}, err
	}

	// Explicit deposit amount overrides the percentage.
	deposit := input.DepositAmount
	if deposit <= 0 {
		deposit = input.Price * input.DepositPercent / 100
	}
	if deposit > input.Price {
		deposit = input.Price
	}
	loanAmount := input.Price - deposit

	monthlyPayment := s.loan.MonthlyPayment(loanAmount, input.AnnualRatePercent, input.TermYears)
	stressedPayment := s.loan.MonthlyPayment(loanAmount, input.AnnualRatePercent+input.StressRateShift, input.TermYears)

	grossByLTI := loanAmount / input.LTIMultiple

	requiredNetMonthly := monthlyPayment + input.RecurringMonthlyCosts
	conversion := s.salary.NetToGross(12 * requiredNetMonthly)

	requiredGross := math.Max(grossByLTI, conversion.Gross)
	atRequired := s.salary.GrossToNet(requiredGross)

	var transferTax float64
	if input.IncludeTransferTax && input.Mode == "house" {
		transferTax = s.tax.TransferTax(input.Price)
	}
	annualMaintenance := input.Price * input.MaintenancePercent / 100

	disposable := atRequired.Net/12 - (monthlyPayment + input.RecurringMonthlyCosts + annualMaintenance/12)
	if disposable < 0 {
		disposable = 0
	}

	return domain.SalaryProjectionResult{
		RequiredGross:        roundTo2Decimals(requiredGross),
		GrossByLTI:           roundTo2Decimals(grossByLTI),
		GrossByAffordability: roundTo2Decimals(conversion.Gross),
		RequiredNetMonthly:   roundTo2Decimals(requiredNetMonthly),
		IncomeTax:            roundTo2Decimals(atRequired.IncomeTax),
		NIC:                  roundTo2Decimals(atRequired.NIC),
		Deposit:              roundTo2Decimals(deposit),
		LoanAmount:           roundTo2Decimals(loanAmount),
		MonthlyPayment:       roundTo2Decimals(monthlyPayment),
		StressedPayment:      roundTo2Decimals(stressedPayment),
		TransferTax:          roundTo2Decimals(transferTax),
		AnnualMaintenance:    roundTo2Decimals(annualMaintenance),
		UpfrontCost:          roundTo2Decimals(deposit + input.ArrangementFee + transferTax),
		DisposableMonthly:    roundTo2Decimals(disposable),
		Saturated:            conversion.Saturated,
	}, nil
}

// MaxAffordablePrice computes the maximum price affordable on a take-home
// salary. The mortgage is capped by both the LTI multiple and payment
// capacity; the binding constraint is the tighter one, so the minimum is
// taken.
func (s *AffordabilityService) MaxAffordablePrice(
	input domain.AffordabilityInput,
) (domain.AffordabilityResult, error) {

	if input.NetMonthlySalary <= 0 {
		return domain.AffordabilityResult{}, errors.New("invalid net monthly salary")
	}
	if input.NetMonthlySalary > MaxMonthlyCosts {
		return domain.AffordabilityResult{}, fmt.Errorf("net monthly salary exceeds the maximum of %.2f", float64(MaxMonthlyCosts))
	}
	if err := validatePurchaseTerms(
		input.Mode,
		input.AnnualRatePercent,
		input.TermYears,
		input.LTIMultiple,
		input.DepositPercent,
		input.DepositAmount,
		input.RecurringMonthlyCosts,
		input.MaintenancePercent,
		input.ArrangementFee,
		input.StressRateShift,
	); err != nil {
		return domain.AffordabilityResult{}, err
	}

	conversion := s.salary.NetToGross(12 * input.NetMonthlySalary)
	mortgageByLTI := conversion.Gross * input.LTIMultiple

	availableMonthly := input.NetMonthlySalary - input.RecurringMonthlyCosts
	if availableMonthly < 0 {
		availableMonthly = 0
	}
	mortgageByPayment := s.loan.MaxPrincipalForPayment(availableMonthly, input.AnnualRatePercent, input.TermYears)

	mortgageAffordable := math.Min(mortgageByLTI, mortgageByPayment)

	var price float64
	depositOnly := false
	switch {
	case input.DepositAmount > 0:
		// Explicit deposit amount: the price is simply mortgage + deposit.
		price = mortgageAffordable + input.DepositAmount
	case input.DepositPercent >= 100:
		// Degenerate: a 100% deposit makes the percentage formula undefined.
		// Fall back to the mortgage-only value rather than divide by zero.
		price = mortgageAffordable
		depositOnly = true
	default:
		price = mortgageAffordable / (1 - input.DepositPercent/100)
	}

	deposit := price - mortgageAffordable

	monthlyPayment := s.loan.MonthlyPayment(mortgageAffordable, input.AnnualRatePercent, input.TermYears)
	stressedPayment := s.loan.MonthlyPayment(mortgageAffordable, input.AnnualRatePercent+input.StressRateShift, input.TermYears)

	var transferTax float64
	if input.IncludeTransferTax && input.Mode == "house" {
		transferTax = s.tax.TransferTax(price)
	}
	annualMaintenance := price * input.MaintenancePercent / 100

	disposable := conversion.Net/12 - (monthlyPayment + input.RecurringMonthlyCosts + annualMaintenance/12)
	if disposable < 0 {
		disposable = 0
	}

	return domain.AffordabilityResult{
		MaxPrice:           roundTo2Decimals(price),
		MortgageAffordable: roundTo2Decimals(mortgageAffordable),
		MortgageByLTI:      roundTo2Decimals(mortgageByLTI),
		MortgageByPayment:  roundTo2Decimals(mortgageByPayment),
		GrossAnnual:        roundTo2Decimals(conversion.Gross),
		NetAnnual:          roundTo2Decimals(conversion.Net),
		IncomeTax:          roundTo2Decimals(conversion.IncomeTax),
		NIC:                roundTo2Decimals(conversion.NIC),
		AvailableMonthly:   roundTo2Decimals(availableMonthly),
		Deposit:            roundTo2Decimals(deposit),
		MonthlyPayment:     roundTo2Decimals(monthlyPayment),
		StressedPayment:    roundTo2Decimals(stressedPayment),
		TransferTax:        roundTo2Decimals(transferTax),
		AnnualMaintenance:  roundTo2Decimals(annualMaintenance),
		UpfrontCost:        roundTo2Decimals(deposit + input.ArrangementFee + transferTax),
		DisposableMonthly:  roundTo2Decimals(disposable),
		DepositOnlyPrice:   depositOnly,
		Saturated:          conversion.Saturated,
	}, nil
}
