package service

import (
	"errors"
	"fmt"
	"math"

	"afford-agent/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// LoanService implements fixed-rate annuity mathematics.
type LoanService struct{}

func NewLoanService() *LoanService {
	return &LoanService{}
}

// MonthlyPayment returns the fixed monthly payment fully amortizing principal
// over termYears at the given annual rate. Degenerate inputs (principal or
// term not positive) return 0.
func (s *LoanService) MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}

	n := float64(termYears * 12)
	if annualRatePercent <= 0 {
		return principal / n
	}

	monthlyRate := (annualRatePercent / 100) / 12
	return principal * (monthlyRate / (1 - math.Pow(1+monthlyRate, -n)))
}

// MaxPrincipalForPayment is the exact algebraic inverse of MonthlyPayment:
// the largest principal a fixed monthly payment budget can amortize. The
// forward formula is linear in principal, so no search is needed.
func (s *LoanService) MaxPrincipalForPayment(payment, annualRatePercent float64, termYears int) float64 {
	if payment <= 0 || termYears <= 0 {
		return 0
	}

	n := float64(termYears * 12)
	if annualRatePercent <= 0 {
		return payment * n
	}

	monthlyRate := (annualRatePercent / 100) / 12
	return payment * (1 - math.Pow(1+monthlyRate, -n)) / monthlyRate
}

// Amortize validates the input and simulates repayment month by month,
// reporting year-end balances alongside payment totals.
func (s *LoanService) Amortize(input domain.LoanInput) (domain.AmortizationResult, error) {

	if input.Principal <= 0 {
		return domain.AmortizationResult{}, errors.New("invalid principal")
	}
	if input.Principal > MaxPrice {
		return domain.AmortizationResult{}, fmt.Errorf("principal exceeds the maximum of %.2f", float64(MaxPrice))
	}
	if input.AnnualRatePercent < 0 {
		return domain.AmortizationResult{}, errors.New("invalid rate")
	}
	if input.AnnualRatePercent > MaxAnnualRatePercent {
		return domain.AmortizationResult{}, fmt.Errorf("rate exceeds the maximum of %.2f%%", float64(MaxAnnualRatePercent))
	}
	if input.TermYears < MinTermYears {
		return domain.AmortizationResult{}, errors.New("invalid term")
	}
	if input.TermYears > MaxTermYears {
		return domain.AmortizationResult{}, fmt.Errorf("term exceeds the maximum of %d years", MaxTermYears)
	}

	payment := s.MonthlyPayment(input.Principal, input.AnnualRatePercent, input.TermYears)
	monthlyRate := (input.AnnualRatePercent / 100) / 12
	months := input.TermYears * 12

	balance := input.Principal
	schedule := []domain.YearBalance{}
	yearInterest := 0.0
	yearPrincipal := 0.0

	for month := 1; month <= months; month++ {
		interest := balance * monthlyRate
		principalPaid := payment - interest
		if principalPaid > balance {
			principalPaid = balance
		}
		if principalPaid < 0 {
			principalPaid = 0
		}
		balance -= principalPaid

		yearInterest += interest
		yearPrincipal += principalPaid

		if month%12 == 0 {
			schedule = append(schedule, domain.YearBalance{
				Year:           month / 12,
				InterestPaid:   roundTo2Decimals(yearInterest),
				PrincipalPaid:  roundTo2Decimals(yearPrincipal),
				ClosingBalance: roundTo2Decimals(balance),
			})
			yearInterest = 0
			yearPrincipal = 0
		}
	}

	total := payment * float64(months)

	return domain.AmortizationResult{
		LoanResult: domain.LoanResult{
			MonthlyPayment: roundTo2Decimals(payment),
			TotalPayment:   roundTo2Decimals(total),
			TotalInterest:  roundTo2Decimals(total - input.Principal),
		},
		Schedule: schedule,
	}, nil
}
