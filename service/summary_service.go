package service

import (
	"fmt"
	"strings"

	"afford-agent/domain"
)

// SummaryService renders a result as a plain-text breakdown for display.
// Output is deterministic; the presentation layer attaches it verbatim.
type SummaryService struct{}

func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

func (s *SummaryService) SalaryProjectionSummary(
	input domain.SalaryProjectionInput,
	result domain.SalaryProjectionResult,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Required gross annual salary (conservative): £%.0f\n", result.RequiredGross)
	fmt.Fprintf(&b, "- By loan-to-income (LTI %.1fx): £%.0f\n", input.LTIMultiple, result.GrossByLTI)
	fmt.Fprintf(&b, "- By affordability (tax + NIC): £%.0f\n", result.GrossByAffordability)
	fmt.Fprintf(&b, "- Required net monthly to cover loan + costs: £%.0f\n", result.RequiredNetMonthly)
	fmt.Fprintf(&b, "- Estimated monthly payment: £%.0f (stress: £%.0f)\n", result.MonthlyPayment, result.StressedPayment)
	if result.TransferTax > 0 {
		fmt.Fprintf(&b, "- Transfer tax estimate: £%.0f\n", result.TransferTax)
	}
	if result.AnnualMaintenance > 0 {
		fmt.Fprintf(&b, "- Annual maintenance estimate: £%.0f (%.1f%% pa)\n", result.AnnualMaintenance, input.MaintenancePercent)
	}
	if result.Saturated {
		b.WriteString("- Note: required salary exceeds the search bound; figures are clamped approximations\n")
	}

	return b.String()
}

func (s *SummaryService) AffordabilitySummary(
	input domain.AffordabilityInput,
	result domain.AffordabilityResult,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Maximum affordable price (conservative): £%.0f\n", result.MaxPrice)
	fmt.Fprintf(&b, "- Max mortgage by LTI (%.1fx gross £%.0f): £%.0f\n", input.LTIMultiple, result.GrossAnnual, result.MortgageByLTI)
	fmt.Fprintf(&b, "- Max mortgage by payment capacity: £%.0f\n", result.MortgageByPayment)
	fmt.Fprintf(&b, "- Available for payments per month: £%.0f\n", result.AvailableMonthly)
	fmt.Fprintf(&b, "- Estimated monthly payment at that mortgage: £%.0f (stress: £%.0f)\n", result.MonthlyPayment, result.StressedPayment)
	if result.TransferTax > 0 {
		fmt.Fprintf(&b, "- Transfer tax estimate at that price: £%.0f\n", result.TransferTax)
	}
	if result.DepositOnlyPrice {
		b.WriteString("- Note: 100% deposit requested; price shown is the mortgage-only value\n")
	}
	if result.Saturated {
		b.WriteString("- Note: gross salary estimate clamped at the search bound\n")
	}

	return b.String()
}
