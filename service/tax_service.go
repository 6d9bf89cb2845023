package service

import (
	"math"

	"afford-agent/domain"
)

// TaxService evaluates the configured tax year's schedules. All three taxes
// share the same slab calculation; only the schedule differs.
type TaxService struct {
	incomeTax   domain.TaxSchedule
	nic         domain.TaxSchedule
	transferTax domain.TaxSchedule
}

func NewTaxService(incomeTax, nic, transferTax domain.TaxSchedule) *TaxService {
	return &TaxService{
		incomeTax:   incomeTax,
		nic:         nic,
		transferTax: transferTax,
	}
}

// BandedTax returns the slab sum of amount over schedule: each band's rate
// applies only to the portion within [Lower, Upper). An amount sitting
// exactly on a boundary is taxed entirely within the lower band. Negative
// amounts are treated as 0.
func BandedTax(amount float64, schedule domain.TaxSchedule) float64 {
	if amount <= 0 {
		return 0
	}

	var tax float64
	for _, band := range schedule {
		if amount <= band.Lower {
			break
		}
		taxable := math.Min(amount, band.Upper) - band.Lower
		if taxable > 0 {
			tax += taxable * band.Rate
		}
	}
	return tax
}

// IncomeTax returns annual income tax on a gross annual salary.
func (s *TaxService) IncomeTax(gross float64) float64 {
	return BandedTax(gross, s.incomeTax)
}

// NIC returns annual Class 1 employee National Insurance on a gross annual
// salary.
func (s *TaxService) NIC(gross float64) float64 {
	return BandedTax(gross, s.nic)
}

// TransferTax returns the one-off stamp-duty-style tax on a purchase price.
func (s *TaxService) TransferTax(price float64) float64 {
	return BandedTax(price, s.transferTax)
}
