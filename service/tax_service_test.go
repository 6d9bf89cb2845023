package service

import (
	"math"
	"testing"

	"afford-agent/domain"
)

// UK 2025/26 schedules, matching the embedded default config.
var ukIncomeTax = domain.TaxSchedule{
	{Lower: 0, Upper: 12570, Rate: 0},
	{Lower: 12570, Upper: 50270, Rate: 0.20},
	{Lower: 50270, Upper: 125140, Rate: 0.40},
	{Lower: 125140, Upper: math.Inf(1), Rate: 0.45},
}

var ukNIC = domain.TaxSchedule{
	{Lower: 0, Upper: 12570, Rate: 0},
	{Lower: 12570, Upper: 50270, Rate: 0.12},
	{Lower: 50270, Upper: math.Inf(1), Rate: 0.02},
}

var ukTransferTax = domain.TaxSchedule{
	{Lower: 0, Upper: 125000, Rate: 0},
	{Lower: 125000, Upper: 250000, Rate: 0.02},
	{Lower: 250000, Upper: 925000, Rate: 0.05},
	{Lower: 925000, Upper: 1500000, Rate: 0.10},
	{Lower: 1500000, Upper: math.Inf(1), Rate: 0.12},
}

func newTestTaxService() *TaxService {
	return NewTaxService(ukIncomeTax, ukNIC, ukTransferTax)
}

const taxTolerance = 0.01

func assertNear(t *testing.T, expected, actual, tolerance float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance {
		t.Errorf("%s: expected %.2f, got %.2f", description, expected, actual)
	}
}

func TestBandedTax_IncomeTax(t *testing.T) {
	tests := []struct {
		gross    float64
		expected float64
	}{
		{0, 0},
		{-500, 0},
		{5000, 0},
		{12570, 0}, // exactly at the allowance boundary
		{20000, 1486},
		{50270, 7540}, // exactly at the higher-rate boundary
		{60000, 11432},
		{150000, 48675},
	}

	for _, tc := range tests {
		got := BandedTax(tc.gross, ukIncomeTax)
		assertNear(t, tc.expected, got, taxTolerance, "income tax")
	}
}

func TestBandedTax_NIC(t *testing.T) {
	tests := []struct {
		gross    float64
		expected float64
	}{
		{0, 0},
		{12570, 0},
		{30000, 2091.60},
		{60000, 4718.60},
	}

	for _, tc := range tests {
		got := BandedTax(tc.gross, ukNIC)
		assertNear(t, tc.expected, got, taxTolerance, "NIC")
	}
}

func TestBandedTax_TransferTax(t *testing.T) {
	tests := []struct {
		price    float64
		expected float64
	}{
		{0, 0},
		{125000, 0},
		{300000, 5000},
		{1600000, 105750},
	}

	for _, tc := range tests {
		got := BandedTax(tc.price, ukTransferTax)
		assertNear(t, tc.expected, got, taxTolerance, "transfer tax")
	}
}

func TestBandedTax_Monotonic(t *testing.T) {
	schedules := []domain.TaxSchedule{ukIncomeTax, ukNIC, ukTransferTax}

	for _, schedule := range schedules {
		previous := 0.0
		for amount := 0.0; amount <= 2_000_000; amount += 997.13 {
			tax := BandedTax(amount, schedule)
			if tax < previous {
				t.Fatalf("tax decreased from %.2f to %.2f at amount %.2f", previous, tax, amount)
			}
			previous = tax
		}
	}
}

func TestTaxService_Wrappers(t *testing.T) {
	s := newTestTaxService()

	assertNear(t, 11432, s.IncomeTax(60000), taxTolerance, "IncomeTax wrapper")
	assertNear(t, 4718.60, s.NIC(60000), taxTolerance, "NIC wrapper")
	assertNear(t, 5000, s.TransferTax(300000), taxTolerance, "TransferTax wrapper")
}
