package service

import (
	"testing"

	"afford-agent/domain"
)

func newTestSensitivityService() *SensitivityService {
	return NewSensitivityService(newTestAffordabilityService())
}

func TestRateSweep_PriceFallsAsRatesRise(t *testing.T) {
	s := newTestSensitivityService()

	result, err := s.RateSweep(domain.RateSensitivityInput{
		Affordability:   validAffordabilityInput(),
		MinRatePercent:  1,
		MaxRatePercent:  10,
		RateStepPercent: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(result.Points))
	}

	for i := 1; i < len(result.Points); i++ {
		if result.Points[i].MaxPrice > result.Points[i-1].MaxPrice {
			t.Errorf("max price rose from %.2f to %.2f as rate rose to %.2f%%",
				result.Points[i-1].MaxPrice, result.Points[i].MaxPrice, result.Points[i].RatePercent)
		}
	}
}

func TestRateSweep_InvalidInput(t *testing.T) {
	s := newTestSensitivityService()

	cases := []domain.RateSensitivityInput{
		{Affordability: validAffordabilityInput(), MinRatePercent: -1, MaxRatePercent: 5, RateStepPercent: 1},
		{Affordability: validAffordabilityInput(), MinRatePercent: 5, MaxRatePercent: 1, RateStepPercent: 1},
		{Affordability: validAffordabilityInput(), MinRatePercent: 0, MaxRatePercent: 500, RateStepPercent: 1},
		{Affordability: validAffordabilityInput(), MinRatePercent: 0, MaxRatePercent: 5, RateStepPercent: 0},
		{Affordability: validAffordabilityInput(), MinRatePercent: 0, MaxRatePercent: 100, RateStepPercent: 0.01},
	}

	for i, input := range cases {
		if _, err := s.RateSweep(input); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestRateSweep_InvalidBaseInput(t *testing.T) {
	s := newTestSensitivityService()

	base := validAffordabilityInput()
	base.NetMonthlySalary = 0 // every point fails

	_, err := s.RateSweep(domain.RateSensitivityInput{
		Affordability:   base,
		MinRatePercent:  1,
		MaxRatePercent:  5,
		RateStepPercent: 1,
	})
	if err == nil {
		t.Fatal("expected error when no rate produces a valid result")
	}
}
