package service

import (
	"errors"
	"fmt"
	"log"

	"afford-agent/domain"
)

// SensitivityService evaluates affordability across a range of interest
// rates, showing how the maximum affordable price moves as rates rise.
type SensitivityService struct {
	affordability *AffordabilityService
}

func NewSensitivityService(affordability *AffordabilityService) *SensitivityService {
	return &SensitivityService{affordability: affordability}
}

// RateSweep runs the affordability query at each rate in
// [MinRatePercent, MaxRatePercent] stepping by RateStepPercent.
func (s *SensitivityService) RateSweep(
	input domain.RateSensitivityInput,
) (domain.RateSensitivityResult, error) {

	if input.MinRatePercent < 0 {
		return domain.RateSensitivityResult{}, errors.New("invalid minimum rate")
	}
	if input.MaxRatePercent < input.MinRatePercent {
		return domain.RateSensitivityResult{}, errors.New("minimum rate greater than maximum")
	}
	if input.MaxRatePercent > MaxAnnualRatePercent {
		return domain.RateSensitivityResult{}, fmt.Errorf("maximum rate exceeds the limit of %.2f%%", float64(MaxAnnualRatePercent))
	}
	if input.RateStepPercent <= 0 {
		return domain.RateSensitivityResult{}, errors.New("invalid rate step")
	}
	points := int((input.MaxRatePercent-input.MinRatePercent)/input.RateStepPercent) + 1
	if points > MaxRateSweepPoints {
		return domain.RateSensitivityResult{}, fmt.Errorf("rate range exceeds the maximum of %d points", MaxRateSweepPoints)
	}

	result := domain.RateSensitivityResult{Points: []domain.RatePoint{}}

	for i := 0; i < points; i++ {
		rate := input.MinRatePercent + float64(i)*input.RateStepPercent
		if rate > input.MaxRatePercent {
			break
		}

		query := input.Affordability
		query.AnnualRatePercent = rate

		affordability, err := s.affordability.MaxAffordablePrice(query)
		if err != nil {
			log.Printf("Warning: failed to evaluate affordability at rate %.2f%%: %v", rate, err)
			continue
		}

		result.Points = append(result.Points, domain.RatePoint{
			RatePercent:        roundTo2Decimals(rate),
			MaxPrice:           affordability.MaxPrice,
			MortgageAffordable: affordability.MortgageAffordable,
			MonthlyPayment:     affordability.MonthlyPayment,
		})
	}

	if len(result.Points) == 0 {
		return domain.RateSensitivityResult{}, errors.New("no valid rates in the requested range")
	}

	return result, nil
}
