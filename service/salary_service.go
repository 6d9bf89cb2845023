package service

import (
	"fmt"
	"log"
	"strconv"

	"afford-agent/domain"
	"afford-agent/repository"
)

const (
	StrategyBanded = "banded"
	StrategyFlat   = "flat"
)

// SalaryService converts between gross and net annual salary. The banded
// strategy applies the full income tax + NIC schedules; the flat strategy
// applies a single user-configured effective rate. Both satisfy the same
// contract.
type SalaryService struct {
	tax         *TaxService
	cache       repository.CacheRepository
	strategy    string
	flatRate    float64
	searchBound float64
}

func NewSalaryService(
	tax *TaxService,
	cache repository.CacheRepository,
	strategy string,
	flatEffectiveTaxRate float64,
	grossSearchBound float64,
) *SalaryService {
	if strategy == "" {
		strategy = StrategyBanded
	}
	if grossSearchBound <= 0 {
		grossSearchBound = DefaultGrossSearchBound
	}
	return &SalaryService{
		tax:         tax,
		cache:       cache,
		strategy:    strategy,
		flatRate:    flatEffectiveTaxRate,
		searchBound: grossSearchBound,
	}
}

// GrossToNet deducts income tax and NIC from a gross annual salary.
// Negative input is treated as 0.
func (s *SalaryService) GrossToNet(gross float64) domain.SalaryConversion {
	if gross < 0 {
		gross = 0
	}

	if s.strategy == StrategyFlat {
		rate := s.flatRate
		if rate < 0 || rate >= 100 {
			rate = 0
		}
		deducted := gross * rate / 100
		return domain.SalaryConversion{
			Gross:     gross,
			Net:       gross - deducted,
			IncomeTax: deducted,
		}
	}

	incomeTax := s.tax.IncomeTax(gross)
	nic := s.tax.NIC(gross)
	return domain.SalaryConversion{
		Gross:     gross,
		Net:       gross - incomeTax - nic,
		IncomeTax: incomeTax,
		NIC:       nic,
	}
}

// NetToGross finds the gross annual salary producing the target net. The
// banded tax function has no closed-form inverse once several bands are
// spanned, so it is inverted by bisection: GrossToNet is monotonically
// non-decreasing, and a fixed iteration count converges far below a penny
// over the configured bound. If the target is unreachable within
// [0, searchBound] the boundary conversion is returned with Saturated set.
func (s *SalaryService) NetToGross(targetNetAnnual float64) domain.SalaryConversion {
	if targetNetAnnual <= 0 {
		return s.GrossToNet(0)
	}

	if s.strategy == StrategyFlat {
		rate := s.flatRate
		if rate < 0 || rate >= 100 {
			rate = 0
		}
		return s.GrossToNet(targetNetAnnual / (1 - rate/100))
	}

	if gross, ok := s.cachedGross(targetNetAnnual); ok {
		return s.GrossToNet(gross)
	}

	// Unreachable target: clamp at the bound and flag the approximation.
	if s.GrossToNet(s.searchBound).Net < targetNetAnnual {
		conversion := s.GrossToNet(s.searchBound)
		conversion.Saturated = true
		return conversion
	}

	low := 0.0
	high := s.searchBound
	for i := 0; i < BisectionIterations; i++ {
		mid := (low + high) / 2
		if s.GrossToNet(mid).Net < targetNetAnnual {
			low = mid
		} else {
			high = mid
		}
	}

	conversion := s.GrossToNet((low + high) / 2)
	s.storeGross(targetNetAnnual, conversion.Gross)
	return conversion
}

func (s *SalaryService) cacheKey(targetNetAnnual float64) string {
	return fmt.Sprintf("net2gross:%s:%.2f", s.strategy, targetNetAnnual)
}

func (s *SalaryService) cachedGross(targetNetAnnual float64) (float64, bool) {
	if s.cache == nil {
		return 0, false
	}
	value, ok := s.cache.Get(s.cacheKey(targetNetAnnual))
	if !ok {
		return 0, false
	}
	gross, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return gross, true
}

// storeGross writes through to the cache; failures are not critical.
func (s *SalaryService) storeGross(targetNetAnnual, gross float64) {
	if s.cache == nil {
		return
	}
	value := strconv.FormatFloat(gross, 'f', -1, 64)
	if err := s.cache.Set(s.cacheKey(targetNetAnnual), value); err != nil {
		log.Printf("Warning: failed to cache net→gross conversion: %v", err)
	}
}
