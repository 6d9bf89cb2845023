package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"afford-agent/domain"
)

//go:embed default-config.yaml
var defaultConfigYAML []byte

// SalaryConversionConfig selects how net↔gross conversion is performed.
// "banded" uses the full income tax + NIC schedules; "flat" applies a single
// effective rate.
type SalaryConversionConfig struct {
	Strategy             string  `yaml:"strategy"`
	FlatEffectiveTaxRate float64 `yaml:"flat_effective_tax_rate"`
	GrossSearchBound     float64 `yaml:"gross_search_bound"`
}

// Config holds one tax year's schedules plus conversion settings. Loaded once
// at startup; the schedules are never mutated afterwards.
type Config struct {
	TaxYear           string                 `yaml:"tax_year"`
	SalaryConversion  SalaryConversionConfig `yaml:"salary_conversion"`
	IncomeTax         domain.TaxSchedule     `yaml:"income_tax"`
	NationalInsurance domain.TaxSchedule     `yaml:"national_insurance"`
	TransferTax       domain.TaxSchedule     `yaml:"transfer_tax"`
}

// Load reads configuration from path, or the embedded default when path is
// empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(defaultConfigYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	strategies := map[string]bool{"banded": true, "flat": true}
	if !strategies[c.SalaryConversion.Strategy] {
		return fmt.Errorf("unknown salary conversion strategy %q", c.SalaryConversion.Strategy)
	}
	if c.SalaryConversion.FlatEffectiveTaxRate < 0 || c.SalaryConversion.FlatEffectiveTaxRate >= 100 {
		return fmt.Errorf("flat effective tax rate must be in [0, 100), got %.2f", c.SalaryConversion.FlatEffectiveTaxRate)
	}
	if c.SalaryConversion.GrossSearchBound <= 0 {
		return fmt.Errorf("gross search bound must be positive, got %.2f", c.SalaryConversion.GrossSearchBound)
	}

	schedules := []struct {
		name     string
		schedule domain.TaxSchedule
	}{
		{"income_tax", c.IncomeTax},
		{"national_insurance", c.NationalInsurance},
		{"transfer_tax", c.TransferTax},
	}
	for _, s := range schedules {
		if err := validateSchedule(s.schedule); err != nil {
			return fmt.Errorf("%s schedule: %w", s.name, err)
		}
	}
	return nil
}

// validateSchedule enforces the band invariants: contiguous, ascending,
// starting at 0, non-negative rates, last band open-ended.
func validateSchedule(s domain.TaxSchedule) error {
	if len(s) == 0 {
		return fmt.Errorf("no bands defined")
	}
	if s[0].Lower != 0 {
		return fmt.Errorf("first band must start at 0, got %.2f", s[0].Lower)
	}
	for i, band := range s {
		if band.Rate < 0 {
			return fmt.Errorf("band %d has negative rate %.4f", i, band.Rate)
		}
		if band.Upper <= band.Lower {
			return fmt.Errorf("band %d upper bound %.2f not above lower bound %.2f", i, band.Upper, band.Lower)
		}
		if i > 0 && band.Lower != s[i-1].Upper {
			return fmt.Errorf("band %d lower bound %.2f does not meet previous upper bound %.2f", i, band.Lower, s[i-1].Upper)
		}
	}
	if last := s[len(s)-1]; !math.IsInf(last.Upper, 1) {
		return fmt.Errorf("last band must be open-ended, got upper bound %.2f", last.Upper)
	}
	return nil
}
