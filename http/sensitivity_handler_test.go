package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"afford-agent/config"
	"afford-agent/domain"
	"afford-agent/repository"
	"afford-agent/service"
)

func newTestSensitivityHandler(t *testing.T) *SensitivityHandler {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}

	tax := service.NewTaxService(cfg.IncomeTax, cfg.NationalInsurance, cfg.TransferTax)
	salary := service.NewSalaryService(
		tax,
		repository.NewMockCache(),
		cfg.SalaryConversion.Strategy,
		cfg.SalaryConversion.FlatEffectiveTaxRate,
		cfg.SalaryConversion.GrossSearchBound,
	)
	affordability := service.NewAffordabilityService(salary, service.NewLoanService(), tax)
	return NewSensitivityHandler(service.NewSensitivityService(affordability))
}

func TestRateSweepHandler_OK(t *testing.T) {
	handler := newTestSensitivityHandler(t)

	body := []byte(`{
		"affordability": {
			"mode": "house",
			"net_monthly_salary": 3000,
			"recurring_monthly_costs": 1500,
			"deposit_percent": 15,
			"term_years": 25,
			"lti_multiple": 4.5
		},
		"min_rate_percent": 2,
		"max_rate_percent": 6,
		"rate_step_percent": 1
	}`)

	req := httptest.NewRequest(http.MethodPost, "/projection/rate-sensitivity", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.RateSweep(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.RateSensitivityResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(result.Points) != 5 {
		t.Errorf("expected 5 points, got %d", len(result.Points))
	}
}

func TestRateSweepHandler_BadRequest(t *testing.T) {
	handler := newTestSensitivityHandler(t)

	req := httptest.NewRequest(
		http.MethodPost,
		"/projection/rate-sensitivity",
		bytes.NewBuffer([]byte(`{"min_rate_percent": 5, "max_rate_percent": 1}`)),
	)

	w := httptest.NewRecorder()
	handler.RateSweep(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
