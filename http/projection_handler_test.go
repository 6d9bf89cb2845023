package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"afford-agent/config"
	"afford-agent/repository"
	"afford-agent/service"
)

func newTestHandlerStack(t *testing.T) (*ProjectionHandler, *repository.ScenarioRepositoryMemory) {
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

	scenarios := repository.NewScenarioRepositoryMemory()
	handler := NewProjectionHandler(affordability, service.NewSummaryService(), scenarios)
	return handler, scenarios
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(
		http.MethodPost,
		"/projection/affordability",
		bytes.NewBufferString(body),
	)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAffordabilityHandler_OK(t *testing.T) {
	handler, scenarios := newTestHandlerStack(t)

	req := postJSON(`{
		"mode": "house",
		"net_monthly_salary": 3000,
		"recurring_monthly_costs": 1500,
		"deposit_percent": 15,
		"annual_rate_percent": 5,
		"term_years": 25,
		"lti_multiple": 4.5,
		"include_transfer_tax": true
	}`)

	w := httptest.NewRecorder()
	handler.Affordability(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, w.Body.String())
	}

	var payload affordabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if payload.MaxPrice <= 0 {
		t.Errorf("expected positive max price, got %.2f", payload.MaxPrice)
	}
	if payload.Summary == "" {
		t.Error("expected a summary in the response")
	}

	saved := scenarios.List()
	if len(saved) != 1 {
		t.Fatalf("expected one saved scenario, got %d", len(saved))
	}
	if saved[0].Type != "affordability" {
		t.Errorf("unexpected scenario type %q", saved[0].Type)
	}
}

func TestAffordabilityHandler_MethodNotAllowed(t *testing.T) {
	handler, _ := newTestHandlerStack(t)

	req := httptest.NewRequest(http.MethodGet, "/projection/affordability", nil)
	w := httptest.NewRecorder()

	handler.Affordability(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestAffordabilityHandler_BadRequest(t *testing.T) {
	handler, scenarios := newTestHandlerStack(t)

	w := httptest.NewRecorder()
	handler.Affordability(w, postJSON(`{invalid-json}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if len(scenarios.List()) != 0 {
		t.Error("no scenario should be saved for a failed request")
	}
}

func TestAffordabilityHandler_UnsupportedMediaType(t *testing.T) {
	handler, _ := newTestHandlerStack(t)

	req := httptest.NewRequest(
		http.MethodPost,
		"/projection/affordability",
		bytes.NewBufferString(`{}`),
	)

	w := httptest.NewRecorder()
	handler.Affordability(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestSalaryProjectionHandler_OK(t *testing.T) {
	handler, scenarios := newTestHandlerStack(t)

	req := httptest.NewRequest(
		http.MethodPost,
		"/projection/salary",
		bytes.NewBufferString(`{
			"mode": "house",
			"price": 300000,
			"deposit_percent": 15,
			"annual_rate_percent": 5,
			"term_years": 25,
			"recurring_monthly_costs": 1500,
			"lti_multiple": 4.5,
			"include_transfer_tax": true
		}`),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.SalaryProjection(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload salaryProjectionResponse
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if payload.RequiredGross <= 0 {
		t.Errorf("expected positive required gross, got %.2f", payload.RequiredGross)
	}

	saved := scenarios.List()
	if len(saved) != 1 || saved[0].Type != "salary_projection" {
		t.Fatalf("expected one salary projection scenario, got %+v", saved)
	}
}

func TestSalaryProjectionHandler_ValidationError(t *testing.T) {
	handler, _ := newTestHandlerStack(t)

	req := httptest.NewRequest(
		http.MethodPost,
		"/projection/salary",
		bytes.NewBufferString(`{"mode": "house", "price": -1}`),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.SalaryProjection(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
