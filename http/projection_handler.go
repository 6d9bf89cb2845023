package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"afford-agent/domain"
	"afford-agent/repository"
	"afford-agent/service"
)

// ProjectionHandler serves the two affordability queries. It owns the
// scenario store: every successful computation is appended for later
// comparison.
type ProjectionHandler struct {
	affordability *service.AffordabilityService
	summary       *service.SummaryService
	scenarios     repository.ScenarioRepository
}

func NewProjectionHandler(
	affordability *service.AffordabilityService,
	summary *service.SummaryService,
	scenarios repository.ScenarioRepository,
) *ProjectionHandler {
	return &ProjectionHandler{
		affordability: affordability,
		summary:       summary,
		scenarios:     scenarios,
	}
}

type salaryProjectionResponse struct {
	domain.SalaryProjectionResult
	Summary string `json:"summary"`
}

type affordabilityResponse struct {
	domain.AffordabilityResult
	Summary string `json:"summary"`
}

func (h *ProjectionHandler) SalaryProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.SalaryProjectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.affordability.RequiredGrossSalary(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Record for comparison (not critical if it fails).
	if err := h.scenarios.Save(domain.Scenario{
		Type:              "salary_projection",
		Mode:              input.Mode,
		SavedAt:           time.Now(),
		Price:             input.Price,
		DepositPercent:    input.DepositPercent,
		DepositAmount:     input.DepositAmount,
		AnnualRatePercent: input.AnnualRatePercent,
		TermYears:         input.TermYears,
		MonthlyPayment:    result.MonthlyPayment,
		RequiredGross:     result.RequiredGross,
		TransferTax:       result.TransferTax,
	}); err != nil {
		log.Printf("Warning: failed to save scenario: %v", err)
	}

	writeJSON(w, salaryProjectionResponse{
		SalaryProjectionResult: result,
		Summary:                h.summary.SalaryProjectionSummary(input, result),
	})
}

func (h *ProjectionHandler) Affordability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.AffordabilityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.affordability.MaxAffordablePrice(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.scenarios.Save(domain.Scenario{
		Type:              "affordability",
		Mode:              input.Mode,
		SavedAt:           time.Now(),
		NetMonthlySalary:  input.NetMonthlySalary,
		DepositPercent:    input.DepositPercent,
		DepositAmount:     input.DepositAmount,
		AnnualRatePercent: input.AnnualRatePercent,
		TermYears:         input.TermYears,
		MonthlyPayment:    result.MonthlyPayment,
		MaxPrice:          result.MaxPrice,
		TransferTax:       result.TransferTax,
	}); err != nil {
		log.Printf("Warning: failed to save scenario: %v", err)
	}

	writeJSON(w, affordabilityResponse{
		AffordabilityResult: result,
		Summary:             h.summary.AffordabilitySummary(input, result),
	})
}

// writeJSON encodes into a buffer first so a failed encode never writes a
// partial body after the header.
func writeJSON(w http.ResponseWriter, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
