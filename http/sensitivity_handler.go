package http

import (
	"encoding/json"
	"log"
	"net/http"

	"afford-agent/domain"
	"afford-agent/service"
)

type SensitivityHandler struct {
	service *service.SensitivityService
}

func NewSensitivityHandler(service *service.SensitivityService) *SensitivityHandler {
	return &SensitivityHandler{service: service}
}

func (h *SensitivityHandler) RateSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.RateSensitivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.RateSweep(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result)
}
