package http

import (
	"net/http"

	"afford-agent/repository"
)

type ScenarioHandler struct {
	scenarios repository.ScenarioRepository
}

func NewScenarioHandler(scenarios repository.ScenarioRepository) *ScenarioHandler {
	return &ScenarioHandler{scenarios: scenarios}
}

// ListScenarios returns every saved computation for side-by-side comparison.
func (h *ScenarioHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, h.scenarios.List())
}
