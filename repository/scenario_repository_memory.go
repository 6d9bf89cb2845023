package repository

import (
	"sync"

	"afford-agent/domain"
)

// ScenarioRepositoryMemory is an in-memory implementation of
// ScenarioRepository.
type ScenarioRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.Scenario
}

// NewScenarioRepositoryMemory creates a new in-memory scenario store.
func NewScenarioRepositoryMemory() *ScenarioRepositoryMemory {
	return &ScenarioRepositoryMemory{
		data: []domain.Scenario{},
	}
}

// Save appends the scenario to the store.
func (r *ScenarioRepositoryMemory) Save(scenario domain.Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, scenario)
	return nil
}

// List returns a copy of all saved scenarios in insertion order.
func (r *ScenarioRepositoryMemory) List() []domain.Scenario {
	r.mu.Lock()
	defer r.mu.Unlock()

	scenarios := make([]domain.Scenario, len(r.data))
	copy(scenarios, r.data)
	return scenarios
}
