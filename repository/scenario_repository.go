package repository

import "afford-agent/domain"

// ScenarioRepository is the append-only store of saved computations, owned
// by the presentation layer. The computation core never touches it.
type ScenarioRepository interface {
	Save(scenario domain.Scenario) error
	List() []domain.Scenario
}
