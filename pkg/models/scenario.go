package models

import "github.com/assaylab/assay/pkg/provenance"

// Scenario types.
const (
	ScenarioStressTest      = "stress_test"
	ScenarioEdgeCase        = "edge_case"
	ScenarioNormalOperation = "normal_operation"
	ScenarioFailureMode     = "failure_mode"
)

// Scenario is one test situation inside a run's suite.
type Scenario struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Type             string           `json:"type"`
	Focus            string           `json:"focus,omitempty"`
	InitialState     map[string]any   `json:"initial_state,omitempty"`
	Events           []map[string]any `json:"events,omitempty"`
	ExpectedOutcomes []string         `json:"expected_outcomes,omitempty"`
	Weight           float64          `json:"weight"`
}

// ValidScenarioType reports whether s is a known scenario type.
func ValidScenarioType(s string) bool {
	switch s {
	case ScenarioStressTest, ScenarioEdgeCase, ScenarioNormalOperation, ScenarioFailureMode:
		return true
	}
	return false
}

// UpsertScenarioSuiteRequest replaces the scenario suite of a run.
type UpsertScenarioSuiteRequest struct {
	RunID      string            `json:"run_id"`
	ProjectID  string            `json:"project_id"`
	Scenarios  []Scenario        `json:"scenarios"`
	Provenance *provenance.Entry `json:"-"`
}
