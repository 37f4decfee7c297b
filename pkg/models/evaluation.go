package models

// Signal is a progress (P) or resource (R) measurement in [0, 1], with
// optional named components.
type Signal struct {
	Overall    float64            `json:"overall"`
	Components map[string]float64 `json:"components,omitempty"`
}

// CreateEvaluationRequest records the evaluator's verdict for one
// (candidate, scenario) pair. The (run, candidate, scenario) triple is
// unique; duplicates are skipped by the store.
type CreateEvaluationRequest struct {
	RunID                  string                      `json:"run_id"`
	CandidateID            string                      `json:"candidate_id"`
	ScenarioID             string                      `json:"scenario_id"`
	P                      Signal                      `json:"P"`
	R                      Signal                      `json:"R"`
	ConstraintSatisfaction map[string]ConstraintResult `json:"constraint_satisfaction,omitempty"`
	Explanation            string                      `json:"explanation,omitempty"`
}
