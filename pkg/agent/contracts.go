package agent

import "github.com/assaylab/assay/pkg/models"

// CandidateProposal is one mechanism the designer proposes.
// ConstraintCompliance maps constraint names to a number or bool estimate.
type CandidateProposal struct {
	MechanismDescription string                   `json:"mechanism_description"`
	PredictedEffects     *models.PredictedEffects `json:"predicted_effects,omitempty"`
	ConstraintCompliance map[string]any           `json:"constraint_compliance,omitempty"`
	Reasoning            string                   `json:"reasoning,omitempty"`
	ParentIDs            []string                 `json:"parent_ids,omitempty"`
}

// DesignResponse is the designer's reply.
type DesignResponse struct {
	Candidates  []CandidateProposal `json:"candidates"`
	Reasoning   string              `json:"reasoning,omitempty"`
	ParseFailed bool                `json:"-"`
}

// ScenarioResponse is the scenario_generator's reply.
type ScenarioResponse struct {
	Scenarios   []models.Scenario `json:"scenarios"`
	Reasoning   string            `json:"reasoning,omitempty"`
	ParseFailed bool              `json:"-"`
}

// EvaluationResponse is the evaluator's verdict for one
// (candidate, scenario) pair.
type EvaluationResponse struct {
	P                      models.Signal                      `json:"P"`
	R                      models.Signal                      `json:"R"`
	ConstraintSatisfaction map[string]models.ConstraintResult `json:"constraint_satisfaction,omitempty"`
	Explanation            string                             `json:"explanation,omitempty"`
	ParseFailed            bool                               `json:"-"`
}

// SpecDraft is the problem_spec agent's proposed spec state.
type SpecDraft struct {
	Constraints []models.Constraint `json:"constraints,omitempty"`
	Goals       []string            `json:"goals,omitempty"`
	Resolution  string              `json:"resolution,omitempty"`
	Mode        string              `json:"mode,omitempty"`
}

// SpecRefinementResponse is the problem_spec agent's reply.
type SpecRefinementResponse struct {
	UpdatedSpec       *SpecDraft `json:"updated_spec,omitempty"`
	FollowUpQuestions []string   `json:"follow_up_questions,omitempty"`
	Reasoning         string     `json:"reasoning,omitempty"`
	ReadyToRun        bool       `json:"ready_to_run"`
	ParseFailed       bool       `json:"-"`
}

// ModelChange is one structured world-model edit reported by the
// world_modeller. Type is added, modified or removed.
type ModelChange struct {
	Type        string `json:"type"`
	EntityType  string `json:"entity_type,omitempty"`
	EntityID    string `json:"entity_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// ModelRefinementResponse is the world_modeller's reply.
type ModelRefinementResponse struct {
	UpdatedModel map[string]any `json:"updated_model,omitempty"`
	Changes      []ModelChange  `json:"changes,omitempty"`
	Reasoning    string         `json:"reasoning,omitempty"`
	ReadyToRun   bool           `json:"ready_to_run"`
	ParseFailed  bool           `json:"-"`
}

// FeedbackResponse is the feedback agent's remediation suggestion.
type FeedbackResponse struct {
	SuggestedAction string         `json:"suggested_action,omitempty"`
	Patch           map[string]any `json:"patch,omitempty"`
	Reasoning       string         `json:"reasoning,omitempty"`
	ParseFailed     bool           `json:"-"`
}

// GuidanceResponse is the guidance agent's next-steps suggestion.
type GuidanceResponse struct {
	NextSteps   []string `json:"next_steps,omitempty"`
	Reasoning   string   `json:"reasoning,omitempty"`
	ParseFailed bool     `json:"-"`
}

// Safe defaults returned when an agent reply can't be parsed. The pipeline
// continues with these instead of failing the whole run on a malformed
// reply.

func defaultDesignResponse() *DesignResponse {
	return &DesignResponse{Candidates: []CandidateProposal{}, ParseFailed: true}
}

func defaultScenarioResponse() *ScenarioResponse {
	return &ScenarioResponse{Scenarios: []models.Scenario{}, ParseFailed: true}
}

func defaultEvaluationResponse() *EvaluationResponse {
	return &EvaluationResponse{
		P:                      models.Signal{Overall: 0.5},
		R:                      models.Signal{Overall: 0.5},
		ConstraintSatisfaction: map[string]models.ConstraintResult{},
		Explanation:            "evaluator reply could not be parsed; neutral default applied",
		ParseFailed:            true,
	}
}

func defaultSpecRefinementResponse() *SpecRefinementResponse {
	return &SpecRefinementResponse{ReadyToRun: false, ParseFailed: true}
}

func defaultModelRefinementResponse() *ModelRefinementResponse {
	return &ModelRefinementResponse{ParseFailed: true}
}

func defaultFeedbackResponse() *FeedbackResponse {
	return &FeedbackResponse{ParseFailed: true}
}

func defaultGuidanceResponse() *GuidanceResponse {
	return &GuidanceResponse{ParseFailed: true}
}
