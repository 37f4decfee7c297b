package models

import "github.com/assaylab/assay/pkg/provenance"

// Candidate origins.
const (
	OriginUser   = "user"
	OriginSystem = "system"
)

// Candidate statuses. Transitions are monotone: new → under_test →
// (promising | weak); any non-terminal status may move to rejected, which
// is terminal.
const (
	CandidateNew       = "new"
	CandidateUnderTest = "under_test"
	CandidatePromising = "promising"
	CandidateWeak      = "weak"
	CandidateRejected  = "rejected"
)

// PredictedEffects is the designer's forecast of what a mechanism touches.
type PredictedEffects struct {
	ActorsAffected     []string `json:"actors_affected,omitempty"`
	ResourcesImpacted  []string `json:"resources_impacted,omitempty"`
	MechanismsModified []string `json:"mechanisms_modified,omitempty"`
}

// ConstraintResult is a per-constraint verdict. It is used both on single
// evaluations and, aggregated, on candidate scores.
type ConstraintResult struct {
	Satisfied   bool    `json:"satisfied"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation,omitempty"`
}

// RankingFactors lists the human-readable reasons behind a candidate's rank,
// at most four per direction.
type RankingFactors struct {
	Positive []string `json:"positive,omitempty"`
	Negative []string `json:"negative,omitempty"`
}

// CandidateScores is the scores blob on a candidate. The design phase seeds
// ConstraintSatisfaction with the designer's estimates; ranking fills the
// rest.
type CandidateScores struct {
	P                      *float64                    `json:"P,omitempty"`
	R                      *float64                    `json:"R,omitempty"`
	I                      *float64                    `json:"I,omitempty"`
	ConstraintSatisfaction map[string]ConstraintResult `json:"constraint_satisfaction,omitempty"`
	RankingExplanation     string                      `json:"ranking_explanation,omitempty"`
	RankingFactors         *RankingFactors             `json:"ranking_factors,omitempty"`
}

// CreateCandidateRequest adds a candidate to a project. RunID tags
// system-generated candidates with their originating run.
type CreateCandidateRequest struct {
	ProjectID            string            `json:"project_id"`
	RunID                *string           `json:"run_id,omitempty"`
	Origin               string            `json:"origin"`
	MechanismDescription string            `json:"mechanism_description"`
	PredictedEffects     *PredictedEffects `json:"predicted_effects,omitempty"`
	ParentIDs            []string          `json:"parent_ids,omitempty"`
	Scores               *CandidateScores  `json:"scores,omitempty"`
	Provenance           *provenance.Entry `json:"-"`
}

// CandidateFilters narrows ListCandidates. Live selects candidates whose
// status is not rejected.
type CandidateFilters struct {
	RunID    string   `json:"run_id,omitempty"`
	Statuses []string `json:"statuses,omitempty"`
	Live     bool     `json:"live,omitempty"`
	Limit    int      `json:"limit,omitempty"`
	Offset   int      `json:"offset,omitempty"`
}

// candidateRank orders statuses along the monotone machine. rejected is a
// sink reachable from every non-terminal status.
var candidateRank = map[string]int{
	CandidateNew:       0,
	CandidateUnderTest: 1,
	CandidatePromising: 2,
	CandidateWeak:      2,
	CandidateRejected:  3,
}

// ValidCandidateTransition reports whether from → to respects the monotone
// status machine.
func ValidCandidateTransition(from, to string) bool {
	fr, ok := candidateRank[from]
	if !ok {
		return false
	}
	tr, ok := candidateRank[to]
	if !ok {
		return false
	}
	if from == CandidateRejected {
		return false
	}
	if to == CandidateRejected {
		return true
	}
	// promising and weak share a rank but are not interchangeable.
	if fr == tr {
		return false
	}
	return tr > fr
}
