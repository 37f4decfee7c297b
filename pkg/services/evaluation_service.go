package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/evaluation"
	"github.com/assaylab/assay/pkg/models"
)

// EvaluationService manages per-(candidate, scenario) evaluations. The
// (run_id, candidate_id, scenario_id) triple is unique, enforced by a
// database index; re-creates of an existing pair are reported, not errors,
// so the evaluation phase stays idempotent.
type EvaluationService struct {
	client *ent.Client
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(client *ent.Client) *EvaluationService {
	return &EvaluationService{client: client}
}

func validSignal(name string, sig models.Signal) error {
	if sig.Overall < 0 || sig.Overall > 1 {
		return NewValidationError(name, fmt.Sprintf("overall %v outside [0, 1]", sig.Overall))
	}
	return nil
}

// CreateEvaluation records the evaluator's verdict for one pair. Returns
// (nil, false, nil) when an evaluation for the triple already exists.
func (s *EvaluationService) CreateEvaluation(httpCtx context.Context, req models.CreateEvaluationRequest) (*ent.Evaluation, bool, error) {
	if req.RunID == "" {
		return nil, false, NewValidationError("run_id", "required")
	}
	if req.CandidateID == "" {
		return nil, false, NewValidationError("candidate_id", "required")
	}
	if req.ScenarioID == "" {
		return nil, false, NewValidationError("scenario_id", "required")
	}
	if err := validSignal("P", req.P); err != nil {
		return nil, false, err
	}
	if err := validSignal("R", req.R); err != nil {
		return nil, false, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ev, err := s.client.Evaluation.Create().
		SetID(uuid.New().String()).
		SetRunID(req.RunID).
		SetCandidateID(req.CandidateID).
		SetScenarioID(req.ScenarioID).
		SetP(req.P).
		SetR(req.R).
		SetConstraintSatisfaction(req.ConstraintSatisfaction).
		SetExplanation(req.Explanation).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another writer beat us to the triple; the phase skips it.
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to create evaluation: %w", err)
	}
	return ev, true, nil
}

// ListEvaluations lists a run's evaluations newest-first, optionally
// narrowed to one candidate.
func (s *EvaluationService) ListEvaluations(ctx context.Context, runID, candidateID string) ([]*ent.Evaluation, error) {
	query := s.client.Evaluation.Query()
	if runID != "" {
		query = query.Where(evaluation.RunIDEQ(runID))
	}
	if candidateID != "" {
		query = query.Where(evaluation.CandidateIDEQ(candidateID))
	}

	evals, err := query.
		Order(ent.Desc(evaluation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return evals, nil
}

// ExistingPairs returns the set of "candidateID/scenarioID" keys already
// evaluated within a run. The evaluation phase consults this to skip work.
func (s *EvaluationService) ExistingPairs(ctx context.Context, runID string) (map[string]struct{}, error) {
	evals, err := s.client.Evaluation.Query().
		Where(evaluation.RunIDEQ(runID)).
		Select(evaluation.FieldCandidateID, evaluation.FieldScenarioID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing pairs: %w", err)
	}

	pairs := make(map[string]struct{}, len(evals))
	for _, ev := range evals {
		pairs[PairKey(ev.CandidateID, ev.ScenarioID)] = struct{}{}
	}
	return pairs, nil
}

// CountEvaluations counts a run's evaluations.
func (s *EvaluationService) CountEvaluations(ctx context.Context, runID string) (int, error) {
	n, err := s.client.Evaluation.Query().
		Where(evaluation.RunIDEQ(runID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count evaluations: %w", err)
	}
	return n, nil
}

// PairKey builds the map key for a (candidate, scenario) pair.
func PairKey(candidateID, scenarioID string) string {
	return candidateID + "/" + scenarioID
}
