package ranking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
	"github.com/assaylab/assay/pkg/services"
)

// Result is the ranking phase outcome returned to the pipeline and the API.
// HardConstraintViolations lists the ids of candidates rejected for
// violating a hard constraint.
type Result struct {
	RankedCandidates         []RankedCandidate `json:"ranked_candidates"`
	Count                    int               `json:"count"`
	HardConstraintViolations []string          `json:"hard_constraint_violations"`
}

// Ranker loads a run's cohort, ranks it and persists the verdicts.
type Ranker struct {
	specs       *services.SpecService
	candidates  *services.CandidateService
	evaluations *services.EvaluationService
	logger      *slog.Logger
}

// NewRanker creates a Ranker over the store services.
func NewRanker(specs *services.SpecService, candidates *services.CandidateService, evaluations *services.EvaluationService) *Ranker {
	return &Ranker{
		specs:       specs,
		candidates:  candidates,
		evaluations: evaluations,
		logger:      slog.With("component", "ranker"),
	}
}

// RankRun ranks the project's live candidates by the run's evaluations and
// persists scores, statuses and a ranking_completed provenance entry per
// candidate.
func (r *Ranker) RankRun(ctx context.Context, projectID, runID string) (*Result, error) {
	spec, err := r.specs.GetProblemSpec(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load problem spec: %w", err)
	}

	cohort, err := r.candidates.ListCandidates(ctx, projectID, models.CandidateFilters{Live: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	evals, err := r.evaluations.ListEvaluations(ctx, runID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluations: %w", err)
	}

	byCandidate := make(map[string][]EvalInput)
	for _, ev := range evals {
		byCandidate[ev.CandidateID] = append(byCandidate[ev.CandidateID], EvalInput{
			P:                      ev.P.Overall,
			R:                      ev.R.Overall,
			ConstraintSatisfaction: ev.ConstraintSatisfaction,
		})
	}

	inputs := make([]CandidateInput, 0, len(cohort))
	for _, c := range cohort {
		inputs = append(inputs, CandidateInput{
			ID:          c.ID,
			Status:      string(c.Status),
			Evaluations: byCandidate[c.ID],
		})
	}

	ranked := Rank(spec.Constraints, inputs)

	result := &Result{
		RankedCandidates: ranked,
		Count:            len(ranked),
	}
	for i := range ranked {
		rc := &ranked[i]
		if len(rc.HardViolations) > 0 {
			result.HardConstraintViolations = append(result.HardConstraintViolations, rc.CandidateID)
		}

		p, rr, ii := rc.P, rc.R, rc.I
		scores := &models.CandidateScores{
			P:                      &p,
			R:                      &rr,
			I:                      &ii,
			ConstraintSatisfaction: rc.ConstraintSatisfaction,
			RankingExplanation:     rc.Explanation,
			RankingFactors:         &rc.Factors,
		}
		entry := provenance.Entry{
			Type:         provenance.TypeRankingCompleted,
			Actor:        provenance.ActorSystem,
			Source:       "run:" + runID,
			Description:  rc.Explanation,
			ReferenceIDs: []string{runID},
			Metadata: map[string]any{
				"rank":               rc.Rank,
				"scores":             map[string]float64{"P": rc.P, "R": rc.R, "I": rc.I},
				"has_hard_violation": len(rc.HardViolations) > 0,
				"evaluation_count":   rc.EvaluationCount,
			},
		}

		if _, err := r.candidates.UpdateCandidateScores(ctx, rc.CandidateID, scores, rc.Status, &entry); err != nil {
			return nil, fmt.Errorf("failed to persist ranking for candidate %s: %w", rc.CandidateID, err)
		}
	}

	r.logger.Info("Ranking completed",
		"run_id", runID,
		"candidates", result.Count,
		"hard_violations", len(result.HardConstraintViolations))
	return result, nil
}
