package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
	"github.com/assaylab/assay/pkg/services"
)

// effectiveMode resolves the run's search mode: the run config wins, then
// the problem spec, then full_search.
func effectiveMode(r *ent.Run, spec *ent.ProblemSpec) string {
	if r.Config.Mode != "" {
		return r.Config.Mode
	}
	if spec != nil && string(spec.Mode) != "" {
		return string(spec.Mode)
	}
	return models.ModeFullSearch
}

// loadPrerequisites reads the problem spec and world model, both blocking.
func (o *Orchestrator) loadPrerequisites(ctx context.Context, projectID string) (*ent.ProblemSpec, *ent.WorldModel, error) {
	spec, err := o.deps.Specs.GetProblemSpec(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load problem spec: %w", err)
	}
	model, err := o.deps.Specs.GetWorldModel(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load world model: %w", err)
	}
	return spec, model, nil
}

// designPhase invokes the designer and persists the returned candidates.
// In eval_only mode the phase is skipped: the run scores the existing pool.
func (o *Orchestrator) designPhase(ctx context.Context, ex *execution, fullPipeline bool) (map[string]int, *models.AggregatedUsage, error) {
	spec, model, err := o.loadPrerequisites(ctx, ex.projectID)
	if err != nil {
		return nil, nil, err
	}

	mode := effectiveMode(ex.run, spec)
	if mode == models.ModeEvalOnly {
		live, err := o.deps.Candidates.CountLive(ctx, ex.projectID)
		if err != nil {
			return nil, nil, err
		}
		if fullPipeline && live == 0 {
			return nil, nil, fmt.Errorf("eval_only run has no live candidates to score")
		}
		return map[string]int{"design_skipped": 1, "live_candidates": live}, nil, nil
	}

	existing, err := o.deps.Candidates.ListCandidates(ctx, ex.projectID, models.CandidateFilters{RunID: ex.runID})
	if err != nil {
		return nil, nil, err
	}
	existingIDs := make([]string, len(existing))
	for i, c := range existing {
		existingIDs[i] = c.ID
	}

	task := map[string]any{
		"num_candidates":         ex.run.Config.NumCandidates,
		"constraints":            spec.Constraints,
		"goals":                  spec.Goals,
		"resolution":             spec.Resolution,
		"mode":                   mode,
		"world_model":            model.ModelData,
		"existing_candidate_ids": existingIDs,
	}

	// Seeded runs design variations of the surviving pool.
	if mode == models.ModeSeeded {
		parents, err := o.deps.Candidates.ListCandidates(ctx, ex.projectID, models.CandidateFilters{Live: true})
		if err != nil {
			return nil, nil, err
		}
		parentViews := make([]map[string]any, 0, len(parents))
		for _, p := range parents {
			view := map[string]any{
				"id":                    p.ID,
				"mechanism_description": p.MechanismDescription,
				"status":                string(p.Status),
			}
			if p.Scores != nil && p.Scores.I != nil {
				view["I"] = *p.Scores.I
			}
			parentViews = append(parentViews, view)
		}
		task["parent_candidates"] = parentViews
	}

	resp, usage, err := o.deps.Gateway.Design(ctx, ex.runID, task)
	agg := agent.AggregateUsage([]models.LLMUsage{usage})
	if err != nil {
		return nil, agg, err
	}

	resources := map[string]int{"llm_calls": 1, "candidates_created": 0}
	if resp.ParseFailed {
		resources["parse_failures"] = 1
	}

	for _, proposal := range resp.Candidates {
		if proposal.MechanismDescription == "" {
			ex.logger.Warn("Designer proposal without mechanism description skipped")
			continue
		}
		runID := ex.runID
		entry := provenance.Entry{
			Type:         provenance.TypeCandidateGenerated,
			Actor:        provenance.ActorAgent,
			Source:       "run:" + ex.runID,
			Description:  proposal.Reasoning,
			ReferenceIDs: []string{ex.runID},
			Metadata: map[string]any{
				"constraint_compliance": proposal.ConstraintCompliance,
				"parent_ids":            proposal.ParentIDs,
			},
		}
		created, err := o.deps.Candidates.CreateCandidate(ctx, models.CreateCandidateRequest{
			ProjectID:            ex.projectID,
			RunID:                &runID,
			Origin:               models.OriginSystem,
			MechanismDescription: proposal.MechanismDescription,
			PredictedEffects:     proposal.PredictedEffects,
			ParentIDs:            proposal.ParentIDs,
			Scores:               complianceScores(proposal.ConstraintCompliance),
			Provenance:           &entry,
		})
		if err != nil {
			return resources, agg, fmt.Errorf("failed to persist candidate: %w", err)
		}
		resources["candidates_created"]++
		ex.logger.Debug("Candidate created", "candidate_id", created.ID)
	}

	if fullPipeline && resources["candidates_created"] == 0 {
		return resources, agg, fmt.Errorf("design phase produced no candidates")
	}
	return resources, agg, nil
}

// complianceScores seeds a candidate's scores with the designer's
// constraint compliance estimates. Numbers become scores; bools become
// 0-or-1 scores.
func complianceScores(compliance map[string]any) *models.CandidateScores {
	if len(compliance) == 0 {
		return nil
	}
	satisfaction := make(map[string]models.ConstraintResult, len(compliance))
	for name, v := range compliance {
		switch val := v.(type) {
		case bool:
			score := 0.0
			if val {
				score = 1.0
			}
			satisfaction[name] = models.ConstraintResult{Satisfied: val, Score: score}
		case float64:
			satisfaction[name] = models.ConstraintResult{Satisfied: val >= 0.5, Score: val}
		}
	}
	if len(satisfaction) == 0 {
		return nil
	}
	return &models.CandidateScores{ConstraintSatisfaction: satisfaction}
}

// scenarioPhase invokes the scenario_generator and upserts the run's suite.
func (o *Orchestrator) scenarioPhase(ctx context.Context, ex *execution, fullPipeline bool) (map[string]int, *models.AggregatedUsage, error) {
	spec, model, err := o.loadPrerequisites(ctx, ex.projectID)
	if err != nil {
		return nil, nil, err
	}

	task := map[string]any{
		"num_scenarios": ex.run.Config.NumScenarios,
		"constraints":   spec.Constraints,
		"goals":         spec.Goals,
		"resolution":    spec.Resolution,
		"world_model":   model.ModelData,
	}

	resp, usage, err := o.deps.Gateway.GenerateScenarios(ctx, ex.runID, task)
	agg := agent.AggregateUsage([]models.LLMUsage{usage})
	if err != nil {
		return nil, agg, err
	}

	resources := map[string]int{"llm_calls": 1, "scenarios_created": len(resp.Scenarios)}
	if resp.ParseFailed {
		resources["parse_failures"] = 1
	}
	if fullPipeline && len(resp.Scenarios) == 0 {
		return resources, agg, fmt.Errorf("scenario phase produced no scenarios")
	}
	if len(resp.Scenarios) == 0 {
		return resources, agg, nil
	}

	entry := provenance.Entry{
		Type:         provenance.TypeScenarioSuiteGenerated,
		Actor:        provenance.ActorAgent,
		Source:       "run:" + ex.runID,
		Description:  resp.Reasoning,
		ReferenceIDs: []string{ex.runID},
		Metadata:     map[string]any{"scenario_count": len(resp.Scenarios)},
	}
	if _, err := o.deps.Scenarios.UpsertSuite(ctx, models.UpsertScenarioSuiteRequest{
		RunID:      ex.runID,
		ProjectID:  ex.projectID,
		Scenarios:  resp.Scenarios,
		Provenance: &entry,
	}); err != nil {
		return resources, agg, fmt.Errorf("failed to persist scenario suite: %w", err)
	}
	return resources, agg, nil
}

// pairTask is one unit of evaluation work.
type pairTask struct {
	candidate *ent.Candidate
	scenario  models.Scenario
}

// evaluationPhase fans the un-evaluated (candidate, scenario) pairs out to
// the evaluator under the concurrency bound. Single-pair failures are
// logged and counted; the phase continues.
func (o *Orchestrator) evaluationPhase(ctx context.Context, ex *execution) (map[string]int, *models.AggregatedUsage, error) {
	spec, model, err := o.loadPrerequisites(ctx, ex.projectID)
	if err != nil {
		return nil, nil, err
	}

	cohort, err := o.deps.Candidates.ListCandidates(ctx, ex.projectID, models.CandidateFilters{Live: true})
	if err != nil {
		return nil, nil, err
	}
	suite, err := o.deps.Scenarios.GetSuite(ctx, ex.runID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, nil, fmt.Errorf("run has no scenario suite; execute the scenario phase first")
		}
		return nil, nil, err
	}
	existing, err := o.deps.Evaluations.ExistingPairs(ctx, ex.runID)
	if err != nil {
		return nil, nil, err
	}

	var work []pairTask
	skipped := 0
	for _, c := range cohort {
		for _, s := range suite.Scenarios {
			if _, done := existing[services.PairKey(c.ID, s.ID)]; done {
				skipped++
				continue
			}
			work = append(work, pairTask{candidate: c, scenario: s})
		}
	}

	resources := map[string]int{
		"pairs_attempted":      0,
		"pairs_evaluated":      0,
		"pairs_failed":         0,
		"pairs_skipped":        skipped,
		"candidates_evaluated": 0,
		"scenarios_used":       len(suite.Scenarios),
	}

	var (
		mu           sync.Mutex
		usageEntries []models.LLMUsage
		evaluatedSet = map[string]struct{}{}
	)

	sem := make(chan struct{}, o.deps.EvalConcurrency)
	var wg sync.WaitGroup

pairLoop:
	for _, pt := range work {
		// Cancellation short-circuits before the next unscheduled pair.
		select {
		case <-ctx.Done():
			break pairLoop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		mu.Lock()
		resources["pairs_attempted"]++
		mu.Unlock()

		go func(pt pairTask) {
			defer wg.Done()
			defer func() { <-sem }()

			usage, evalErr := o.evaluatePair(ctx, ex, spec, model, pt)
			mu.Lock()
			defer mu.Unlock()
			usageEntries = append(usageEntries, usage)
			if evalErr != nil {
				resources["pairs_failed"]++
				ex.logger.Warn("Pair evaluation failed",
					"candidate_id", pt.candidate.ID,
					"scenario_id", pt.scenario.ID,
					"error", evalErr)
				return
			}
			resources["pairs_evaluated"]++
			evaluatedSet[pt.candidate.ID] = struct{}{}
		}(pt)
	}
	wg.Wait()

	resources["candidates_evaluated"] = len(evaluatedSet)
	agg := agent.AggregateUsage(usageEntries)

	// Candidates that received at least one evaluation move new → under_test.
	for _, c := range cohort {
		if _, ok := evaluatedSet[c.ID]; !ok {
			continue
		}
		if string(c.Status) != models.CandidateNew {
			continue
		}
		if _, err := o.deps.Candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateUnderTest, nil); err != nil {
			ex.logger.Warn("Failed to move candidate under test", "candidate_id", c.ID, "error", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return resources, agg, err
	}
	return resources, agg, nil
}

// evaluatePair invokes the evaluator for one pair and persists the verdict.
func (o *Orchestrator) evaluatePair(ctx context.Context, ex *execution, spec *ent.ProblemSpec, model *ent.WorldModel, pt pairTask) (models.LLMUsage, error) {
	task := map[string]any{
		"candidate": map[string]any{
			"id":                    pt.candidate.ID,
			"mechanism_description": pt.candidate.MechanismDescription,
			"predicted_effects":     pt.candidate.PredictedEffects,
		},
		"scenario":    pt.scenario,
		"constraints": spec.Constraints,
		"goals":       spec.Goals,
		"world_model": model.ModelData,
	}

	resp, usage, err := o.deps.Gateway.Evaluate(ctx, ex.runID, task)
	if err != nil {
		return usage, err
	}

	_, _, err = o.deps.Evaluations.CreateEvaluation(ctx, models.CreateEvaluationRequest{
		RunID:                  ex.runID,
		CandidateID:            pt.candidate.ID,
		ScenarioID:             pt.scenario.ID,
		P:                      resp.P,
		R:                      resp.R,
		ConstraintSatisfaction: resp.ConstraintSatisfaction,
		Explanation:            resp.Explanation,
	})
	return usage, err
}

// rankingPhase delegates to the ranker. Ranking failure fails the run.
func (o *Orchestrator) rankingPhase(ctx context.Context, ex *execution) (map[string]int, *models.AggregatedUsage, error) {
	result, err := o.deps.Ranker.RankRun(ctx, ex.projectID, ex.runID)
	if err != nil {
		return nil, nil, err
	}
	return map[string]int{
		"candidates_ranked":          result.Count,
		"hard_constraint_violations": len(result.HardConstraintViolations),
	}, nil, nil
}
