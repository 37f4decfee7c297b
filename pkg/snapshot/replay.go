package snapshot

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/services"
)

// Replay restores a snapshot into a fresh ephemeral project (or into
// ReuseProjectID), runs the requested pipeline phases and validates the
// snapshot's invariants against the outcome. A failed run is a valid replay
// outcome: invariants decide whether the replay passed.
func (s *Service) Replay(ctx context.Context, snapshotID string, req models.ReplaySnapshotRequest) (*models.ReplayResult, error) {
	snap, err := s.snapshots.GetSnapshot(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	if snap.SnapshotData.Version != models.SnapshotVersion {
		return nil, services.NewValidationError("snapshot_data",
			fmt.Sprintf("version %q is not replayable by this build", snap.SnapshotData.Version))
	}

	phases := req.Phases
	if phases == "" {
		phases = models.ReplayFull
	}
	switch phases {
	case models.ReplayFull, models.ReplayDesign, models.ReplayEvaluate:
	default:
		return nil, services.NewValidationError("phases", "must be full, design or evaluate")
	}

	projectID, err := s.replayProject(ctx, snap, req.ReuseProjectID)
	if err != nil {
		return nil, err
	}
	if err := s.restoreInto(ctx, snap, projectID); err != nil {
		return nil, err
	}

	cfg := replayRunConfig(snap, req.RunConfig)
	r, err := s.runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: projectID, Config: cfg})
	if err != nil {
		return nil, fmt.Errorf("failed to create replay run: %w", err)
	}

	// The orchestrator persists the failed status and metrics itself; the
	// replay verdict comes from the invariants.
	if err := s.executePhases(ctx, phases, projectID, r.ID); err != nil {
		s.logger.Warn("Replay run failed", "snapshot_id", snap.ID, "run_id", r.ID, "error", err)
	}

	outcome, err := s.collectOutcome(ctx, projectID, r.ID)
	if err != nil {
		return nil, err
	}
	results, allPassed := ValidateInvariants(snap.Invariants, outcome)

	result := &models.ReplayResult{
		ProjectID:        projectID,
		RunID:            r.ID,
		RunStatus:        outcome.RunStatus,
		InvariantResults: results,
		AllPassed:        allPassed,
		Metrics:          outcome.Metrics,
		CostUSD:          outcome.CostUSD,
	}
	s.logger.Info("Replay finished", "snapshot_id", snap.ID, "run_id", r.ID,
		"run_status", outcome.RunStatus, "all_passed", allPassed)
	return result, nil
}

// replayProject resolves the target project: the reuse project when named,
// otherwise a fresh ephemeral project picked up later by retention cleanup.
func (s *Service) replayProject(ctx context.Context, snap *ent.Snapshot, reuseProjectID *string) (string, error) {
	if reuseProjectID != nil {
		if _, err := s.projects.GetProject(ctx, *reuseProjectID); err != nil {
			return "", err
		}
		return *reuseProjectID, nil
	}

	p, err := s.projects.CreateProject(ctx, models.CreateProjectRequest{
		Name:        "Snapshot Replay: " + snap.Name,
		Description: "Ephemeral replay of snapshot " + snap.ID,
		Ephemeral:   true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create replay project: %w", err)
	}
	return p.ID, nil
}

// replayRunConfig starts from the request config and fills the gaps from the
// snapshot's frozen run config.
func replayRunConfig(snap *ent.Snapshot, override *models.RunConfig) models.RunConfig {
	rc := snap.SnapshotData.RunConfig
	if rc == nil {
		if override != nil {
			return *override
		}
		return models.RunConfig{}
	}

	cfg := mergedReplayConfig(rc.Config, override)
	if cfg.Mode == "" {
		cfg.Mode = rc.Mode
	}
	return cfg
}

// mergedReplayConfig overlays the override on the base config. Override
// fields win; mergo only fills what the override left zero.
func mergedReplayConfig(base models.RunConfig, override *models.RunConfig) models.RunConfig {
	if override == nil {
		return base
	}
	cfg := *override
	if err := mergo.Merge(&cfg, base); err != nil {
		return base
	}
	return cfg
}

func (s *Service) executePhases(ctx context.Context, phases, projectID, runID string) error {
	switch phases {
	case models.ReplayDesign:
		return s.pipeline.ExecuteDesignAndScenarioPhase(ctx, projectID, runID)
	case models.ReplayEvaluate:
		return s.pipeline.ExecuteEvaluateAndRankPhase(ctx, projectID, runID)
	default:
		return s.pipeline.ExecuteFullPipeline(ctx, projectID, runID)
	}
}

// collectOutcome reloads the replay's end state for invariant validation.
func (s *Service) collectOutcome(ctx context.Context, projectID, runID string) (Outcome, error) {
	var out Outcome

	r, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		return out, fmt.Errorf("failed to reload replay run: %w", err)
	}
	out.RunStatus = string(r.Status)
	out.DurationSeconds = runDuration(r)
	out.Metrics = r.Metrics
	if r.LlmUsage != nil {
		out.CostUSD = r.LlmUsage.CostUSD
	}

	candidates, err := s.candidates.ListCandidates(ctx, projectID, models.CandidateFilters{})
	if err != nil {
		return out, fmt.Errorf("failed to list candidates: %w", err)
	}
	out.CandidateCount = len(candidates)
	out.TopIScore = topIScore(candidates)

	if suite, err := s.scenarios.GetSuite(ctx, runID); err == nil {
		out.ScenarioCount = len(suite.Scenarios)
	}
	if n, err := s.evaluations.CountEvaluations(ctx, runID); err == nil {
		out.EvaluationCount = n
	}

	out.HardViolations, err = s.countHardViolations(ctx, projectID, candidates)
	if err != nil {
		return out, err
	}
	return out, nil
}

// countHardViolations counts candidates that fail at least one hard
// constraint according to their aggregated satisfaction results.
func (s *Service) countHardViolations(ctx context.Context, projectID string, candidates []*ent.Candidate) (int, error) {
	spec, err := s.specs.GetProblemSpec(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to load problem spec: %w", err)
	}

	hard := make(map[string]struct{})
	for _, c := range spec.Constraints {
		if c.Weight >= models.HardConstraintWeight {
			hard[c.Name] = struct{}{}
		}
	}
	if len(hard) == 0 {
		return 0, nil
	}

	count := 0
	for _, c := range candidates {
		if c.Scores == nil {
			continue
		}
		for name, result := range c.Scores.ConstraintSatisfaction {
			if _, isHard := hard[name]; isHard && !result.Satisfied {
				count++
				break
			}
		}
	}
	return count, nil
}
