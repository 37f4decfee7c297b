package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/services"
)

// RunSnapshotTests replays a batch of snapshots sequentially as regression
// tests. stop_on_first_failure skips the remainder after the first failed or
// errored replay; cost_limit_usd skips the remainder once the accumulated
// cost reaches the limit.
func (s *Service) RunSnapshotTests(ctx context.Context, req models.SnapshotTestRequest) (*models.SnapshotTestReport, error) {
	if len(req.SnapshotIDs) == 0 {
		return nil, services.NewValidationError("snapshot_ids", "required")
	}

	report := &models.SnapshotTestReport{
		Summary: models.TestSummary{Total: len(req.SnapshotIDs)},
		Results: make([]models.SnapshotTestResult, 0, len(req.SnapshotIDs)),
	}

	skipRemainder := false
	skipReason := ""
	for _, snapshotID := range req.SnapshotIDs {
		if !skipRemainder && req.CostLimitUSD != nil && report.TotalCostUSD >= *req.CostLimitUSD {
			skipRemainder = true
			skipReason = fmt.Sprintf("cost limit $%.2f reached", *req.CostLimitUSD)
			s.logger.Warn("Snapshot test batch aborted", "reason", skipReason)
		}
		if skipRemainder {
			report.Results = append(report.Results, models.SnapshotTestResult{
				SnapshotID: snapshotID,
				Status:     models.TestSkipped,
				Message:    skipReason,
			})
			report.Summary.Skipped++
			continue
		}

		result := s.runSnapshotTest(ctx, snapshotID, req.RunConfig)
		report.Results = append(report.Results, result)
		report.TotalCostUSD += result.CostUSD

		switch result.Status {
		case models.TestPassed:
			report.Summary.Passed++
		default:
			report.Summary.Failed++
			if req.StopOnFirstFailure {
				skipRemainder = true
				skipReason = fmt.Sprintf("stopped after %s failed", snapshotID)
			}
		}
	}

	s.logger.Info("Snapshot test batch finished",
		"total", report.Summary.Total, "passed", report.Summary.Passed,
		"failed", report.Summary.Failed, "skipped", report.Summary.Skipped,
		"total_cost_usd", report.TotalCostUSD)
	return report, nil
}

// runSnapshotTest replays one snapshot and scores the result.
func (s *Service) runSnapshotTest(ctx context.Context, snapshotID string, cfg *models.RunConfig) models.SnapshotTestResult {
	result := models.SnapshotTestResult{SnapshotID: snapshotID}

	snap, err := s.snapshots.GetSnapshot(ctx, snapshotID)
	if err != nil {
		result.Status = models.TestError
		result.Message = err.Error()
		return result
	}
	result.Name = snap.Name

	started := time.Now()
	replay, err := s.Replay(ctx, snapshotID, models.ReplaySnapshotRequest{RunConfig: cfg})
	result.DurationSeconds = time.Since(started).Seconds()
	if err != nil {
		result.Status = models.TestError
		result.Message = err.Error()
		return result
	}

	result.CostUSD = replay.CostUSD
	result.InvariantResults = replay.InvariantResults
	result.Delta = s.referenceDelta(ctx, snap.ReferenceMetrics, replay)

	if replay.AllPassed {
		result.Status = models.TestPassed
	} else {
		result.Status = models.TestFailed
		result.Message = "invariants failed"
	}
	return result
}

// referenceDelta compares the replay against the snapshot's reference
// metrics. Snapshots captured without a source run carry no reference.
func (s *Service) referenceDelta(ctx context.Context, ref *models.ReferenceMetrics, replay *models.ReplayResult) *models.ReferenceDelta {
	if ref == nil {
		return nil
	}

	outcome, err := s.collectOutcome(ctx, replay.ProjectID, replay.RunID)
	if err != nil {
		s.logger.Warn("Failed to compute reference delta", "run_id", replay.RunID, "error", err)
		return nil
	}

	delta := &models.ReferenceDelta{
		CandidateCount:  countDelta(ref.CandidateCount, outcome.CandidateCount),
		ScenarioCount:   countDelta(ref.ScenarioCount, outcome.ScenarioCount),
		EvaluationCount: countDelta(ref.EvaluationCount, outcome.EvaluationCount),
		TopIScore: models.ScoreDelta{
			Reference: ref.TopIScore,
			Actual:    outcome.TopIScore,
		},
	}
	if ref.TopIScore != nil && outcome.TopIScore != nil {
		d := *outcome.TopIScore - *ref.TopIScore
		delta.TopIScore.Delta = &d
	}
	return delta
}

func countDelta(reference, actual int) models.CountDelta {
	return models.CountDelta{Reference: reference, Actual: actual, Delta: actual - reference}
}
