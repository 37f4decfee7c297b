package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/pkg/models"
)

// summaryTopCandidates bounds the leaderboard inside a run summary.
const summaryTopCandidates = 3

// emitSummary posts the run summary as an agent message into the project's
// first chat session (newest-first ordering makes "first" the most recent).
// Fail-open: summary errors are logged and never fail the run.
func (o *Orchestrator) emitSummary(ex *execution) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r, err := o.deps.Runs.GetRun(ctx, ex.runID)
	if err != nil {
		ex.logger.Warn("Run summary skipped: failed to reload run", "error", err)
		return
	}

	sessions, err := o.deps.Chats.ListSessions(ctx, ex.projectID)
	if err != nil {
		ex.logger.Warn("Run summary skipped: failed to list chat sessions", "error", err)
		return
	}
	if len(sessions) == 0 {
		ex.logger.Debug("Run summary skipped: project has no chat sessions")
		return
	}

	summary := models.RunSummary{
		RunID:    ex.runID,
		Status:   string(r.Status),
		LLMUsage: r.LlmUsage,
	}
	if r.ErrorSummary != nil {
		summary.ErrorSummary = *r.ErrorSummary
	}
	if r.Metrics != nil {
		summary.Phases = r.Metrics.Phases
	}

	candidates, err := o.deps.Candidates.ListCandidates(ctx, ex.projectID, models.CandidateFilters{})
	if err != nil {
		ex.logger.Warn("Run summary: failed to list candidates", "error", err)
	} else {
		summary.CandidateCount = len(candidates)
		summary.TopCandidates = topCandidates(candidates)
	}
	if suite, err := o.deps.Scenarios.GetSuite(ctx, ex.runID); err == nil {
		summary.ScenarioCount = len(suite.Scenarios)
	}
	if n, err := o.deps.Evaluations.CountEvaluations(ctx, ex.runID); err == nil {
		summary.EvaluationCount = n
	}

	metadata, err := summaryMetadata(summary)
	if err != nil {
		ex.logger.Warn("Run summary skipped: failed to serialize", "error", err)
		return
	}

	msg, err := o.deps.Chats.CreateMessage(ctx, models.CreateMessageRequest{
		ChatSessionID: sessions[0].ID,
		Role:          models.RoleAgent,
		Content:       summaryContent(summary),
		Metadata:      metadata,
	})
	if err != nil {
		ex.logger.Warn("Run summary skipped: failed to create message", "error", err)
		return
	}
	if err := o.deps.Runs.SetRunSummaryMessageID(ctx, ex.runID, msg.ID); err != nil {
		ex.logger.Warn("Run summary: failed to record message id", "error", err)
	}
}

// topCandidates picks the highest-I ranked candidates for the leaderboard.
func topCandidates(candidates []*ent.Candidate) []models.RunSummaryCandidate {
	scored := make([]*ent.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Scores != nil && c.Scores.I != nil {
			scored = append(scored, c)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].Scores.I > *scored[j].Scores.I
	})
	if len(scored) > summaryTopCandidates {
		scored = scored[:summaryTopCandidates]
	}

	top := make([]models.RunSummaryCandidate, len(scored))
	for i, c := range scored {
		top[i] = models.RunSummaryCandidate{
			CandidateID: c.ID,
			Rank:        i + 1,
			I:           c.Scores.I,
			Status:      string(c.Status),
		}
	}
	return top
}

// summaryMetadata converts the summary to the message metadata map.
func summaryMetadata(summary models.RunSummary) (map[string]any, error) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return map[string]any{"run_summary": m}, nil
}

// summaryContent renders the human-readable message body.
func summaryContent(summary models.RunSummary) string {
	if summary.ErrorSummary != "" {
		return fmt.Sprintf("Run %s %s: %s", summary.RunID, summary.Status, summary.ErrorSummary)
	}
	return fmt.Sprintf("Run %s %s: %d candidates, %d scenarios, %d evaluations",
		summary.RunID, summary.Status, summary.CandidateCount, summary.ScenarioCount, summary.EvaluationCount)
}
