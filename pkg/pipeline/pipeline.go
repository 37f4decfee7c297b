// Package pipeline orchestrates run execution: design, scenario, evaluation
// and ranking phases over the store, with per-phase instrumentation and
// run summary emission. The orchestrator is the only writer of Run.status.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/ranking"
	"github.com/assaylab/assay/pkg/services"
)

// DefaultEvalConcurrency bounds the evaluation fan-out when the config
// doesn't say otherwise.
const DefaultEvalConcurrency = 4

// AgentGateway is the slice of the agent gateway the pipeline drives.
// *agent.Gateway implements it; tests use a gateway over a scripted client.
type AgentGateway interface {
	Design(ctx context.Context, runID string, task map[string]any) (*agent.DesignResponse, models.LLMUsage, error)
	GenerateScenarios(ctx context.Context, runID string, task map[string]any) (*agent.ScenarioResponse, models.LLMUsage, error)
	Evaluate(ctx context.Context, runID string, task map[string]any) (*agent.EvaluationResponse, models.LLMUsage, error)
}

// RunRanker ranks a run's cohort. *ranking.Ranker implements it.
type RunRanker interface {
	RankRun(ctx context.Context, projectID, runID string) (*ranking.Result, error)
}

// Deps wires the orchestrator's collaborators.
type Deps struct {
	Runs        *services.RunService
	Projects    *services.ProjectService
	Specs       *services.SpecService
	Candidates  *services.CandidateService
	Scenarios   *services.ScenarioService
	Evaluations *services.EvaluationService
	Chats       *services.ChatService
	Gateway     AgentGateway
	Ranker      RunRanker

	// EvalConcurrency bounds parallel evaluator calls; 0 means default.
	EvalConcurrency int
}

// Orchestrator executes runs phase by phase.
type Orchestrator struct {
	deps   Deps
	logger *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(deps Deps) *Orchestrator {
	if deps.EvalConcurrency <= 0 {
		deps.EvalConcurrency = DefaultEvalConcurrency
	}
	return &Orchestrator{
		deps:   deps,
		logger: slog.With("component", "pipeline"),
	}
}

// ExecuteDesignPhase runs the design phase only. An empty designer result is
// not an error for the single-phase operation.
func (o *Orchestrator) ExecuteDesignPhase(ctx context.Context, projectID, runID string) error {
	return o.execute(ctx, projectID, runID, []string{models.PhaseDesign}, false)
}

// ExecuteScenarioPhase runs the scenario phase only.
func (o *Orchestrator) ExecuteScenarioPhase(ctx context.Context, projectID, runID string) error {
	return o.execute(ctx, projectID, runID, []string{models.PhaseScenario}, false)
}

// ExecuteDesignAndScenarioPhase runs design then scenario under a single
// running transition with combined metrics.
func (o *Orchestrator) ExecuteDesignAndScenarioPhase(ctx context.Context, projectID, runID string) error {
	return o.execute(ctx, projectID, runID, []string{models.PhaseDesign, models.PhaseScenario}, false)
}

// ExecuteEvaluationPhase evaluates every un-evaluated (candidate, scenario)
// pair. Idempotent: a second call evaluates zero pairs.
func (o *Orchestrator) ExecuteEvaluationPhase(ctx context.Context, projectID, runID string) error {
	return o.execute(ctx, projectID, runID, []string{models.PhaseEvaluation}, false)
}

// ExecuteRankingPhase ranks the run's cohort. Ranking failure fails the run.
func (o *Orchestrator) ExecuteRankingPhase(ctx context.Context, projectID, runID string) error {
	return o.execute(ctx, projectID, runID, []string{models.PhaseRanking}, false)
}

// ExecuteEvaluateAndRankPhase runs evaluation then ranking.
func (o *Orchestrator) ExecuteEvaluateAndRankPhase(ctx context.Context, projectID, runID string) error {
	return o.execute(ctx, projectID, runID, []string{models.PhaseEvaluation, models.PhaseRanking}, false)
}

// ExecuteFullPipeline runs all four phases. Prerequisites are re-read with
// cold caches; a missing problem spec or world model fails the run with a
// detail listing the project ids that do exist. Design or scenario yielding
// zero items fails the run: a completed run must hold at least one candidate
// and one scenario.
func (o *Orchestrator) ExecuteFullPipeline(ctx context.Context, projectID, runID string) error {
	o.deps.Specs.InvalidateCaches()
	return o.execute(ctx, projectID, runID,
		[]string{models.PhaseDesign, models.PhaseScenario, models.PhaseEvaluation, models.PhaseRanking}, true)
}

// execute is the shared phase driver.
func (o *Orchestrator) execute(ctx context.Context, projectID, runID string, phases []string, fullPipeline bool) error {
	r, err := o.deps.Runs.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to resolve run: %w", err)
	}
	if r.ProjectID != projectID {
		return fmt.Errorf("%w: run %s does not belong to project %s", services.ErrNotFound, runID, projectID)
	}

	ex := &execution{
		o:         o,
		run:       r,
		projectID: projectID,
		runID:     runID,
		metrics:   models.RunMetrics{Phases: map[string]models.PhaseMetrics{}},
		logger:    o.logger.With("run_id", runID, "project_id", projectID),
	}
	if existing := r.Metrics; existing != nil {
		for name, pm := range existing.Phases {
			ex.metrics.Phases[name] = pm
		}
	}

	// Reruns on terminal runs (remediation) execute phases without driving
	// the status machine. Managed must be decided before the precondition
	// check so a precondition failure lands the run in failed.
	ex.managed = r.Status == run.StatusCreated || r.Status == run.StatusRunning

	if fullPipeline {
		if err := o.checkPreconditions(ctx, ex); err != nil {
			return err
		}
	}

	// max_runtime_s caps the whole execution.
	if r.Config.MaxRuntimeS != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*r.Config.MaxRuntimeS)*time.Second)
		defer cancel()
	}

	if ex.managed {
		now := time.Now()
		if _, err := o.deps.Runs.UpdateRunStatus(ctx, runID, run.StatusRunning,
			models.RunStatusOptions{StartedAt: &now}); err != nil {
			return fmt.Errorf("failed to start run: %w", err)
		}
	}

	for _, phase := range phases {
		if err := ctx.Err(); err != nil {
			return ex.fail(err)
		}
		if err := o.runPhase(ctx, ex, phase, fullPipeline); err != nil {
			return ex.fail(err)
		}
	}

	ex.persistMetrics()
	// completed is reserved for a successful full pipeline; single-phase
	// calls on a live run leave it running.
	if ex.managed && fullPipeline {
		now := time.Now()
		if _, err := o.deps.Runs.UpdateRunStatus(ctx, runID, run.StatusCompleted, models.RunStatusOptions{
			CompletedAt: &now,
			Metrics:     &ex.metrics,
			LLMUsage:    ex.totalUsage(),
		}); err != nil {
			return fmt.Errorf("failed to complete run: %w", err)
		}
	}
	ex.logger.Info("Run phases completed", "phases", phases)

	// The summary is only worth posting once the run is terminal: on full
	// pipeline completion, or after a phase rerun refreshed a terminal run.
	if fullPipeline || !ex.managed {
		o.emitSummary(ex)
	}
	return nil
}

// checkPreconditions fails the run when the project lacks a problem spec or
// world model, listing the project ids that do exist in the error detail.
func (o *Orchestrator) checkPreconditions(ctx context.Context, ex *execution) error {
	prereqs, err := o.deps.Specs.CheckPrerequisites(ctx, ex.projectID)
	if err != nil {
		return fmt.Errorf("failed to check prerequisites: %w", err)
	}
	if prereqs.ProblemSpec && prereqs.WorldModel {
		return nil
	}

	var missing []string
	if !prereqs.ProblemSpec {
		missing = append(missing, "problem_spec")
	}
	if !prereqs.WorldModel {
		missing = append(missing, "world_model")
	}

	existingIDs, idErr := o.deps.Projects.ListProjectIDs(ctx)
	if idErr != nil {
		ex.logger.Error("Failed to list project ids for precondition detail", "error", idErr)
	}
	precondition := &services.PreconditionError{
		Missing:            missing,
		ProjectID:          ex.projectID,
		ExistingProjectIDs: existingIDs,
	}

	ex.failWith(precondition.Error())
	return precondition
}

// runPhase dispatches and instruments one phase.
func (o *Orchestrator) runPhase(ctx context.Context, ex *execution, phase string, fullPipeline bool) error {
	started := time.Now()
	var (
		resources map[string]int
		usage     *models.AggregatedUsage
		err       error
	)

	switch phase {
	case models.PhaseDesign:
		resources, usage, err = o.designPhase(ctx, ex, fullPipeline)
	case models.PhaseScenario:
		resources, usage, err = o.scenarioPhase(ctx, ex, fullPipeline)
	case models.PhaseEvaluation:
		resources, usage, err = o.evaluationPhase(ctx, ex)
	case models.PhaseRanking:
		resources, usage, err = o.rankingPhase(ctx, ex)
	default:
		return fmt.Errorf("unknown phase %q", phase)
	}

	pm := models.PhaseMetrics{
		StartedAt:   started,
		CompletedAt: time.Now(),
		Resources:   resources,
		LLMUsage:    usage,
	}
	pm.DurationSeconds = pm.CompletedAt.Sub(pm.StartedAt).Seconds()
	if err != nil {
		pm.Error = err.Error()
	}
	ex.metrics.Phases[phase] = pm

	if err != nil {
		return fmt.Errorf("%s phase: %w", phase, err)
	}
	ex.logger.Info("Phase completed", "phase", phase,
		"duration_seconds", pm.DurationSeconds, "resources", resources)
	return nil
}

// execution carries the per-run state of one execute call.
type execution struct {
	o         *Orchestrator
	run       *ent.Run
	projectID string
	runID     string
	managed   bool
	metrics   models.RunMetrics
	logger    *slog.Logger
}

// totalUsage merges all phase aggregates into the run-level rollup.
func (ex *execution) totalUsage() *models.AggregatedUsage {
	parts := make([]*models.AggregatedUsage, 0, len(ex.metrics.Phases))
	for _, pm := range ex.metrics.Phases {
		parts = append(parts, pm.LLMUsage)
	}
	return agent.MergeAggregates(parts...)
}

// persistMetrics writes whatever was collected so far. Used on both the
// success and failure paths.
func (ex *execution) persistMetrics() {
	if err := ex.o.deps.Runs.SetRunMetrics(context.Background(), ex.runID, &ex.metrics, ex.totalUsage()); err != nil {
		ex.logger.Error("Failed to persist run metrics", "error", err)
	}
}

// fail transitions the run to failed with the collected metrics and returns
// err. Context cancellation is reported as "cancelled".
func (ex *execution) fail(err error) error {
	summary := err.Error()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		summary = "cancelled"
	}
	ex.failWith(summary)
	return err
}

// failWith performs the terminal failed write. The status service uses a
// background context internally so a cancelled caller can't block it.
// Already-completed runs keep their status (completed is sticky).
func (ex *execution) failWith(summary string) {
	if !ex.managed {
		ex.persistMetrics()
		ex.logger.Warn("Phase rerun failed on terminal run", "error_summary", summary)
		return
	}
	now := time.Now()
	_, err := ex.o.deps.Runs.UpdateRunStatus(context.Background(), ex.runID, run.StatusFailed, models.RunStatusOptions{
		CompletedAt:  &now,
		ErrorSummary: &summary,
		Metrics:      &ex.metrics,
		LLMUsage:     ex.totalUsage(),
	})
	if err != nil {
		ex.logger.Error("Failed to mark run failed", "error", err, "error_summary", summary)
	}
	ex.o.emitSummary(ex)
}
