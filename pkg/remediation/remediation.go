// Package remediation resolves filed issues by patching project artifacts
// and rerunning the affected pipeline phases. Patches flow through the spec
// service so provenance is recorded; reruns go through the orchestrator.
package remediation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/issue"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
	"github.com/assaylab/assay/pkg/services"
)

// PipelineExecutor is the slice of the orchestrator remediation drives.
type PipelineExecutor interface {
	ExecuteEvaluateAndRankPhase(ctx context.Context, projectID, runID string) error
	ExecuteFullPipeline(ctx context.Context, projectID, runID string) error
}

// SpecPatch replaces exactly the problem spec fields that are present.
// Absent fields keep their current values.
type SpecPatch struct {
	Constraints *[]models.Constraint `json:"constraints,omitempty"`
	Goals       *[]string            `json:"goals,omitempty"`
	Resolution  *string              `json:"resolution,omitempty"`
	Mode        *string              `json:"mode,omitempty"`
}

// ResolveRequest parameterizes one remediation. Action, when empty, defaults
// from the issue's severity. RunID, when empty, falls back to the issue's
// linked run.
type ResolveRequest struct {
	Action       string            `json:"action,omitempty"`
	RunID        string            `json:"run_id,omitempty"`
	SpecPatch    *SpecPatch        `json:"spec_patch,omitempty"`
	ModelPatch   map[string]any    `json:"model_patch,omitempty"`
	CandidateIDs []string          `json:"candidate_ids,omitempty"`
	RunConfig    *models.RunConfig `json:"run_config,omitempty"`
}

// Engine applies remediations and resolves issues.
type Engine struct {
	issues     *services.IssueService
	specs      *services.SpecService
	runs       *services.RunService
	candidates *services.CandidateService
	pipeline   PipelineExecutor
	logger     *slog.Logger
}

// NewEngine creates a remediation Engine.
func NewEngine(issues *services.IssueService, specs *services.SpecService, runs *services.RunService,
	candidates *services.CandidateService, pipeline PipelineExecutor) *Engine {
	return &Engine{
		issues:     issues,
		specs:      specs,
		runs:       runs,
		candidates: candidates,
		pipeline:   pipeline,
		logger:     slog.With("component", "remediation"),
	}
}

// Resolve applies the remediation for an open issue and marks it resolved.
// The returned issue carries the remediation record, including any action
// auto-upgrade.
func (e *Engine) Resolve(ctx context.Context, issueID string, req ResolveRequest) (*ent.Issue, error) {
	is, err := e.issues.GetIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if is.ResolutionStatus != issue.ResolutionStatusOpen {
		return nil, fmt.Errorf("%w: issue %s is already %s", services.ErrInvalidTransition, issueID, is.ResolutionStatus)
	}

	action := req.Action
	if action == "" {
		action = defaultAction(string(is.Severity), e.hasCandidateTargets(is, req))
	}
	if !models.ValidRemediationAction(action) {
		return nil, services.NewValidationError("action",
			"must be patch_and_rescore, partial_rerun, full_rerun or invalidate_candidates")
	}

	record := models.RemediationRecord{Action: action}

	// patch_and_rescore and partial_rerun need a run to rerun. Without one
	// the action upgrades to a full rerun.
	targetRunID := req.RunID
	if targetRunID == "" && is.RunID != nil {
		targetRunID = *is.RunID
	}
	if targetRunID == "" && (action == models.ActionPatchAndRescore || action == models.ActionPartialRerun) {
		record.ActionUpgraded = true
		record.OriginalAction = action
		action = models.ActionFullRerun
		record.Action = action
		e.logger.Info("Remediation action upgraded: no run to rerun",
			"issue_id", issueID, "original_action", record.OriginalAction)
	}

	if undersizedAction(action, string(is.Severity)) {
		e.logger.Warn("patch_and_rescore chosen for a non-minor issue; proceeding",
			"issue_id", issueID, "severity", is.Severity)
	}

	if req.SpecPatch != nil {
		if err := e.applySpecPatch(ctx, is, req.SpecPatch); err != nil {
			return nil, err
		}
		record.PatchedSpec = true
	}
	if req.ModelPatch != nil {
		if err := e.applyModelPatch(ctx, is, req.ModelPatch); err != nil {
			return nil, err
		}
		record.PatchedModel = true
	}

	switch action {
	case models.ActionPatchAndRescore, models.ActionPartialRerun:
		if err := e.pipeline.ExecuteEvaluateAndRankPhase(ctx, is.ProjectID, targetRunID); err != nil {
			return nil, fmt.Errorf("remediation rerun failed: %w", err)
		}
		record.RunID = targetRunID
	case models.ActionFullRerun:
		runID, err := e.fullRerun(ctx, is, req.RunConfig)
		if err != nil {
			return nil, err
		}
		record.RunID = runID
	case models.ActionInvalidateCandidates:
		invalidated, skipped, err := e.invalidateCandidates(ctx, is, req.CandidateIDs)
		if err != nil {
			return nil, err
		}
		record.InvalidatedIDs = invalidated
		record.SkippedIDs = skipped
	}

	resolved, err := e.issues.ResolveIssue(ctx, issueID, record)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve issue after remediation: %w", err)
	}
	e.logger.Info("Issue resolved", "issue_id", issueID, "action", action,
		"action_upgraded", record.ActionUpgraded, "run_id", record.RunID)
	return resolved, nil
}

// undersizedAction reports whether a rescore-only action was chosen for an
// issue severe enough that it probably deserves a rerun. Allowed, but
// flagged.
func undersizedAction(action, severity string) bool {
	return action == models.ActionPatchAndRescore && severity != models.SeverityMinor
}

// defaultAction maps severity to the default remediation action.
func defaultAction(severity string, hasCandidates bool) string {
	switch severity {
	case models.SeverityMinor:
		return models.ActionPatchAndRescore
	case models.SeverityImportant:
		return models.ActionPartialRerun
	default: // catastrophic
		if hasCandidates {
			return models.ActionInvalidateCandidates
		}
		return models.ActionFullRerun
	}
}

func (e *Engine) hasCandidateTargets(is *ent.Issue, req ResolveRequest) bool {
	return len(req.CandidateIDs) > 0 || is.CandidateID != nil
}

// applySpecPatch validates the whole patch up front so an invalid enum
// rejects it without partial application, then replaces exactly the fields
// present.
func (e *Engine) applySpecPatch(ctx context.Context, is *ent.Issue, patch *SpecPatch) error {
	if patch.Resolution != nil && !models.ValidResolution(*patch.Resolution) {
		return services.NewValidationError("spec_patch.resolution", "must be coarse, medium or fine")
	}
	if patch.Mode != nil && !models.ValidMode(*patch.Mode) {
		return services.NewValidationError("spec_patch.mode", "must be full_search, eval_only or seeded")
	}
	if patch.Constraints != nil {
		if err := models.ValidateConstraints(*patch.Constraints); err != nil {
			return services.NewValidationError("spec_patch.constraints", err.Error())
		}
	}

	spec, err := e.specs.GetProblemSpec(ctx, is.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to load problem spec for patch: %w", err)
	}

	upsert := models.UpsertProblemSpecRequest{
		ProjectID:   is.ProjectID,
		Constraints: spec.Constraints,
		Goals:       spec.Goals,
		Resolution:  string(spec.Resolution),
		Mode:        string(spec.Mode),
		Provenance: &provenance.Entry{
			Type:        provenance.TypeFeedbackPatch,
			Actor:       provenance.ActorUser,
			Source:      "issue:" + is.ID,
			Description: "problem spec patched during remediation",
		},
	}
	if patch.Constraints != nil {
		upsert.Constraints = *patch.Constraints
	}
	if patch.Goals != nil {
		upsert.Goals = *patch.Goals
	}
	if patch.Resolution != nil {
		upsert.Resolution = *patch.Resolution
	}
	if patch.Mode != nil {
		upsert.Mode = *patch.Mode
	}

	if _, err := e.specs.UpsertProblemSpec(ctx, upsert); err != nil {
		return fmt.Errorf("failed to apply spec patch: %w", err)
	}
	return nil
}

// applyModelPatch deep-merges the patch into model_data and appends a
// feedback_patch provenance entry to the merged tree.
func (e *Engine) applyModelPatch(ctx context.Context, is *ent.Issue, patch map[string]any) error {
	model, err := e.specs.GetWorldModel(ctx, is.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to load world model for patch: %w", err)
	}

	merged := DeepMerge(model.ModelData, patch)
	merged = provenance.AppendToTree(merged, provenance.Entry{
		Type:        provenance.TypeFeedbackPatch,
		Actor:       provenance.ActorUser,
		Source:      "issue:" + is.ID,
		Description: "world model patched during remediation",
	})

	if _, err := e.specs.SetWorldModelData(ctx, is.ProjectID, merged); err != nil {
		return fmt.Errorf("failed to apply model patch: %w", err)
	}
	return nil
}

// fullRerun creates a fresh full_search run and executes the full pipeline.
func (e *Engine) fullRerun(ctx context.Context, is *ent.Issue, cfg *models.RunConfig) (string, error) {
	runConfig := models.DefaultRunConfig()
	if cfg != nil {
		runConfig = *cfg
	}
	runConfig.Mode = models.ModeFullSearch

	r, err := e.runs.CreateRun(ctx, models.CreateRunRequest{
		ProjectID: is.ProjectID,
		Config:    runConfig,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create remediation run: %w", err)
	}
	if err := e.pipeline.ExecuteFullPipeline(ctx, is.ProjectID, r.ID); err != nil {
		return r.ID, fmt.Errorf("remediation rerun failed: %w", err)
	}
	return r.ID, nil
}

// invalidateCandidates rejects the named candidates. Ids outside the issue's
// project, unknown ids and already-rejected candidates are reported as
// skipped rather than failing the remediation.
func (e *Engine) invalidateCandidates(ctx context.Context, is *ent.Issue, ids []string) (invalidated, skipped []string, err error) {
	if len(ids) == 0 && is.CandidateID != nil {
		ids = []string{*is.CandidateID}
	}
	if len(ids) == 0 {
		return nil, nil, services.NewValidationError("candidate_ids", "required for invalidate_candidates")
	}

	entry := &provenance.Entry{
		Type:        provenance.TypeCandidateInvalidated,
		Actor:       provenance.ActorUser,
		Source:      "issue:" + is.ID,
		Description: "invalidated during remediation",
	}
	for _, id := range ids {
		c, err := e.candidates.GetCandidate(ctx, id)
		if errors.Is(err, services.ErrNotFound) {
			skipped = append(skipped, id)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load candidate %s: %w", id, err)
		}
		if c.ProjectID != is.ProjectID {
			e.logger.Warn("Skipping candidate outside issue project",
				"candidate_id", id, "project_id", c.ProjectID, "issue_project_id", is.ProjectID)
			skipped = append(skipped, id)
			continue
		}

		_, err = e.candidates.UpdateCandidateStatus(ctx, id, models.CandidateRejected, entry)
		if errors.Is(err, services.ErrInvalidTransition) {
			skipped = append(skipped, id)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to invalidate candidate %s: %w", id, err)
		}
		invalidated = append(invalidated, id)
	}
	return invalidated, skipped, nil
}
