// Package snapshot freezes project state into versioned snapshots and
// replays them as regression tests. Capture records the problem spec, world
// model, run config and chat context plus the source run's outcome as
// reference metrics; replay restores into an ephemeral project, reruns the
// pipeline and validates the snapshot's invariants against the result.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
	"github.com/assaylab/assay/pkg/services"
)

// DefaultChatMessageLimit bounds the captured chat context when the request
// doesn't set one.
const DefaultChatMessageLimit = 20

// PipelineExecutor is the slice of the orchestrator replays drive.
type PipelineExecutor interface {
	ExecuteFullPipeline(ctx context.Context, projectID, runID string) error
	ExecuteDesignAndScenarioPhase(ctx context.Context, projectID, runID string) error
	ExecuteEvaluateAndRankPhase(ctx context.Context, projectID, runID string) error
}

// Service implements capture, restore, replay and batch snapshot tests.
type Service struct {
	snapshots   *services.SnapshotService
	projects    *services.ProjectService
	specs       *services.SpecService
	runs        *services.RunService
	candidates  *services.CandidateService
	scenarios   *services.ScenarioService
	evaluations *services.EvaluationService
	chats       *services.ChatService
	pipeline    PipelineExecutor
	logger      *slog.Logger
}

// Deps wires the snapshot service's collaborators.
type Deps struct {
	Snapshots   *services.SnapshotService
	Projects    *services.ProjectService
	Specs       *services.SpecService
	Runs        *services.RunService
	Candidates  *services.CandidateService
	Scenarios   *services.ScenarioService
	Evaluations *services.EvaluationService
	Chats       *services.ChatService
	Pipeline    PipelineExecutor
}

// NewService creates a snapshot Service.
func NewService(deps Deps) *Service {
	return &Service{
		snapshots:   deps.Snapshots,
		projects:    deps.Projects,
		specs:       deps.Specs,
		runs:        deps.Runs,
		candidates:  deps.Candidates,
		scenarios:   deps.Scenarios,
		evaluations: deps.Evaluations,
		chats:       deps.Chats,
		pipeline:    deps.Pipeline,
		logger:      slog.With("component", "snapshot"),
	}
}

// Capture freezes the project's current problem spec and world model, plus
// the named run's config and outcome when given. Both artifacts must exist.
func (s *Service) Capture(ctx context.Context, projectID string, req models.CaptureSnapshotRequest) (*ent.Snapshot, error) {
	prereqs, err := s.specs.CheckPrerequisites(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check prerequisites: %w", err)
	}
	if !prereqs.ProblemSpec || !prereqs.WorldModel {
		var missing []string
		if !prereqs.ProblemSpec {
			missing = append(missing, "problem_spec")
		}
		if !prereqs.WorldModel {
			missing = append(missing, "world_model")
		}
		existingIDs, idErr := s.projects.ListProjectIDs(ctx)
		if idErr != nil {
			s.logger.Error("Failed to list project ids for precondition detail", "error", idErr)
		}
		return nil, &services.PreconditionError{
			Missing:            missing,
			ProjectID:          projectID,
			ExistingProjectIDs: existingIDs,
		}
	}

	spec, err := s.specs.GetProblemSpec(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load problem spec: %w", err)
	}
	model, err := s.specs.GetWorldModel(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load world model: %w", err)
	}

	data := models.SnapshotData{
		Version: models.SnapshotVersion,
		ProblemSpec: &models.SnapshotProblemSpec{
			Constraints:   spec.Constraints,
			Goals:         spec.Goals,
			Resolution:    string(spec.Resolution),
			Mode:          string(spec.Mode),
			ProvenanceLog: spec.ProvenanceLog,
		},
		WorldModel: &models.SnapshotWorldModel{ModelData: model.ModelData},
	}

	var ref *models.ReferenceMetrics
	if req.RunID != nil {
		r, err := s.runs.GetRun(ctx, *req.RunID)
		if err != nil {
			return nil, fmt.Errorf("failed to load run: %w", err)
		}
		if r.ProjectID != projectID {
			return nil, fmt.Errorf("%w: run %s does not belong to project %s", services.ErrNotFound, r.ID, projectID)
		}
		data.RunConfig = &models.SnapshotRunConfig{Mode: r.Config.Mode, Config: r.Config}
		ref, err = s.referenceMetrics(ctx, projectID, r)
		if err != nil {
			return nil, err
		}
	}

	if req.IncludeChat {
		data.ChatContext, err = s.chatContext(ctx, projectID, req.ChatMessageLimit)
		if err != nil {
			return nil, err
		}
	}

	snap, err := s.snapshots.CreateSnapshot(ctx, projectID, req.Name, req.Description, data, ref, req.Tags, req.Invariants)
	if err != nil {
		return nil, err
	}

	// Record the capture on the spec's provenance log. Fail-open: the
	// snapshot itself is already committed.
	if _, err := s.specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
		ProjectID:   projectID,
		Constraints: spec.Constraints,
		Goals:       spec.Goals,
		Resolution:  string(spec.Resolution),
		Mode:        string(spec.Mode),
		Provenance: &provenance.Entry{
			Type:         provenance.TypeSnapshotCaptured,
			Actor:        provenance.ActorUser,
			Source:       "snapshot:" + snap.ID,
			ReferenceIDs: []string{snap.ID},
		},
	}); err != nil {
		s.logger.Warn("Failed to record snapshot capture provenance", "snapshot_id", snap.ID, "error", err)
	}

	s.logger.Info("Snapshot captured", "snapshot_id", snap.ID, "project_id", projectID, "name", req.Name)
	return snap, nil
}

// referenceMetrics records the source run's outcome at capture time.
func (s *Service) referenceMetrics(ctx context.Context, projectID string, r *ent.Run) (*models.ReferenceMetrics, error) {
	candidates, err := s.candidates.ListCandidates(ctx, projectID, models.CandidateFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	ref := &models.ReferenceMetrics{
		CandidateCount: len(candidates),
		Status:         string(r.Status),
		LLMUsage:       r.LlmUsage,
		TopIScore:      topIScore(candidates),
		Metrics:        r.Metrics,
	}
	if r.ErrorSummary != nil {
		ref.ErrorSummary = *r.ErrorSummary
	}
	if r.StartedAt != nil && r.CompletedAt != nil {
		d := r.CompletedAt.Sub(*r.StartedAt).Seconds()
		ref.DurationSeconds = &d
	}
	if suite, err := s.scenarios.GetSuite(ctx, r.ID); err == nil {
		ref.ScenarioCount = len(suite.Scenarios)
	}
	if n, err := s.evaluations.CountEvaluations(ctx, r.ID); err == nil {
		ref.EvaluationCount = n
	}
	return ref, nil
}

// chatContext freezes the last messages of the newest setup session. A
// project without a setup session yields no context rather than an error.
func (s *Service) chatContext(ctx context.Context, projectID string, limit int) ([]models.SnapshotMessage, error) {
	if limit <= 0 {
		limit = DefaultChatMessageLimit
	}

	session, err := s.chats.NewestSetupSession(ctx, projectID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find setup session: %w", err)
	}

	messages, err := s.chats.LastMessages(ctx, session.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat context: %w", err)
	}

	frozen := make([]models.SnapshotMessage, len(messages))
	for i, m := range messages {
		frozen[i] = models.SnapshotMessage{
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return frozen, nil
}

// topIScore returns the max candidate I score, or nil when none is scored.
func topIScore(candidates []*ent.Candidate) *float64 {
	var top *float64
	for _, c := range candidates {
		if c.Scores == nil || c.Scores.I == nil {
			continue
		}
		if top == nil || *c.Scores.I > *top {
			v := *c.Scores.I
			top = &v
		}
	}
	return top
}

// Restore upserts a snapshot's problem spec and world model into the target
// project. Only version "1.0" snapshots are restorable.
func (s *Service) Restore(ctx context.Context, snapshotID, targetProjectID string) error {
	snap, err := s.snapshots.GetSnapshot(ctx, snapshotID)
	if err != nil {
		return err
	}
	if snap.SnapshotData.Version != models.SnapshotVersion {
		return services.NewValidationError("snapshot_data",
			fmt.Sprintf("version %q is not restorable by this build", snap.SnapshotData.Version))
	}
	if _, err := s.projects.GetProject(ctx, targetProjectID); err != nil {
		return err
	}
	return s.restoreInto(ctx, snap, targetProjectID)
}

func (s *Service) restoreInto(ctx context.Context, snap *ent.Snapshot, targetProjectID string) error {
	entry := provenance.Entry{
		Type:         provenance.TypeSnapshotRestored,
		Actor:        provenance.ActorSystem,
		Source:       "snapshot:" + snap.ID,
		ReferenceIDs: []string{snap.ID},
	}

	if ps := snap.SnapshotData.ProblemSpec; ps != nil {
		specEntry := entry
		if _, err := s.specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
			ProjectID:   targetProjectID,
			Constraints: ps.Constraints,
			Goals:       ps.Goals,
			Resolution:  ps.Resolution,
			Mode:        ps.Mode,
			Provenance:  &specEntry,
		}); err != nil {
			return fmt.Errorf("failed to restore problem spec: %w", err)
		}
	}
	if wm := snap.SnapshotData.WorldModel; wm != nil {
		modelEntry := entry
		if _, err := s.specs.UpsertWorldModel(ctx, models.UpsertWorldModelRequest{
			ProjectID:  targetProjectID,
			ModelData:  wm.ModelData,
			Provenance: &modelEntry,
		}); err != nil {
			return fmt.Errorf("failed to restore world model: %w", err)
		}
	}

	s.logger.Info("Snapshot restored", "snapshot_id", snap.ID, "project_id", targetProjectID)
	return nil
}

// runDuration computes a run's wall duration in seconds, nil when the run
// never completed.
func runDuration(r *ent.Run) *float64 {
	if r.StartedAt == nil || r.CompletedAt == nil {
		return nil
	}
	d := r.CompletedAt.Sub(*r.StartedAt).Seconds()
	return &d
}
