package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/pkg/models"
)

// RunService manages run lifecycle. UpdateRunStatus is the sole mutator of
// Run.status; nothing else may write that column.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// legalRunTransitions is the run status machine. completed is sticky: no
// transition leaves it. running→failed is the rescue path and is always
// legal, including from outside the owning orchestrator (orphan recovery).
var legalRunTransitions = map[run.Status][]run.Status{
	run.StatusCreated: {run.StatusRunning, run.StatusFailed},
	run.StatusRunning: {run.StatusCompleted, run.StatusFailed, run.StatusCancelled},
}

func legalRunTransition(from, to run.Status) bool {
	if from == to {
		// Idempotent repeat of a terminal write (e.g. two failure paths
		// racing) is harmless.
		return true
	}
	for _, next := range legalRunTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateRun creates a run on a project. Zero config fields are filled from
// the defaults; out-of-range candidate/scenario counts are rejected here
// (preflight clamps before calling when driven through the API).
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	cfg := req.Config
	if cfg.NumCandidates == 0 {
		cfg.NumCandidates = models.DefaultCandidates
	}
	if cfg.NumScenarios == 0 {
		cfg.NumScenarios = models.DefaultScenarios
	}
	if cfg.NumCandidates < models.MinCandidates || cfg.NumCandidates > models.MaxCandidates {
		return nil, NewValidationError("num_candidates",
			fmt.Sprintf("must be in [%d, %d]", models.MinCandidates, models.MaxCandidates))
	}
	if cfg.NumScenarios < models.MinScenarios || cfg.NumScenarios > models.MaxScenarios {
		return nil, NewValidationError("num_scenarios",
			fmt.Sprintf("must be in [%d, %d]", models.MinScenarios, models.MaxScenarios))
	}
	if cfg.Mode != "" && !models.ValidMode(cfg.Mode) {
		return nil, NewValidationError("mode", "must be full_search, eval_only or seeded")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Project.Query().Where(project.IDEQ(req.ProjectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	create := s.client.Run.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetConfig(cfg).
		SetStatus(run.StatusCreated)

	if req.ChatSessionID != nil {
		create.SetChatSessionID(*req.ChatSessionID)
	}
	if req.UITriggerID != "" {
		create.SetUITriggerID(req.UITriggerID).
			SetUITriggerAt(time.Now())
	}
	if req.UITriggerSource != "" {
		create.SetUITriggerSource(req.UITriggerSource)
	}
	if req.UITriggerMetadata != nil {
		create.SetUITriggerMetadata(req.UITriggerMetadata)
	}
	if req.RecommendedConfig != nil {
		create.SetRecommendedConfig(req.RecommendedConfig)
	}
	if req.Enqueue {
		create.SetQueuedAt(time.Now())
	}

	r, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return r, nil
}

// GetRun retrieves a run by id.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Query().
		Where(run.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns lists a project's runs newest-first.
func (s *RunService) ListRuns(ctx context.Context, projectID string, filters models.RunFilters) ([]*ent.Run, error) {
	query := s.client.Run.Query()
	if projectID != "" {
		query = query.Where(run.ProjectIDEQ(projectID))
	}
	if filters.Status != "" {
		if err := run.StatusValidator(run.Status(filters.Status)); err != nil {
			return nil, NewValidationError("status", "unknown run status")
		}
		query = query.Where(run.StatusEQ(run.Status(filters.Status)))
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	runs, err := query.
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// ListRunsByChatSession lists runs triggered from a chat session, newest-first.
func (s *RunService) ListRunsByChatSession(ctx context.Context, chatSessionID string) ([]*ent.Run, error) {
	runs, err := s.client.Run.Query().
		Where(run.ChatSessionIDEQ(chatSessionID)).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs by chat session: %w", err)
	}
	return runs, nil
}

// UpdateRunStatus transitions a run's status, enforcing the state machine.
// The row is locked for the duration of the check-and-set so concurrent
// failure paths cannot demote a completed run. Options set timestamps,
// error summary (truncated), metrics and usage alongside the transition.
func (s *RunService) UpdateRunStatus(httpCtx context.Context, runID string, status run.Status, opts models.RunStatusOptions) (*ent.Run, error) {
	if err := run.StatusValidator(status); err != nil {
		return nil, NewValidationError("status", "unknown run status")
	}

	// Background context: terminal writes must survive a cancelled caller.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.Run.Query().
		Where(run.IDEQ(runID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock run: %w", err)
	}

	if !legalRunTransition(current.Status, status) {
		return nil, fmt.Errorf("%w: run %s cannot move %s → %s",
			ErrInvalidTransition, runID, current.Status, status)
	}

	update := current.Update().SetStatus(status)
	if opts.StartedAt != nil && current.StartedAt == nil {
		update.SetStartedAt(*opts.StartedAt)
	}
	if opts.CompletedAt != nil {
		update.SetCompletedAt(*opts.CompletedAt)
	}
	if opts.ErrorSummary != nil {
		update.SetErrorSummary(models.TruncateErrorSummary(*opts.ErrorSummary))
	}
	if opts.Metrics != nil {
		update.SetMetrics(opts.Metrics)
	}
	if opts.LLMUsage != nil {
		update.SetLlmUsage(opts.LLMUsage)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update run status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run status: %w", err)
	}
	return updated, nil
}

// SetRunMetrics persists the instrumentation blob without touching status.
// Used on both success and failure paths so partially collected metrics are
// never lost.
func (s *RunService) SetRunMetrics(httpCtx context.Context, runID string, metrics *models.RunMetrics, usage *models.AggregatedUsage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Run.UpdateOneID(runID)
	if metrics != nil {
		update.SetMetrics(metrics)
	}
	if usage != nil {
		update.SetLlmUsage(usage)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set run metrics: %w", err)
	}
	return nil
}

// SetRunSummaryMessageID records the chat message carrying the run summary.
func (s *RunService) SetRunSummaryMessageID(httpCtx context.Context, runID, messageID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Run.UpdateOneID(runID).
		SetRunSummaryMessageID(messageID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set run summary message id: %w", err)
	}
	return nil
}

// ClaimNextQueuedRun atomically claims the oldest queued run using
// FOR UPDATE SKIP LOCKED, marking it claimed by the given pod. Returns
// (nil, nil) when the queue is empty.
func (s *RunService) ClaimNextQueuedRun(httpCtx context.Context, podID string) (*ent.Run, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	r, err := tx.Run.Query().
		Where(
			run.StatusEQ(run.StatusCreated),
			run.QueuedAtNotNil(),
			run.ClaimedByIsNil(),
		).
		Order(ent.Asc(run.FieldQueuedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query queued run: %w", err)
	}

	now := time.Now()
	r, err = r.Update().
		SetClaimedBy(podID).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return r, nil
}

// Heartbeat refreshes the claim timestamp for orphan detection.
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	err := s.client.Run.UpdateOneID(runID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// FindOrphanedRuns returns running runs whose heartbeat is older than the
// threshold. All pods scan independently; recovery is idempotent.
func (s *RunService) FindOrphanedRuns(ctx context.Context, threshold time.Duration) ([]*ent.Run, error) {
	cutoff := time.Now().Add(-threshold)

	runs, err := s.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.LastHeartbeatAtNotNil(),
			run.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned runs: %w", err)
	}
	return runs, nil
}

// QueueDepth counts runs waiting for a worker.
func (s *RunService) QueueDepth(ctx context.Context) (int, error) {
	n, err := s.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusCreated),
			run.QueuedAtNotNil(),
			run.ClaimedByIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued runs: %w", err)
	}
	return n, nil
}

// CountRunningRuns counts running runs across all pods. The worker pool's
// capacity check reads this.
func (s *RunService) CountRunningRuns(ctx context.Context) (int, error) {
	n, err := s.client.Run.Query().
		Where(run.StatusEQ(run.StatusRunning)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running runs: %w", err)
	}
	return n, nil
}

// FindRunsClaimedBy returns non-terminal runs claimed by a pod. Startup
// orphan cleanup fails these when the pod restarts mid-execution.
func (s *RunService) FindRunsClaimedBy(ctx context.Context, podID string) ([]*ent.Run, error) {
	runs, err := s.client.Run.Query().
		Where(
			run.ClaimedByEQ(podID),
			run.StatusIn(run.StatusCreated, run.StatusRunning),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find claimed runs: %w", err)
	}
	return runs, nil
}
