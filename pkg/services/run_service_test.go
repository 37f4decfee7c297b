package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/pkg/database"
	"github.com/assaylab/assay/pkg/models"
	testdb "github.com/assaylab/assay/test/database"
)

func setupRunService(t *testing.T) (*database.Client, *RunService, *ent.Project) {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)

	p, err := projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name: "transit pricing",
	})
	require.NoError(t, err)

	return client, NewRunService(client.Client), p
}

func TestRunStatusMachine(t *testing.T) {
	_, runs, p := setupRunService(t)
	ctx := context.Background()

	newRun := func(t *testing.T) *ent.Run {
		t.Helper()
		r, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID})
		require.NoError(t, err)
		assert.Equal(t, run.StatusCreated, r.Status)
		return r
	}

	t.Run("created to running to completed", func(t *testing.T) {
		r := newRun(t)
		now := time.Now()

		r, err := runs.UpdateRunStatus(ctx, r.ID, run.StatusRunning, models.RunStatusOptions{StartedAt: &now})
		require.NoError(t, err)
		assert.Equal(t, run.StatusRunning, r.Status)
		assert.NotNil(t, r.StartedAt)

		r, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusCompleted, models.RunStatusOptions{CompletedAt: &now})
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, r.Status)
		assert.NotNil(t, r.CompletedAt)
	})

	t.Run("completed is sticky", func(t *testing.T) {
		r := newRun(t)
		_, err := runs.UpdateRunStatus(ctx, r.ID, run.StatusRunning, models.RunStatusOptions{})
		require.NoError(t, err)
		_, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusCompleted, models.RunStatusOptions{})
		require.NoError(t, err)

		_, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusFailed, models.RunStatusOptions{})
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusCancelled, models.RunStatusOptions{})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("created cannot complete directly", func(t *testing.T) {
		r := newRun(t)
		_, err := runs.UpdateRunStatus(ctx, r.ID, run.StatusCompleted, models.RunStatusOptions{})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("created can fail before starting", func(t *testing.T) {
		r := newRun(t)
		summary := "preconditions not met"
		r, err := runs.UpdateRunStatus(ctx, r.ID, run.StatusFailed, models.RunStatusOptions{ErrorSummary: &summary})
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, r.Status)
		require.NotNil(t, r.ErrorSummary)
		assert.Equal(t, summary, *r.ErrorSummary)
	})

	t.Run("running can be cancelled", func(t *testing.T) {
		r := newRun(t)
		_, err := runs.UpdateRunStatus(ctx, r.ID, run.StatusRunning, models.RunStatusOptions{})
		require.NoError(t, err)
		r, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusCancelled, models.RunStatusOptions{})
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, r.Status)
	})

	t.Run("terminal repeat is idempotent", func(t *testing.T) {
		r := newRun(t)
		_, err := runs.UpdateRunStatus(ctx, r.ID, run.StatusFailed, models.RunStatusOptions{})
		require.NoError(t, err)
		_, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusFailed, models.RunStatusOptions{})
		assert.NoError(t, err)
	})
}

func TestCreateRunValidation(t *testing.T) {
	_, runs, p := setupRunService(t)
	ctx := context.Background()

	t.Run("zero config gets defaults", func(t *testing.T) {
		r, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultCandidates, r.Config.NumCandidates)
		assert.Equal(t, models.DefaultScenarios, r.Config.NumScenarios)
	})

	t.Run("out of range candidates rejected", func(t *testing.T) {
		_, err := runs.CreateRun(ctx, models.CreateRunRequest{
			ProjectID: p.ID,
			Config:    models.RunConfig{NumCandidates: models.MaxCandidates + 1},
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		_, err := runs.CreateRun(ctx, models.CreateRunRequest{
			ProjectID: p.ID,
			Config:    models.RunConfig{Mode: "exhaustive"},
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("missing project is not found", func(t *testing.T) {
		_, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: "nope"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClaimNextQueuedRun(t *testing.T) {
	_, runs, p := setupRunService(t)
	ctx := context.Background()

	// Not enqueued: invisible to workers.
	direct, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID})
	require.NoError(t, err)

	first, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)
	second, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)

	depth, err := runs.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	claimed, err := runs.ClaimNextQueuedRun(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID, "oldest queued run goes first")
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "pod-a", *claimed.ClaimedBy)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	claimed2, err := runs.ClaimNextQueuedRun(ctx, "pod-b")
	require.NoError(t, err)
	require.NotNil(t, claimed2)
	assert.Equal(t, second.ID, claimed2.ID, "claimed runs are never handed out twice")

	claimed3, err := runs.ClaimNextQueuedRun(ctx, "pod-a")
	require.NoError(t, err)
	assert.Nil(t, claimed3, "empty queue returns nil")

	got, err := runs.GetRun(ctx, direct.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ClaimedBy, "non-enqueued run is not claimable")

	depth, err = runs.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestOrphanDetection(t *testing.T) {
	client, runs, p := setupRunService(t)
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)
	claimed, err := runs.ClaimNextQueuedRun(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	_, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusRunning, models.RunStatusOptions{})
	require.NoError(t, err)

	t.Run("fresh heartbeat is not orphaned", func(t *testing.T) {
		orphans, err := runs.FindOrphanedRuns(ctx, 5*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})

	t.Run("stale heartbeat is orphaned", func(t *testing.T) {
		err := client.Run.UpdateOneID(r.ID).
			SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		orphans, err := runs.FindOrphanedRuns(ctx, 5*time.Minute)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, r.ID, orphans[0].ID)
	})

	t.Run("heartbeat rescues the run", func(t *testing.T) {
		require.NoError(t, runs.Heartbeat(ctx, r.ID))
		orphans, err := runs.FindOrphanedRuns(ctx, 5*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})
}

func TestFindRunsClaimedBy(t *testing.T) {
	_, runs, p := setupRunService(t)
	ctx := context.Background()

	r, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)
	_, err = runs.ClaimNextQueuedRun(ctx, "pod-a")
	require.NoError(t, err)

	claimed, err := runs.FindRunsClaimedBy(ctx, "pod-a")
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, r.ID, claimed[0].ID)

	other, err := runs.FindRunsClaimedBy(ctx, "pod-b")
	require.NoError(t, err)
	assert.Empty(t, other)

	// Terminal runs are no longer the pod's problem.
	_, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusFailed, models.RunStatusOptions{})
	require.NoError(t, err)
	claimed, err = runs.FindRunsClaimedBy(ctx, "pod-a")
	require.NoError(t, err)
	assert.Empty(t, claimed)
}
