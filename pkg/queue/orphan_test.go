package queue

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/pkg/config"
	"github.com/assaylab/assay/pkg/database"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/services"
	testdb "github.com/assaylab/assay/test/database"
)

// completingExecutor drives claimed runs straight to completed, standing in
// for the pipeline orchestrator.
type completingExecutor struct {
	runs *services.RunService
}

func (e *completingExecutor) ExecuteFullPipeline(ctx context.Context, projectID, runID string) error {
	now := time.Now()
	if _, err := e.runs.UpdateRunStatus(ctx, runID, run.StatusRunning, models.RunStatusOptions{StartedAt: &now}); err != nil {
		return err
	}
	_, err := e.runs.UpdateRunStatus(ctx, runID, run.StatusCompleted, models.RunStatusOptions{CompletedAt: &now})
	return err
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.HeartbeatInterval = 50 * time.Millisecond
	return cfg
}

func setupQueue(t *testing.T) (*database.Client, *services.RunService, *ent.Project) {
	t.Helper()
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	projects := services.NewProjectService(client.Client)

	p, err := projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name: "queue exercising",
	})
	require.NoError(t, err)
	return client, runs, p
}

func TestWorkerPoolProcessesQueuedRuns(t *testing.T) {
	_, runs, p := setupQueue(t)
	ctx := context.Background()

	first, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)
	second, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)

	pool := NewWorkerPool("pod-test", runs, fastQueueConfig(), &completingExecutor{runs: runs})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		for _, id := range []string{first.ID, second.ID} {
			r, err := runs.GetRun(ctx, id)
			if err != nil || r.Status != run.StatusCompleted {
				return false
			}
		}
		return true
	}, 10*time.Second, 100*time.Millisecond, "workers must drain the queue")

	t.Run("claims are attributed to the pod", func(t *testing.T) {
		r, err := runs.GetRun(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, r.ClaimedBy)
		assert.Equal(t, "pod-test", *r.ClaimedBy)
	})

	t.Run("health reflects the drained queue", func(t *testing.T) {
		health := pool.Health()
		assert.True(t, health.DBReachable)
		assert.Equal(t, "pod-test", health.PodID)
		assert.Equal(t, 0, health.QueueDepth)
		assert.Equal(t, 1, health.TotalWorkers)
	})
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	client, runs, p := setupQueue(t)
	ctx := context.Background()

	// A run claimed by a pod that stopped heartbeating.
	cfg := fastQueueConfig()
	cfg.OrphanThreshold = time.Minute

	r, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)
	claimed, err := runs.ClaimNextQueuedRun(ctx, "pod-dead")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	_, err = runs.UpdateRunStatus(ctx, r.ID, run.StatusRunning, models.RunStatusOptions{})
	require.NoError(t, err)

	pool := NewWorkerPool("pod-live", runs, cfg, &completingExecutor{runs: runs})

	t.Run("fresh heartbeat is left alone", func(t *testing.T) {
		require.NoError(t, pool.detectAndRecoverOrphans(ctx))
		got, err := runs.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusRunning, got.Status)
	})

	t.Run("stale heartbeat fails the run terminally", func(t *testing.T) {
		err := client.Run.UpdateOneID(r.ID).
			SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		got, err := runs.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorSummary)
		assert.Contains(t, *got.ErrorSummary, "no heartbeat from pod pod-dead")
	})

	t.Run("recovery counter is updated", func(t *testing.T) {
		pool.orphans.mu.Lock()
		defer pool.orphans.mu.Unlock()
		assert.Equal(t, 1, pool.orphans.orphansRecovered)
	})
}

func TestCleanupStartupOrphans(t *testing.T) {
	_, runs, p := setupQueue(t)
	ctx := context.Background()

	mine, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)
	_, err = runs.ClaimNextQueuedRun(ctx, "pod-a")
	require.NoError(t, err)

	other, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID, Enqueue: true})
	require.NoError(t, err)
	_, err = runs.ClaimNextQueuedRun(ctx, "pod-b")
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, runs, "pod-a"))

	got, err := runs.GetRun(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorSummary)
	assert.True(t, strings.Contains(*got.ErrorSummary, "pod pod-a restarted"))

	untouched, err := runs.GetRun(ctx, other.ID)
	require.NoError(t, err)
	assert.NotEqual(t, run.StatusFailed, untouched.Status, "other pods' claims are not ours to clean")

	t.Run("second cleanup is a no-op", func(t *testing.T) {
		require.NoError(t, CleanupStartupOrphans(ctx, runs, "pod-a"))
	})
}
