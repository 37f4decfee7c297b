package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/queue"
	testdb "github.com/assaylab/assay/test/database"
)

// Two replicas share one schema and one queue; the scripted agent client is
// shared so either replica can serve a claimed run.
func TestMultiReplicaQueueProcessing(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	script := agent.NewScriptedClient()

	appA := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("pod-a"),
		WithAgentClient(script))
	appB := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("pod-b"),
		WithAgentClient(script))

	projectOne := appA.SeedReadyProject(t, "replica project one")
	projectTwo := appA.SeedReadyProject(t, "replica project two")

	// One full reply set per run; replies per role are identical so the
	// claiming order between pods doesn't matter.
	appA.ScriptHappyPipeline(1, 1)
	appA.ScriptHappyPipeline(1, 1)

	runCfg := map[string]any{"num_candidates": 1, "num_scenarios": 1}
	first := appA.CreateRun(t, projectOne, map[string]any{"enqueue": true, "config": runCfg})
	second := appB.CreateRun(t, projectTwo, map[string]any{"enqueue": true, "config": runCfg})

	firstID, _ := first["id"].(string)
	secondID, _ := second["id"].(string)

	appA.WaitForRunStatus(t, firstID, "completed", 20*time.Second)
	appB.WaitForRunStatus(t, secondID, "completed", 20*time.Second)

	t.Run("every claim names a known pod", func(t *testing.T) {
		for _, id := range []string{firstID, secondID} {
			r := appA.GetRun(t, id)
			claimedBy, _ := r["claimed_by"].(string)
			assert.Contains(t, []string{"pod-a", "pod-b"}, claimedBy)
		}
	})

	t.Run("both replicas see the same state", func(t *testing.T) {
		fromA := appA.GetRun(t, firstID)
		fromB := appB.GetRun(t, firstID)
		assert.Equal(t, fromA["status"], fromB["status"])
	})
}

// A replica restart fails the runs it abandoned without touching anyone
// else's claims.
func TestStartupOrphanRecoveryAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	app := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-survivor"))
	projectID := app.SeedReadyProject(t, "orphan recovery")

	ctx := t.Context()

	// Simulate a crashed replica: a running run claimed by a pod that never
	// came back, written directly against the shared schema. The run is
	// never queued, so the survivor's pool cannot pick it up.
	r, err := app.Runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: projectID})
	require.NoError(t, err)
	require.NoError(t, app.EntClient.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusRunning).
		SetClaimedBy("pod-crashed").
		SetLastHeartbeatAt(time.Now().Add(-5 * time.Minute)).
		Exec(ctx))

	// The crashed pod restarts and sweeps its own abandoned claims.
	require.NoError(t, queue.CleanupStartupOrphans(ctx, app.Runs, "pod-crashed"))

	got, err := app.Runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorSummary)
	assert.Contains(t, *got.ErrorSummary, "restarted")
}
