package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/models"
)

func TestSnapshotLifecycle(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.SeedReadyProject(t, "toll corridor")

	snap := app.postJSON(t, "/api/v1/projects/"+projectID+"/snapshots", map[string]any{
		"name":        "baseline",
		"description": "spec and model before the first search",
		"tags":        []string{"baseline"},
		"invariants": []map[string]any{
			{"type": models.InvariantRunStatus, "value": "completed"},
			{"type": models.InvariantMinCandidates, "value": 1},
		},
	}, http.StatusCreated)
	snapID, _ := snap["id"].(string)
	require.NotEmpty(t, snapID)

	t.Run("duplicate name is rejected", func(t *testing.T) {
		app.postJSON(t, "/api/v1/projects/"+projectID+"/snapshots",
			map[string]any{"name": "baseline"}, http.StatusConflict)
	})

	t.Run("restore into another project", func(t *testing.T) {
		targetID := app.CreateProject(t, "restore target")
		body := app.postJSON(t, "/api/v1/snapshots/"+snapID+"/restore",
			map[string]any{"target_project_id": targetID}, http.StatusOK)
		assert.Equal(t, true, body["restored"])

		spec := app.getJSON(t, "/api/v1/projects/"+targetID+"/problem-spec", http.StatusOK)
		constraints, _ := spec["constraints"].([]any)
		assert.Len(t, constraints, 2, "restored spec carries the captured constraints")

		model := app.getJSON(t, "/api/v1/projects/"+targetID+"/world-model", http.StatusOK)
		assert.NotNil(t, model["model_data"])
	})

	t.Run("replay runs the pipeline and checks invariants", func(t *testing.T) {
		app.ScriptHappyPipeline(1, 1)

		result := app.postJSON(t, "/api/v1/snapshots/"+snapID+"/replay", map[string]any{}, http.StatusOK)
		assert.Equal(t, "completed", result["run_status"])
		assert.Equal(t, true, result["all_passed"], "invariants: %v", result["invariant_results"])

		replayProjectID, _ := result["project_id"].(string)
		require.NotEmpty(t, replayProjectID)
		assert.NotEqual(t, projectID, replayProjectID, "replay runs in an ephemeral project")

		p := app.getJSON(t, "/api/v1/projects/"+replayProjectID, http.StatusOK)
		assert.Equal(t, true, p["ephemeral"])
	})

	t.Run("update mutable fields", func(t *testing.T) {
		updated := app.doJSON(t, http.MethodPatch, "/api/v1/snapshots/"+snapID,
			map[string]any{"description": "golden baseline"}, http.StatusOK)
		assert.Equal(t, "golden baseline", updated["description"])
	})

	t.Run("delete removes the snapshot", func(t *testing.T) {
		app.doJSON(t, http.MethodDelete, "/api/v1/snapshots/"+snapID, nil, http.StatusNoContent)
		app.getJSON(t, "/api/v1/snapshots/"+snapID, http.StatusNotFound)
	})
}

func TestSnapshotCaptureFreezesRunOutcome(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.SeedReadyProject(t, "harbor berthing")

	// No scripted replies: the run fails in the design phase, leaving an
	// error summary to freeze.
	created := app.CreateRun(t, projectID, map[string]any{"enqueue": true})
	runID, _ := created["id"].(string)
	app.WaitForRunStatus(t, runID, "failed", 15*time.Second)

	snap := app.postJSON(t, "/api/v1/projects/"+projectID+"/snapshots", map[string]any{
		"name":   "failed baseline",
		"run_id": runID,
	}, http.StatusCreated)

	ref, _ := snap["reference_metrics"].(map[string]any)
	require.NotNil(t, ref, "capture with run_id must freeze reference metrics")
	assert.Equal(t, "failed", ref["status"])
	summary, _ := ref["error_summary"].(string)
	assert.NotEmpty(t, summary, "the source run's error summary is part of the baseline")
}

func TestSnapshotTests(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.SeedReadyProject(t, "regression suite")

	snap := app.postJSON(t, "/api/v1/projects/"+projectID+"/snapshots", map[string]any{
		"name": "regression-1",
		"tags": []string{"regression"},
		"invariants": []map[string]any{
			{"type": models.InvariantRunStatus, "value": "completed"},
		},
	}, http.StatusCreated)
	snapID, _ := snap["id"].(string)

	app.ScriptHappyPipeline(1, 1)

	report := app.postJSON(t, "/api/v1/snapshot-tests", map[string]any{
		"snapshot_ids": []string{snapID},
		"run_config":   map[string]any{"num_candidates": 1, "num_scenarios": 1},
	}, http.StatusOK)

	results, _ := report["results"].([]any)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, models.TestPassed, first["status"], "result: %v", first)
}
