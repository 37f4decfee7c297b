package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/models"
)

func TestIssueRemediation_InvalidateCandidates(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.SeedReadyProject(t, "fishery quotas")

	cand := app.postJSON(t, "/api/v1/projects/"+projectID+"/candidates", map[string]any{
		"mechanism_description": "transferable quota with no season cap",
	}, http.StatusCreated)
	candID, _ := cand["id"].(string)
	require.NotEmpty(t, candID)
	assert.Equal(t, "user", cand["origin"], "API-seeded candidates are user-origin")

	issue := app.postJSON(t, "/api/v1/projects/"+projectID+"/issues", map[string]any{
		"issue_type":   models.IssueEvaluator,
		"severity":     models.SeverityCatastrophic,
		"candidate_id": candID,
		"description":  "evaluator scored against a stale stock model",
	}, http.StatusCreated)
	issueID, _ := issue["id"].(string)
	require.NotEmpty(t, issueID)
	assert.Equal(t, "open", issue["resolution_status"])

	// Catastrophic with a candidate target defaults to invalidation.
	resolved := app.postJSON(t, "/api/v1/issues/"+issueID+"/resolve", map[string]any{}, http.StatusOK)
	assert.Equal(t, "resolved", resolved["resolution_status"])

	record, _ := resolved["remediation"].(map[string]any)
	require.NotNil(t, record)
	assert.Equal(t, models.ActionInvalidateCandidates, record["action"])

	t.Run("target candidate is rejected", func(t *testing.T) {
		body := app.getJSON(t, "/api/v1/projects/"+projectID+"/candidates?status=rejected", http.StatusOK)
		candidates, _ := body["candidates"].([]any)
		require.Len(t, candidates, 1)
		c := candidates[0].(map[string]any)
		assert.Equal(t, candID, c["id"])
	})

	t.Run("double resolve is rejected", func(t *testing.T) {
		app.postJSON(t, "/api/v1/issues/"+issueID+"/resolve", map[string]any{}, http.StatusConflict)
	})

	t.Run("resolved filter finds the issue", func(t *testing.T) {
		body := app.getJSON(t, "/api/v1/projects/"+projectID+"/issues?resolution_status=resolved", http.StatusOK)
		issues, _ := body["issues"].([]any)
		require.Len(t, issues, 1)
	})
}

func TestIssueRemediation_FullRerun(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.SeedReadyProject(t, "grid balancing")

	issue := app.postJSON(t, "/api/v1/projects/"+projectID+"/issues", map[string]any{
		"issue_type":  models.IssueModel,
		"severity":    models.SeverityImportant,
		"description": "world model ignores storage operators",
	}, http.StatusCreated)
	issueID, _ := issue["id"].(string)

	// The rerun executes a full pipeline; script a complete reply set. The
	// model patch lands before the rerun starts.
	app.ScriptHappyPipeline(1, 1)

	resolved := app.postJSON(t, "/api/v1/issues/"+issueID+"/resolve", map[string]any{
		"action": models.ActionFullRerun,
		"model_patch": map[string]any{
			"actors": []any{
				map[string]any{"id": "storage_operators"},
			},
		},
		"run_config": map[string]any{"num_candidates": 1, "num_scenarios": 1},
	}, http.StatusOK)
	assert.Equal(t, "resolved", resolved["resolution_status"])

	record, _ := resolved["remediation"].(map[string]any)
	require.NotNil(t, record)
	assert.Equal(t, models.ActionFullRerun, record["action"])
	assert.Equal(t, true, record["patched_model"])

	rerunID, _ := record["run_id"].(string)
	require.NotEmpty(t, rerunID, "full rerun must record the new run")

	final := app.WaitForRunStatus(t, rerunID, "completed", 15*time.Second)
	assert.Equal(t, "completed", final["status"])

	t.Run("model patch is visible", func(t *testing.T) {
		model := app.getJSON(t, "/api/v1/projects/"+projectID+"/world-model", http.StatusOK)
		data, _ := model["model_data"].(map[string]any)
		require.NotNil(t, data)
		actors, _ := data["actors"].([]any)
		require.Len(t, actors, 1)
		assert.Equal(t, "storage_operators", actors[0].(map[string]any)["id"])
	})
}

func TestIssueRemediation_ActionUpgrade(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.SeedReadyProject(t, "transit fares")

	// A minor issue with no run to rescore: the default patch_and_rescore
	// has nothing to patch against and upgrades to a full rerun.
	issue := app.postJSON(t, "/api/v1/projects/"+projectID+"/issues", map[string]any{
		"issue_type":  models.IssueConstraint,
		"severity":    models.SeverityMinor,
		"description": "fare cap constraint phrased ambiguously",
	}, http.StatusCreated)
	issueID, _ := issue["id"].(string)

	app.ScriptHappyPipeline(1, 1)

	resolved := app.postJSON(t, "/api/v1/issues/"+issueID+"/resolve", map[string]any{
		"run_config": map[string]any{"num_candidates": 1, "num_scenarios": 1},
	}, http.StatusOK)

	record, _ := resolved["remediation"].(map[string]any)
	require.NotNil(t, record)
	assert.Equal(t, models.ActionFullRerun, record["action"])
	assert.Equal(t, true, record["action_upgraded"])
	assert.Equal(t, models.ActionPatchAndRescore, record["original_remediation_action"])

	rerunID, _ := record["run_id"].(string)
	require.NotEmpty(t, rerunID)
	final := app.WaitForRunStatus(t, rerunID, "completed", 15*time.Second)
	assert.Equal(t, "completed", final["status"])
}

func TestFeedbackSuggestion(t *testing.T) {
	app := NewTestApp(t)
	projectID := app.SeedReadyProject(t, "parking permits")

	issue := app.postJSON(t, "/api/v1/projects/"+projectID+"/issues", map[string]any{
		"issue_type":  models.IssueConstraint,
		"severity":    models.SeverityMinor,
		"description": "constraint weight for neighborhood equity looks too low",
	}, http.StatusCreated)
	issueID, _ := issue["id"].(string)

	app.Agent.AddJSONReply(agent.RoleFeedback, map[string]any{
		"suggested_action": models.ActionPatchAndRescore,
		"patch":            map[string]any{"constraints": []any{}},
		"reasoning":        "reweighting is enough; the model itself is sound",
	})

	body := app.postJSON(t, "/api/v1/issues/"+issueID+"/feedback", nil, http.StatusOK)
	assert.Equal(t, issueID, body["issue_id"])

	suggestion, _ := body["suggestion"].(map[string]any)
	require.NotNil(t, suggestion)
	assert.Equal(t, models.ActionPatchAndRescore, suggestion["suggested_action"])

	// A suggestion is advice only; the issue stays open.
	got := app.getJSON(t, "/api/v1/issues/"+issueID, http.StatusOK)
	assert.Equal(t, "open", got["resolution_status"])
}
