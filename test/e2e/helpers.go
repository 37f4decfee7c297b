package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/models"
)

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

// CreateProject posts a project and returns its ID.
func (app *TestApp) CreateProject(t *testing.T, name string) string {
	t.Helper()
	body := app.postJSON(t, "/api/v1/projects", map[string]any{"name": name}, http.StatusCreated)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// PutProblemSpec uploads a problem spec and returns the parsed response.
func (app *TestApp) PutProblemSpec(t *testing.T, projectID string, spec map[string]any) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPut, "/api/v1/projects/"+projectID+"/problem-spec", spec, http.StatusOK)
}

// PutWorldModel uploads a world model and returns the parsed response.
func (app *TestApp) PutWorldModel(t *testing.T, projectID string, modelData map[string]any) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPut, "/api/v1/projects/"+projectID+"/world-model",
		map[string]any{"model_data": modelData}, http.StatusOK)
}

// Preflight runs the readiness check and returns the parsed result.
func (app *TestApp) Preflight(t *testing.T, projectID string, body map[string]any) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/projects/"+projectID+"/preflight", body, http.StatusOK)
}

// CreateRun posts a run and returns the parsed response.
func (app *TestApp) CreateRun(t *testing.T, projectID string, body map[string]any) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/projects/"+projectID+"/runs", body, http.StatusCreated)
}

// GetRun retrieves a run by ID.
func (app *TestApp) GetRun(t *testing.T, runID string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/runs/"+runID, http.StatusOK)
}

// WaitForRunStatus polls the run until it reaches the wanted status.
func (app *TestApp) WaitForRunStatus(t *testing.T, runID, status string, timeout time.Duration) map[string]any {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last map[string]any
	for time.Now().Before(deadline) {
		last = app.GetRun(t, runID)
		if last["status"] == status {
			return last
		}
		time.Sleep(100 * time.Millisecond)
	}
	require.Failf(t, "run did not reach status", "run %s wanted %s, last state: %v", runID, status, last)
	return nil
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPost, path, body, expectedStatus)
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodGet, path, nil, expectedStatus)
}

func (app *TestApp) doJSON(t *testing.T, method, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "%s %s: unexpected status, body: %s", method, path, raw)

	if len(raw) == 0 {
		return nil
	}
	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "%s %s: body: %s", method, path, raw)
	return result
}

// ────────────────────────────────────────────────────────────
// Scripted Agent Helpers
// ────────────────────────────────────────────────────────────

// ScriptDesigner queues one designer reply proposing the given mechanisms.
func (app *TestApp) ScriptDesigner(descriptions ...string) {
	candidates := make([]map[string]any, len(descriptions))
	for i, d := range descriptions {
		candidates[i] = map[string]any{
			"mechanism_description": d,
			"constraint_compliance": map[string]any{"budget_neutral": true},
			"reasoning":             "proposed from the world model",
		}
	}
	app.Agent.AddJSONReply(agent.RoleDesigner, map[string]any{"candidates": candidates})
}

// ScriptScenarios queues one scenario_generator reply with the given names.
func (app *TestApp) ScriptScenarios(names ...string) {
	scenarios := make([]map[string]any, len(names))
	for i, n := range names {
		scenarios[i] = map[string]any{"name": n, "type": models.ScenarioStressTest, "weight": 1.0}
	}
	app.Agent.AddJSONReply(agent.RoleScenarioGenerator, map[string]any{"scenarios": scenarios})
}

// ScriptEvaluations queues identical evaluator verdicts for the given number
// of (candidate, scenario) pairs.
func (app *TestApp) ScriptEvaluations(p, r float64, pairs int) {
	for i := 0; i < pairs; i++ {
		app.Agent.AddJSONReply(agent.RoleEvaluator, map[string]any{
			"P": map[string]any{"overall": p},
			"R": map[string]any{"overall": r},
			"constraint_satisfaction": map[string]any{
				"budget_neutral": map[string]any{"satisfied": true, "score": 1.0},
			},
			"explanation": fmt.Sprintf("verdict %d", i+1),
		})
	}
}

// ScriptHappyPipeline queues a complete reply set for one full-pipeline run:
// nCandidates designs, nScenarios scenarios, and one strong verdict per pair.
func (app *TestApp) ScriptHappyPipeline(nCandidates, nScenarios int) {
	descriptions := make([]string, nCandidates)
	for i := range descriptions {
		descriptions[i] = fmt.Sprintf("mechanism variant %d", i+1)
	}
	app.ScriptDesigner(descriptions...)

	names := make([]string, nScenarios)
	for i := range names {
		names[i] = fmt.Sprintf("scenario %d", i+1)
	}
	app.ScriptScenarios(names...)

	app.ScriptEvaluations(0.9, 0.6, nCandidates*nScenarios)
}

// SeedReadyProject creates a project with a problem spec and world model,
// ready for a full pipeline run. Returns the project ID.
func (app *TestApp) SeedReadyProject(t *testing.T, name string) string {
	t.Helper()
	projectID := app.CreateProject(t, name)

	app.PutProblemSpec(t, projectID, map[string]any{
		"constraints": []map[string]any{
			{"name": "budget_neutral", "weight": models.HardConstraintWeight},
			{"name": "administrable", "weight": 60},
		},
		"goals":      []string{"allocate scarce capacity fairly"},
		"resolution": models.ResolutionMedium,
	})
	app.PutWorldModel(t, projectID, map[string]any{
		"actors": []any{
			map[string]any{"id": "participants"},
			map[string]any{"id": "operator"},
		},
	})
	return projectID
}
