package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/agent"
)

func TestFullPipelineViaQueue(t *testing.T) {
	app := NewTestApp(t)

	projectID := app.SeedReadyProject(t, "capacity auction")

	// A chat session gives the run summary somewhere to land.
	session := app.postJSON(t, "/api/v1/projects/"+projectID+"/chat-sessions",
		map[string]any{"title": "setup"}, http.StatusCreated)
	sessionID, _ := session["id"].(string)
	require.NotEmpty(t, sessionID)

	pre := app.Preflight(t, projectID, map[string]any{
		"config": map[string]any{"num_candidates": 2, "num_scenarios": 2},
	})
	assert.Equal(t, true, pre["ready"], "preflight must pass on a seeded project: %v", pre)

	app.ScriptHappyPipeline(2, 2)

	created := app.CreateRun(t, projectID, map[string]any{
		"enqueue": true,
		"config":  map[string]any{"num_candidates": 2, "num_scenarios": 2},
	})
	runID, _ := created["id"].(string)
	require.NotEmpty(t, runID)
	assert.Equal(t, "created", created["status"])

	final := app.WaitForRunStatus(t, runID, "completed", 15*time.Second)
	assert.NotNil(t, final["started_at"])
	assert.NotNil(t, final["completed_at"])

	t.Run("candidates are designed and ranked", func(t *testing.T) {
		body := app.getJSON(t, "/api/v1/runs/"+runID+"/candidates", http.StatusOK)
		candidates, _ := body["candidates"].([]any)
		require.Len(t, candidates, 2)
		for _, raw := range candidates {
			c := raw.(map[string]any)
			assert.Equal(t, "promising", c["status"])
		}
	})

	t.Run("evaluations cover every pair", func(t *testing.T) {
		body := app.getJSON(t, "/api/v1/runs/"+runID+"/evaluations", http.StatusOK)
		evals, _ := body["evaluations"].([]any)
		assert.Len(t, evals, 4)
	})

	t.Run("scenario suite is persisted", func(t *testing.T) {
		suite := app.getJSON(t, "/api/v1/runs/"+runID+"/scenario-suite", http.StatusOK)
		scenarios, _ := suite["scenarios"].([]any)
		assert.Len(t, scenarios, 2)
	})

	t.Run("run summary lands in the chat session", func(t *testing.T) {
		body := app.getJSON(t, "/api/v1/chat-sessions/"+sessionID+"/messages", http.StatusOK)
		msgs, _ := body["messages"].([]any)
		require.NotEmpty(t, msgs, "the completed run must post its summary")
	})
}

func TestDirectRunExecution(t *testing.T) {
	app := NewTestApp(t)

	projectID := app.SeedReadyProject(t, "spectrum licensing")
	app.ScriptHappyPipeline(1, 1)

	created := app.CreateRun(t, projectID, map[string]any{
		"config": map[string]any{"num_candidates": 1, "num_scenarios": 1},
	})
	runID, _ := created["id"].(string)
	require.NotEmpty(t, runID)

	// Without enqueue the API executes the pipeline itself; no worker claim.
	final := app.WaitForRunStatus(t, runID, "completed", 15*time.Second)
	assert.Nil(t, final["claimed_by"], "direct runs bypass the queue")
}

func TestRunFailsWithoutPrerequisites(t *testing.T) {
	app := NewTestApp(t)

	projectID := app.CreateProject(t, "bare project")

	created := app.CreateRun(t, projectID, map[string]any{"enqueue": true})
	runID, _ := created["id"].(string)

	final := app.WaitForRunStatus(t, runID, "failed", 15*time.Second)
	summary, _ := final["error_summary"].(string)
	assert.Contains(t, summary, "missing prerequisites")
}

func TestGuidanceEndpoint(t *testing.T) {
	app := NewTestApp(t)

	projectID := app.SeedReadyProject(t, "water banking")
	app.Agent.AddJSONReply(agent.RoleGuidance, map[string]any{
		"next_steps": []string{"run a full pipeline", "seed a baseline candidate"},
		"reasoning":  "prerequisites are in place but nothing has been evaluated",
	})

	guidance := app.getJSON(t, "/api/v1/projects/"+projectID+"/guidance", http.StatusOK)
	steps, _ := guidance["next_steps"].([]any)
	require.Len(t, steps, 2)
	assert.Equal(t, "run a full pipeline", steps[0])
}
