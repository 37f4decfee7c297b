package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/config"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
	"github.com/assaylab/assay/pkg/ranking"
	"github.com/assaylab/assay/pkg/services"
	testdb "github.com/assaylab/assay/test/database"
)

type pipelineEnv struct {
	runs        *services.RunService
	specs       *services.SpecService
	candidates  *services.CandidateService
	scenarios   *services.ScenarioService
	evaluations *services.EvaluationService
	chats       *services.ChatService
	scripted    *agent.ScriptedClient
	orch        *Orchestrator
	project     *ent.Project
}

func setupPipeline(t *testing.T) *pipelineEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	env := &pipelineEnv{
		runs:        services.NewRunService(client.Client),
		specs:       services.NewSpecService(client.Client),
		candidates:  services.NewCandidateService(client.Client),
		scenarios:   services.NewScenarioService(client.Client),
		evaluations: services.NewEvaluationService(client.Client),
		chats:       services.NewChatService(client.Client),
		scripted:    agent.NewScriptedClient(),
	}
	projects := services.NewProjectService(client.Client)

	p, err := projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name: "grazing permits",
	})
	require.NoError(t, err)
	env.project = p

	cfg := &config.Config{
		Defaults: config.DefaultDefaults(),
		Queue:    config.DefaultQueueConfig(),
		Agents:   map[string]*config.AgentRoleConfig{},
	}
	gateway := agent.NewGateway(env.scripted, cfg)
	ranker := ranking.NewRanker(env.specs, env.candidates, env.evaluations)

	env.orch = NewOrchestrator(Deps{
		Runs:        env.runs,
		Projects:    projects,
		Specs:       env.specs,
		Candidates:  env.candidates,
		Scenarios:   env.scenarios,
		Evaluations: env.evaluations,
		Chats:       env.chats,
		Gateway:     gateway,
		Ranker:      ranker,
		// Serial fan-out keeps scripted reply consumption deterministic.
		EvalConcurrency: 1,
	})
	return env
}

func seedPrerequisites(t *testing.T, env *pipelineEnv) {
	t.Helper()
	ctx := context.Background()

	_, err := env.specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
		ProjectID: env.project.ID,
		Constraints: []models.Constraint{
			{Name: "budget_neutral", Weight: models.HardConstraintWeight},
			{Name: "administrable", Weight: 60},
		},
		Goals:      []string{"prevent overgrazing", "keep small ranchers solvent"},
		Resolution: models.ResolutionMedium,
	})
	require.NoError(t, err)

	_, err = env.specs.UpsertWorldModel(ctx, models.UpsertWorldModelRequest{
		ProjectID: env.project.ID,
		ModelData: map[string]any{
			"actors": []any{map[string]any{"id": "ranchers"}, map[string]any{"id": "land_agency"}},
		},
	})
	require.NoError(t, err)
}

func scriptDesigner(env *pipelineEnv, descriptions ...string) {
	candidates := make([]map[string]any, len(descriptions))
	for i, d := range descriptions {
		candidates[i] = map[string]any{
			"mechanism_description": d,
			"constraint_compliance": map[string]any{"budget_neutral": true, "administrable": 0.9},
			"reasoning":             "fits the permit structure",
		}
	}
	env.scripted.AddJSONReply(agent.RoleDesigner, map[string]any{
		"candidates": candidates,
		"reasoning":  "two directions worth testing",
	})
}

func scriptScenarios(env *pipelineEnv, names ...string) {
	scenarios := make([]map[string]any, len(names))
	for i, n := range names {
		scenarios[i] = map[string]any{"name": n, "type": models.ScenarioStressTest, "weight": 1.0}
	}
	env.scripted.AddJSONReply(agent.RoleScenarioGenerator, map[string]any{"scenarios": scenarios})
}

func scriptEvaluator(env *pipelineEnv, p, r float64, times int) {
	for i := 0; i < times; i++ {
		env.scripted.AddJSONReply(agent.RoleEvaluator, map[string]any{
			"P": map[string]any{"overall": p},
			"R": map[string]any{"overall": r},
			"constraint_satisfaction": map[string]any{
				"budget_neutral": map[string]any{"satisfied": true, "score": 1.0},
			},
			"explanation": "holds under the drought scenario",
		})
	}
}

func TestExecuteFullPipeline(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()
	seedPrerequisites(t, env)

	session, err := env.chats.CreateSession(ctx, models.CreateChatSessionRequest{
		ProjectID: env.project.ID,
		Title:     "setup",
	})
	require.NoError(t, err)

	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		ProjectID: env.project.ID,
		Config:    models.RunConfig{NumCandidates: 2, NumScenarios: 2},
	})
	require.NoError(t, err)

	scriptDesigner(env, "tradable grazing permits with annual decay", "lottery-allocated rotating leases")
	scriptScenarios(env, "multi-year drought", "permit hoarding by large operators")
	scriptEvaluator(env, 0.9, 0.6, 4)

	require.NoError(t, env.orch.ExecuteFullPipeline(ctx, env.project.ID, r.ID))

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, got.Status)
	require.NotNil(t, got.StartedAt)
	require.NotNil(t, got.CompletedAt)

	t.Run("metrics cover every phase", func(t *testing.T) {
		require.NotNil(t, got.Metrics)
		for _, phase := range []string{models.PhaseDesign, models.PhaseScenario, models.PhaseEvaluation, models.PhaseRanking} {
			pm, ok := got.Metrics.Phases[phase]
			require.True(t, ok, "missing metrics for %s", phase)
			assert.Empty(t, pm.Error)
		}
		assert.Equal(t, 2, got.Metrics.Phases[models.PhaseDesign].Resources["candidates_created"])
		assert.Equal(t, 2, got.Metrics.Phases[models.PhaseScenario].Resources["scenarios_created"])
		assert.Equal(t, 4, got.Metrics.Phases[models.PhaseEvaluation].Resources["pairs_evaluated"])
		assert.Equal(t, 0, got.Metrics.Phases[models.PhaseEvaluation].Resources["pairs_failed"])
		assert.Equal(t, 2, got.Metrics.Phases[models.PhaseRanking].Resources["candidates_ranked"])
		require.NotNil(t, got.LlmUsage)
		assert.Positive(t, got.LlmUsage.TotalTokens)
	})

	t.Run("candidates are persisted, evaluated and ranked", func(t *testing.T) {
		cohort, err := env.candidates.ListCandidates(ctx, env.project.ID, models.CandidateFilters{})
		require.NoError(t, err)
		require.Len(t, cohort, 2)
		for _, c := range cohort {
			// P/R of 0.9/0.6 gives I = 1.5, above the promising bar.
			assert.Equal(t, models.CandidatePromising, string(c.Status))
			require.NotNil(t, c.Scores)
			require.NotNil(t, c.Scores.I)
			assert.InDelta(t, 1.5, *c.Scores.I, 0.01)
		}

		n, err := env.evaluations.CountEvaluations(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run("summary lands in the chat session", func(t *testing.T) {
		require.NotNil(t, got.RunSummaryMessageID)
		msgs, err := env.chats.ListMessages(ctx, session.ID, 0)
		require.NoError(t, err)
		require.NotEmpty(t, msgs)
		found := false
		for _, m := range msgs {
			if m.ID == *got.RunSummaryMessageID {
				found = true
				assert.Equal(t, models.RoleAgent, string(m.Role))
			}
		}
		assert.True(t, found, "summary message must be in the session")
	})

	t.Run("evaluation rerun skips persisted pairs", func(t *testing.T) {
		callsBefore := len(env.scripted.Calls())
		require.NoError(t, env.orch.ExecuteEvaluationPhase(ctx, env.project.ID, r.ID))

		assert.Len(t, env.scripted.Calls(), callsBefore, "no evaluator calls for already-evaluated pairs")
		n, err := env.evaluations.CountEvaluations(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		// Terminal run keeps its status on rerun.
		rerun, err := env.runs.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, rerun.Status)
		assert.Equal(t, 4, rerun.Metrics.Phases[models.PhaseEvaluation].Resources["pairs_skipped"])
	})
}

func TestExecuteFullPipeline_MissingPrerequisites(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()

	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: env.project.ID})
	require.NoError(t, err)

	err = env.orch.ExecuteFullPipeline(ctx, env.project.ID, r.ID)
	var precondition *services.PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Contains(t, precondition.Missing, "problem_spec")
	assert.Contains(t, precondition.Missing, "world_model")
	assert.Contains(t, precondition.ExistingProjectIDs, env.project.ID)

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorSummary)
	assert.Contains(t, *got.ErrorSummary, "missing prerequisites")

	assert.Empty(t, env.scripted.Calls(), "no agent is invoked when prerequisites fail")
}

func TestExecuteFullPipeline_EvalOnlyWithoutCandidates(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()
	seedPrerequisites(t, env)

	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		ProjectID: env.project.ID,
		Config:    models.RunConfig{Mode: models.ModeEvalOnly},
	})
	require.NoError(t, err)

	err = env.orch.ExecuteFullPipeline(ctx, env.project.ID, r.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no live candidates")

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
}

func TestExecuteFullPipeline_HardConstraintViolationRejects(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()
	seedPrerequisites(t, env)

	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		ProjectID: env.project.ID,
		Config:    models.RunConfig{NumCandidates: 1, NumScenarios: 1},
	})
	require.NoError(t, err)

	scriptDesigner(env, "unfunded subsidy for all permit holders")
	scriptScenarios(env, "baseline year")
	env.scripted.AddJSONReply(agent.RoleEvaluator, map[string]any{
		"P": map[string]any{"overall": 0.9},
		"R": map[string]any{"overall": 0.5},
		"constraint_satisfaction": map[string]any{
			"budget_neutral": map[string]any{"satisfied": false, "score": 0.1},
		},
		"explanation": "requires permanent outside funding",
	})

	require.NoError(t, env.orch.ExecuteFullPipeline(ctx, env.project.ID, r.ID))

	cohort, err := env.candidates.ListCandidates(ctx, env.project.ID, models.CandidateFilters{})
	require.NoError(t, err)
	require.Len(t, cohort, 1)
	assert.Equal(t, models.CandidateRejected, string(cohort[0].Status),
		"a failed hard constraint rejects regardless of I")

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, got.Status, "rejection is a verdict, not a run failure")
	assert.Equal(t, 1, got.Metrics.Phases[models.PhaseRanking].Resources["hard_constraint_violations"])

	t.Run("ranking result names the violating candidate", func(t *testing.T) {
		result, err := env.orch.deps.Ranker.RankRun(ctx, env.project.ID, r.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{cohort[0].ID}, result.HardConstraintViolations)
	})

	t.Run("ranking provenance carries the verdict detail", func(t *testing.T) {
		fresh, err := env.candidates.GetCandidate(ctx, cohort[0].ID)
		require.NoError(t, err)
		log := fresh.ProvenanceLog
		require.NotEmpty(t, log)
		last := log[len(log)-1]
		assert.Equal(t, provenance.TypeRankingCompleted, last.Type)
		assert.Equal(t, true, last.Metadata["has_hard_violation"])
		assert.EqualValues(t, 1, last.Metadata["evaluation_count"])
		assert.Contains(t, last.Metadata, "scores")
	})
}

func TestExecuteFullPipeline_ScriptExhaustedFailsRun(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()
	seedPrerequisites(t, env)

	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: env.project.ID})
	require.NoError(t, err)

	// No designer reply queued: the gateway surfaces the agent error.
	err = env.orch.ExecuteFullPipeline(ctx, env.project.ID, r.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "design phase")

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorSummary)
	assert.Contains(t, *got.ErrorSummary, "designer")

	pm, ok := got.Metrics.Phases[models.PhaseDesign]
	require.True(t, ok)
	assert.NotEmpty(t, pm.Error)
}

func TestExecuteFullPipeline_RuntimeCapCancels(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()
	seedPrerequisites(t, env)

	// A zero cap expires before the first phase is scheduled.
	runtimeCap := 0
	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		ProjectID: env.project.ID,
		Config:    models.RunConfig{MaxRuntimeS: &runtimeCap},
	})
	require.NoError(t, err)

	err = env.orch.ExecuteFullPipeline(ctx, env.project.ID, r.ID)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorSummary)
	assert.Equal(t, "cancelled", *got.ErrorSummary)
}

func TestExecuteDesignPhase_EmptyResultIsNotAnError(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()
	seedPrerequisites(t, env)

	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: env.project.ID})
	require.NoError(t, err)

	env.scripted.AddJSONReply(agent.RoleDesigner, map[string]any{"candidates": []map[string]any{}})
	require.NoError(t, env.orch.ExecuteDesignPhase(ctx, env.project.ID, r.ID))

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, got.Status,
		"a single phase leaves the run in flight; completed is the full pipeline's verdict")
	require.NotNil(t, got.StartedAt)
	assert.Nil(t, got.CompletedAt)
	assert.Equal(t, 0, got.Metrics.Phases[models.PhaseDesign].Resources["candidates_created"])
}

func TestExecuteDesignPhase_DoesNotCompleteRun(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()
	seedPrerequisites(t, env)

	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: env.project.ID})
	require.NoError(t, err)

	scriptDesigner(env, "per-acre permit auction")
	require.NoError(t, env.orch.ExecuteDesignPhase(ctx, env.project.ID, r.ID))

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, got.Status,
		"a run with only designed candidates has no scenarios or evaluations yet")

	// A follow-up phase on the same run reuses the running state.
	scriptScenarios(env, "dry summer")
	require.NoError(t, env.orch.ExecuteScenarioPhase(ctx, env.project.ID, r.ID))
	got, err = env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, got.Status)
}

func TestExecuteEvaluationPhase_RequiresScenarioSuite(t *testing.T) {
	env := setupPipeline(t)
	ctx := context.Background()
	seedPrerequisites(t, env)

	r, err := env.runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: env.project.ID})
	require.NoError(t, err)

	err = env.orch.ExecuteEvaluationPhase(ctx, env.project.ID, r.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario suite")

	got, err := env.runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
}
