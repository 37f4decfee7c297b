package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/config"
	"github.com/assaylab/assay/pkg/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Defaults: config.DefaultDefaults(),
		Queue:    config.DefaultQueueConfig(),
		Agents:   map[string]*config.AgentRoleConfig{},
	}
}

func TestGateway_Design(t *testing.T) {
	t.Run("parses a fenced reply into candidates", func(t *testing.T) {
		client := NewScriptedClient()
		client.AddJSONReply(RoleDesigner, map[string]any{
			"candidates": []map[string]any{
				{
					"mechanism_description": "congestion pricing with dynamic rates",
					"constraint_compliance":  map[string]any{"budget": true},
				},
			},
			"reasoning": "one mechanism covers both goals",
		})
		gw := NewGateway(client, testConfig())

		resp, usage, err := gw.Design(context.Background(), "run-1", map[string]any{"num_candidates": 1})
		require.NoError(t, err)
		require.Len(t, resp.Candidates, 1)
		assert.False(t, resp.ParseFailed)
		assert.Equal(t, "congestion pricing with dynamic rates", resp.Candidates[0].MechanismDescription)
		assert.Equal(t, 150, usage.TotalTokens)

		calls := client.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, RoleDesigner, calls[0].Role)
		assert.Equal(t, "run-1", calls[0].RunID)
		assert.Contains(t, calls[0].Task, "num_candidates")
	})

	t.Run("unparseable reply yields the safe default", func(t *testing.T) {
		client := NewScriptedClient()
		client.AddReply(RoleDesigner, ScriptedReply{Text: "I refuse to answer in JSON."})
		gw := NewGateway(client, testConfig())

		resp, usage, err := gw.Design(context.Background(), "run-1", map[string]any{})
		require.NoError(t, err)
		assert.True(t, resp.ParseFailed)
		assert.Empty(t, resp.Candidates)
		assert.Equal(t, 150, usage.TotalTokens)
	})

	t.Run("transport error is returned as an error", func(t *testing.T) {
		client := NewScriptedClient()
		client.AddReply(RoleDesigner, ScriptedReply{Err: &ErrorChunk{Message: "connection refused", Code: "unavailable"}})
		gw := NewGateway(client, testConfig())

		resp, _, err := gw.Design(context.Background(), "run-1", map[string]any{})
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestGateway_Evaluate_SafeDefault(t *testing.T) {
	client := NewScriptedClient()
	client.AddReply(RoleEvaluator, ScriptedReply{Text: "```json\n{broken\n```"})
	gw := NewGateway(client, testConfig())

	resp, _, err := gw.Evaluate(context.Background(), "run-1", map[string]any{})
	require.NoError(t, err)
	assert.True(t, resp.ParseFailed)
	assert.Equal(t, 0.5, resp.P.Overall)
	assert.Equal(t, 0.5, resp.R.Overall)
	assert.NotEmpty(t, resp.Explanation)
}

func TestGateway_RefineSpec(t *testing.T) {
	client := NewScriptedClient()
	client.AddJSONReply(RoleProblemSpec, map[string]any{
		"updated_spec": map[string]any{
			"constraints": []map[string]any{{"name": "budget", "weight": 100}},
			"goals":       []string{"reduce congestion"},
			"resolution":  "medium",
			"mode":        "full_search",
		},
		"ready_to_run": true,
	})
	gw := NewGateway(client, testConfig())

	resp, _, err := gw.RefineSpec(context.Background(), "", map[string]any{})
	require.NoError(t, err)
	require.NotNil(t, resp.UpdatedSpec)
	assert.True(t, resp.ReadyToRun)
	require.Len(t, resp.UpdatedSpec.Constraints, 1)
	assert.True(t, resp.UpdatedSpec.Constraints[0].Hard())
}

func TestGateway_UsageFromScriptedChunks(t *testing.T) {
	client := NewScriptedClient()
	client.AddReply(RoleGuidance, ScriptedReply{
		Text:  `{"next_steps": ["capture a snapshot"]}`,
		Usage: &UsageChunk{InputTokens: 1000, OutputTokens: 200, TotalTokens: 1200, CostUSD: 0.03},
	})
	gw := NewGateway(client, testConfig())

	resp, usage, err := gw.SuggestNextSteps(context.Background(), "run-9", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, []string{"capture a snapshot"}, resp.NextSteps)
	assert.Equal(t, 1200, usage.TotalTokens)
	assert.InDelta(t, 0.03, usage.CostUSD, 1e-9)
	assert.Equal(t, "anthropic", usage.Provider)
}

func TestAggregateUsage(t *testing.T) {
	agg := AggregateUsage([]models.LLMUsage{
		{InputTokens: 100, OutputTokens: 50, TotalTokens: 150, Provider: "anthropic", Model: "m1", CostUSD: 0.01},
		{InputTokens: 200, OutputTokens: 80, TotalTokens: 280, Provider: "anthropic", Model: "m2"},
		{InputTokens: 10, OutputTokens: 5, TotalTokens: 15, Provider: "openai", Model: "m1"},
	})

	assert.Equal(t, 3, agg.CallCount)
	assert.Equal(t, 310, agg.InputTokens)
	assert.Equal(t, 135, agg.OutputTokens)
	assert.Equal(t, 445, agg.TotalTokens)
	assert.InDelta(t, 0.01, agg.CostUSD, 1e-9)
	assert.Equal(t, map[string]int{"anthropic": 2, "openai": 1}, agg.Providers)
	assert.Equal(t, map[string]int{"m1": 2, "m2": 1}, agg.Models)
}

func TestMergeAggregates(t *testing.T) {
	a := &models.AggregatedUsage{InputTokens: 100, TotalTokens: 150, CallCount: 2, Providers: map[string]int{"anthropic": 2}}
	b := &models.AggregatedUsage{InputTokens: 50, TotalTokens: 60, CallCount: 1, Providers: map[string]int{"anthropic": 1}}

	merged := MergeAggregates(a, nil, b)
	assert.Equal(t, 150, merged.InputTokens)
	assert.Equal(t, 210, merged.TotalTokens)
	assert.Equal(t, 3, merged.CallCount)
	assert.Equal(t, map[string]int{"anthropic": 3}, merged.Providers)
}
