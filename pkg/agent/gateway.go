package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/assaylab/assay/pkg/agent/prompt"
	"github.com/assaylab/assay/pkg/config"
	"github.com/assaylab/assay/pkg/models"
)

// parseFailureLogLimit bounds how much of a malformed reply gets logged.
const parseFailureLogLimit = 500

// Gateway dispatches typed tasks to the agent roles. A transport error is
// returned as an error; a malformed reply is logged and replaced by the
// role's safe default so one bad reply can't sink a whole run.
type Gateway struct {
	client LLMClient
	cfg    *config.Config
	logger *slog.Logger
}

// NewGateway creates a Gateway over the given client.
func NewGateway(client LLMClient, cfg *config.Config) *Gateway {
	return &Gateway{
		client: client,
		cfg:    cfg,
		logger: slog.With("component", "agent_gateway"),
	}
}

// Close releases the underlying client.
func (g *Gateway) Close() error {
	return g.client.Close()
}

// invoke dispatches one call: render the task, stream the reply, extract
// the first JSON document and unmarshal it into out. The returned bool is
// true when the reply could not be parsed (out is untouched then).
func (g *Gateway) invoke(ctx context.Context, role, runID string, task map[string]any, out any) (models.LLMUsage, bool, error) {
	var usage models.LLMUsage

	system, err := prompt.SystemPrompt(role)
	if err != nil {
		return usage, false, err
	}
	rendered, err := prompt.RenderTask(task)
	if err != nil {
		return usage, false, err
	}

	model := g.cfg.AgentFor(role)
	usage.Provider = model.Provider
	usage.Model = model.Model

	input := &GenerateInput{
		RunID:        runID,
		Role:         role,
		SystemPrompt: system,
		Task:         rendered,
		Provider:     model.Provider,
		Model:        model.Model,
		MaxTokens:    int32(model.MaxTokens),
		Temperature:  model.Temperature,
	}

	stream, err := g.client.Generate(ctx, input)
	if err != nil {
		return usage, false, fmt.Errorf("agent %s failed: %w", role, err)
	}

	var text strings.Builder
	for chunk := range stream {
		switch c := chunk.(type) {
		case *TextChunk:
			text.WriteString(c.Content)
		case *ThinkingChunk:
			// Reasoning is not part of the reply contract; drop it.
		case *UsageChunk:
			usage.InputTokens += int(c.InputTokens)
			usage.OutputTokens += int(c.OutputTokens)
			usage.TotalTokens += int(c.TotalTokens)
			usage.CostUSD += c.CostUSD
		case *ErrorChunk:
			return usage, false, fmt.Errorf("agent %s failed: %s (code=%s)", role, c.Message, c.Code)
		}
	}
	if err := ctx.Err(); err != nil {
		return usage, false, fmt.Errorf("agent %s interrupted: %w", role, err)
	}

	reply := text.String()
	doc, ok := ExtractJSON(reply)
	if !ok {
		g.logger.Warn("Agent reply is not parseable JSON, applying safe default",
			"role", role,
			"run_id", runID,
			"reply_prefix", clip(reply, parseFailureLogLimit))
		return usage, true, nil
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		g.logger.Warn("Agent reply JSON does not match the role contract, applying safe default",
			"role", role,
			"run_id", runID,
			"error", err,
			"reply_prefix", clip(reply, parseFailureLogLimit))
		return usage, true, nil
	}
	return usage, false, nil
}

// Design invokes the designer role.
func (g *Gateway) Design(ctx context.Context, runID string, task map[string]any) (*DesignResponse, models.LLMUsage, error) {
	var resp DesignResponse
	usage, parseFailed, err := g.invoke(ctx, RoleDesigner, runID, task, &resp)
	if err != nil {
		return nil, usage, err
	}
	if parseFailed {
		return defaultDesignResponse(), usage, nil
	}
	if resp.Candidates == nil {
		resp.Candidates = []CandidateProposal{}
	}
	return &resp, usage, nil
}

// GenerateScenarios invokes the scenario_generator role.
func (g *Gateway) GenerateScenarios(ctx context.Context, runID string, task map[string]any) (*ScenarioResponse, models.LLMUsage, error) {
	var resp ScenarioResponse
	usage, parseFailed, err := g.invoke(ctx, RoleScenarioGenerator, runID, task, &resp)
	if err != nil {
		return nil, usage, err
	}
	if parseFailed {
		return defaultScenarioResponse(), usage, nil
	}
	if resp.Scenarios == nil {
		resp.Scenarios = []models.Scenario{}
	}
	return &resp, usage, nil
}

// Evaluate invokes the evaluator role for one (candidate, scenario) pair.
func (g *Gateway) Evaluate(ctx context.Context, runID string, task map[string]any) (*EvaluationResponse, models.LLMUsage, error) {
	var resp EvaluationResponse
	usage, parseFailed, err := g.invoke(ctx, RoleEvaluator, runID, task, &resp)
	if err != nil {
		return nil, usage, err
	}
	if parseFailed {
		return defaultEvaluationResponse(), usage, nil
	}
	return &resp, usage, nil
}

// RefineSpec invokes the problem_spec role.
func (g *Gateway) RefineSpec(ctx context.Context, runID string, task map[string]any) (*SpecRefinementResponse, models.LLMUsage, error) {
	var resp SpecRefinementResponse
	usage, parseFailed, err := g.invoke(ctx, RoleProblemSpec, runID, task, &resp)
	if err != nil {
		return nil, usage, err
	}
	if parseFailed {
		return defaultSpecRefinementResponse(), usage, nil
	}
	return &resp, usage, nil
}

// RefineModel invokes the world_modeller role.
func (g *Gateway) RefineModel(ctx context.Context, runID string, task map[string]any) (*ModelRefinementResponse, models.LLMUsage, error) {
	var resp ModelRefinementResponse
	usage, parseFailed, err := g.invoke(ctx, RoleWorldModeller, runID, task, &resp)
	if err != nil {
		return nil, usage, err
	}
	if parseFailed {
		return defaultModelRefinementResponse(), usage, nil
	}
	return &resp, usage, nil
}

// SuggestRemediation invokes the feedback role.
func (g *Gateway) SuggestRemediation(ctx context.Context, runID string, task map[string]any) (*FeedbackResponse, models.LLMUsage, error) {
	var resp FeedbackResponse
	usage, parseFailed, err := g.invoke(ctx, RoleFeedback, runID, task, &resp)
	if err != nil {
		return nil, usage, err
	}
	if parseFailed {
		return defaultFeedbackResponse(), usage, nil
	}
	return &resp, usage, nil
}

// SuggestNextSteps invokes the guidance role.
func (g *Gateway) SuggestNextSteps(ctx context.Context, runID string, task map[string]any) (*GuidanceResponse, models.LLMUsage, error) {
	var resp GuidanceResponse
	usage, parseFailed, err := g.invoke(ctx, RoleGuidance, runID, task, &resp)
	if err != nil {
		return nil, usage, err
	}
	if parseFailed {
		return defaultGuidanceResponse(), usage, nil
	}
	return &resp, usage, nil
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
