package models

import "time"

// Run config bounds and defaults.
const (
	MinCandidates     = 1
	MaxCandidates     = 50
	DefaultCandidates = 5
	MinScenarios      = 1
	MaxScenarios      = 50
	DefaultScenarios  = 8
)

// MaxErrorSummaryLen bounds Run.error_summary; longer messages are truncated.
const MaxErrorSummaryLen = 512

// Pipeline phase names used as keys in RunMetrics.Phases.
const (
	PhaseDesign     = "design"
	PhaseScenario   = "scenario"
	PhaseEvaluation = "evaluation"
	PhaseRanking    = "ranking"
)

// RunConfig is the execution configuration persisted on a Run. Mode, when
// set, overrides the problem spec's mode for this run only.
type RunConfig struct {
	NumCandidates int      `json:"num_candidates,omitempty"`
	NumScenarios  int      `json:"num_scenarios,omitempty"`
	BudgetTokens  *int64   `json:"budget_tokens,omitempty"`
	BudgetUSD     *float64 `json:"budget_usd,omitempty"`
	MaxRuntimeS   *int     `json:"max_runtime_s,omitempty"`
	Mode          string   `json:"mode,omitempty"`
}

// DefaultRunConfig returns the baseline config (5 candidates, 8 scenarios).
func DefaultRunConfig() RunConfig {
	return RunConfig{
		NumCandidates: DefaultCandidates,
		NumScenarios:  DefaultScenarios,
	}
}

// PhaseMetrics records timing, resource counts and LLM usage for one
// executed phase. Resources keys are phase-specific counters
// (candidates_created, pairs_evaluated, pairs_skipped, ...).
type PhaseMetrics struct {
	StartedAt       time.Time        `json:"started_at"`
	CompletedAt     time.Time        `json:"completed_at"`
	DurationSeconds float64          `json:"duration_seconds"`
	Resources       map[string]int   `json:"resources,omitempty"`
	LLMUsage        *AggregatedUsage `json:"llm_usage,omitempty"`
	Error           string           `json:"error,omitempty"`
}

// RunMetrics is the instrumentation blob persisted on Run.metrics. Phases
// executed so far are always present, including on the failure path.
type RunMetrics struct {
	Phases map[string]PhaseMetrics `json:"phases,omitempty"`
}

// CreateRunRequest creates a run for a project. Zero config fields are
// filled from DefaultRunConfig. Enqueue marks the run for pickup by the
// queue workers instead of synchronous execution.
type CreateRunRequest struct {
	ProjectID         string         `json:"project_id"`
	Config            RunConfig      `json:"config"`
	ChatSessionID     *string        `json:"chat_session_id,omitempty"`
	UITriggerID       string         `json:"ui_trigger_id,omitempty"`
	UITriggerSource   string         `json:"ui_trigger_source,omitempty"`
	UITriggerMetadata map[string]any `json:"ui_trigger_metadata,omitempty"`
	Enqueue           bool           `json:"enqueue,omitempty"`
	RecommendedConfig *RunConfig     `json:"recommended_config,omitempty"`
}

// RunStatusOptions carries the optional fields a status transition may set.
type RunStatusOptions struct {
	StartedAt    *time.Time
	CompletedAt  *time.Time
	ErrorSummary *string
	Metrics      *RunMetrics
	LLMUsage     *AggregatedUsage
}

// RunFilters narrows ListRuns.
type RunFilters struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// TruncateErrorSummary clips s to MaxErrorSummaryLen runes.
func TruncateErrorSummary(s string) string {
	r := []rune(s)
	if len(r) <= MaxErrorSummaryLen {
		return s
	}
	return string(r[:MaxErrorSummaryLen])
}
