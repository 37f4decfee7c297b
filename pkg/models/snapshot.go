package models

import (
	"time"

	"github.com/assaylab/assay/pkg/provenance"
)

// SnapshotVersion is the only snapshot_data version this build can restore.
const SnapshotVersion = "1.0"

// Replay phase selections.
const (
	ReplayFull     = "full"
	ReplayDesign   = "design"
	ReplayEvaluate = "evaluate"
)

// Invariant result statuses.
const (
	InvariantPassed = "passed"
	InvariantFailed = "failed"
	InvariantError  = "error"
)

// Snapshot test statuses (per-snapshot outcome in a batch).
const (
	TestPassed  = "passed"
	TestFailed  = "failed"
	TestError   = "error"
	TestSkipped = "skipped"
)

// Invariant types checked after a replay.
const (
	InvariantMinCandidates      = "min_candidates"
	InvariantMaxCandidates      = "max_candidates"
	InvariantMinScenarios       = "min_scenarios"
	InvariantMaxScenarios       = "max_scenarios"
	InvariantRunStatus          = "run_status"
	InvariantMinTopIScore       = "min_top_i_score"
	InvariantMaxTopIScore       = "max_top_i_score"
	InvariantNoHardViolations   = "no_hard_constraint_violations"
	InvariantMaxDurationSeconds = "max_duration_seconds"
	InvariantMinEvalCoverage    = "min_evaluation_coverage"
)

// SnapshotData is the immutable capture blob (version "1.0").
type SnapshotData struct {
	Version     string               `json:"version"`
	ProblemSpec *SnapshotProblemSpec `json:"problem_spec,omitempty"`
	WorldModel  *SnapshotWorldModel  `json:"world_model,omitempty"`
	RunConfig   *SnapshotRunConfig   `json:"run_config,omitempty"`
	ChatContext []SnapshotMessage    `json:"chat_context,omitempty"`
}

// SnapshotProblemSpec freezes a problem spec.
type SnapshotProblemSpec struct {
	Constraints   []Constraint       `json:"constraints"`
	Goals         []string           `json:"goals,omitempty"`
	Resolution    string             `json:"resolution"`
	Mode          string             `json:"mode"`
	ProvenanceLog []provenance.Entry `json:"provenance_log,omitempty"`
}

// SnapshotWorldModel freezes a world model.
type SnapshotWorldModel struct {
	ModelData map[string]any `json:"model_data"`
}

// SnapshotRunConfig freezes the config of the run the snapshot was taken
// from.
type SnapshotRunConfig struct {
	Mode   string    `json:"mode,omitempty"`
	Config RunConfig `json:"config"`
}

// SnapshotMessage is one frozen chat message.
type SnapshotMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ReferenceMetrics records the outcome of the source run at capture time,
// used as the comparison baseline for snapshot tests. TopIScore is null
// when no candidate carried an I score.
type ReferenceMetrics struct {
	CandidateCount  int              `json:"candidate_count"`
	ScenarioCount   int              `json:"scenario_count"`
	EvaluationCount int              `json:"evaluation_count"`
	Status          string           `json:"status,omitempty"`
	DurationSeconds *float64         `json:"duration_seconds,omitempty"`
	LLMUsage        *AggregatedUsage `json:"llm_usage,omitempty"`
	ErrorSummary    string           `json:"error_summary,omitempty"`
	TopIScore       *float64         `json:"top_i_score"`
	Metrics         *RunMetrics      `json:"metrics,omitempty"`
}

// Invariant is one assertion attached to a snapshot and checked after
// replays.
type Invariant struct {
	Type        string `json:"type"`
	Value       any    `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
}

// InvariantResult is the outcome of checking one invariant.
type InvariantResult struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Expected    any    `json:"expected,omitempty"`
	Actual      any    `json:"actual"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}

// CaptureSnapshotRequest captures the current project state under a unique
// name. RunID additionally freezes that run's config and reference metrics.
type CaptureSnapshotRequest struct {
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	RunID            *string     `json:"run_id,omitempty"`
	IncludeChat      bool        `json:"include_chat,omitempty"`
	ChatMessageLimit int         `json:"chat_message_limit,omitempty"`
	Tags             []string    `json:"tags,omitempty"`
	Invariants       []Invariant `json:"invariants,omitempty"`
}

// UpdateSnapshotRequest mutates the only mutable snapshot fields. Nil
// pointers leave the field untouched.
type UpdateSnapshotRequest struct {
	Description *string      `json:"description,omitempty"`
	Tags        *[]string    `json:"tags,omitempty"`
	Invariants  *[]Invariant `json:"invariants,omitempty"`
}

// ReplaySnapshotRequest replays a snapshot. Phases selects how much of the
// pipeline runs; ReuseProjectID skips the ephemeral project.
type ReplaySnapshotRequest struct {
	Phases         string     `json:"phases,omitempty"`
	ReuseProjectID *string    `json:"reuse_project_id,omitempty"`
	RunConfig      *RunConfig `json:"run_config,omitempty"`
}

// ReplayResult reports a single replay.
type ReplayResult struct {
	ProjectID        string            `json:"project_id"`
	RunID            string            `json:"run_id"`
	RunStatus        string            `json:"run_status"`
	InvariantResults []InvariantResult `json:"invariant_results"`
	AllPassed        bool              `json:"all_passed"`
	Metrics          *RunMetrics       `json:"metrics,omitempty"`
	CostUSD          float64           `json:"cost_usd,omitempty"`
}

// CountDelta compares an integer metric against the snapshot reference.
type CountDelta struct {
	Reference int `json:"reference"`
	Actual    int `json:"actual"`
	Delta     int `json:"delta"`
}

// ScoreDelta compares top_i_score against the reference; nil sides mean the
// score was absent.
type ScoreDelta struct {
	Reference *float64 `json:"reference"`
	Actual    *float64 `json:"actual"`
	Delta     *float64 `json:"delta,omitempty"`
}

// ReferenceDelta is the replay-vs-reference comparison attached to each
// snapshot test result.
type ReferenceDelta struct {
	CandidateCount  CountDelta `json:"candidate_count"`
	ScenarioCount   CountDelta `json:"scenario_count"`
	EvaluationCount CountDelta `json:"evaluation_count"`
	TopIScore       ScoreDelta `json:"top_i_score"`
}

// SnapshotTestRequest runs a batch of snapshot replays as regression tests.
type SnapshotTestRequest struct {
	SnapshotIDs        []string   `json:"snapshot_ids"`
	StopOnFirstFailure bool       `json:"stop_on_first_failure,omitempty"`
	CostLimitUSD       *float64   `json:"cost_limit_usd,omitempty"`
	RunConfig          *RunConfig `json:"run_config,omitempty"`
}

// SnapshotTestResult is the outcome for one snapshot in a batch.
type SnapshotTestResult struct {
	SnapshotID       string            `json:"snapshot_id"`
	Name             string            `json:"name"`
	Status           string            `json:"status"`
	DurationSeconds  float64           `json:"duration_seconds"`
	CostUSD          float64           `json:"cost_usd,omitempty"`
	InvariantResults []InvariantResult `json:"invariant_results,omitempty"`
	Delta            *ReferenceDelta   `json:"delta,omitempty"`
	Message          string            `json:"message,omitempty"`
}

// TestSummary tallies a snapshot test batch.
type TestSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// SnapshotTestReport is the batch response.
type SnapshotTestReport struct {
	Summary      TestSummary          `json:"summary"`
	Results      []SnapshotTestResult `json:"results"`
	TotalCostUSD float64              `json:"total_cost_usd"`
}
