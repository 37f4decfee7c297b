package config

// Defaults contains system-wide default configurations.
// These values apply wherever a run config or agent role doesn't
// specify its own.
type Defaults struct {
	// LLM provider used for all agent roles unless overridden
	Provider string `yaml:"provider,omitempty"`

	// Model name passed to the agent sidecar
	Model string `yaml:"model,omitempty"`

	// MaxTokens caps a single agent response
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// EvalConcurrency is the evaluation phase fan-out width
	EvalConcurrency int `yaml:"eval_concurrency,omitempty"`

	// CandidateCount and ScenarioCount seed run configs that omit them
	CandidateCount int `yaml:"candidate_count,omitempty"`
	ScenarioCount  int `yaml:"scenario_count,omitempty"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		Provider:        "anthropic",
		Model:           "claude-sonnet-4-5",
		MaxTokens:       8192,
		EvalConcurrency: 4,
		CandidateCount:  5,
		ScenarioCount:   8,
	}
}

// AgentRoleConfig holds per-role model overrides from assay.yaml.
type AgentRoleConfig struct {
	Provider    string   `yaml:"provider,omitempty"`
	Model       string   `yaml:"model,omitempty"`
	MaxTokens   int      `yaml:"max_tokens,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
}

// knownRoles lists every agent role the pipeline invokes.
var knownRoles = map[string]struct{}{
	"designer":           {},
	"scenario_generator": {},
	"evaluator":          {},
	"problem_spec":       {},
	"world_modeller":     {},
	"feedback":           {},
	"guidance":           {},
}
