package models

// LLMUsage is the usage report of a single agent call.
type LLMUsage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalTokens  int     `json:"total_tokens"`
	Provider     string  `json:"provider,omitempty"`
	Model        string  `json:"model,omitempty"`
	CostUSD      float64 `json:"cost_usd,omitempty"`
}

// AggregatedUsage is the rollup persisted on Run.llm_usage and inside phase
// metrics. Providers and Models map names to call counts.
type AggregatedUsage struct {
	InputTokens  int            `json:"input_tokens"`
	OutputTokens int            `json:"output_tokens"`
	TotalTokens  int            `json:"total_tokens"`
	CallCount    int            `json:"call_count"`
	CostUSD      float64        `json:"cost_usd,omitempty"`
	Providers    map[string]int `json:"providers,omitempty"`
	Models       map[string]int `json:"models,omitempty"`
}
