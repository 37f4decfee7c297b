package models

// Chat session modes. Setup sessions host the refinement conversation that
// produces the problem spec and world model; review sessions collect run
// summaries and feedback.
const (
	ChatModeSetup  = "setup"
	ChatModeReview = "review"
)

// Message roles.
const (
	RoleUser   = "user"
	RoleAgent  = "agent"
	RoleSystem = "system"
)

// CreateChatSessionRequest opens a chat session on a project.
type CreateChatSessionRequest struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

// CreateMessageRequest appends a message to a chat session.
type CreateMessageRequest struct {
	ChatSessionID string         `json:"chat_session_id"`
	Role          string         `json:"role"`
	Content       string         `json:"content"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// RunSummaryCandidate is one leaderboard row inside a run summary.
type RunSummaryCandidate struct {
	CandidateID string   `json:"candidate_id"`
	Rank        int      `json:"rank"`
	I           *float64 `json:"I,omitempty"`
	Status      string   `json:"status"`
}

// RunSummary is emitted into the project's first chat session when a run
// reaches a terminal status. It is persisted as message metadata.
type RunSummary struct {
	RunID           string                  `json:"run_id"`
	Status          string                  `json:"status"`
	CandidateCount  int                     `json:"candidate_count"`
	ScenarioCount   int                     `json:"scenario_count"`
	EvaluationCount int                     `json:"evaluation_count"`
	TopCandidates   []RunSummaryCandidate   `json:"top_candidates,omitempty"`
	Phases          map[string]PhaseMetrics `json:"phases,omitempty"`
	LLMUsage        *AggregatedUsage        `json:"llm_usage,omitempty"`
	ErrorSummary    string                  `json:"error_summary,omitempty"`
}
