// Package agent provides uniform access to the reasoning agent roles
// served by the Python agent sidecar.
package agent

import "context"

// Agent roles the pipeline invokes.
const (
	RoleDesigner          = "designer"
	RoleScenarioGenerator = "scenario_generator"
	RoleEvaluator         = "evaluator"
	RoleProblemSpec       = "problem_spec"
	RoleWorldModeller     = "world_modeller"
	RoleFeedback          = "feedback"
	RoleGuidance          = "guidance"
)

// LLMClient is the Go-side interface for calling the agent sidecar.
// It wraps the gRPC connection and provides a channel-based streaming API.
type LLMClient interface {
	// Generate sends a task to an agent role and returns a stream of chunks.
	// The returned channel is closed when the stream completes.
	// Provider errors are delivered as ErrorChunk values in the channel.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// GenerateInput is the Go-side representation of a Generate request.
type GenerateInput struct {
	RunID        string
	Role         string
	SystemPrompt string
	Task         string // task object rendered as a fenced JSON block
	Provider     string
	Model        string
	MaxTokens    int32
	Temperature  *float64
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the agent's text response.
type TextChunk struct{ Content string }

// ThinkingChunk is a chunk of the agent's internal reasoning.
type ThinkingChunk struct{ Content string }

// UsageChunk reports token consumption for this agent call.
type UsageChunk struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
	CostUSD      float64
}

// ErrorChunk signals an error from the agent provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }
