package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// ScriptedReply is one canned agent reply.
type ScriptedReply struct {
	Text  string
	Usage *UsageChunk
	Err   *ErrorChunk
}

// RecordedCall captures one Generate invocation for assertions.
type RecordedCall struct {
	RunID string
	Role  string
	Task  string
}

// ScriptedClient is an in-memory LLMClient backing tests and the e2e
// harness. Replies are queued per role and consumed in order; a role with
// no remaining replies yields an error chunk.
type ScriptedClient struct {
	mu      sync.Mutex
	replies map[string][]ScriptedReply
	calls   []RecordedCall
	closed  bool
}

// NewScriptedClient creates an empty ScriptedClient.
func NewScriptedClient() *ScriptedClient {
	return &ScriptedClient{replies: make(map[string][]ScriptedReply)}
}

// AddReply queues a reply for a role.
func (c *ScriptedClient) AddReply(role string, reply ScriptedReply) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies[role] = append(c.replies[role], reply)
}

// AddJSONReply marshals doc and queues it as a fenced JSON reply.
func (c *ScriptedClient) AddJSONReply(role string, doc any) {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("scripted reply for %s is not marshalable: %v", role, err))
	}
	c.AddReply(role, ScriptedReply{Text: "```json\n" + string(data) + "\n```"})
}

// Calls returns the recorded invocations in order.
func (c *ScriptedClient) Calls() []RecordedCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RecordedCall, len(c.calls))
	copy(out, c.calls)
	return out
}

// Generate pops the next scripted reply for the requested role.
func (c *ScriptedClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, fmt.Errorf("scripted client is closed")
	}
	c.calls = append(c.calls, RecordedCall{RunID: input.RunID, Role: input.Role, Task: input.Task})

	queue := c.replies[input.Role]
	var reply ScriptedReply
	if len(queue) == 0 {
		reply = ScriptedReply{Err: &ErrorChunk{
			Message: fmt.Sprintf("no scripted reply for role %s", input.Role),
			Code:    "script_exhausted",
		}}
	} else {
		reply = queue[0]
		c.replies[input.Role] = queue[1:]
	}
	c.mu.Unlock()

	ch := make(chan Chunk, 4)
	go func() {
		defer close(ch)
		if ctx.Err() != nil {
			return
		}
		if reply.Err != nil {
			ch <- reply.Err
			return
		}
		if reply.Text != "" {
			ch <- &TextChunk{Content: reply.Text}
		}
		usage := reply.Usage
		if usage == nil {
			usage = &UsageChunk{InputTokens: 100, OutputTokens: 50, TotalTokens: 150}
		}
		ch <- usage
	}()
	return ch, nil
}

// Close marks the client closed.
func (c *ScriptedClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
