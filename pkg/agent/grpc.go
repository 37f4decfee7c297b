package agent

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	agentv1 "github.com/assaylab/assay/proto"
)

// GRPCAgentClient implements LLMClient by calling the Python agent sidecar
// via gRPC.
type GRPCAgentClient struct {
	conn   *grpc.ClientConn
	client agentv1.AgentServiceClient
}

// NewGRPCAgentClient creates a new gRPC agent client. Dialing is lazy; the
// actual connection happens on the first RPC.
func NewGRPCAgentClient(addr string) (*GRPCAgentClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent service at %s: %w", addr, err)
	}
	return &GRPCAgentClient{
		conn:   conn,
		client: agentv1.NewAgentServiceClient(conn),
	}, nil
}

// Generate sends a task to the sidecar and returns a channel of chunks.
func (c *GRPCAgentClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	stream, err := c.client.Generate(ctx, toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCAgentClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(input *GenerateInput) *agentv1.GenerateRequest {
	req := &agentv1.GenerateRequest{
		RunId:        input.RunID,
		Role:         input.Role,
		SystemPrompt: input.SystemPrompt,
		Task:         input.Task,
		ModelConfig: &agentv1.ModelConfig{
			Provider:  input.Provider,
			Model:     input.Model,
			MaxTokens: input.MaxTokens,
		},
	}
	if input.Temperature != nil {
		req.ModelConfig.Temperature = input.Temperature
	}
	return req
}

func fromProtoResponse(resp *agentv1.GenerateResponse) Chunk {
	switch c := resp.Content.(type) {
	case *agentv1.GenerateResponse_Text:
		return &TextChunk{Content: c.Text.Content}
	case *agentv1.GenerateResponse_Thinking:
		return &ThinkingChunk{Content: c.Thinking.Content}
	case *agentv1.GenerateResponse_Usage:
		return &UsageChunk{
			InputTokens:  c.Usage.InputTokens,
			OutputTokens: c.Usage.OutputTokens,
			TotalTokens:  c.Usage.TotalTokens,
			CostUSD:      c.Usage.CostUsd,
		}
	case *agentv1.GenerateResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
