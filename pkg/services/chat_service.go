// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/chatsession"
	"github.com/assaylab/assay/ent/message"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/pkg/models"
)

// ChatService manages chat sessions and their messages. Run summaries are
// emitted here as agent-role messages with JSON metadata.
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService.
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// CreateSession opens a chat session on a project.
func (s *ChatService) CreateSession(httpCtx context.Context, req models.CreateChatSessionRequest) (*ent.ChatSession, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	mode := req.Mode
	if mode == "" {
		mode = models.ChatModeSetup
	}
	if err := chatsession.ModeValidator(chatsession.Mode(mode)); err != nil {
		return nil, NewValidationError("mode", "must be setup or review")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := s.client.Project.Query().Where(project.IDEQ(req.ProjectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	session, err := s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetTitle(req.Title).
		SetMode(chatsession.Mode(mode)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a chat session by id.
func (s *ChatService) GetSession(ctx context.Context, sessionID string) (*ent.ChatSession, error) {
	session, err := s.client.ChatSession.Query().
		Where(chatsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return session, nil
}

// ListSessions lists a project's chat sessions newest-first. The pipeline's
// "first chat session" for summary emission is the head of this list.
func (s *ChatService) ListSessions(ctx context.Context, projectID string) ([]*ent.ChatSession, error) {
	sessions, err := s.client.ChatSession.Query().
		Where(chatsession.ProjectIDEQ(projectID)).
		Order(ent.Desc(chatsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}

// NewestSetupSession returns the most recent setup-mode session, or
// ErrNotFound when the project has none. Snapshot capture pulls its chat
// context from here.
func (s *ChatService) NewestSetupSession(ctx context.Context, projectID string) (*ent.ChatSession, error) {
	session, err := s.client.ChatSession.Query().
		Where(
			chatsession.ProjectIDEQ(projectID),
			chatsession.ModeEQ(chatsession.ModeSetup),
		).
		Order(ent.Desc(chatsession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get setup session: %w", err)
	}
	return session, nil
}

// CreateMessage appends a message to a chat session.
func (s *ChatService) CreateMessage(httpCtx context.Context, req models.CreateMessageRequest) (*ent.Message, error) {
	if req.ChatSessionID == "" {
		return nil, NewValidationError("chat_session_id", "required")
	}
	if err := message.RoleValidator(message.Role(req.Role)); err != nil {
		return nil, NewValidationError("role", "must be user, agent or system")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := s.client.ChatSession.Query().
		Where(chatsession.IDEQ(req.ChatSessionID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check chat session: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetChatSessionID(req.ChatSessionID).
		SetRole(message.Role(req.Role)).
		SetContent(req.Content)
	if req.Metadata != nil {
		create.SetMetadata(req.Metadata)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// ListMessages lists a session's messages oldest-first (conversation order).
func (s *ChatService) ListMessages(ctx context.Context, sessionID string, limit int) ([]*ent.Message, error) {
	query := s.client.Message.Query().
		Where(message.ChatSessionIDEQ(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	messages, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// LastMessages returns the most recent n messages of a session in
// conversation order.
func (s *ChatService) LastMessages(ctx context.Context, sessionID string, n int) ([]*ent.Message, error) {
	if n <= 0 {
		return nil, nil
	}

	messages, err := s.client.Message.Query().
		Where(message.ChatSessionIDEQ(sessionID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list last messages: %w", err)
	}

	// Reverse to conversation order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
