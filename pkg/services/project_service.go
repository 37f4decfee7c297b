package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/pkg/models"
)

// ProjectService manages the project root aggregate.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a new project.
func (s *ProjectService) CreateProject(httpCtx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetEphemeral(req.Ephemeral).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetProject retrieves a project by id.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects lists projects newest-first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListProjectIDs returns every project id, used to enrich precondition
// errors with a debugging aid.
func (s *ProjectService) ListProjectIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.Project.Query().
		Order(ent.Desc(project.FieldCreatedAt)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}
	return ids, nil
}

// DeleteProject deletes a project. Children (spec, model, runs, candidates,
// issues, snapshots, chat sessions) cascade at the database level.
func (s *ProjectService) DeleteProject(httpCtx context.Context, projectID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.client.Project.DeleteOneID(projectID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ListExpiredEphemeralProjects returns ephemeral projects created before the
// cutoff. Used by the retention sweep to clean up replay scratch projects.
func (s *ProjectService) ListExpiredEphemeralProjects(ctx context.Context, cutoff time.Time) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(
			project.EphemeralEQ(true),
			project.CreatedAtLT(cutoff),
		).
		Order(ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired ephemeral projects: %w", err)
	}
	return projects, nil
}
