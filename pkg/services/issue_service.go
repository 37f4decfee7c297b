package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/issue"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/pkg/models"
)

// IssueService manages filed issues and their resolution bookkeeping. The
// remediation engine drives ResolveIssue; everything else is plain CRUD.
type IssueService struct {
	client *ent.Client
}

// NewIssueService creates a new IssueService.
func NewIssueService(client *ent.Client) *IssueService {
	return &IssueService{client: client}
}

// CreateIssue files an issue against a project.
func (s *IssueService) CreateIssue(httpCtx context.Context, req models.CreateIssueRequest) (*ent.Issue, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if !models.ValidIssueType(req.IssueType) {
		return nil, NewValidationError("issue_type", "must be model, constraint, evaluator or scenario")
	}
	if !models.ValidSeverity(req.Severity) {
		return nil, NewValidationError("severity", "must be minor, important or catastrophic")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Project.Query().Where(project.IDEQ(req.ProjectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	create := s.client.Issue.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetIssueType(issue.IssueType(req.IssueType)).
		SetSeverity(issue.Severity(req.Severity)).
		SetDescription(req.Description).
		SetResolutionStatus(issue.ResolutionStatusOpen)

	if req.RunID != nil {
		create.SetRunID(*req.RunID)
	}
	if req.CandidateID != nil {
		create.SetCandidateID(*req.CandidateID)
	}

	is, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	return is, nil
}

// GetIssue retrieves an issue by id.
func (s *IssueService) GetIssue(ctx context.Context, issueID string) (*ent.Issue, error) {
	is, err := s.client.Issue.Query().
		Where(issue.IDEQ(issueID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return is, nil
}

// ListIssues lists a project's issues newest-first.
func (s *IssueService) ListIssues(ctx context.Context, projectID string, filters models.IssueFilters) ([]*ent.Issue, error) {
	query := s.client.Issue.Query()
	if projectID != "" {
		query = query.Where(issue.ProjectIDEQ(projectID))
	}
	if filters.ResolutionStatus != "" {
		if err := issue.ResolutionStatusValidator(issue.ResolutionStatus(filters.ResolutionStatus)); err != nil {
			return nil, NewValidationError("resolution_status", "unknown resolution status")
		}
		query = query.Where(issue.ResolutionStatusEQ(issue.ResolutionStatus(filters.ResolutionStatus)))
	}
	if filters.Severity != "" {
		if err := issue.SeverityValidator(issue.Severity(filters.Severity)); err != nil {
			return nil, NewValidationError("severity", "unknown severity")
		}
		query = query.Where(issue.SeverityEQ(issue.Severity(filters.Severity)))
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	issues, err := query.
		Order(ent.Desc(issue.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}

// ResolveIssue marks an issue resolved and records what remediation did.
func (s *IssueService) ResolveIssue(httpCtx context.Context, issueID string, record models.RemediationRecord) (*ent.Issue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	is, err := s.client.Issue.UpdateOneID(issueID).
		SetResolutionStatus(issue.ResolutionStatusResolved).
		SetResolvedAt(time.Now()).
		SetRemediation(&record).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve issue: %w", err)
	}
	return is, nil
}

// InvalidateIssue marks an issue invalidated (reported in error, duplicate,
// or no longer reproducible).
func (s *IssueService) InvalidateIssue(httpCtx context.Context, issueID string) (*ent.Issue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	is, err := s.client.Issue.UpdateOneID(issueID).
		SetResolutionStatus(issue.ResolutionStatusInvalidated).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to invalidate issue: %w", err)
	}
	return is, nil
}
