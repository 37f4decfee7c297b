package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/candidate"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// CandidateService manages solution candidates and their monotone status
// machine.
type CandidateService struct {
	client *ent.Client
}

// NewCandidateService creates a new CandidateService.
func NewCandidateService(client *ent.Client) *CandidateService {
	return &CandidateService{client: client}
}

// CreateCandidate adds a candidate to a project.
func (s *CandidateService) CreateCandidate(httpCtx context.Context, req models.CreateCandidateRequest) (*ent.Candidate, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.MechanismDescription == "" {
		return nil, NewValidationError("mechanism_description", "required")
	}
	if req.Origin != models.OriginUser && req.Origin != models.OriginSystem {
		return nil, NewValidationError("origin", "must be user or system")
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

	id := uuid.New().String()
	entry := provenance.Entry{
		Type:         provenance.TypeCandidateCreated,
		Actor:        provenance.ActorUser,
		Source:       "project:" + req.ProjectID,
		ReferenceIDs: []string{id},
	}
	if req.Provenance != nil {
		entry = *req.Provenance
		// The creating run (or other caller refs) stay; the candidate's own
		// id is always part of the entry.
		if !slices.Contains(entry.ReferenceIDs, id) {
			entry.ReferenceIDs = append(entry.ReferenceIDs, id)
		}
	}

	create := s.client.Candidate.Create().
		SetID(id).
		SetProjectID(req.ProjectID).
		SetOrigin(candidate.Origin(req.Origin)).
		SetStatus(candidate.StatusNew).
		SetMechanismDescription(req.MechanismDescription).
		SetProvenanceLog(provenance.Append(nil, entry))

	if req.RunID != nil {
		create.SetRunID(*req.RunID)
	}
	if req.PredictedEffects != nil {
		create.SetPredictedEffects(req.PredictedEffects)
	}
	if len(req.ParentIDs) > 0 {
		create.SetParentIds(req.ParentIDs)
	}
	if req.Scores != nil {
		create.SetScores(req.Scores)
	}

	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return c, nil
}

// GetCandidate retrieves a candidate by id.
func (s *CandidateService) GetCandidate(ctx context.Context, candidateID string) (*ent.Candidate, error) {
	c, err := s.client.Candidate.Query().
		Where(candidate.IDEQ(candidateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// ListCandidates lists a project's candidates newest-first.
func (s *CandidateService) ListCandidates(ctx context.Context, projectID string, filters models.CandidateFilters) ([]*ent.Candidate, error) {
	query := s.client.Candidate.Query()
	if projectID != "" {
		query = query.Where(candidate.ProjectIDEQ(projectID))
	}
	if filters.RunID != "" {
		query = query.Where(candidate.RunIDEQ(filters.RunID))
	}
	if filters.Live {
		query = query.Where(candidate.StatusNEQ(candidate.StatusRejected))
	}
	if len(filters.Statuses) > 0 {
		statuses := make([]candidate.Status, 0, len(filters.Statuses))
		for _, st := range filters.Statuses {
			if err := candidate.StatusValidator(candidate.Status(st)); err != nil {
				return nil, NewValidationError("statuses", "unknown candidate status: "+st)
			}
			statuses = append(statuses, candidate.Status(st))
		}
		query = query.Where(candidate.StatusIn(statuses...))
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	candidates, err := query.
		Order(ent.Desc(candidate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// CountLive counts a project's candidates whose status is not rejected.
func (s *CandidateService) CountLive(ctx context.Context, projectID string) (int, error) {
	n, err := s.client.Candidate.Query().
		Where(
			candidate.ProjectIDEQ(projectID),
			candidate.StatusNEQ(candidate.StatusRejected),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count live candidates: %w", err)
	}
	return n, nil
}

// UpdateCandidateStatus moves a candidate along the monotone machine,
// optionally appending a provenance entry in the same write.
func (s *CandidateService) UpdateCandidateStatus(httpCtx context.Context, candidateID, status string, entry *provenance.Entry) (*ent.Candidate, error) {
	if err := candidate.StatusValidator(candidate.Status(status)); err != nil {
		return nil, NewValidationError("status", "unknown candidate status")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := s.client.Candidate.Query().
		Where(candidate.IDEQ(candidateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if string(current.Status) == status {
		return current, nil
	}
	if !models.ValidCandidateTransition(string(current.Status), status) {
		return nil, fmt.Errorf("%w: candidate %s cannot move %s → %s",
			ErrInvalidTransition, candidateID, current.Status, status)
	}

	update := current.Update().SetStatus(candidate.Status(status))
	if entry != nil {
		update.SetProvenanceLog(provenance.Append(current.ProvenanceLog, *entry))
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate status: %w", err)
	}
	return updated, nil
}

// UpdateCandidateScores replaces the scores blob and optionally the status,
// appending a provenance entry. Ranking uses this to persist its verdicts in
// one write per candidate.
func (s *CandidateService) UpdateCandidateScores(httpCtx context.Context, candidateID string, scores *models.CandidateScores, status string, entry *provenance.Entry) (*ent.Candidate, error) {
	if scores == nil {
		return nil, NewValidationError("scores", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := s.client.Candidate.Query().
		Where(candidate.IDEQ(candidateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	update := current.Update().SetScores(scores)

	if status != "" && string(current.Status) != status {
		if err := candidate.StatusValidator(candidate.Status(status)); err != nil {
			return nil, NewValidationError("status", "unknown candidate status")
		}
		if !models.ValidCandidateTransition(string(current.Status), status) {
			return nil, fmt.Errorf("%w: candidate %s cannot move %s → %s",
				ErrInvalidTransition, candidateID, current.Status, status)
		}
		update.SetStatus(candidate.Status(status))
	}
	if entry != nil {
		update.SetProvenanceLog(provenance.Append(current.ProvenanceLog, *entry))
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate scores: %w", err)
	}
	return updated, nil
}

// AppendProvenance appends an entry to a candidate's log without other
// changes.
func (s *CandidateService) AppendProvenance(httpCtx context.Context, candidateID string, entry provenance.Entry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := s.client.Candidate.Query().
		Where(candidate.IDEQ(candidateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get candidate: %w", err)
	}

	err = current.Update().
		SetProvenanceLog(provenance.Append(current.ProvenanceLog, entry)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append candidate provenance: %w", err)
	}
	return nil
}
