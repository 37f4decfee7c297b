package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/problemspec"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/ent/worldmodel"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// SpecService manages the per-project ProblemSpec and WorldModel singletons.
//
// Reads are memoized per project because the orchestrator re-reads both
// artifacts at every phase boundary. The memo is cleared on every write and
// by InvalidateCaches, which the full pipeline calls up front so data
// committed by earlier phases is always visible to later ones.
type SpecService struct {
	client *ent.Client

	mu         sync.RWMutex
	specCache  map[string]*ent.ProblemSpec
	modelCache map[string]*ent.WorldModel
}

// NewSpecService creates a new SpecService.
func NewSpecService(client *ent.Client) *SpecService {
	return &SpecService{
		client:     client,
		specCache:  make(map[string]*ent.ProblemSpec),
		modelCache: make(map[string]*ent.WorldModel),
	}
}

// InvalidateCaches drops all memoized reads.
func (s *SpecService) InvalidateCaches() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specCache = make(map[string]*ent.ProblemSpec)
	s.modelCache = make(map[string]*ent.WorldModel)
}

func (s *SpecService) invalidateProject(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.specCache, projectID)
	delete(s.modelCache, projectID)
}

// UpsertProblemSpec creates the project's problem spec or replaces its
// fields in place. The provenance log is appended to, never rewritten.
func (s *SpecService) UpsertProblemSpec(httpCtx context.Context, req models.UpsertProblemSpecRequest) (*ent.ProblemSpec, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if err := models.ValidateConstraints(req.Constraints); err != nil {
		return nil, NewValidationError("constraints", err.Error())
	}
	if req.Resolution != "" && !models.ValidResolution(req.Resolution) {
		return nil, NewValidationError("resolution", "must be coarse, medium or fine")
	}
	if req.Mode != "" && !models.ValidMode(req.Mode) {
		return nil, NewValidationError("mode", "must be full_search, eval_only or seeded")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := tx.Project.Query().Where(project.IDEQ(req.ProjectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	entry := provenance.Entry{
		Type:   provenance.TypeSpecUpdated,
		Actor:  provenance.ActorUser,
		Source: "project:" + req.ProjectID,
	}
	if req.Provenance != nil {
		entry = *req.Provenance
	}

	existing, err := tx.ProblemSpec.Query().
		Where(problemspec.ProjectIDEQ(req.ProjectID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query problem spec: %w", err)
	}

	var spec *ent.ProblemSpec
	if existing == nil {
		create := tx.ProblemSpec.Create().
			SetID(uuid.New().String()).
			SetProjectID(req.ProjectID).
			SetConstraints(req.Constraints).
			SetGoals(req.Goals).
			SetProvenanceLog(provenance.Append(nil, entry))
		if req.Resolution != "" {
			create.SetResolution(problemspec.Resolution(req.Resolution))
		}
		if req.Mode != "" {
			create.SetMode(problemspec.Mode(req.Mode))
		}
		spec, err = create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create problem spec: %w", err)
		}
	} else {
		update := existing.Update().
			SetConstraints(req.Constraints).
			SetGoals(req.Goals).
			SetProvenanceLog(provenance.Append(existing.ProvenanceLog, entry))
		if req.Resolution != "" {
			update.SetResolution(problemspec.Resolution(req.Resolution))
		}
		if req.Mode != "" {
			update.SetMode(problemspec.Mode(req.Mode))
		}
		spec, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update problem spec: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit problem spec: %w", err)
	}

	s.invalidateProject(req.ProjectID)
	return spec, nil
}

// GetProblemSpec retrieves the project's problem spec, serving memoized
// reads when available.
func (s *SpecService) GetProblemSpec(ctx context.Context, projectID string) (*ent.ProblemSpec, error) {
	s.mu.RLock()
	if spec, ok := s.specCache[projectID]; ok {
		s.mu.RUnlock()
		return spec, nil
	}
	s.mu.RUnlock()

	spec, err := s.client.ProblemSpec.Query().
		Where(problemspec.ProjectIDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get problem spec: %w", err)
	}

	s.mu.Lock()
	s.specCache[projectID] = spec
	s.mu.Unlock()
	return spec, nil
}

// UpsertWorldModel creates the project's world model or replaces its
// model_data in place. A provenance entry is appended inside model_data.
func (s *SpecService) UpsertWorldModel(httpCtx context.Context, req models.UpsertWorldModelRequest) (*ent.WorldModel, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.ModelData == nil {
		return nil, NewValidationError("model_data", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := tx.Project.Query().Where(project.IDEQ(req.ProjectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	entry := provenance.Entry{
		Type:   provenance.TypeModelUpdated,
		Actor:  provenance.ActorUser,
		Source: "project:" + req.ProjectID,
	}
	if req.Provenance != nil {
		entry = *req.Provenance
	}
	data := provenance.AppendToTree(req.ModelData, entry)

	existing, err := tx.WorldModel.Query().
		Where(worldmodel.ProjectIDEQ(req.ProjectID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query world model: %w", err)
	}

	var model *ent.WorldModel
	if existing == nil {
		model, err = tx.WorldModel.Create().
			SetID(uuid.New().String()).
			SetProjectID(req.ProjectID).
			SetModelData(data).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create world model: %w", err)
		}
	} else {
		model, err = existing.Update().
			SetModelData(data).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update world model: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit world model: %w", err)
	}

	s.invalidateProject(req.ProjectID)
	return model, nil
}

// GetWorldModel retrieves the project's world model, serving memoized reads
// when available.
func (s *SpecService) GetWorldModel(ctx context.Context, projectID string) (*ent.WorldModel, error) {
	s.mu.RLock()
	if model, ok := s.modelCache[projectID]; ok {
		s.mu.RUnlock()
		return model, nil
	}
	s.mu.RUnlock()

	model, err := s.client.WorldModel.Query().
		Where(worldmodel.ProjectIDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get world model: %w", err)
	}

	s.mu.Lock()
	s.modelCache[projectID] = model
	s.mu.Unlock()
	return model, nil
}

// SetWorldModelData overwrites model_data directly. Used by the remediation
// engine after it has already deep-merged the patch and appended provenance.
func (s *SpecService) SetWorldModelData(httpCtx context.Context, projectID string, data map[string]any) (*ent.WorldModel, error) {
	if data == nil {
		return nil, NewValidationError("model_data", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model, err := s.client.WorldModel.Query().
		Where(worldmodel.ProjectIDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get world model: %w", err)
	}

	model, err = model.Update().SetModelData(data).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set world model data: %w", err)
	}

	s.invalidateProject(projectID)
	return model, nil
}

// Prerequisites reports which pipeline prerequisites exist for a project.
type Prerequisites struct {
	ProblemSpec bool `json:"problem_spec"`
	WorldModel  bool `json:"world_model"`
}

// CheckPrerequisites reports whether the problem spec and world model exist.
// Bypasses the memo: prerequisite checks must see latest committed state.
func (s *SpecService) CheckPrerequisites(ctx context.Context, projectID string) (Prerequisites, error) {
	var p Prerequisites

	specExists, err := s.client.ProblemSpec.Query().
		Where(problemspec.ProjectIDEQ(projectID)).
		Exist(ctx)
	if err != nil {
		return p, fmt.Errorf("failed to check problem spec: %w", err)
	}
	modelExists, err := s.client.WorldModel.Query().
		Where(worldmodel.ProjectIDEQ(projectID)).
		Exist(ctx)
	if err != nil {
		return p, fmt.Errorf("failed to check world model: %w", err)
	}

	p.ProblemSpec = specExists
	p.WorldModel = modelExists
	return p, nil
}
