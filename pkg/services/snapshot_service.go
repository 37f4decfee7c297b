package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/ent/snapshot"
	"github.com/assaylab/assay/pkg/models"
)

// SnapshotService stores frozen snapshot records. snapshot_data and
// reference_metrics are immutable after creation; only description, tags and
// invariants may change. Capture and replay logic lives in pkg/snapshot.
type SnapshotService struct {
	client *ent.Client
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(client *ent.Client) *SnapshotService {
	return &SnapshotService{client: client}
}

// CreateSnapshot persists a captured snapshot. Names are unique per project.
func (s *SnapshotService) CreateSnapshot(httpCtx context.Context, projectID, name, description string, data models.SnapshotData, ref *models.ReferenceMetrics, tags []string, invariants []models.Invariant) (*ent.Snapshot, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if data.Version == "" {
		return nil, NewValidationError("snapshot_data", "version is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Project.Query().Where(project.IDEQ(projectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	create := s.client.Snapshot.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetName(name).
		SetDescription(description).
		SetSnapshotData(data)

	if ref != nil {
		create.SetReferenceMetrics(ref)
	}
	if len(tags) > 0 {
		create.SetTags(tags)
	}
	if len(invariants) > 0 {
		create.SetInvariants(invariants)
	}

	snap, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}
	return snap, nil
}

// GetSnapshot retrieves a snapshot by id.
func (s *SnapshotService) GetSnapshot(ctx context.Context, snapshotID string) (*ent.Snapshot, error) {
	snap, err := s.client.Snapshot.Query().
		Where(snapshot.IDEQ(snapshotID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots lists a project's snapshots newest-first. An empty projectID
// lists every snapshot (used by the batch test runner).
func (s *SnapshotService) ListSnapshots(ctx context.Context, projectID string) ([]*ent.Snapshot, error) {
	query := s.client.Snapshot.Query()
	if projectID != "" {
		query = query.Where(snapshot.ProjectIDEQ(projectID))
	}

	snaps, err := query.
		Order(ent.Desc(snapshot.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}

// UpdateSnapshot mutates the mutable fields only.
func (s *SnapshotService) UpdateSnapshot(httpCtx context.Context, snapshotID string, req models.UpdateSnapshotRequest) (*ent.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Snapshot.UpdateOneID(snapshotID)
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Tags != nil {
		update.SetTags(*req.Tags)
	}
	if req.Invariants != nil {
		update.SetInvariants(*req.Invariants)
	}

	snap, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update snapshot: %w", err)
	}
	return snap, nil
}

// DeleteSnapshot deletes a snapshot.
func (s *SnapshotService) DeleteSnapshot(httpCtx context.Context, snapshotID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Snapshot.DeleteOneID(snapshotID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
