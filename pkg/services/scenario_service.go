package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// ScenarioService manages the per-run scenario suite singleton.
type ScenarioService struct {
	client *ent.Client
}

// NewScenarioService creates a new ScenarioService.
func NewScenarioService(client *ent.Client) *ScenarioService {
	return &ScenarioService{client: client}
}

// UpsertSuite creates the run's scenario suite or replaces its scenarios in
// place. Scenario ids are filled when missing, types validated and weights
// clamped to [0,1] (zero weight defaults to 1.0).
func (s *ScenarioService) UpsertSuite(httpCtx context.Context, req models.UpsertScenarioSuiteRequest) (*ent.ScenarioSuite, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	scenarios := make([]models.Scenario, len(req.Scenarios))
	seen := make(map[string]struct{}, len(req.Scenarios))
	for i, sc := range req.Scenarios {
		if sc.Name == "" {
			return nil, NewValidationError("scenarios", fmt.Sprintf("scenario %d: name is required", i))
		}
		if !models.ValidScenarioType(sc.Type) {
			return nil, NewValidationError("scenarios", fmt.Sprintf("scenario %q: unknown type %q", sc.Name, sc.Type))
		}
		if sc.ID == "" {
			sc.ID = fmt.Sprintf("scenario-%d", i+1)
		}
		if _, dup := seen[sc.ID]; dup {
			return nil, NewValidationError("scenarios", fmt.Sprintf("scenario id %q: duplicate", sc.ID))
		}
		seen[sc.ID] = struct{}{}
		switch {
		case sc.Weight == 0:
			sc.Weight = 1.0
		case sc.Weight < 0:
			sc.Weight = 0
		case sc.Weight > 1:
			sc.Weight = 1.0
		}
		scenarios[i] = sc
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	owner, err := tx.Run.Query().Where(run.IDEQ(req.RunID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	entry := provenance.Entry{
		Type:         provenance.TypeScenarioSuiteGenerated,
		Actor:        provenance.ActorAgent,
		Source:       "run:" + req.RunID,
		ReferenceIDs: []string{req.RunID},
		Metadata:     map[string]any{"scenario_count": len(scenarios)},
	}
	if req.Provenance != nil {
		entry = *req.Provenance
	}

	existing, err := tx.ScenarioSuite.Query().
		Where(scenariosuite.RunIDEQ(req.RunID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query scenario suite: %w", err)
	}

	var suite *ent.ScenarioSuite
	if existing == nil {
		suite, err = tx.ScenarioSuite.Create().
			SetID(uuid.New().String()).
			SetRunID(req.RunID).
			SetProjectID(owner.ProjectID).
			SetScenarios(scenarios).
			SetProvenanceLog(provenance.Append(nil, entry)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create scenario suite: %w", err)
		}
	} else {
		suite, err = existing.Update().
			SetScenarios(scenarios).
			SetProvenanceLog(provenance.Append(existing.ProvenanceLog, entry)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update scenario suite: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit scenario suite: %w", err)
	}
	return suite, nil
}

// GetSuite retrieves the run's scenario suite.
func (s *ScenarioService) GetSuite(ctx context.Context, runID string) (*ent.ScenarioSuite, error) {
	suite, err := s.client.ScenarioSuite.Query().
		Where(scenariosuite.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scenario suite: %w", err)
	}
	return suite, nil
}
