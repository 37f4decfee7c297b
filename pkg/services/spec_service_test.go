package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
	testdb "github.com/assaylab/assay/test/database"
)

func setupSpecService(t *testing.T) (*SpecService, *ent.Project) {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)

	p, err := projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name: "water rights",
	})
	require.NoError(t, err)

	return NewSpecService(client.Client), p
}

func TestUpsertProblemSpec(t *testing.T) {
	specs, p := setupSpecService(t)
	ctx := context.Background()

	spec, err := specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
		ProjectID: p.ID,
		Constraints: []models.Constraint{
			{Name: "budget_neutral", Weight: models.HardConstraintWeight},
			{Name: "equitable", Weight: 60},
		},
		Goals:      []string{"reduce over-extraction"},
		Resolution: models.ResolutionMedium,
	})
	require.NoError(t, err)
	assert.Len(t, spec.Constraints, 2)
	require.Len(t, spec.ProvenanceLog, 1)
	assert.Equal(t, provenance.TypeSpecUpdated, spec.ProvenanceLog[0].Type)

	t.Run("update replaces fields and appends provenance", func(t *testing.T) {
		updated, err := specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
			ProjectID:   p.ID,
			Constraints: []models.Constraint{{Name: "budget_neutral", Weight: models.HardConstraintWeight}},
			Goals:       []string{"reduce over-extraction", "stable farm incomes"},
		})
		require.NoError(t, err)
		assert.Equal(t, spec.ID, updated.ID, "singleton per project")
		assert.Len(t, updated.Constraints, 1)
		assert.Len(t, updated.Goals, 2)
		assert.Len(t, updated.ProvenanceLog, 2)
	})

	t.Run("duplicate constraint names rejected", func(t *testing.T) {
		_, err := specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
			ProjectID: p.ID,
			Constraints: []models.Constraint{
				{Name: "equitable", Weight: 10},
				{Name: "equitable", Weight: 20},
			},
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("unknown resolution rejected", func(t *testing.T) {
		_, err := specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
			ProjectID:  p.ID,
			Resolution: "microscopic",
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("missing project is not found", func(t *testing.T) {
		_, err := specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{ProjectID: "nope"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSpecCacheInvalidation(t *testing.T) {
	specs, p := setupSpecService(t)
	ctx := context.Background()

	_, err := specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
		ProjectID: p.ID,
		Goals:     []string{"v1"},
	})
	require.NoError(t, err)

	// Prime the memo.
	got, err := specs.GetProblemSpec(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, got.Goals)

	// A write must drop the memoized read.
	_, err = specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{
		ProjectID: p.ID,
		Goals:     []string{"v2"},
	})
	require.NoError(t, err)

	got, err = specs.GetProblemSpec(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"v2"}, got.Goals)

	t.Run("explicit invalidation clears all projects", func(t *testing.T) {
		specs.InvalidateCaches()
		got, err := specs.GetProblemSpec(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"v2"}, got.Goals)
	})
}

func TestUpsertWorldModel(t *testing.T) {
	specs, p := setupSpecService(t)
	ctx := context.Background()

	model, err := specs.UpsertWorldModel(ctx, models.UpsertWorldModelRequest{
		ProjectID: p.ID,
		ModelData: map[string]any{
			"actors": []any{map[string]any{"id": "farmers"}},
		},
	})
	require.NoError(t, err)

	prov, ok := model.ModelData["provenance"].([]any)
	require.True(t, ok, "upsert must append a provenance entry into the tree")
	assert.Len(t, prov, 1)

	t.Run("set data overwrites without extra provenance", func(t *testing.T) {
		data := map[string]any{
			"actors":     []any{},
			"provenance": prov,
		}
		updated, err := specs.SetWorldModelData(ctx, p.ID, data)
		require.NoError(t, err)
		assert.Len(t, updated.ModelData["provenance"], 1)
	})

	t.Run("nil model data rejected", func(t *testing.T) {
		_, err := specs.UpsertWorldModel(ctx, models.UpsertWorldModelRequest{ProjectID: p.ID})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})
}

func TestCheckPrerequisites(t *testing.T) {
	specs, p := setupSpecService(t)
	ctx := context.Background()

	prereqs, err := specs.CheckPrerequisites(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, prereqs.ProblemSpec)
	assert.False(t, prereqs.WorldModel)

	_, err = specs.UpsertProblemSpec(ctx, models.UpsertProblemSpecRequest{ProjectID: p.ID})
	require.NoError(t, err)

	prereqs, err = specs.CheckPrerequisites(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, prereqs.ProblemSpec)
	assert.False(t, prereqs.WorldModel)

	_, err = specs.UpsertWorldModel(ctx, models.UpsertWorldModelRequest{
		ProjectID: p.ID,
		ModelData: map[string]any{"actors": []any{}},
	})
	require.NoError(t, err)

	prereqs, err = specs.CheckPrerequisites(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, prereqs.ProblemSpec)
	assert.True(t, prereqs.WorldModel)
}
