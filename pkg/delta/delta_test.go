package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/models"
)

func TestComputeSpecDelta(t *testing.T) {
	oldSpec := SpecState{
		Constraints: []models.Constraint{
			{Name: "budget", Weight: 100, Description: "stay under budget"},
			{Name: "fairness", Weight: 50},
			{Name: "latency", Weight: 10},
		},
		Goals:      []string{"reduce congestion", "raise revenue"},
		Resolution: models.ResolutionCoarse,
		Mode:       models.ModeFullSearch,
	}
	newSpec := SpecState{
		Constraints: []models.Constraint{
			{Name: "budget", Weight: 100, Description: "stay under budget"},
			{Name: "fairness", Weight: 80},
			{Name: "privacy", Weight: 100},
		},
		Goals:      []string{"reduce congestion", "improve safety"},
		Resolution: models.ResolutionFine,
		Mode:       models.ModeFullSearch,
	}

	d := ComputeSpecDelta(oldSpec, newSpec)

	require.Len(t, d.ConstraintsAdded, 1)
	assert.Equal(t, "privacy", d.ConstraintsAdded[0].Name)

	require.Len(t, d.ConstraintsRemoved, 1)
	assert.Equal(t, "latency", d.ConstraintsRemoved[0].Name)

	require.Len(t, d.ConstraintsModified, 1)
	assert.Equal(t, "fairness", d.ConstraintsModified[0].Name)
	assert.Equal(t, 50.0, d.ConstraintsModified[0].Old.Weight)
	assert.Equal(t, 80.0, d.ConstraintsModified[0].New.Weight)

	assert.Equal(t, []string{"improve safety"}, d.GoalsAdded)
	assert.Equal(t, []string{"raise revenue"}, d.GoalsRemoved)

	require.Len(t, d.FieldChanges, 1)
	assert.Equal(t, "resolution", d.FieldChanges[0].Field)
	assert.Equal(t, models.ResolutionCoarse, d.FieldChanges[0].Old)
	assert.Equal(t, models.ResolutionFine, d.FieldChanges[0].New)

	assert.False(t, d.Empty())
	summary := d.Summary()
	assert.Contains(t, summary, "+1 constraints")
	assert.Contains(t, summary, "resolution coarse→fine")
}

func TestComputeSpecDelta_Identical(t *testing.T) {
	state := SpecState{
		Constraints: []models.Constraint{{Name: "budget", Weight: 100}},
		Goals:       []string{"g1"},
		Resolution:  models.ResolutionMedium,
		Mode:        models.ModeEvalOnly,
	}

	d := ComputeSpecDelta(state, state)
	assert.True(t, d.Empty())
	assert.Equal(t, "no spec changes", d.Summary())
}

func TestComputeModelDelta_StructuredChangesWin(t *testing.T) {
	changes := []agent.ModelChange{
		{Type: "added", EntityType: "actor", EntityID: "commuters", Description: "added commuter population"},
		{Type: "modified", EntityType: "mechanism", EntityID: "tolling"},
	}

	d := ComputeModelDelta(
		map[string]any{"actors": []any{"a"}},
		map[string]any{"actors": []any{"a", "b"}},
		changes,
	)

	assert.False(t, d.Heuristic)
	assert.Empty(t, d.Sections)
	require.Len(t, d.Changes, 2)
	assert.False(t, d.Empty())
	assert.Equal(t, "model changes: 1 added, 1 modified", d.Summary())
}

func TestComputeModelDelta_Heuristic(t *testing.T) {
	oldModel := map[string]any{
		"actors":     []any{"commuters"},
		"mechanisms": []any{"tolling", "transit subsidy"},
		"resources":  []any{"road capacity"},
	}
	newModel := map[string]any{
		"actors":      []any{"commuters", "freight operators"},
		"mechanisms":  []any{"tolling"},
		"resources":   []any{"road capacity"},
		"assumptions": []any{"fixed demand"},
	}

	d := ComputeModelDelta(oldModel, newModel, nil)

	assert.True(t, d.Heuristic)
	require.Len(t, d.Sections, 4)

	bySection := map[string]SectionChange{}
	for _, s := range d.Sections {
		bySection[s.Section] = s
	}
	assert.Equal(t, "grew", bySection["actors"].Direction)
	assert.Equal(t, "shrank", bySection["mechanisms"].Direction)
	assert.Equal(t, "unchanged", bySection["resources"].Direction)
	assert.Equal(t, "grew", bySection["assumptions"].Direction)
	assert.Equal(t, 0, bySection["assumptions"].OldBytes)

	assert.False(t, d.Empty())
	assert.Contains(t, d.Summary(), "actors grew")
}

func TestComputeModelDelta_HeuristicFlagInJSON(t *testing.T) {
	d := ComputeModelDelta(map[string]any{"a": 1}, map[string]any{"a": 12}, nil)
	assert.True(t, d.Heuristic)
}
