package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/models"
	testdb "github.com/assaylab/assay/test/database"
)

func TestCreateEvaluationIdempotence(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	projects := NewProjectService(client.Client)
	runs := NewRunService(client.Client)
	candidates := NewCandidateService(client.Client)
	evaluations := NewEvaluationService(client.Client)

	p, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "market design"})
	require.NoError(t, err)
	r, err := runs.CreateRun(ctx, models.CreateRunRequest{ProjectID: p.ID})
	require.NoError(t, err)
	c, err := candidates.CreateCandidate(ctx, models.CreateCandidateRequest{
		ProjectID:            p.ID,
		RunID:                &r.ID,
		Origin:               models.OriginSystem,
		MechanismDescription: "sealed-bid uniform price auction",
	})
	require.NoError(t, err)

	req := models.CreateEvaluationRequest{
		RunID:       r.ID,
		CandidateID: c.ID,
		ScenarioID:  "scenario-1",
		P:           models.Signal{Overall: 0.8},
		R:           models.Signal{Overall: 0.6},
		Explanation: "holds up under demand spikes",
	}

	ev, created, err := evaluations.CreateEvaluation(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, ev)

	t.Run("duplicate triple is skipped", func(t *testing.T) {
		dup, created, err := evaluations.CreateEvaluation(ctx, req)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Nil(t, dup)

		n, err := evaluations.CountEvaluations(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("different scenario is a new row", func(t *testing.T) {
		req2 := req
		req2.ScenarioID = "scenario-2"
		_, created, err := evaluations.CreateEvaluation(ctx, req2)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("existing pairs reflect both rows", func(t *testing.T) {
		pairs, err := evaluations.ExistingPairs(ctx, r.ID)
		require.NoError(t, err)
		assert.Contains(t, pairs, PairKey(c.ID, "scenario-1"))
		assert.Contains(t, pairs, PairKey(c.ID, "scenario-2"))
		assert.Len(t, pairs, 2)
	})

	t.Run("signal bounds enforced", func(t *testing.T) {
		bad := req
		bad.ScenarioID = "scenario-3"
		bad.P = models.Signal{Overall: 1.5}
		_, _, err := evaluations.CreateEvaluation(ctx, bad)
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("list narrows by candidate", func(t *testing.T) {
		evals, err := evaluations.ListEvaluations(ctx, r.ID, c.ID)
		require.NoError(t, err)
		assert.Len(t, evals, 2)
	})
}
