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

func setupCandidateService(t *testing.T) (*CandidateService, *ent.Project) {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)

	p, err := projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name: "congestion pricing",
	})
	require.NoError(t, err)

	return NewCandidateService(client.Client), p
}

func newTestCandidate(t *testing.T, candidates *CandidateService, projectID string) *ent.Candidate {
	t.Helper()
	c, err := candidates.CreateCandidate(context.Background(), models.CreateCandidateRequest{
		ProjectID:            projectID,
		Origin:               models.OriginSystem,
		MechanismDescription: "peak-hour cordon toll with revenue recycling",
	})
	require.NoError(t, err)
	return c
}

func TestCandidateStatusMachine(t *testing.T) {
	candidates, p := setupCandidateService(t)
	ctx := context.Background()

	t.Run("forward path new to promising", func(t *testing.T) {
		c := newTestCandidate(t, candidates, p.ID)
		assert.Equal(t, models.CandidateNew, string(c.Status))

		c, err := candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateUnderTest, nil)
		require.NoError(t, err)
		assert.Equal(t, models.CandidateUnderTest, string(c.Status))

		c, err = candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidatePromising, nil)
		require.NoError(t, err)
		assert.Equal(t, models.CandidatePromising, string(c.Status))
	})

	t.Run("no downgrades", func(t *testing.T) {
		c := newTestCandidate(t, candidates, p.ID)
		_, err := candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateUnderTest, nil)
		require.NoError(t, err)

		_, err = candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateNew, nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rejected is reachable and terminal", func(t *testing.T) {
		c := newTestCandidate(t, candidates, p.ID)
		c, err := candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateRejected, nil)
		require.NoError(t, err)
		assert.Equal(t, models.CandidateRejected, string(c.Status))

		_, err = candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateUnderTest, nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		c := newTestCandidate(t, candidates, p.ID)
		before := len(c.ProvenanceLog)

		c, err := candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateNew, &provenance.Entry{
			Type: provenance.TypeStatusChanged,
		})
		require.NoError(t, err)
		assert.Len(t, c.ProvenanceLog, before, "no-op must not append provenance")
	})

	t.Run("transition appends provenance", func(t *testing.T) {
		c := newTestCandidate(t, candidates, p.ID)
		before := len(c.ProvenanceLog)

		c, err := candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateUnderTest, &provenance.Entry{
			Type:        provenance.TypeStatusChanged,
			Actor:       provenance.ActorSystem,
			Description: "entered evaluation",
		})
		require.NoError(t, err)
		require.Len(t, c.ProvenanceLog, before+1)
		assert.Equal(t, provenance.TypeStatusChanged, c.ProvenanceLog[len(c.ProvenanceLog)-1].Type)
	})
}

func TestCreateCandidateProvenanceReferences(t *testing.T) {
	candidates, p := setupCandidateService(t)
	ctx := context.Background()

	t.Run("caller entry gains the candidate id", func(t *testing.T) {
		c, err := candidates.CreateCandidate(ctx, models.CreateCandidateRequest{
			ProjectID:            p.ID,
			Origin:               models.OriginSystem,
			MechanismDescription: "distance-based toll",
			Provenance: &provenance.Entry{
				Type:         provenance.TypeCandidateGenerated,
				Actor:        provenance.ActorAgent,
				ReferenceIDs: []string{"run-abc"},
			},
		})
		require.NoError(t, err)
		require.Len(t, c.ProvenanceLog, 1)
		assert.Equal(t, []string{"run-abc", c.ID}, c.ProvenanceLog[0].ReferenceIDs)
	})

	t.Run("default entry references the candidate", func(t *testing.T) {
		c := newTestCandidate(t, candidates, p.ID)
		require.Len(t, c.ProvenanceLog, 1)
		assert.Equal(t, []string{c.ID}, c.ProvenanceLog[0].ReferenceIDs)
	})
}

func TestListCandidatesFilters(t *testing.T) {
	candidates, p := setupCandidateService(t)
	ctx := context.Background()

	alive := newTestCandidate(t, candidates, p.ID)
	dead := newTestCandidate(t, candidates, p.ID)
	_, err := candidates.UpdateCandidateStatus(ctx, dead.ID, models.CandidateRejected, nil)
	require.NoError(t, err)

	t.Run("live excludes rejected", func(t *testing.T) {
		live, err := candidates.ListCandidates(ctx, p.ID, models.CandidateFilters{Live: true})
		require.NoError(t, err)
		require.Len(t, live, 1)
		assert.Equal(t, alive.ID, live[0].ID)
	})

	t.Run("count live", func(t *testing.T) {
		n, err := candidates.CountLive(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("unknown status filter rejected", func(t *testing.T) {
		_, err := candidates.ListCandidates(ctx, p.ID, models.CandidateFilters{Statuses: []string{"zombie"}})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})
}

func TestUpdateCandidateScores(t *testing.T) {
	candidates, p := setupCandidateService(t)
	ctx := context.Background()

	c := newTestCandidate(t, candidates, p.ID)
	_, err := candidates.UpdateCandidateStatus(ctx, c.ID, models.CandidateUnderTest, nil)
	require.NoError(t, err)

	p1, r1, i1 := 0.8, 0.7, 0.75
	c, err = candidates.UpdateCandidateScores(ctx, c.ID, &models.CandidateScores{
		P: &p1, R: &r1, I: &i1,
	}, models.CandidatePromising, &provenance.Entry{Type: provenance.TypeRankingCompleted})
	require.NoError(t, err)

	assert.Equal(t, models.CandidatePromising, string(c.Status))
	require.NotNil(t, c.Scores)
	assert.Equal(t, i1, *c.Scores.I)

	t.Run("scores write cannot demote", func(t *testing.T) {
		_, err := candidates.UpdateCandidateScores(ctx, c.ID, &models.CandidateScores{I: &i1},
			models.CandidateNew, nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
