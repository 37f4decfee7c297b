package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/config"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/services"
	testdb "github.com/assaylab/assay/test/database"
)

func TestSweep_DeletesExpiredEphemeralProjects(t *testing.T) {
	client := testdb.NewTestClient(t)
	projectService := services.NewProjectService(client.Client)
	ctx := context.Background()

	expired, err := projectService.CreateProject(ctx, models.CreateProjectRequest{
		Name:      "replay scratch",
		Ephemeral: true,
	})
	require.NoError(t, err)

	// Backdate past the TTL.
	err = client.Project.UpdateOneID(expired.ID).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	fresh, err := projectService.CreateProject(ctx, models.CreateProjectRequest{
		Name:      "fresh scratch",
		Ephemeral: true,
	})
	require.NoError(t, err)

	durable, err := projectService.CreateProject(ctx, models.CreateProjectRequest{
		Name: "durable",
	})
	require.NoError(t, err)
	err = client.Project.UpdateOneID(durable.ID).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		EphemeralProjectTTL: 24 * time.Hour,
		CleanupInterval:     1 * time.Hour,
	}
	NewSweeper(projectService, cfg).sweep(ctx)

	_, err = projectService.GetProject(ctx, expired.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = projectService.GetProject(ctx, fresh.ID)
	assert.NoError(t, err, "ephemeral project inside the TTL must survive")

	_, err = projectService.GetProject(ctx, durable.ID)
	assert.NoError(t, err, "non-ephemeral projects are never swept")
}
