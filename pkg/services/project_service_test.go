package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/pkg/models"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()
	user := createTestUser(t, client.Client)

	t.Run("creates pending project", func(t *testing.T) {
		proj, err := service.Create(ctx, models.CreateProjectParams{
			UserID:      user.ID,
			ProjectName: "inventory-api",
			Prompt:      "Build an inventory API with products and warehouses",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, proj.ID)
		assert.Equal(t, project.StatusPending, proj.Status)
		assert.Equal(t, "inventory-api", proj.ProjectName)
		assert.Nil(t, proj.SpecJSON)
		assert.Nil(t, proj.ZipPath)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			params models.CreateProjectParams
		}{
			{"missing user_id", models.CreateProjectParams{ProjectName: "x", Prompt: "y"}},
			{"missing project_name", models.CreateProjectParams{UserID: user.ID, Prompt: "y"}},
			{"missing prompt", models.CreateProjectParams{UserID: user.ID, ProjectName: "x"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Create(ctx, tt.params)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestProjectService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client)
	other := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, owner.ID)

	t.Run("owner reads own project", func(t *testing.T) {
		got, err := service.Get(ctx, owner.ID, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, proj.ID, got.ID)
	})

	t.Run("cross-user read is indistinguishable from missing", func(t *testing.T) {
		_, err := service.Get(ctx, other.ID, proj.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.Get(ctx, owner.ID, "no-such-project")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	stranger := createTestUser(t, client.Client)

	for i := 0; i < 5; i++ {
		_, err := service.Create(ctx, models.CreateProjectParams{
			UserID:      user.ID,
			ProjectName: fmt.Sprintf("api-%d", i),
			Prompt:      "prompt",
		})
		require.NoError(t, err)
	}
	failed := createTestProject(t, client.Client, user.ID)
	require.NoError(t, service.Fail(ctx, failed.ID, "boom"))

	t.Run("lists only the caller's projects", func(t *testing.T) {
		resp, err := service.List(ctx, user.ID, models.ProjectFilters{})
		require.NoError(t, err)
		assert.Equal(t, 6, resp.TotalCount)
		assert.Len(t, resp.Projects, 6)
		assert.Equal(t, 20, resp.Limit)

		empty, err := service.List(ctx, stranger.ID, models.ProjectFilters{})
		require.NoError(t, err)
		assert.Equal(t, 0, empty.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.List(ctx, user.ID, models.ProjectFilters{Status: "failed"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Projects, 1)
		assert.Equal(t, failed.ID, resp.Projects[0].ID)
	})

	t.Run("paginates with explicit limit and offset", func(t *testing.T) {
		page, err := service.List(ctx, user.ID, models.ProjectFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 6, page.TotalCount)
		assert.Len(t, page.Projects, 2)
		assert.Equal(t, 2, page.Limit)
		assert.Equal(t, 2, page.Offset)
	})
}

func TestProjectService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client)
	other := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, owner.ID)
	thread := createTestThread(t, client.Client, proj.ID)

	t.Run("cross-user delete yields ErrNotFound", func(t *testing.T) {
		err := service.Delete(ctx, other.ID, proj.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owner delete cascades to threads", func(t *testing.T) {
		err := service.Delete(ctx, owner.ID, proj.ID)
		require.NoError(t, err)

		_, err = service.Get(ctx, owner.ID, proj.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		exists, err := client.Thread.Query().Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists, "thread %s should be gone", thread.ID)
	})
}

// TestProjectService_PipelineLifecycle walks a project through every status
// transition the generation pipeline performs.
func TestProjectService_PipelineLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, user.ID)

	require.NoError(t, service.MarkGenerating(ctx, proj.ID))
	got, err := service.Get(ctx, user.ID, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusGenerating, got.Status)

	specJSON := `{"project_name":"task-api","spec_version":"1.0"}`
	require.NoError(t, service.SaveSpec(ctx, proj.ID, "task-api", specJSON, "gemini-2.0-flash"))
	got, err = service.Get(ctx, user.ID, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "task-api", got.ProjectName)
	require.NotNil(t, got.SpecJSON)
	assert.Equal(t, specJSON, *got.SpecJSON)
	require.NotNil(t, got.ModelUsed)
	assert.Equal(t, "gemini-2.0-flash", *got.ModelUsed)

	require.NoError(t, service.SaveValidation(ctx, proj.ID, `{"valid":true,"errors":[],"warnings":[]}`))

	require.NoError(t, service.SaveArchive(ctx, proj.ID, "/data/storage/u/p/project.zip"))
	got, err = service.Get(ctx, user.ID, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusAwaitingVerification, got.Status)
	require.NotNil(t, got.ZipPath)

	require.NoError(t, service.FinishVerification(ctx, proj.ID, true, `{"passed":true}`))
	got, err = service.Get(ctx, user.ID, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusCompleted, got.Status)
	require.NotNil(t, got.VerificationJSON)

	t.Run("failed verification marks project failed", func(t *testing.T) {
		p2 := createTestProject(t, client.Client, user.ID)
		require.NoError(t, service.FinishVerification(ctx, p2.ID, false, `{"passed":false}`))
		got, err := service.Get(ctx, user.ID, p2.ID)
		require.NoError(t, err)
		assert.Equal(t, project.StatusFailed, got.Status)
	})

	t.Run("unknown project yields ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, service.MarkGenerating(ctx, "missing"), ErrNotFound)
		assert.ErrorIs(t, service.SaveSpec(ctx, "missing", "n", "{}", "m"), ErrNotFound)
		assert.ErrorIs(t, service.SaveArchive(ctx, "missing", "/x"), ErrNotFound)
	})
}

func TestProjectService_UpdatePromptForRefine(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, user.ID)

	// Drive the project to failed with an error message, then refine.
	require.NoError(t, service.Fail(ctx, proj.ID, "sandbox timed out"))

	updated, err := service.UpdatePromptForRefine(ctx, proj.ID, "Also add a comments entity")
	require.NoError(t, err)
	assert.Equal(t, "Also add a comments entity", updated.Prompt)
	assert.Equal(t, project.StatusPending, updated.Status)
	assert.Nil(t, updated.ErrorMessage, "refine clears the stale error")
}
