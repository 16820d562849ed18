package services

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createTestUser inserts an account row directly; service-level creation
// is covered by user_service_test.go.
func createTestUser(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.com").
		SetPasswordHash("$2a$10$testhash").
		SetCreatedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// createTestProject inserts a pending project owned by the given user.
func createTestProject(t *testing.T, client *ent.Client, userID string) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetProjectName("task-api").
		SetPrompt("Build a task tracking API").
		SetStatus(project.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// createTestThread inserts a thread attached to the given project.
func createTestThread(t *testing.T, client *ent.Client, projectID string) *ent.Thread {
	t.Helper()
	th, err := client.Thread.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetTitle("Conversation 1").
		Save(context.Background())
	require.NoError(t, err)
	return th
}
