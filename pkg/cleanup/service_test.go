package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/services"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		EventTTL:        1 * time.Hour,
		StagingTTL:      1 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

func seedProject(ctx context.Context, t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.com").
		SetPasswordHash("$2a$10$testhash").
		Save(ctx)
	require.NoError(t, err)

	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetUserID(u.ID).
		SetProjectName("task-api").
		SetPrompt("Build a task tracking API").
		SetStatus(project.StatusAwaitingVerification).
		Save(ctx)
	require.NoError(t, err)
	return p
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	runService := services.NewRunService(client.Client)
	ctx := context.Background()

	proj := seedProject(ctx, t, client.Client)

	// An expired event (2 hours old) and a fresh one.
	_, err := client.Event.Create().
		SetProjectID(proj.ID).
		SetChannel("project:" + proj.ID).
		SetPayload(`{"type":"project.status"}`).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetProjectID(proj.ID).
		SetChannel("project:" + proj.ID).
		SetPayload(`{"type":"project.status"}`).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(testRetentionConfig(), eventService, runService, t.TempDir(), time.Hour)
	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "project:"+proj.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "expired event should be deleted, fresh event preserved")
}

func TestService_SweepsStagingArchives(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	runService := services.NewRunService(client.Client)
	ctx := context.Background()

	staging := t.TempDir()
	stale := filepath.Join(staging, "task-api-deadbeef.zip")
	fresh := filepath.Join(staging, "blog-api-cafebabe.zip")
	require.NoError(t, os.WriteFile(stale, []byte("zip"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("zip"), 0o644))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	svc := NewService(testRetentionConfig(), eventService, runService, staging, time.Hour)
	svc.runAll(ctx)

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale archive should be swept")
	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh archive should survive")
}

func TestService_RequeuesLapsedRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	runService := services.NewRunService(client.Client)
	ctx := context.Background()

	proj := seedProject(ctx, t, client.Client)

	staleBeat := time.Now().Add(-30 * time.Minute)
	lapsed, err := client.VerificationRun.Create().
		SetID(uuid.New().String()).
		SetProjectID(proj.ID).
		SetUserID(proj.UserID).
		SetKind(verificationrun.KindVerify).
		SetStatus(verificationrun.StatusRunning).
		SetPodID("dead-pod").
		SetStartedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	healthy, err := client.VerificationRun.Create().
		SetID(uuid.New().String()).
		SetProjectID(proj.ID).
		SetUserID(proj.UserID).
		SetKind(verificationrun.KindVerify).
		SetStatus(verificationrun.StatusRunning).
		SetPodID("live-pod").
		SetStartedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(testRetentionConfig(), eventService, runService, t.TempDir(), 15*time.Minute)
	svc.runAll(ctx)

	requeued, err := client.VerificationRun.Get(ctx, lapsed.ID)
	require.NoError(t, err)
	assert.Equal(t, verificationrun.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)

	untouched, err := client.VerificationRun.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, verificationrun.StatusRunning, untouched.Status)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	runService := services.NewRunService(client.Client)

	svc := NewService(testRetentionConfig(), eventService, runService, t.TempDir(), time.Hour)
	svc.Start(context.Background())
	svc.Start(context.Background()) // second Start is a no-op
	svc.Stop()
}
