package services

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/models"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_Enqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, user.ID)

	t.Run("queues a verify run", func(t *testing.T) {
		run, err := service.Enqueue(ctx, models.EnqueueRunParams{
			ProjectID: proj.ID,
			UserID:    user.ID,
			Kind:      verificationrun.KindVerify,
		})
		require.NoError(t, err)
		assert.Equal(t, verificationrun.StatusPending, run.Status)
		assert.Equal(t, verificationrun.KindVerify, run.Kind)
		assert.Nil(t, run.PodID)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := service.Enqueue(ctx, models.EnqueueRunParams{
			ProjectID: proj.ID,
			UserID:    user.ID,
			Kind:      verificationrun.Kind("replay"),
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_ClaimNextPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, user.ID)

	t.Run("empty queue returns nil without error", func(t *testing.T) {
		run, err := service.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("claims oldest first and marks it running", func(t *testing.T) {
		first, err := service.Enqueue(ctx, models.EnqueueRunParams{
			ProjectID: proj.ID, UserID: user.ID, Kind: verificationrun.KindVerify,
		})
		require.NoError(t, err)

		// Ensure distinct created_at ordering.
		time.Sleep(10 * time.Millisecond)

		second, err := service.Enqueue(ctx, models.EnqueueRunParams{
			ProjectID: proj.ID, UserID: user.ID, Kind: verificationrun.KindRepair,
		})
		require.NoError(t, err)

		claimed, err := service.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, verificationrun.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)

		next, err := service.ClaimNextPending(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, second.ID, next.ID)

		// Queue drained.
		empty, err := service.ClaimNextPending(ctx, "pod-3")
		require.NoError(t, err)
		assert.Nil(t, empty)
	})
}

func TestRunService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, user.ID)

	enqueueAndClaim := func(t *testing.T) string {
		t.Helper()
		_, err := service.Enqueue(ctx, models.EnqueueRunParams{
			ProjectID: proj.ID, UserID: user.ID, Kind: verificationrun.KindVerify,
		})
		require.NoError(t, err)
		run, err := service.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, run)
		return run.ID
	}

	t.Run("heartbeat only touches running runs", func(t *testing.T) {
		runID := enqueueAndClaim(t)
		require.NoError(t, service.Heartbeat(ctx, runID))

		require.NoError(t, service.Complete(ctx, runID, `{"passed":true}`))
		assert.ErrorIs(t, service.Heartbeat(ctx, runID), ErrNotFound)

		got, err := service.GetForUser(ctx, user.ID, runID)
		require.NoError(t, err)
		assert.Equal(t, verificationrun.StatusCompleted, got.Status)
		require.NotNil(t, got.ReportJSON)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("failed run keeps its partial report", func(t *testing.T) {
		runID := enqueueAndClaim(t)
		require.NoError(t, service.FailRun(ctx, runID, "container died", `{"passed":false}`))

		got, err := service.GetForUser(ctx, user.ID, runID)
		require.NoError(t, err)
		assert.Equal(t, verificationrun.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "container died", *got.ErrorMessage)
		require.NotNil(t, got.ReportJSON)
	})

	t.Run("cancel records the reason", func(t *testing.T) {
		runID := enqueueAndClaim(t)
		require.NoError(t, service.Cancel(ctx, runID, "shutting down"))

		got, err := service.GetForUser(ctx, user.ID, runID)
		require.NoError(t, err)
		assert.Equal(t, verificationrun.StatusCancelled, got.Status)
	})
}

func TestRunService_RequeueOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	user := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, user.ID)

	_, err := service.Enqueue(ctx, models.EnqueueRunParams{
		ProjectID: proj.ID, UserID: user.ID, Kind: verificationrun.KindVerify,
	})
	require.NoError(t, err)

	claimed, err := service.ClaimNextPending(ctx, "dead-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("fresh heartbeat is left alone", func(t *testing.T) {
		count, err := service.RequeueOrphans(ctx, time.Hour)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("stale heartbeat goes back to pending", func(t *testing.T) {
		// Age the heartbeat past the threshold.
		stale := time.Now().Add(-10 * time.Minute)
		err := client.VerificationRun.UpdateOneID(claimed.ID).
			SetLastHeartbeatAt(stale).
			Exec(ctx)
		require.NoError(t, err)

		count, err := service.RequeueOrphans(ctx, 5*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := service.GetForUser(ctx, user.ID, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationrun.StatusPending, got.Status)
		assert.Nil(t, got.PodID)
		assert.Nil(t, got.StartedAt)
		assert.Nil(t, got.LastHeartbeatAt)

		// It is claimable again.
		reclaimed, err := service.ClaimNextPending(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		assert.Equal(t, claimed.ID, reclaimed.ID)
	})
}

func TestRunService_Scoping(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client)
	other := createTestUser(t, client.Client)
	proj := createTestProject(t, client.Client, owner.ID)

	run, err := service.Enqueue(ctx, models.EnqueueRunParams{
		ProjectID: proj.ID, UserID: owner.ID, Kind: verificationrun.KindVerify,
	})
	require.NoError(t, err)

	t.Run("get is owner-scoped", func(t *testing.T) {
		_, err := service.GetForUser(ctx, other.ID, run.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("latest run is owner-scoped", func(t *testing.T) {
		latest, err := service.LatestForProject(ctx, owner.ID, proj.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, run.ID, latest.ID)

		none, err := service.LatestForProject(ctx, other.ID, proj.ID)
		require.NoError(t, err)
		assert.Nil(t, none)
	})
}
