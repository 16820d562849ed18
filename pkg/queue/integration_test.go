package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/config"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createRunOwner inserts the user and project a run hangs off.
func createRunOwner(ctx context.Context, t *testing.T, client *ent.Client) *ent.Project {
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

// createPendingRun enqueues a verify run for the given project.
func createPendingRun(ctx context.Context, t *testing.T, client *ent.Client, proj *ent.Project) *ent.VerificationRun {
	t.Helper()
	run, err := client.VerificationRun.Create().
		SetID(uuid.New().String()).
		SetProjectID(proj.ID).
		SetUserID(proj.UserID).
		SetKind(verificationrun.KindVerify).
		SetStatus(verificationrun.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return run
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentRuns:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		RunTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a pending run.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	proj := createRunOwner(ctx, t, client)
	run := createPendingRun(ctx, t, client, proj)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending run")
	assert.Equal(t, run.ID, claimed.ID)
	assert.Equal(t, verificationrun.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	require.NotNil(t, claimed.StartedAt)
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoRunsAvailable
	claimed2, err := w.claimNextRun(ctx)
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
	assert.Nil(t, claimed2, "no more pending runs should be available")
}

// TestClaimOrderIsFIFO tests that runs are claimed oldest first.
func TestClaimOrderIsFIFO(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	proj := createRunOwner(ctx, t, client)

	var wantOrder []string
	for i := 3; i >= 1; i-- {
		run, err := client.VerificationRun.Create().
			SetID(uuid.New().String()).
			SetProjectID(proj.ID).
			SetUserID(proj.UserID).
			SetKind(verificationrun.KindVerify).
			SetStatus(verificationrun.StatusPending).
			SetCreatedAt(time.Now().Add(-time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
		wantOrder = append(wantOrder, run.ID)
	}

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	var gotOrder []string
	for range wantOrder {
		claimed, err := w.claimNextRun(ctx)
		require.NoError(t, err)
		gotOrder = append(gotOrder, claimed.ID)
	}
	assert.Equal(t, wantOrder, gotOrder)
}

// TestConcurrentClaimsDistinctRuns tests that concurrent workers claim different runs.
func TestConcurrentClaimsDistinctRuns(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	proj := createRunOwner(ctx, t, client)
	runIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		r := createPendingRun(ctx, t, client, proj)
		runIDs[r.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil)
			run, err := w.claimNextRun(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, run.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 runs should be claimed, each by exactly one worker.
	assert.Len(t, claimed, 5, "all 5 runs should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "run %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := runIDs[id]
		assert.True(t, ok, "claimed run %s was not in original set", id)
	}
}

// TestOrphanRequeue tests that runs with stale heartbeats return to the queue.
func TestOrphanRequeue(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	proj := createRunOwner(ctx, t, client)

	staleBeat := time.Now().Add(-10 * time.Minute)
	run, err := client.VerificationRun.Create().
		SetID(uuid.New().String()).
		SetProjectID(proj.ID).
		SetUserID(proj.UserID).
		SetKind(verificationrun.KindVerify).
		SetStatus(verificationrun.StatusRunning).
		SetPodID("crashed-pod").
		SetStartedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	require.NoError(t, pool.detectAndRequeueOrphans(ctx))

	updated, err := client.VerificationRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, verificationrun.StatusPending, updated.Status)
	assert.Nil(t, updated.PodID)
	assert.Nil(t, updated.StartedAt)
	assert.Nil(t, updated.LastHeartbeatAt)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRequeued)
	pool.orphans.mu.Unlock()

	// The requeued run is claimable again.
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)
	claimed, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, run.ID, claimed.ID)
}

// TestStartupOrphanRequeue tests the one-time startup requeue for this pod.
func TestStartupOrphanRequeue(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	proj := createRunOwner(ctx, t, client)
	podID := "startup-test-pod"

	for i := 0; i < 3; i++ {
		_, err := client.VerificationRun.Create().
			SetID(uuid.New().String()).
			SetProjectID(proj.ID).
			SetUserID(proj.UserID).
			SetKind(verificationrun.KindVerify).
			SetStatus(verificationrun.StatusRunning).
			SetPodID(podID).
			SetStartedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	otherRun, err := client.VerificationRun.Create().
		SetID(uuid.New().String()).
		SetProjectID(proj.ID).
		SetUserID(proj.UserID).
		SetKind(verificationrun.KindVerify).
		SetStatus(verificationrun.StatusRunning).
		SetPodID("other-pod").
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, RequeueStartupOrphans(ctx, client, podID))

	// This pod's runs went back to pending with claim state cleared.
	pending, err := client.VerificationRun.Query().
		Where(verificationrun.StatusEQ(verificationrun.StatusPending)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
	for _, r := range pending {
		assert.Nil(t, r.PodID, "run %s should have pod cleared", r.ID)
		assert.Nil(t, r.StartedAt)
	}

	// The other pod's run is untouched.
	other, err := client.VerificationRun.Get(ctx, otherRun.ID)
	require.NoError(t, err)
	assert.Equal(t, verificationrun.StatusRunning, other.Status)
}

// mockRunExecutor counts executions and optionally blocks until released.
type mockRunExecutor struct {
	processed atomic.Int64
	inFlight  atomic.Int64
	releaseCh chan struct{}
}

func (m *mockRunExecutor) Execute(ctx context.Context, _ *ent.VerificationRun) *ExecutionResult {
	m.processed.Add(1)
	m.inFlight.Add(1)
	defer m.inFlight.Add(-1)

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{Status: verificationrun.StatusCancelled, Error: ctx.Err()}
		}
	} else {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{Status: verificationrun.StatusCancelled, Error: ctx.Err()}
		}
	}

	return &ExecutionResult{
		Status:     verificationrun.StatusCompleted,
		ReportJSON: `{"passed": true}`,
	}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	proj := createRunOwner(ctx, t, client)
	for i := 0; i < 3; i++ {
		createPendingRun(ctx, t, client, proj)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockRunExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for runs to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	completed, err := client.VerificationRun.Query().
		Where(verificationrun.StatusEQ(verificationrun.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, completed, 3, "all 3 runs should be completed")
	for _, r := range completed {
		require.NotNil(t, r.ReportJSON, "run %s should carry its report", r.ID)
		assert.Contains(t, *r.ReportJSON, `"passed"`)
		assert.NotNil(t, r.CompletedAt)
	}

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Zero(t, health.QueueDepth)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	proj := createRunOwner(ctx, t, client)
	for i := 0; i < 5; i++ {
		createPendingRun(ctx, t, client, proj)
	}

	// Match WorkerCount to MaxConcurrentRuns so the best-effort capacity
	// check cannot race past the limit.
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentRuns = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour

	releaseCh := make(chan struct{})
	executor := &mockRunExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for runs in flight to reach the limit",
		func() bool { return executor.inFlight.Load() == int64(cfg.MaxConcurrentRuns) })

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(cfg.MaxConcurrentRuns), executor.inFlight.Load(),
		"should have exactly MaxConcurrentRuns in flight")

	dbRunning, err := client.VerificationRun.Query().
		Where(verificationrun.StatusEQ(verificationrun.StatusRunning)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentRuns, dbRunning, "DB should show MaxConcurrentRuns running")

	close(releaseCh)

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all runs to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	completedCount, err := client.VerificationRun.Query().
		Where(verificationrun.StatusEQ(verificationrun.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 runs should complete")
}

// TestHeartbeatUpdates tests that heartbeats advance last_heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	proj := createRunOwner(ctx, t, client)
	run := createPendingRun(ctx, t, client, proj)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockRunExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for run to be claimed",
		func() bool {
			r, err := client.VerificationRun.Get(ctx, run.ID)
			require.NoError(t, err)
			return r.Status == verificationrun.StatusRunning && r.LastHeartbeatAt != nil
		})

	r1, err := client.VerificationRun.Get(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, r1.LastHeartbeatAt)
	initialBeat := *r1.LastHeartbeatAt

	time.Sleep(250 * time.Millisecond)

	r2, err := client.VerificationRun.Get(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, verificationrun.StatusRunning, r2.Status, "run should still be running")
	require.NotNil(t, r2.LastHeartbeatAt)
	assert.True(t, r2.LastHeartbeatAt.After(initialBeat), "heartbeat should advance last_heartbeat_at")

	close(releaseCh)
	pool.Stop()
}

// nilResultExecutor returns a nil *ExecutionResult to exercise the nil-guard.
type nilResultExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilResultExecutor) Execute(ctx context.Context, _ *ent.VerificationRun) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult does not
// panic and is translated into the correct terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks run failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		proj := createRunOwner(ctx, t, client)
		run := createPendingRun(ctx, t, client, proj)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilResultExecutor{}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)
		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for run to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.VerificationRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationrun.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result after the run deadline marks run failed as timed out", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		proj := createRunOwner(ctx, t, client)
		run := createPendingRun(ctx, t, client, proj)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.RunTimeout = 200 * time.Millisecond

		executor := &nilResultExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)
		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for run to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status.
		time.Sleep(500 * time.Millisecond)
		pool.Stop()

		updated, err := client.VerificationRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, verificationrun.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("cancellation through the pool marks run cancelled", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		proj := createRunOwner(ctx, t, client)
		run := createPendingRun(ctx, t, client, proj)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.RunTimeout = 30 * time.Second

		executor := &nilResultExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)
		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for run to be claimed",
			func() bool {
				r, err := client.VerificationRun.Get(ctx, run.ID)
				require.NoError(t, err)
				return r.Status == verificationrun.StatusRunning
			})

		require.True(t, pool.CancelRun(run.ID), "CancelRun should find the active run")

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for run to reach terminal status",
			func() bool {
				r, err := client.VerificationRun.Get(ctx, run.ID)
				require.NoError(t, err)
				return r.Status == verificationrun.StatusCancelled
			})

		pool.Stop()
	})
}
