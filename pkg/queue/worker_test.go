package queue

import (
	"context"
	"testing"
	"time"

	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentRuns:       2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              20 * time.Minute,
		GracefulShutdownTimeout: 20 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentRunID)
	assert.Equal(t, 0, h.RunsProcessed)

	w.setStatus(WorkerStatusWorking, "run-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "run-abc", h.CurrentRunID)

	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentRunID)
}

func TestSynthesizeResult(t *testing.T) {
	cfg := testQueueConfig()
	cfg.RunTimeout = 200 * time.Millisecond
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil, nil)

	t.Run("live context means the executor misbehaved", func(t *testing.T) {
		result := w.synthesizeResult(context.Background())
		assert.Equal(t, verificationrun.StatusFailed, result.Status)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "executor returned nil result")
	})

	t.Run("deadline exceeded fails with the timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		<-ctx.Done()

		result := w.synthesizeResult(ctx)
		assert.Equal(t, verificationrun.StatusFailed, result.Status)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "timed out")
		assert.Contains(t, result.Error.Error(), "200ms")
	})

	t.Run("cancellation maps to cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := w.synthesizeResult(ctx)
		assert.Equal(t, verificationrun.StatusCancelled, result.Status)
		assert.ErrorIs(t, result.Error, context.Canceled)
	})
}
