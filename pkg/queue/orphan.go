package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned runs.
// All pods run this independently; requeueing is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRequeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRequeueOrphans finds running runs with stale heartbeats and
// returns them to the queue. A run is a pure function of the stored
// spec and archive, so re-executing one lost to a pod crash is safe.
func (p *WorkerPool) detectAndRequeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.VerificationRun.Query().
		Where(
			verificationrun.StatusEQ(verificationrun.StatusRunning),
			verificationrun.LastHeartbeatAtNotNil(),
			verificationrun.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	requeued := 0
	for _, run := range orphans {
		if err := p.requeueOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to requeue orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedRun returns a single orphaned run to pending so any
// live worker can claim it again.
func (p *WorkerPool) requeueOrphanedRun(ctx context.Context, run *ent.VerificationRun) error {
	lastHeartbeat := "unknown"
	if run.LastHeartbeatAt != nil {
		lastHeartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if run.PodID != nil {
		podID = *run.PodID
	}

	err := run.Update().
		SetStatus(verificationrun.StatusPending).
		ClearPodID().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue run: %w", err)
	}

	slog.Warn("Orphaned run returned to queue",
		"run_id", run.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// RequeueStartupOrphans performs a one-time requeue of runs owned by this
// pod that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.VerificationRun.Query().
		Where(
			verificationrun.StatusEQ(verificationrun.StatusRunning),
			verificationrun.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, run := range orphans {
		err := run.Update().
			SetStatus(verificationrun.StatusPending).
			ClearPodID().
			ClearStartedAt().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"run_id", run.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan returned to queue", "run_id", run.ID)
	}

	return nil
}
