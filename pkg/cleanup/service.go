// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgeworks/forge/pkg/archive"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes progress Event rows past their TTL
//   - Sweeps staged archives that never moved into user storage
//   - Requeues verification runs whose heartbeat lapsed
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	eventService  *services.EventService
	runService    *services.RunService
	stagingDir    string
	runStaleAfter time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. runStaleAfter should sit well
// above the queue's own orphan threshold: the run requeue here is a
// backstop for runs stranded when every worker pool died between scans.
func NewService(
	cfg *config.RetentionConfig,
	eventService *services.EventService,
	runService *services.RunService,
	stagingDir string,
	runStaleAfter time.Duration,
) *Service {
	return &Service{
		config:        cfg,
		eventService:  eventService,
		runService:    runService,
		stagingDir:    stagingDir,
		runStaleAfter: runStaleAfter,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"staging_ttl", s.config.StagingTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupExpiredEvents(ctx)
	s.sweepStagingArchives(ctx)
	s.requeueLapsedRuns(ctx)
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	count, err := s.eventService.CleanupOrphanedEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed expired events", "count", count)
	}
}

func (s *Service) sweepStagingArchives(_ context.Context) {
	count, err := archive.SweepStaging(s.stagingDir, s.config.StagingTTL)
	if err != nil {
		slog.Error("Retention: staging sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept stale staging archives", "count", count)
	}
}

// requeueLapsedRuns is the second line behind the worker pool's own
// orphan scan. A hit here means no pool scanned for a whole threshold.
func (s *Service) requeueLapsedRuns(_ context.Context) {
	count, err := s.runService.RequeueOrphans(context.Background(), s.runStaleAfter)
	if err != nil {
		slog.Error("Retention: run requeue failed", "error", err)
		return
	}
	if count > 0 {
		slog.Warn("Retention: requeued lapsed verification runs", "count", count)
	}
}
