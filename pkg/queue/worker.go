package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/events"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// RunEventPublisher is the slice of the event publisher the queue needs.
// *events.EventPublisher satisfies it.
type RunEventPublisher interface {
	PublishRunStatus(ctx context.Context, projectID string, payload events.RunStatusPayload) error
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// Worker is a single queue worker that polls for and processes runs.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  RunExecutor
	publisher RunEventPublisher
	pool      RunRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
// publisher may be nil (run status events disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry, publisher RunEventPublisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.VerificationRun.Query().
		Where(verificationrun.StatusEQ(verificationrun.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next run
	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "project_id", run.ProjectID, "worker_id", w.id)
	log.Info("Run claimed", "kind", run.Kind)

	w.publishRunStatus(ctx, run, verificationrun.StatusRunning)

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create run context with timeout
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, run.ID)

	// 6. Execute run
	result := w.executor.Execute(runCtx, run)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		result = w.synthesizeResult(runCtx)
	}

	// 7. Resolve a missing status from the run context state
	if result.Status == "" {
		synthesized := w.synthesizeResult(runCtx)
		synthesized.ReportJSON = result.ReportJSON
		if result.Error != nil {
			synthesized.Error = result.Error
		}
		result = synthesized
	}

	// 8. Stop heartbeat
	cancelHeartbeat()

	// 9. Update terminal status (background context; run ctx may be cancelled)
	if err := w.updateRunTerminalStatus(context.Background(), run, result); err != nil {
		log.Error("Failed to update run terminal status", "error", err)
		return err
	}

	// 9a. Publish terminal run status event
	w.publishRunStatus(context.Background(), run, result.Status)

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// synthesizeResult maps the run context's error state to a terminal
// result. Used when the executor returned nil or left Status empty.
func (w *Worker) synthesizeResult(runCtx context.Context) *ExecutionResult {
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{
			Status: verificationrun.StatusFailed,
			Error:  fmt.Errorf("run timed out after %v", w.config.RunTimeout),
		}
	case errors.Is(runCtx.Err(), context.Canceled):
		return &ExecutionResult{
			Status: verificationrun.StatusCancelled,
			Error:  context.Canceled,
		}
	default:
		return &ExecutionResult{
			Status: verificationrun.StatusFailed,
			Error:  fmt.Errorf("executor returned nil result"),
		}
	}
}

// claimNextRun atomically claims the next pending run using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.VerificationRun, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	run, err := tx.VerificationRun.Query().
		Where(verificationrun.StatusEQ(verificationrun.StatusPending)).
		Order(ent.Asc(verificationrun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	// Claim: set running, pod_id, started_at, last_heartbeat_at
	now := time.Now()
	run, err = run.Update().
		SetStatus(verificationrun.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return run, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.VerificationRun.UpdateOneID(runID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

// updateRunTerminalStatus writes the final run status.
func (w *Worker) updateRunTerminalStatus(ctx context.Context, run *ent.VerificationRun, result *ExecutionResult) error {
	update := w.client.VerificationRun.UpdateOneID(run.ID).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())

	if result.ReportJSON != "" {
		update = update.SetReportJSON(result.ReportJSON)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}

	return update.Exec(ctx)
}

// publishRunStatus publishes a run status event to the project channel
// for real-time WebSocket delivery. Non-blocking: errors are logged.
func (w *Worker) publishRunStatus(ctx context.Context, run *ent.VerificationRun, status verificationrun.Status) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishRunStatus(ctx, run.ProjectID, events.RunStatusPayload{
		Type:      events.EventTypeRunStatus,
		ProjectID: run.ProjectID,
		RunID:     run.ID,
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish run status",
			"run_id", run.ID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
