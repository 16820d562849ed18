// Package queue claims and executes queued verification runs. Workers
// poll the verification_runs table, claim pending runs FIFO with
// FOR UPDATE SKIP LOCKED, heartbeat while executing, and write the
// terminal state under a background context so a cancelled run still
// lands on its row.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor processes one claimed verification run end to end: sandbox
// deploy, endpoint tests, repair attempts, and the project row updates
// that follow from the verdict.
//
// The worker only handles claiming, heartbeat, the run's terminal
// status, and run status events. Project state is the executor's.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.VerificationRun) *ExecutionResult
}

// ExecutionResult is the terminal state of a run. A run completes when
// the sandbox delivered a verdict, even a failing one; Status failed
// means the run itself could not reach a verdict.
type ExecutionResult struct {
	Status     verificationrun.Status // completed, failed, cancelled
	ReportJSON string                 // run report (when the sandbox produced one)
	Error      error                  // error details (if failed/cancelled)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveRuns      int            `json:"active_runs"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
