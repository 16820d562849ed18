package config

import "time"

// QueueConfig contains verification queue and worker pool configuration.
// These values control how verification runs are polled, claimed, and
// processed. Concurrency stays low: every run costs a docker compose stack.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes verification runs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global limit of runs being processed across
	// ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// RunTimeout is the maximum time a verification run can be processed.
	// Covers build, health wait, endpoint tests, and all repair attempts.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active runs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at
	// on its claimed run. Must be well under OrphanThreshold.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned runs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a run can go without a heartbeat before
	// it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
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

// validateQueue checks queue configuration sanity.
func validateQueue(q *QueueConfig) error {
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", ErrInvalidValue)
	}
	if q.MaxConcurrentRuns < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_runs", ErrInvalidValue)
	}
	if q.PollInterval <= 0 || q.RunTimeout <= 0 {
		return NewValidationError("queue", "queue", "poll_interval", ErrInvalidValue)
	}
	if q.OrphanThreshold <= 0 || q.OrphanDetectionInterval <= 0 {
		return NewValidationError("queue", "queue", "orphan_threshold", ErrInvalidValue)
	}
	if q.HeartbeatInterval <= 0 || q.HeartbeatInterval >= q.OrphanThreshold {
		return NewValidationError("queue", "queue", "heartbeat_interval", ErrInvalidValue)
	}
	return nil
}
