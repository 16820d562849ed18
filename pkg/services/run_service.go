package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/google/uuid"
)

// RunService manages the sandbox verification queue. Runs are claimed
// FIFO with FOR UPDATE SKIP LOCKED so replicas never double-claim, and
// heartbeats let the orphan scan requeue work from dead workers.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// Enqueue queues a sandbox run for a project.
func (s *RunService) Enqueue(httpCtx context.Context, params models.EnqueueRunParams) (*ent.VerificationRun, error) {
	if params.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if params.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if params.Kind != verificationrun.KindVerify && params.Kind != verificationrun.KindRepair {
		return nil, NewValidationError("kind", "must be verify or repair")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.VerificationRun.Create().
		SetID(uuid.New().String()).
		SetProjectID(params.ProjectID).
		SetUserID(params.UserID).
		SetKind(params.Kind).
		SetStatus(verificationrun.StatusPending).
		SetCreatedAt(time.Now())

	if params.Payload != "" {
		builder.SetPayload(params.Payload)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue run: %w", err)
	}

	return run, nil
}

// ClaimNextPending atomically claims the oldest pending run for this pod.
// Returns (nil, nil) when the queue is empty. SKIP LOCKED means two pods
// polling at once each get a different run or nothing.
func (s *RunService) ClaimNextPending(ctx context.Context, podID string) (*ent.VerificationRun, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := tx.VerificationRun.Query().
		Where(verificationrun.StatusEQ(verificationrun.StatusPending)).
		Order(ent.Asc(verificationrun.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	run, err = tx.VerificationRun.UpdateOne(run).
		SetStatus(verificationrun.StatusRunning).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return run, nil
}

// Heartbeat records that a worker is still processing the run.
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.VerificationRun.Update().
		Where(
			verificationrun.IDEQ(runID),
			verificationrun.StatusEQ(verificationrun.StatusRunning),
		).
		SetLastHeartbeatAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// Complete finishes a run with its sandbox report.
func (s *RunService) Complete(ctx context.Context, runID, reportJSON string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.VerificationRun.UpdateOneID(runID).
		SetStatus(verificationrun.StatusCompleted).
		SetReportJSON(reportJSON).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// FailRun finishes a run with an error. A report produced before the
// failure may be attached for debugging.
func (s *RunService) FailRun(ctx context.Context, runID, errorMessage, reportJSON string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.VerificationRun.UpdateOneID(runID).
		SetStatus(verificationrun.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now())
	if reportJSON != "" {
		update.SetReportJSON(reportJSON)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail run: %w", err)
	}
	return nil
}

// Cancel marks a claimed run cancelled, used on graceful shutdown when a
// worker abandons work it cannot finish.
func (s *RunService) Cancel(ctx context.Context, runID, reason string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.VerificationRun.UpdateOneID(runID).
		SetStatus(verificationrun.StatusCancelled).
		SetErrorMessage(reason).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to cancel run: %w", err)
	}
	return nil
}

// RequeueOrphans returns running runs whose heartbeat went stale back to
// pending so another worker can pick them up.
func (s *RunService) RequeueOrphans(ctx context.Context, staleAfter time.Duration) (int, error) {
	threshold := time.Now().Add(-staleAfter)

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.VerificationRun.Update().
		Where(
			verificationrun.StatusEQ(verificationrun.StatusRunning),
			verificationrun.LastHeartbeatAtNotNil(),
			verificationrun.LastHeartbeatAtLT(threshold),
		).
		SetStatus(verificationrun.StatusPending).
		ClearPodID().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphaned runs: %w", err)
	}

	return count, nil
}

// GetForUser retrieves a run scoped to its owner.
func (s *RunService) GetForUser(ctx context.Context, userID, runID string) (*ent.VerificationRun, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	run, err := s.client.VerificationRun.Query().
		Where(
			verificationrun.IDEQ(runID),
			verificationrun.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// LatestForProject returns the most recent run for a project, or nil when
// the project has never been queued.
func (s *RunService) LatestForProject(ctx context.Context, userID, projectID string) (*ent.VerificationRun, error) {
	run, err := s.client.VerificationRun.Query().
		Where(
			verificationrun.ProjectIDEQ(projectID),
			verificationrun.UserIDEQ(userID),
		).
		Order(ent.Desc(verificationrun.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return run, nil
}
