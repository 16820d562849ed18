package events

import (
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// ProjectStatusPayload is the payload for project.status events.
// Published when a project transitions between lifecycle states.
type ProjectStatusPayload struct {
	Type      string         `json:"type"`            // always EventTypeProjectStatus
	ProjectID string         `json:"project_id"`      // project UUID
	Status    project.Status `json:"status"`          // pending, generating, awaiting_verification, completed, failed
	Error     string         `json:"error,omitempty"` // terminal failure reason
	Timestamp string         `json:"timestamp"`       // RFC3339Nano
}

// StageStatusPayload is the payload for stage.status events.
// Single event type for all pipeline stage transitions (started, completed, failed, skipped).
type StageStatusPayload struct {
	Type      string `json:"type"`              // always EventTypeStageStatus
	ProjectID string `json:"project_id"`        // project UUID
	Stage     string `json:"stage"`             // spec, validate, render, package, verify, repair, review
	Status    string `json:"status"`            // started, completed, failed, skipped
	Message   string `json:"message,omitempty"` // short human-readable detail (e.g. failure reason)
	Timestamp string `json:"timestamp"`         // RFC3339Nano
}

// RunStatusPayload is the payload for run.status events.
// Published when a verification run is enqueued, claimed, or reaches a terminal state.
type RunStatusPayload struct {
	Type      string                 `json:"type"`              // always EventTypeRunStatus
	ProjectID string                 `json:"project_id"`        // owning project UUID
	RunID     string                 `json:"run_id"`            // verification run UUID
	Status    verificationrun.Status `json:"status"`            // pending, running, completed, failed, cancelled
	Attempt   int                    `json:"attempt,omitempty"` // repair attempt count at publish time
	Timestamp string                 `json:"timestamp"`         // RFC3339Nano
}

// StreamChunkPayload is the payload for stream.chunk transient events.
// Published for each LLM streaming token — high frequency, ephemeral.
type StreamChunkPayload struct {
	Type      string `json:"type"`            // always EventTypeStreamChunk
	ProjectID string `json:"project_id"`      // owning project UUID
	Stage     string `json:"stage,omitempty"` // pipeline stage producing the stream
	Delta     string `json:"delta"`           // incremental text chunk
	Timestamp string `json:"timestamp"`       // RFC3339Nano
}
